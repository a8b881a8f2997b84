package main

import (
	"fmt"
	"os"

	"fjacquet/expense-tracker/cmd/add"
	deletecmd "fjacquet/expense-tracker/cmd/delete"
	"fjacquet/expense-tracker/cmd/edit"
	"fjacquet/expense-tracker/cmd/list"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/cmd/show"
	"fjacquet/expense-tracker/cmd/stats"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(show.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(deletecmd.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
