// Package show handles the command that prints a single expense
package show

import (
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the show command
var Cmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one expense",
	Long:  `Show the expense with the given id in the configured output format.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, root.AppContainer, args[0])
	},
}

func runShow(cmd *cobra.Command, c *container.Container, arg string) error {
	if err := common.CheckContainer(c); err != nil {
		return err
	}
	id, err := common.ParseID(arg)
	if err != nil {
		return err
	}
	format, err := common.OutputFormat(c)
	if err != nil {
		return err
	}

	e, ok := c.GetStore().GetByID(id)
	if !ok {
		return fmt.Errorf("expense %s not found", id)
	}

	data, err := c.GetReportGenerator().GenerateExpenses([]models.Expense{e}, format)
	if err != nil {
		return err
	}
	return common.Print(cmd, data)
}
