// Package edit handles the command that changes an existing expense
package edit

import (
	"errors"
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/prompt"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var flags common.ExpenseFlags

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an expense",
	Long: `Edit the expense with the given id. Fields not given as flags keep their
current value; with --interactive every field is asked for, pre-filled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, root.AppContainer, args[0])
	},
}

func init() {
	flags.Register(Cmd)
}

func runEdit(cmd *cobra.Command, c *container.Container, arg string) error {
	if err := common.CheckContainer(c); err != nil {
		return err
	}
	id, err := common.ParseID(arg)
	if err != nil {
		return err
	}

	current, ok := c.GetStore().GetByID(id)
	if !ok {
		return fmt.Errorf("expense %s not found", id)
	}

	in, err := common.ResolveInput(cmd, &flags, validation.FromExpense(current))
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	updated, err := c.GetStore().Update(current.WithInput(in))
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if !updated {
		// deleted between lookup and update
		return fmt.Errorf("expense %s not found", id)
	}

	c.GetLogger().Debug("Expense updated", logging.F(logging.FieldExpenseID, id.String()))
	fmt.Fprintf(cmd.OutOrStdout(), "Updated expense %s\n", id)
	return nil
}
