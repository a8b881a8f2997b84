// Package add handles the command that records a new expense
package add

import (
	"errors"
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/prompt"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var flags common.ExpenseFlags

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense",
	Long: `Add an expense with the given date, category, description and price.
The date defaults to today. With --interactive the missing fields are asked for.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, root.AppContainer)
	},
}

func init() {
	flags.Register(Cmd)
}

func runAdd(cmd *cobra.Command, c *container.Container) error {
	if err := common.CheckContainer(c); err != nil {
		return err
	}

	defaults := validation.RawInput{Date: dateutils.ToISODate(dateutils.Today())}
	in, err := common.ResolveInput(cmd, &flags, defaults)
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	e := models.NewExpense(in)
	if err := c.GetStore().Add(e); err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}

	c.GetLogger().Debug("Expense added",
		logging.F(logging.FieldExpenseID, e.ID.String()),
		logging.F(logging.FieldCategory, e.Category))
	fmt.Fprintf(cmd.OutOrStdout(), "Added expense %s\n", e.ID)
	return nil
}
