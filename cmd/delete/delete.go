// Package delete handles the command that removes an expense
package delete

import (
	"errors"
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/prompt"

	"github.com/spf13/cobra"
)

var yes bool

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Long: `Delete the expense with the given id after confirmation.
Deleting an id that does not exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelete(cmd, root.AppContainer, args[0])
	},
}

func init() {
	Cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
}

func runDelete(cmd *cobra.Command, c *container.Container, arg string) error {
	if err := common.CheckContainer(c); err != nil {
		return err
	}
	id, err := common.ParseID(arg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if e, ok := c.GetStore().GetByID(id); ok && !yes {
		question := fmt.Sprintf("Delete %s %s %s %s?", e.DateString(), e.Category, e.Description, models.FormatAmount(e.Amount))
		confirmed, err := prompt.New(cmd.InOrStdin(), out).Confirm(question)
		if err != nil && !errors.Is(err, prompt.ErrCancelled) {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	removed, err := c.GetStore().Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if !removed {
		fmt.Fprintf(out, "No expense with id %s\n", id)
		return nil
	}

	c.GetLogger().Debug("Expense deleted", logging.F(logging.FieldExpenseID, id.String()))
	fmt.Fprintf(out, "Deleted expense %s\n", id)
	return nil
}
