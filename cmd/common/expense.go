// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/prompt"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ErrNotInitialized is returned when a command runs without a container.
var ErrNotInitialized = errors.New("application not initialized")

// ExpenseFlags are the field flags shared by add and edit.
type ExpenseFlags struct {
	Date        string
	Category    string
	Description string
	Amount      string
	Interactive bool
}

// Register adds the field flags to cmd.
func (f *ExpenseFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Date, "date", "t", "", "Expense date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&f.Category, "category", "c", "", "Expense category")
	cmd.Flags().StringVarP(&f.Description, "description", "d", "", "Expense description")
	cmd.Flags().StringVarP(&f.Amount, "amount", "a", "", "Expense price")
	cmd.Flags().BoolVarP(&f.Interactive, "interactive", "i", false, "Prompt for the fields instead of failing on missing ones")
}

// Apply overlays the non-empty flag values on defaults.
func (f *ExpenseFlags) Apply(defaults validation.RawInput) validation.RawInput {
	raw := defaults
	if f.Date != "" {
		raw.Date = f.Date
	}
	if f.Category != "" {
		raw.Category = f.Category
	}
	if f.Description != "" {
		raw.Description = f.Description
	}
	if f.Amount != "" {
		raw.Amount = f.Amount
	}
	return raw
}

// ResolveInput validates the flag values merged onto defaults. In interactive
// mode the merged values pre-fill a prompt on the command's stdin/stdout and
// prompt.ErrCancelled is passed through.
func ResolveInput(cmd *cobra.Command, f *ExpenseFlags, defaults validation.RawInput) (models.ExpenseInput, error) {
	raw := f.Apply(defaults)
	if f.Interactive {
		return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()).Capture(raw)
	}
	return validation.ValidateInput(raw)
}

// ParseID parses an expense id argument.
func ParseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(arg))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid expense id %q: %w", arg, err)
	}
	return id, nil
}

// OutputFormat returns the configured report format.
func OutputFormat(c *container.Container) (report.Format, error) {
	return report.ParseFormat(c.GetConfig().Report.Format)
}

// CheckContainer fails with ErrNotInitialized when c is nil.
func CheckContainer(c *container.Container) error {
	if c == nil {
		return ErrNotInitialized
	}
	return nil
}

// Print writes a rendered report to the command's output.
func Print(cmd *cobra.Command, data []byte) error {
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
