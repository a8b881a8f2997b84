package common

import (
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

// RangeFlags restrict a command to expenses dated between --from and --to.
type RangeFlags struct {
	From string
	To   string
}

// Register adds --from and --to to cmd.
func (f *RangeFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.From, "from", "", "Only expenses on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.To, "to", "", "Only expenses on or before this date (YYYY-MM-DD)")
}

// Filter keeps the expenses inside the range, preserving order, and returns
// the parsed range.
func (f *RangeFlags) Filter(expenses []models.Expense) ([]models.Expense, dateutils.DateRange, error) {
	r, err := dateutils.ParseDateRange(f.From, f.To)
	if err != nil {
		return nil, dateutils.DateRange{}, err
	}
	if r.IsOpen() {
		return expenses, r, nil
	}
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, r, nil
}
