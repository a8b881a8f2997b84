// Package list handles the command that prints stored expenses
package list

import (
	"fmt"
	"sort"
	"strings"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

// Sort keys accepted by --sort.
const (
	SortNone     = "none"
	SortDate     = "date"
	SortCategory = "category"
	SortAmount   = "amount"
)

var (
	sortBy   string
	category string
	period   common.RangeFlags
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	Long: `List the stored expenses in the configured output format.
--sort orders the rows by date, category or amount; "none" keeps the stored order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, root.AppContainer)
	},
}

func init() {
	Cmd.Flags().StringVarP(&sortBy, "sort", "s", SortDate, "Sort by date, category, amount or none")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only list expenses of this category")
	period.Register(Cmd)
}

func runList(cmd *cobra.Command, c *container.Container) error {
	if err := common.CheckContainer(c); err != nil {
		return err
	}
	format, err := common.OutputFormat(c)
	if err != nil {
		return err
	}

	expenses, dateRange, err := period.Filter(c.GetStore().GetAll())
	if err != nil {
		return err
	}
	expenses = filterCategory(expenses, category)
	c.GetLogger().Debug("Listing expenses",
		logging.F(logging.FieldCount, len(expenses)),
		logging.F(logging.FieldRange, dateRange.String()))
	if err := sortExpenses(expenses, sortBy); err != nil {
		return err
	}

	data, err := c.GetReportGenerator().GenerateExpenses(expenses, format)
	if err != nil {
		return err
	}
	return common.Print(cmd, data)
}

func filterCategory(expenses []models.Expense, name string) []models.Expense {
	name = strings.TrimSpace(name)
	if name == "" {
		return expenses
	}
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if strings.EqualFold(e.Category, name) {
			out = append(out, e)
		}
	}
	return out
}

// sortExpenses orders expenses in place. Ties keep their stored order.
func sortExpenses(expenses []models.Expense, key string) error {
	var less func(a, b models.Expense) bool
	switch strings.ToLower(key) {
	case SortNone, "":
		return nil
	case SortDate:
		less = func(a, b models.Expense) bool { return a.Date.Before(b.Date) }
	case SortCategory:
		less = func(a, b models.Expense) bool { return a.Category < b.Category }
	case SortAmount:
		less = func(a, b models.Expense) bool { return a.Amount.LessThan(b.Amount) }
	default:
		return fmt.Errorf("unsupported sort key: %q (must be 'date', 'category', 'amount' or 'none')", key)
	}
	sort.SliceStable(expenses, func(i, j int) bool { return less(expenses[i], expenses[j]) })
	return nil
}
