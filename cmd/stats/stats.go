// Package stats handles the command that prints totals per day, week or month
package stats

import (
	"strings"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/report"

	"github.com/spf13/cobra"
)

// PeriodAll selects every period at once.
const PeriodAll = "all"

var (
	by     string
	period common.RangeFlags
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show expense totals by day, ISO week or month",
	Long: `Show the total price of the stored expenses grouped by day (YYYY-MM-DD),
ISO-8601 week (YYYY-Www, weeks start on Monday) or month (YYYY-MM).
Groups are listed in ascending order; --by all prints the three groupings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd, root.AppContainer)
	},
}

func init() {
	Cmd.Flags().StringVarP(&by, "by", "b", PeriodAll, "Grouping: day, week, month or all")
	period.Register(Cmd)
}

func runStats(cmd *cobra.Command, c *container.Container) error {
	if err := common.CheckContainer(c); err != nil {
		return err
	}
	format, err := common.OutputFormat(c)
	if err != nil {
		return err
	}

	periods := aggregator.Periods
	if !strings.EqualFold(strings.TrimSpace(by), PeriodAll) {
		p, err := aggregator.ParsePeriod(by)
		if err != nil {
			return err
		}
		periods = []aggregator.Period{p}
	}

	expenses, dateRange, err := period.Filter(c.GetStore().GetAll())
	if err != nil {
		return err
	}
	stats := make([]report.Statistics, 0, len(periods))
	for _, p := range periods {
		buckets, err := aggregator.Summarize(expenses, p)
		if err != nil {
			return err
		}
		stats = append(stats, report.Statistics{Period: p, Buckets: buckets})
	}
	c.GetLogger().Debug("Computed statistics",
		logging.F(logging.FieldCount, len(expenses)),
		logging.F(logging.FieldPeriod, by),
		logging.F(logging.FieldRange, dateRange.String()))

	var data []byte
	if len(stats) == 1 {
		data, err = c.GetReportGenerator().GenerateBuckets(stats[0].Period, stats[0].Buckets, format)
	} else {
		data, err = c.GetReportGenerator().GenerateStatistics(stats, format)
	}
	if err != nil {
		return err
	}
	return common.Print(cmd, data)
}
