// Package report renders expense lists and statistics for the terminal or
// for export as csv, json or yaml.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/expense-tracker/internal/aggregator"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", s)
	}
}

type bucketRow struct {
	Label string `csv:"Period" json:"period" yaml:"period"`
	Total string `csv:"Total Price" json:"total" yaml:"total"`
	Count int    `csv:"Count" json:"count" yaml:"count"`
}

type statisticsRow struct {
	Grouping string `csv:"Grouping"`
	Label    string `csv:"Period"`
	Total    string `csv:"Total Price"`
	Count    int    `csv:"Count"`
}

type expenseRow struct {
	ID          string `csv:"ID" json:"id" yaml:"id"`
	Date        string `csv:"Date" json:"date" yaml:"date"`
	Category    string `csv:"Category" json:"category" yaml:"category"`
	Description string `csv:"Description" json:"description" yaml:"description"`
	Price       string `csv:"Price" json:"price" yaml:"price"`
}

// Statistics is the full statistics view: one bucket list per period.
type Statistics struct {
	Period  aggregator.Period
	Buckets []aggregator.Bucket
}

// ReportGenerator renders reports in one of the supported formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{logger: logger.WithField("component", "ReportGenerator")}
}

// GenerateBuckets renders one bucket list. Totals are shown with two decimals.
func (g *ReportGenerator) GenerateBuckets(period aggregator.Period, buckets []aggregator.Bucket, format Format) ([]byte, error) {
	rows := toBucketRows(buckets)
	switch format {
	case FormatText:
		return g.bucketsText(period, rows)
	case FormatCSV:
		return g.marshalCSV(rows)
	case FormatJSON:
		return g.marshalJSON(rows)
	case FormatYAML:
		return g.marshalYAML(rows)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// GenerateStatistics renders several bucket lists at once. Text output
// prints one table per period; json and yaml nest the lists by period name.
func (g *ReportGenerator) GenerateStatistics(stats []Statistics, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		var buf bytes.Buffer
		for i, s := range stats {
			if i > 0 {
				buf.WriteString("\n")
			}
			out, err := g.GenerateBuckets(s.Period, s.Buckets, format)
			if err != nil {
				return nil, err
			}
			buf.Write(out)
		}
		return buf.Bytes(), nil
	case FormatJSON, FormatYAML:
		nested := make(map[string][]bucketRow, len(stats))
		for _, s := range stats {
			nested[string(s.Period)] = toBucketRows(s.Buckets)
		}
		if format == FormatJSON {
			return g.marshalJSON(nested)
		}
		return g.marshalYAML(nested)
	case FormatCSV:
		rows := make([]statisticsRow, 0)
		for _, s := range stats {
			for _, r := range toBucketRows(s.Buckets) {
				rows = append(rows, statisticsRow{Grouping: string(s.Period), Label: r.Label, Total: r.Total, Count: r.Count})
			}
		}
		return g.marshalCSV(rows)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// GenerateExpenses renders an expense list in the given order.
func (g *ReportGenerator) GenerateExpenses(expenses []models.Expense, format Format) ([]byte, error) {
	rows := make([]expenseRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, expenseRow{
			ID:          e.ID.String(),
			Date:        e.DateString(),
			Category:    e.Category,
			Description: e.Description,
			Price:       models.FormatAmount(e.Amount),
		})
	}

	switch format {
	case FormatText:
		return g.expensesText(rows, models.FormatAmount(aggregator.Total(expenses)))
	case FormatCSV:
		return g.marshalCSV(rows)
	case FormatJSON:
		return g.marshalJSON(rows)
	case FormatYAML:
		return g.marshalYAML(rows)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func toBucketRows(buckets []aggregator.Bucket) []bucketRow {
	rows := make([]bucketRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, bucketRow{Label: b.Label, Total: models.FormatAmount(b.Total), Count: b.Count})
	}
	return rows
}

func periodHeading(period aggregator.Period) string {
	switch period {
	case aggregator.PeriodDay:
		return "Date"
	case aggregator.PeriodWeek:
		return "Week"
	case aggregator.PeriodMonth:
		return "Month"
	default:
		return "Period"
	}
}

func (g *ReportGenerator) bucketsText(period aggregator.Period, rows []bucketRow) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tTotal Price\tCount\t\n", periodHeading(period))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t\n", r.Label, r.Total, r.Count)
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render table: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) expensesText(rows []expenseRow, total string) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDate\tCategory\tDescription\tPrice")
	for _, r := range rows {
		description := strings.ReplaceAll(r.Description, "\n", " ")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Date, r.Category, description, r.Price)
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintf(&buf, "%d expense(s), total %s\n", len(rows), total)
	return buf.Bytes(), nil
}

func (g *ReportGenerator) marshalCSV(rows interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (g *ReportGenerator) marshalJSON(v interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *ReportGenerator) marshalYAML(v interface{}) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
