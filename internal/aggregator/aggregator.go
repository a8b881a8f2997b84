// Package aggregator computes time-bucketed totals over a snapshot of expenses.
// Every function is pure: it reads its input and returns a new slice.
package aggregator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Period selects how expenses are grouped.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Periods lists the supported periods in display order.
var Periods = []Period{PeriodDay, PeriodWeek, PeriodMonth}

// ParsePeriod parses "day", "week" or "month" (case-insensitive).
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported period: %q (must be 'day', 'week' or 'month')", s)
	}
}

// Bucket is the total of the expenses that share a day, ISO week or month.
// Total is the exact sum; rounding is left to the presentation layer.
type Bucket struct {
	Label string          `json:"label" yaml:"label"`
	Total decimal.Decimal `json:"total" yaml:"total"`
	Count int             `json:"count" yaml:"count"`
}

// bucketKey orders buckets chronologically. For days it holds (year, month,
// day), for weeks (ISO year, ISO week, 0), for months (year, month, 0).
type bucketKey [3]int

func (k bucketKey) less(o bucketKey) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}
	return false
}

type keyFunc func(time.Time) (bucketKey, string)

func dayKey(d time.Time) (bucketKey, string) {
	return bucketKey{d.Year(), int(d.Month()), d.Day()}, dateutils.ToISODate(d)
}

func weekKey(d time.Time) (bucketKey, string) {
	year, week := d.ISOWeek()
	return bucketKey{year, week, 0}, dateutils.ISOWeekLabel(d)
}

func monthKey(d time.Time) (bucketKey, string) {
	return bucketKey{d.Year(), int(d.Month()), 0}, dateutils.MonthLabel(d)
}

// ByDay totals expenses per calendar date, labelled YYYY-MM-DD.
func ByDay(expenses []models.Expense) []Bucket {
	return group(expenses, dayKey)
}

// ByWeek totals expenses per ISO-8601 week, labelled YYYY-Www. Weeks start on
// Monday and week 1 contains January 4th; the year is the ISO week-based year.
// The result does not depend on the process locale.
func ByWeek(expenses []models.Expense) []Bucket {
	return group(expenses, weekKey)
}

// ByMonth totals expenses per calendar month, labelled YYYY-MM.
func ByMonth(expenses []models.Expense) []Bucket {
	return group(expenses, monthKey)
}

// Summarize dispatches to ByDay, ByWeek or ByMonth.
func Summarize(expenses []models.Expense, period Period) ([]Bucket, error) {
	switch period {
	case PeriodDay:
		return ByDay(expenses), nil
	case PeriodWeek:
		return ByWeek(expenses), nil
	case PeriodMonth:
		return ByMonth(expenses), nil
	default:
		return nil, fmt.Errorf("unsupported period: %q", period)
	}
}

// Total returns the sum of all amounts.
func Total(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func group(expenses []models.Expense, keyOf keyFunc) []Bucket {
	type entry struct {
		key    bucketKey
		bucket Bucket
	}
	byKey := make(map[bucketKey]*entry)

	for _, e := range expenses {
		key, label := keyOf(e.Date)
		en, ok := byKey[key]
		if !ok {
			en = &entry{key: key, bucket: Bucket{Label: label, Total: decimal.Zero}}
			byKey[key] = en
		}
		en.bucket.Total = en.bucket.Total.Add(e.Amount)
		en.bucket.Count++
	}

	entries := make([]*entry, 0, len(byKey))
	for _, en := range byKey {
		entries = append(entries, en)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key.less(entries[j].key)
	})

	buckets := make([]Bucket, 0, len(entries))
	for _, en := range entries {
		buckets = append(buckets, en.bucket)
	}
	return buckets
}
