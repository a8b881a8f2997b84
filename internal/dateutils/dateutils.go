// Package dateutils holds the calendar-date helpers shared by the store, the
// aggregator and the input validation.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts used for persisted dates and bucket labels.
const (
	DateLayoutISO  = "2006-01-02"
	MonthLayoutISO = "2006-01"
)

// ParseISODate parses a YYYY-MM-DD date, ignoring surrounding whitespace.
// The result is a calendar date at midnight UTC.
func ParseISODate(dateStr string) (time.Time, error) {
	cleaned := strings.TrimSpace(dateStr)
	t, err := time.Parse(DateLayoutISO, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: expected YYYY-MM-DD", dateStr)
	}
	return t, nil
}

// NormalizeDate drops the time of day and location, keeping the calendar date
// as seen in date's own location.
func NormalizeDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in the local time zone.
func Today() time.Time {
	return NormalizeDate(time.Now())
}

// ToISODate formats a date as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ISOWeekLabel returns "<year>-W<ww>" using ISO-8601 week numbering: weeks
// start on Monday and week 1 is the week containing January 4th. The year is
// the ISO week-based year, which differs from the calendar year for a few days
// around New Year (2024-12-30 is 2025-W01, 2021-01-03 is 2020-W53).
func ISOWeekLabel(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthLabel returns "<year>-<mm>".
func MonthLabel(date time.Time) string {
	return date.Format(MonthLayoutISO)
}

// DateRange is an inclusive range of calendar dates. A zero Start or End
// leaves that side open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange builds a DateRange from two optional YYYY-MM-DD strings.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	var err error
	if strings.TrimSpace(from) != "" {
		if r.Start, err = ParseISODate(from); err != nil {
			return DateRange{}, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if strings.TrimSpace(to) != "" {
		if r.End, err = ParseISODate(to); err != nil {
			return DateRange{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s", ToISODate(r.End), ToISODate(r.Start))
	}
	return r, nil
}

// IsOpen reports whether the range has no bound at all.
func (dr DateRange) IsOpen() bool {
	return dr.Start.IsZero() && dr.End.IsZero()
}

// Contains reports whether the calendar date of d lies in the range.
func (dr DateRange) Contains(d time.Time) bool {
	d = NormalizeDate(d)
	if !dr.Start.IsZero() && d.Before(dr.Start) {
		return false
	}
	if !dr.End.IsZero() && d.After(dr.End) {
		return false
	}
	return true
}

// String returns the range as "YYYY-MM-DD_YYYY-MM-DD"; an open side is left empty.
func (dr DateRange) String() string {
	var start, end string
	if !dr.Start.IsZero() {
		start = ToISODate(dr.Start)
	}
	if !dr.End.IsZero() {
		end = ToISODate(dr.End)
	}
	return start + "_" + end
}
