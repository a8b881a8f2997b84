package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain", input: "2024-01-08", want: date(2024, time.January, 8)},
		{name: "surrounding whitespace", input: "  2024-02-29 ", want: date(2024, time.February, 29)},
		{name: "european format rejected", input: "08.01.2024", wantErr: true},
		{name: "impossible day", input: "2023-02-29", wantErr: true},
		{name: "single digit month", input: "2024-1-08", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
			assert.Equal(t, ToISODate(tt.want), ToISODate(got))
		})
	}
}

func TestISOWeekLabel(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date(2024, time.January, 1), "2024-W01"},
		{date(2024, time.January, 7), "2024-W01"},
		{date(2024, time.January, 8), "2024-W02"},
		{date(2024, time.December, 30), "2025-W01"},
		{date(2021, time.January, 3), "2020-W53"},
		{date(2026, time.October, 15), "2026-W42"},
	}

	for _, tt := range tests {
		t.Run(ToISODate(tt.date), func(t *testing.T) {
			assert.Equal(t, tt.want, ISOWeekLabel(tt.date))
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "2024-01", MonthLabel(date(2024, time.January, 31)))
	assert.Equal(t, "1999-12", MonthLabel(date(1999, time.December, 1)))
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2024, time.March, 3, 1, 30, 0, 0, loc)

	got := NormalizeDate(in)
	assert.Equal(t, date(2024, time.March, 3), got)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-01-02", " 2024-01-31 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02_2024-01-31", r.String())
	assert.False(t, r.IsOpen())

	open, err := ParseDateRange("", "")
	require.NoError(t, err)
	assert.True(t, open.IsOpen())
	assert.Equal(t, "_", open.String())

	_, err = ParseDateRange("2024-02-01", "2024-01-01")
	assert.Error(t, err)

	_, err = ParseDateRange("yesterday", "")
	assert.Error(t, err)
}

func TestDateRange_Contains(t *testing.T) {
	r, err := ParseDateRange("2024-01-02", "2024-01-31")
	require.NoError(t, err)

	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-01", false},
		{"2024-01-02", true},
		{"2024-01-31", true},
		{"2024-02-01", false},
	}
	for _, tt := range tests {
		d, err := ParseISODate(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Contains(d), tt.date)
	}

	lateEvening := time.Date(2024, 1, 31, 23, 30, 0, 0, time.UTC)
	assert.True(t, r.Contains(lateEvening))

	from, err := ParseDateRange("2024-01-10", "")
	require.NoError(t, err)
	assert.True(t, from.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}
