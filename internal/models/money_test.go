package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "integer", input: "20", expected: "20"},
		{name: "two decimals", input: "10.50", expected: "10.5"},
		{name: "whitespace trimmed", input: "  0.01 ", expected: "0.01"},
		{name: "negative parses", input: "-5", expected: "-5"},
		{name: "empty", input: "   ", expectError: true},
		{name: "letters", input: "ten", expectError: true},
		{name: "currency symbol", input: "$10", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10.00", FormatAmount(decimal.NewFromInt(10)))
	assert.Equal(t, "0.01", FormatAmount(MustParseAmount("0.01")))
	assert.Equal(t, "0.01", FormatAmount(MustParseAmount("0.005")))
	assert.Equal(t, "1234.57", FormatAmount(MustParseAmount("1234.567")))
}

func TestMustParseAmount_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseAmount("nope") })
}
