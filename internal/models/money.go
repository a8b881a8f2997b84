package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountDecimals is the number of fraction digits kept on disk and on display.
const AmountDecimals = 2

// ParseAmount parses a plain decimal number such as "12.5" or " 0.01 ".
// No currency symbols or thousand separators are accepted.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountStr)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amountStr, err)
	}
	return dec, nil
}

// MustParseAmount is ParseAmount for literals known to be valid.
func MustParseAmount(amountStr string) decimal.Decimal {
	dec, err := ParseAmount(amountStr)
	if err != nil {
		panic(err)
	}
	return dec
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountDecimals)
}
