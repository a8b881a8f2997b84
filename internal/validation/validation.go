// Package validation turns the raw text typed by a user into a checked
// models.ExpenseInput. It never touches the store.
package validation

import (
	"strings"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"
)

// User-facing messages, one per error kind.
const (
	MsgBadDate            = "Invalid date format. Please use YYYY-MM-DD."
	MsgBadAmount          = "Invalid amount. Please enter a valid number."
	MsgEmptyOrNonPositive = "All fields are required and amount must be positive."
)

// RawInput holds the four fields exactly as typed.
type RawInput struct {
	Date        string
	Category    string
	Description string
	Amount      string
}

// FromExpense renders an existing expense as RawInput, for pre-filling an edit form.
func FromExpense(e models.Expense) RawInput {
	return RawInput{
		Date:        e.DateString(),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount.String(),
	}
}

// ValidateInput checks raw in order: date format, amount format, then blank
// fields and amount sign. The first failure is returned as a
// *parsererror.ValidationError carrying one of the Msg* texts.
func ValidateInput(raw RawInput) (models.ExpenseInput, error) {
	date, err := dateutils.ParseISODate(raw.Date)
	if err != nil {
		return models.ExpenseInput{}, &parsererror.ValidationError{
			Kind: parsererror.KindBadDate,
			Msg:  MsgBadDate,
		}
	}

	amount, err := models.ParseAmount(raw.Amount)
	if err != nil {
		return models.ExpenseInput{}, &parsererror.ValidationError{
			Kind: parsererror.KindBadAmount,
			Msg:  MsgBadAmount,
		}
	}

	in := models.ExpenseInput{
		Date:        date,
		Category:    strings.TrimSpace(raw.Category),
		Description: strings.TrimSpace(raw.Description),
		Amount:      amount,
	}
	if err := in.Validate(); err != nil {
		return models.ExpenseInput{}, &parsererror.ValidationError{
			Kind: parsererror.KindEmptyOrNonPositive,
			Msg:  MsgEmptyOrNonPositive,
		}
	}
	return in, nil
}
