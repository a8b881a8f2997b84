// Package models defines the expense record and the helpers around its amount.
package models

import (
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/parsererror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is one dated spending entry. ID is assigned once and never changes;
// the other fields are editable.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
}

// ExpenseInput carries the user-editable fields of an Expense.
type ExpenseInput struct {
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
}

// NewExpense creates an Expense with a fresh random ID.
func NewExpense(in ExpenseInput) Expense {
	return NewExpenseWithID(uuid.New(), in)
}

// NewExpenseWithID creates an Expense with a known ID, as when loading from disk.
func NewExpenseWithID(id uuid.UUID, in ExpenseInput) Expense {
	return Expense{
		ID:          id,
		Date:        dateutils.NormalizeDate(in.Date),
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
	}
}

// WithInput returns a copy of e carrying the fields of in, keeping e's ID.
func (e Expense) WithInput(in ExpenseInput) Expense {
	return NewExpenseWithID(e.ID, in)
}

// Input returns the editable fields of e.
func (e Expense) Input() ExpenseInput {
	return ExpenseInput{
		Date:        e.Date,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
	}
}

// DateString returns the date as YYYY-MM-DD.
func (e Expense) DateString() string {
	return dateutils.ToISODate(e.Date)
}

// Validate checks the invariants an expense must hold to be accepted by the store.
func (e Expense) Validate() error {
	if e.ID == uuid.Nil {
		return &parsererror.ValidationError{
			Kind:  parsererror.KindEmptyOrNonPositive,
			Field: "id",
			Msg:   "must not be empty",
		}
	}
	if e.Date.IsZero() {
		return &parsererror.ValidationError{
			Kind:  parsererror.KindBadDate,
			Field: "date",
			Msg:   "must be set",
		}
	}
	return e.Input().Validate()
}

// Validate checks that the text fields are non-blank and the amount is positive.
func (in ExpenseInput) Validate() error {
	if strings.TrimSpace(in.Category) == "" {
		return &parsererror.ValidationError{
			Kind:  parsererror.KindEmptyOrNonPositive,
			Field: "category",
			Msg:   "must not be empty",
		}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &parsererror.ValidationError{
			Kind:  parsererror.KindEmptyOrNonPositive,
			Field: "description",
			Msg:   "must not be empty",
		}
	}
	if !in.Amount.IsPositive() {
		return &parsererror.ValidationError{
			Kind:  parsererror.KindEmptyOrNonPositive,
			Field: "amount",
			Msg:   "must be greater than zero",
		}
	}
	return nil
}
