// Package parsererror defines the typed errors of the expense tracker: malformed
// lines in the backing file, rejected user input and failed rewrites of the file.
package parsererror

import "fmt"

// ParseError describes a line of the backing file that could not be decoded.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: failed to parse %s='%s': %v",
		e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind classifies a ValidationError for the user-facing layer.
type Kind int

const (
	// KindBadDate means the date is not in YYYY-MM-DD form.
	KindBadDate Kind = iota + 1
	// KindBadAmount means the amount is not a number.
	KindBadAmount
	// KindEmptyOrNonPositive means a required text field is blank or the
	// amount is not strictly positive.
	KindEmptyOrNonPositive
)

func (k Kind) String() string {
	switch k {
	case KindBadDate:
		return "bad_date"
	case KindBadAmount:
		return "bad_amount"
	case KindEmptyOrNonPositive:
		return "empty_or_non_positive"
	default:
		return "unknown"
	}
}

// ValidationError is returned when an expense is rejected before reaching the store.
// Msg is meant to be shown to the user as is.
type ValidationError struct {
	Kind  Kind
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Is matches any ValidationError of the same Kind, so callers can write
// errors.Is(err, &ValidationError{Kind: KindBadDate}).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// SaveError wraps a failure to rewrite the backing file. The in-memory change
// that triggered the save has already been applied when this is returned.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save expenses to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
