// Package prompt implements the blocking "capture or cancel" step: it asks for
// the fields of an expense line by line until they validate or the user gives up.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/validation"
)

// CancelWord aborts a capture when typed on its own line.
const CancelWord = ":q"

// ErrCancelled is returned when the user cancels or the input ends.
var ErrCancelled = errors.New("input cancelled")

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Capture asks for date, category, description and amount. An empty answer
// keeps the value from defaults. Invalid input is reported on out and the
// whole form is asked again, pre-filled with what was typed. It returns
// ErrCancelled on CancelWord or end of input.
func (p *Prompter) Capture(defaults validation.RawInput) (models.ExpenseInput, error) {
	current := defaults
	for {
		raw, err := p.fill(current)
		if err != nil {
			return models.ExpenseInput{}, err
		}

		in, err := validation.ValidateInput(raw)
		if err == nil {
			return in, nil
		}
		fmt.Fprintf(p.out, "Input error: %v\n", err)
		current = raw
	}
}

// Confirm asks a yes/no question. Anything but y/yes counts as no;
// end of input returns ErrCancelled.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) fill(defaults validation.RawInput) (validation.RawInput, error) {
	fields := []struct {
		label string
		value *string
	}{
		{"Date (YYYY-MM-DD)", &defaults.Date},
		{"Category", &defaults.Category},
		{"Description", &defaults.Description},
		{"Price", &defaults.Amount},
	}

	for _, f := range fields {
		answer, err := p.ask(f.label, *f.value)
		if err != nil {
			return validation.RawInput{}, err
		}
		*f.value = answer
	}
	return defaults, nil
}

func (p *Prompter) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", ErrCancelled
	}
	line := strings.TrimSpace(p.scanner.Text())
	if line == CancelWord {
		return "", ErrCancelled
	}
	return line, nil
}
