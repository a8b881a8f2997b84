package store

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// Header is the mandatory first line of the backing file.
const Header = "ID,Date,Category,Description,Price"

const (
	fieldCount = 5

	// The legacy format is one unquoted line per record, with the commas of
	// descriptions stored as semicolons.
	legacyDelimiter = ","
	legacyEscape    = ";"

	maxLineSize = 1024 * 1024
)

// expenseRow is the on-disk shape of an expense; the csv tags produce Header.
type expenseRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Price       string `csv:"Price"`
}

// skippedLine describes a record that decode could not turn into an expense.
type skippedLine struct {
	Line int
	Err  error
}

func toRow(e models.Expense) expenseRow {
	return expenseRow{
		ID:          e.ID.String(),
		Date:        e.DateString(),
		Category:    e.Category,
		Description: e.Description,
		Price:       models.FormatAmount(e.Amount),
	}
}

// legacyField makes s safe for an unquoted legacy field: commas become
// semicolons and line breaks become spaces.
func legacyField(s string) string {
	return legacyReplacer.Replace(s)
}

var legacyReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", legacyDelimiter, legacyEscape)

// encode renders expenses as the CSV file content, header included.
// Fields are quoted per RFC 4180 when needed, so any description survives.
// In legacy mode the lines are written unquoted instead; see encodeLegacy.
func encode(expenses []models.Expense, legacy bool) ([]byte, error) {
	if legacy {
		return encodeLegacy(expenses), nil
	}

	rows := make([]expenseRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, toRow(e))
	}

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV data: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeLegacy writes "id,date,category,description,price" lines without any
// quoting. Commas in category and description are stored as semicolons and
// line breaks as spaces, so every record stays on one five-field line.
func encodeLegacy(expenses []models.Expense) []byte {
	var buf bytes.Buffer
	buf.WriteString(Header + "\n")
	for _, e := range expenses {
		r := toRow(e)
		fmt.Fprintf(&buf, "%s,%s,%s,%s,%s\n",
			r.ID, r.Date, legacyField(r.Category), legacyField(r.Description), r.Price)
	}
	return buf.Bytes()
}

// decode reads the CSV content from r. The first record is the header and is
// skipped. Records that cannot be decoded are returned in skipped rather than
// failing the whole read; only I/O errors abort.
func decode(r io.Reader, legacy bool) (expenses []models.Expense, skipped []skippedLine, err error) {
	if legacy {
		return decodeLegacy(r)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headerSeen := false
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			var perr *csv.ParseError
			if errors.As(readErr, &perr) {
				skipped = append(skipped, skippedLine{Line: perr.StartLine, Err: perr.Err})
				continue
			}
			return nil, nil, fmt.Errorf("error reading CSV data: %w", readErr)
		}

		line, _ := reader.FieldPos(0)
		if !headerSeen {
			headerSeen = true
			continue
		}

		e, decErr := decodeRecord(record, line, false)
		if decErr != nil {
			skipped = append(skipped, skippedLine{Line: line, Err: decErr})
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses, skipped, nil
}

// decodeLegacy reads the unquoted legacy format one physical line at a time,
// splitting each line into at most five fields. Quotes carry no meaning, so a
// bad line never affects the lines after it.
func decodeLegacy(r io.Reader) (expenses []models.Expense, skipped []skippedLine, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		e, decErr := decodeRecord(strings.SplitN(text, legacyDelimiter, fieldCount), line, true)
		if decErr != nil {
			skipped = append(skipped, skippedLine{Line: line, Err: decErr})
			continue
		}
		expenses = append(expenses, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading CSV data: %w", err)
	}
	return expenses, skipped, nil
}

func decodeRecord(record []string, line int, legacy bool) (models.Expense, error) {
	if len(record) != fieldCount {
		return models.Expense{}, &parsererror.ParseError{
			Line: line,
			Err:  fmt.Errorf("expected %d fields, got %d", fieldCount, len(record)),
		}
	}

	id, err := uuid.Parse(strings.TrimSpace(record[0]))
	if err != nil {
		return models.Expense{}, &parsererror.ParseError{Line: line, Field: "ID", Value: record[0], Err: err}
	}

	date, err := dateutils.ParseISODate(record[1])
	if err != nil {
		return models.Expense{}, &parsererror.ParseError{Line: line, Field: "Date", Value: record[1], Err: err}
	}

	amount, err := models.ParseAmount(record[4])
	if err != nil {
		return models.Expense{}, &parsererror.ParseError{Line: line, Field: "Price", Value: record[4], Err: err}
	}

	description := record[3]
	if legacy {
		description = strings.ReplaceAll(description, legacyEscape, legacyDelimiter)
	}

	return models.NewExpenseWithID(id, models.ExpenseInput{
		Date:        date,
		Category:    record[2],
		Description: description,
		Amount:      amount,
	}), nil
}
