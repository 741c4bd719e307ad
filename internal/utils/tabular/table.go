// Package tabular parses uploaded spreadsheet/CSV files into an in-memory
// table with normalized (whitespace-trimmed) column headers.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat indicates the uploaded file extension is not handled.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Table is a parsed upload: trimmed headers plus raw string cells.
type Table struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// Parse reads an uploaded file into a Table, dispatching on the filename
// extension (.csv vs .xlsx/.xls).
func Parse(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xls":
		return parseExcel(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return fromRecords(records)
}

func parseExcel(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	// Data is expected on the first sheet.
	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return fromRecords(records)
}

// New builds a Table from a header row and data rows, trimming header
// whitespace and padding short rows so every row has one cell per header.
func New(headers []string, rows [][]string) *Table {
	trimmed := make([]string, len(headers))
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		trimmed[i] = strings.TrimSpace(h)
		index[trimmed[i]] = i
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) < len(headers) {
			p := make([]string, len(headers))
			copy(p, row)
			row = p
		}
		padded[i] = row[:len(headers)]
	}

	return &Table{Headers: trimmed, Rows: padded, index: index}
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("file contains no rows")
	}
	return New(records[0], records[1:]), nil
}

// HasColumn reports whether a trimmed header with this name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the trimmed cell value at (row, column name), or "" when the
// column does not exist.
func (t *Table) Cell(row int, column string) string {
	i, ok := t.index[column]
	if !ok {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][i])
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// dataLayouts are the date formats accepted in the TRANSDATE column. Excel
// renders dates with slashes or dashes depending on the cell format; exports
// from the source system use ISO dates.
var dataLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02-01-2006",
	"01-02-06",
	"1/2/06 15:04",
}

// ParseData parses a transaction-date cell. The result is normalized to
// midnight UTC so values with a time-of-day component still compare as
// calendar dates.
func ParseData(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dataLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// ParseValor parses an amount cell. Both "1234.56" and the Brazilian
// "1.234,56" forms occur in the source files.
func ParseValor(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparseable amount %q: %w", s, err)
	}
	return d, nil
}
