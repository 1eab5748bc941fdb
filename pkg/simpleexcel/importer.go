package simpleexcel

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFile is returned for uploads that are neither .xlsx nor .csv.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrRowOutOfRange is returned by Table.Row for an index past the data rows.
	ErrRowOutOfRange = errors.New("row out of range")
)

// Table is a header row plus data rows read from the first sheet of a workbook
// or from a CSV file. Headers are trimmed and lower-cased.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadTable picks the parser from the file extension.
func ReadTable(r io.Reader, filename string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, filename)
	}
}

func readXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}
	// raw values keep dates as serial numbers instead of locale display text
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return newTable(rows), nil
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return newTable(rows), nil
}

func newTable(rows [][]string) *Table {
	t := &Table{}
	if len(rows) == 0 {
		return t
	}

	t.Headers = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		t.Headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Row returns data row i keyed by header. Cells missing from a short row are "".
func (t *Table) Row(i int) (map[string]string, error) {
	if i < 0 || i >= len(t.Rows) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrRowOutOfRange, i, len(t.Rows))
	}

	row := t.Rows[i]
	out := make(map[string]string, len(t.Headers))
	for j, h := range t.Headers {
		if h == "" {
			continue
		}
		if j < len(row) {
			out[h] = strings.TrimSpace(row[j])
		} else {
			out[h] = ""
		}
	}
	return out, nil
}

// Records returns every data row keyed by header.
func (t *Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for i := range t.Rows {
		rec, _ := t.Row(i)
		out = append(out, rec)
	}
	return out
}
