// Package importer reads bulk-import spreadsheets (.xlsx, .xls, .csv) into
// header-addressed rows.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxXLSRows bounds how many rows are read from a legacy .xls workbook.
const maxXLSRows = 100000

var (
	ErrEmptySheet       = errors.New("worksheet is empty")
	ErrNoSheet          = errors.New("no worksheet found")
	ErrUnsupportedFile  = errors.New("unsupported file type: expected .xlsx, .xls or .csv")
	ErrMissingHeaderCol = errors.New("missing required column")
)

// Row is one data row. Number is the 1-based line in the file, header included.
type Row struct {
	Number int
	cells  []string
	table  *Table
}

// Value returns the trimmed cell under column, or "" when absent.
func (r Row) Value(column string) string {
	idx, ok := r.table.columns[normalizeHeader(column)]
	if !ok {
		return ""
	}
	return cellValue(r.cells, idx)
}

// IsBlank reports whether every cell in the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r.cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Table is a parsed sheet: the header mapping plus the data rows after it.
type Table struct {
	columns map[string]int
	Rows    []Row
}

// Read parses the upload and maps columns by header name. When the header
// names none of the expected columns, columns are taken positionally in the
// order given. Every name in required must be resolvable.
func Read(filename string, r io.Reader, columns []string, required ...string) (*Table, error) {
	rows, err := ReadRows(filename, r)
	if err != nil {
		return nil, err
	}

	t := &Table{columns: make(map[string]int, len(columns))}
	header := rows[0]
	for i, h := range header {
		name := normalizeHeader(h)
		for _, c := range columns {
			if name == normalizeHeader(c) {
				t.columns[name] = i
			}
		}
	}
	if len(t.columns) == 0 {
		for i, c := range columns {
			if i < len(header) {
				t.columns[normalizeHeader(c)] = i
			}
		}
	}
	for _, c := range required {
		if _, ok := t.columns[normalizeHeader(c)]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeaderCol, c)
		}
	}

	for i, cells := range rows[1:] {
		row := Row{Number: i + 2, cells: cells, table: t}
		if row.IsBlank() {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadRows returns every row of the first worksheet, header included.
func ReadRows(filename string, r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = readCSV(data)
	case ".xls":
		rows, err = readXLS(data)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(data)
	default:
		return nil, ErrUnsupportedFile
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrNoSheet
	}
	return workbook.ReadAllCells(maxXLSRows), nil
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoSheet
	}
	return file.GetRows(sheetName)
}

func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
	return strings.ReplaceAll(h, " ", "_")
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
