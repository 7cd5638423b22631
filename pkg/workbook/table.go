package workbook

import (
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/types"
)

// HeaderMode selects which row of a sheet names the columns.
type HeaderMode int

const (
	// HeaderFirstRow uses the first non-blank row as column names.
	HeaderFirstRow HeaderMode = iota

	// HeaderPromote discards the first non-blank row (the export banner) and
	// promotes the next one to column names.
	HeaderPromote
)

// Table is a sheet with named columns. Rows are padded to the column count and
// fully blank rows are dropped.
type Table struct {
	Sheet   string
	Columns []string

	rows  [][]string
	index map[string]int
}

// NewTable builds a table from column names and rows of cell text.
// When a column name repeats, the first occurrence wins.
func NewTable(sheet string, columns []string, rows [][]string) *Table {
	t := &Table{
		Sheet:   sheet,
		Columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		padded := make([]string, len(columns))
		copy(padded, row)
		t.rows = append(t.rows, padded)
	}
	return t
}

// Load reads a sheet into a table.
func Load(r Reader, sheet string, mode HeaderMode) (*Table, error) {
	raw, err := r.Rows(sheet)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(raw))
	for _, row := range raw {
		if !isBlank(row) {
			rows = append(rows, row)
		}
	}

	if mode == HeaderPromote && len(rows) > 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return NewTable(sheet, nil, nil), nil
	}
	return NewTable(sheet, rows[0], rows[1:]), nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Has reports whether the table has the named column.
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Require returns a SchemaError naming the first missing column.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.Has(c) {
			return errors.NewSchemaError(t.Sheet, c)
		}
	}
	return nil
}

// Cell returns the raw text of a cell, or "" for an unknown column.
func (t *Table) Cell(row int, column string) string {
	i, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

// String returns the cell text, absent when the cell is empty.
func (t *Table) String(row int, column string) types.Null[string] {
	s := t.Cell(row, column)
	if s == "" {
		return types.None[string]()
	}
	return types.Some(s)
}

// Number coerces the cell to a number. Text that does not parse is absent,
// never an error.
func (t *Table) Number(row int, column string) types.Null[float64] {
	return ParseNumber(t.Cell(row, column))
}

// ParseNumber parses s as a float, returning an absent value for blank,
// malformed or NaN input.
func ParseNumber(s string) types.Null[float64] {
	s = strings.TrimSpace(s)
	if s == "" {
		return types.None[float64]()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return types.None[float64]()
	}
	return types.Some(f)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
