// Package workbook loads sheets from spreadsheet workbooks into typed tables.
//
// A Reader yields raw rows of cell text by sheet name. Open backs it with an xlsx
// file read through excelize; Memory backs it with rows held in memory. Load turns
// a sheet into a Table with named columns, and the typed loaders in this package
// project tables down to the raw rows of the data model.
package workbook

import (
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/bimmap/pkg/errors"
)

// Reader reads rows of cell text from the sheets of a workbook.
type Reader interface {
	// Name identifies the workbook in errors and logs, usually its path.
	Name() string

	// SheetList returns the sheet names in workbook order.
	SheetList() []string

	// Rows returns every row of the sheet, or a LoadError if the sheet does not exist.
	Rows(sheet string) ([][]string, error)

	// Close releases the workbook.
	Close() error
}

// Opener opens a workbook by path.
type Opener func(path string) (Reader, error)

// DefaultOpener opens xlsx files from disk.
func DefaultOpener(path string) (Reader, error) {
	return Open(path)
}

// File is a Reader over an xlsx workbook.
type File struct {
	name string
	f    *excelize.File
}

// Open opens an xlsx workbook from disk.
func Open(path string) (*File, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewLoadError(path, "", err)
	}
	return &File{name: path, f: f}, nil
}

// OpenReader reads an xlsx workbook from r. The name is used in errors only.
func OpenReader(name string, r io.Reader) (*File, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewLoadError(name, "", err)
	}
	return &File{name: name, f: f}, nil
}

// Name returns the workbook path.
func (w *File) Name() string {
	return w.name
}

// SheetList returns the sheet names in workbook order.
func (w *File) SheetList() []string {
	return w.f.GetSheetList()
}

// Rows returns every row of the sheet.
func (w *File) Rows(sheet string) ([][]string, error) {
	if !slices.Contains(w.SheetList(), sheet) {
		return nil, errors.NewLoadError(w.name, sheet, errors.NewNotFoundError("sheet", sheet))
	}
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewLoadError(w.name, sheet, err)
	}
	return rows, nil
}

// Close releases the workbook.
func (w *File) Close() error {
	if err := w.f.Close(); err != nil {
		return errors.WrapIO("close", w.name, err)
	}
	return nil
}

// Memory is a Reader over rows held in memory.
type Memory struct {
	name   string
	order  []string
	sheets map[string][][]string
}

// NewMemory creates an empty in-memory workbook.
func NewMemory(name string) *Memory {
	return &Memory{name: name, sheets: make(map[string][][]string)}
}

// WithSheet adds or replaces a sheet and returns the workbook for chaining.
func (m *Memory) WithSheet(sheet string, rows [][]string) *Memory {
	if _, ok := m.sheets[sheet]; !ok {
		m.order = append(m.order, sheet)
	}
	m.sheets[sheet] = rows
	return m
}

// Name returns the workbook name.
func (m *Memory) Name() string {
	return m.name
}

// SheetList returns the sheet names in insertion order.
func (m *Memory) SheetList() []string {
	return slices.Clone(m.order)
}

// Rows returns a copy of the sheet rows.
func (m *Memory) Rows(sheet string) ([][]string, error) {
	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, errors.NewLoadError(m.name, sheet, errors.NewNotFoundError("sheet", sheet))
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

// SheetNames lists the sheets of the workbook at path.
func SheetNames(opener Opener, path string) ([]string, error) {
	if opener == nil {
		opener = DefaultOpener
	}
	r, err := opener(path)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // read-only workbook

	return r.SheetList(), nil
}

// DefaultSheet picks preferred if the workbook has it, otherwise the first sheet.
func DefaultSheet(names []string, preferred string) (string, error) {
	if slices.Contains(names, preferred) {
		return preferred, nil
	}
	if len(names) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	return names[0], nil
}
