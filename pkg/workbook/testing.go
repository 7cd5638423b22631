package workbook

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/errors"
)

// Sheet is a named block of rows used to build fixture workbooks.
type Sheet struct {
	Name string
	Rows [][]any
}

// WriteTestWorkbook writes sheets to an xlsx file in a temporary directory and
// returns its path. The first sheet replaces the default one.
func WriteTestWorkbook(t testing.TB, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // test fixture

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("renaming sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("adding sheet %s: %v", s.Name, err)
		}
		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := append([]any(nil), row...)
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("writing row %d of %s: %v", r+1, s.Name, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving %s: %v", path, err)
	}
	return path
}

// TestVPSheets returns a small VP export: three entities, three attributes
// (one pointing at an unknown entity) and two foreign keys.
func TestVPSheets() []Sheet {
	return []Sheet{
		{Name: constants.EntitySheet, Rows: [][]any{
			{"Entity"},
			{"ID", "Name", "Description", "Model ID", "Diagram ID", "Parent ID"},
			{1, "Wall", "A wall", 10, 20, ""},
			{2, "Door", "A door", 10, 20, 1},
			{3, "Window", "", 10, 20, 1},
		}},
		{Name: constants.ColumnSheet, Rows: [][]any{
			{"Column"},
			{"ID", "Name", "Description", "PrimaryKey", "Parent Name", "Model ID", "Parent ID"},
			{101, "WallID", "Wall key", "Yes", "Wall", 10, 1},
			{102, "DoorWidth", "Width of the door", "No", "Door", 10, 2},
			{103, "RoofPitch", "", "No", "Roof", 10, ""},
		}},
		{Name: constants.ForeignKeySheet, Rows: [][]any{
			{"Foreign Key"},
			{"ID", "Table", "Reference", "Identifying"},
			{1, 2, 1, "Yes"},
			{2, 3, 1, "No"},
		}},
	}
}

// TestCentralSheets returns a central document with a Linear sheet covering Wall,
// Door and their attributes, a duplicate row and a skipped row.
func TestCentralSheets() []Sheet {
	return []Sheet{
		{Name: constants.DefaultCentralSheet, Rows: [][]any{
			{constants.ColumnBIMObject, constants.ColumnBIMAttribute, constants.ColumnSourceSystem},
			{"Wall", "WallID", "RevitX"},
			{"Door", "DoorWidth", "RevitX"},
			{"Wall", "WallID", "SAP"},
			{"Wall", "WallID", "RevitX"},
			{"skip-temp", "skip-attr", "Y"},
		}},
		{Name: "Notes", Rows: [][]any{{"free text"}}},
	}
}

// MemoryFromSheets builds an in-memory workbook from fixture sheets, rendering
// every cell as text the way a spreadsheet reader would.
func MemoryFromSheets(name string, sheets ...Sheet) *Memory {
	m := NewMemory(name)
	for _, s := range sheets {
		rows := make([][]string, len(s.Rows))
		for i, row := range s.Rows {
			rows[i] = make([]string, len(row))
			for j, cell := range row {
				rows[i][j] = cellText(cell)
			}
		}
		m.WithSheet(s.Name, rows)
	}
	return m
}

// MemoryOpener returns an Opener serving in-memory workbooks by name.
func MemoryOpener(books ...*Memory) Opener {
	byName := make(map[string]*Memory, len(books))
	for _, b := range books {
		byName[b.Name()] = b
	}
	return func(path string) (Reader, error) {
		b, ok := byName[path]
		if !ok {
			return nil, errors.NewLoadError(path, "", errors.NewNotFoundError("workbook", path))
		}
		return b, nil
	}
}

func cellText(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	default:
		return ""
	}
}
