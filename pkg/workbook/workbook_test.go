package workbook_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/types"
	"github.com/agentstation/bimmap/pkg/workbook"
)

func TestOpen(t *testing.T) {
	path := workbook.WriteTestWorkbook(t, "vp.xlsx", workbook.TestVPSheets()...)

	t.Run("lists sheets in order", func(t *testing.T) {
		f, err := workbook.Open(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Entity", "Column", "Foreign Key"}, f.SheetList())
		assert.Equal(t, path, f.Name())
	})

	t.Run("missing sheet is a load error", func(t *testing.T) {
		f, err := workbook.Open(path)
		require.NoError(t, err)
		defer f.Close()

		_, err = f.Rows("Linear")
		require.Error(t, err)
		assert.True(t, errors.IsLoadError(err))
		assert.True(t, errors.IsNotFound(err))
		assert.Contains(t, err.Error(), `"Linear"`)
	})

	t.Run("missing file is a load error", func(t *testing.T) {
		_, err := workbook.Open(path + ".missing")
		require.Error(t, err)
		assert.True(t, errors.IsLoadError(err))
	})

	t.Run("corrupt file is a load error", func(t *testing.T) {
		bad := t.TempDir() + "/bad.xlsx"
		require.NoError(t, os.WriteFile(bad, []byte("not a zip"), constants.FilePermissions))
		_, err := workbook.Open(bad)
		assert.True(t, errors.IsLoadError(err))
	})

	t.Run("open from reader", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		f, err := workbook.OpenReader("upload.xlsx", bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()
		assert.Len(t, f.SheetList(), 3)
	})
}

func TestLoadHeaderModes(t *testing.T) {
	m := workbook.NewMemory("mem").
		WithSheet("Promoted", [][]string{
			{"Banner"},
			{"ID", "Name"},
			{"1", "Wall"},
			{"", ""},
			{"2"},
		}).
		WithSheet("Plain", [][]string{
			{"BIM Object", "Source System"},
			{"Wall", "RevitX"},
		})

	t.Run("promote discards banner", func(t *testing.T) {
		tbl, err := workbook.Load(m, "Promoted", workbook.HeaderPromote)
		require.NoError(t, err)
		assert.Equal(t, []string{"ID", "Name"}, tbl.Columns)
		require.Equal(t, 2, tbl.Len(), "blank row dropped")
		assert.Equal(t, types.Some("Wall"), tbl.String(0, "Name"))
		assert.Equal(t, types.None[string](), tbl.String(1, "Name"), "short row padded")
		assert.Equal(t, types.Some(2.0), tbl.Number(1, "ID"))
	})

	t.Run("first row header", func(t *testing.T) {
		tbl, err := workbook.Load(m, "Plain", workbook.HeaderFirstRow)
		require.NoError(t, err)
		assert.Equal(t, 1, tbl.Len())
		assert.Equal(t, "RevitX", tbl.Cell(0, "Source System"))
		assert.Equal(t, "", tbl.Cell(0, "Unknown"))
	})

	t.Run("empty sheet", func(t *testing.T) {
		m.WithSheet("Empty", nil)
		tbl, err := workbook.Load(m, "Empty", workbook.HeaderPromote)
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.Len())
		assert.True(t, errors.IsSchemaError(tbl.Require("ID")))
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want types.Null[float64]
	}{
		{"1", types.Some(1.0)},
		{" 42 ", types.Some(42.0)},
		{"3.5", types.Some(3.5)},
		{"-7", types.Some(-7.0)},
		{"", types.None[float64]()},
		{"abc", types.None[float64]()},
		{"1,000", types.None[float64]()},
		{"NaN", types.None[float64]()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, workbook.ParseNumber(tt.in))
		})
	}
}

func TestLoadVP(t *testing.T) {
	t.Run("from xlsx", func(t *testing.T) {
		path := workbook.WriteTestWorkbook(t, "vp.xlsx", workbook.TestVPSheets()...)
		f, err := workbook.Open(path)
		require.NoError(t, err)
		defer f.Close()

		raw, err := workbook.LoadVP(f)
		require.NoError(t, err)

		require.Len(t, raw.Entities, 3)
		assert.Equal(t, types.Some(1.0), raw.Entities[0].ID)
		assert.Equal(t, types.Some("Wall"), raw.Entities[0].Name)
		assert.False(t, raw.Entities[2].Description.Valid)

		require.Len(t, raw.Attributes, 3)
		assert.Equal(t, types.Some("Roof"), raw.Attributes[2].ParentName)
		assert.Equal(t, types.Some("Yes"), raw.Attributes[0].PrimaryKey)

		require.Len(t, raw.Relationships, 2)
		assert.Equal(t, types.Some(2.0), raw.Relationships[0].Table)
		assert.Equal(t, types.Some(1.0), raw.Relationships[0].Reference)
		assert.Equal(t, types.Some("No"), raw.Relationships[1].Identifying)
	})

	t.Run("invalid ids become null", func(t *testing.T) {
		m := workbook.NewMemory("vp").
			WithSheet(constants.EntitySheet, [][]string{
				{"Entity"},
				{"ID", "Name", "Description"},
				{"n/a", "Wall", "A wall"},
			})
		entities, err := workbook.LoadEntities(m)
		require.NoError(t, err)
		require.Len(t, entities, 1)
		assert.False(t, entities[0].ID.Valid)
	})

	t.Run("missing column is a schema error", func(t *testing.T) {
		m := workbook.NewMemory("vp").
			WithSheet(constants.EntitySheet, [][]string{
				{"Entity"},
				{"ID", "Description"},
				{"1", "A wall"},
			})
		_, err := workbook.LoadEntities(m)
		var schemaErr *errors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, constants.EntitySheet, schemaErr.Sheet)
		assert.Equal(t, constants.ColumnName, schemaErr.Column)
	})

	t.Run("missing sheet stops the load", func(t *testing.T) {
		sheets := workbook.TestVPSheets()
		m := workbook.MemoryFromSheets("vp", sheets[0], sheets[1])
		_, err := workbook.LoadVP(m)
		require.Error(t, err)
		assert.True(t, errors.IsLoadError(err))
		assert.Contains(t, err.Error(), constants.ForeignKeySheet)
	})
}

func TestLabelRows(t *testing.T) {
	m := workbook.MemoryFromSheets("central", workbook.TestCentralSheets()...)
	tbl, err := workbook.LoadCentral(m, constants.DefaultCentralSheet)
	require.NoError(t, err)

	t.Run("projects key and system", func(t *testing.T) {
		rows, err := workbook.LabelRows(tbl, constants.ColumnBIMAttribute)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, types.Some("WallID"), rows[0].Key)
		assert.Equal(t, types.Some("RevitX"), rows[0].System)
	})

	t.Run("missing key column is a reconcile error", func(t *testing.T) {
		notes, err := workbook.LoadCentral(m, "Notes")
		require.NoError(t, err)
		_, err = workbook.LabelRows(notes, constants.ColumnBIMObject)
		var recErr *errors.ReconcileError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, constants.ColumnBIMObject, recErr.Column)
		assert.Equal(t, "Notes", recErr.Sheet)
	})
}

func TestSheetSelection(t *testing.T) {
	path := workbook.WriteTestWorkbook(t, "central.xlsx", workbook.TestCentralSheets()...)

	names, err := workbook.SheetNames(nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linear", "Notes"}, names)

	sheet, err := workbook.DefaultSheet(names, constants.DefaultCentralSheet)
	require.NoError(t, err)
	assert.Equal(t, "Linear", sheet)

	sheet, err = workbook.DefaultSheet([]string{"Flat", "Other"}, constants.DefaultCentralSheet)
	require.NoError(t, err)
	assert.Equal(t, "Flat", sheet)

	_, err = workbook.DefaultSheet(nil, constants.DefaultCentralSheet)
	assert.Error(t, err)
}
