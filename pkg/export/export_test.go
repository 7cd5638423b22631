package export_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/export"
	"github.com/agentstation/bimmap/pkg/types"
	"github.com/agentstation/bimmap/pkg/workbook"
)

func bundle() *datamodel.Bundle {
	return &datamodel.Bundle{
		Entities: []datamodel.ResolvedEntity{
			{ID: 1, Name: types.Some("Wall"), Description: types.Some("A wall"), System: "RevitX"},
			{ID: 2, Name: types.Some("Window"), System: constants.EntityMismatch},
		},
		Attributes: []datamodel.ResolvedAttribute{
			{ID: 10000, Name: types.Some("WallID"), EntityID: types.Some(1), PrimaryKey: types.Some("Yes"), System: "RevitX"},
			{ID: 10001, Name: types.Some("Pitch"), System: constants.AttributeMismatch},
		},
		Relationships: []datamodel.ResolvedRelationship{
			{Parent: types.Some("Wall"), Child: types.Some("Window"), Type: constants.StandardEntity},
		},
		ObjectLabels:    []datamodel.ReconciledLabel{{Key: "Wall", System: "RevitX"}},
		AttributeLabels: []datamodel.ReconciledLabel{{Key: "WallID", System: "RevitX"}},
	}
}

func readBack(t *testing.T, data []byte) *workbook.File {
	t.Helper()
	f, err := workbook.OpenReader("export.xlsx", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteWorkbook(&buf, bundle()))
	f := readBack(t, buf.Bytes())

	assert.Equal(t, []string{"entities", "attributes", "relationships", "object_labels", "attribute_labels"}, f.SheetList())

	t.Run("entities", func(t *testing.T) {
		tbl, err := workbook.Load(f, "entities", workbook.HeaderFirstRow)
		require.NoError(t, err)
		assert.Equal(t, export.Headers(types.TableEntities), tbl.Columns)
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, "1", tbl.Cell(0, "Entity ID"))
		assert.Equal(t, "A wall", tbl.Cell(0, "Entity Description"))
		assert.Equal(t, "", tbl.Cell(1, "Entity Description"))
		assert.Equal(t, constants.EntityMismatch, tbl.Cell(1, "Entity System"))
	})

	t.Run("attributes keep null owners empty", func(t *testing.T) {
		tbl, err := workbook.Load(f, "attributes", workbook.HeaderFirstRow)
		require.NoError(t, err)
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, types.Some(1.0), tbl.Number(0, "Part Of Parent ID"))
		assert.False(t, tbl.Number(1, "Part Of Parent ID").Valid)
		assert.Equal(t, "10001", tbl.Cell(1, "Attribute ID"))
	})

	t.Run("labels", func(t *testing.T) {
		tbl, err := workbook.Load(f, "attribute_labels", workbook.HeaderFirstRow)
		require.NoError(t, err)
		assert.Equal(t, "WallID", tbl.Cell(0, "BIM Attribute"))
	})
}

func TestSaveWorkbookEmptyBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, export.SaveWorkbook(path, &datamodel.Bundle{}))

	f, err := workbook.Open(path)
	require.NoError(t, err)
	defer f.Close()

	tbl, err := workbook.Load(f, "relationships", workbook.HeaderFirstRow)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, export.Headers(types.TableRelationships), tbl.Columns)
}

func TestHeadersCoverEveryTable(t *testing.T) {
	for _, table := range types.TableNames() {
		assert.NotEmpty(t, export.Headers(table), table.String())
	}
	assert.Nil(t, export.Headers("unknown"))
}
