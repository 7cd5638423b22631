package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/internal/cmd/output"
	"github.com/agentstation/bimmap/internal/cmd/table"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/report"
	"github.com/agentstation/bimmap/pkg/types"
)

func testBundle() *datamodel.Bundle {
	return &datamodel.Bundle{
		Entities: []datamodel.ResolvedEntity{
			{ID: 1, Name: types.Some("Road"), System: "GIS"},
			{ID: 2, Name: types.Some("Bridge"), System: "entity missmatch"},
		},
		ObjectLabels: []datamodel.ReconciledLabel{{Key: "Road", System: "GIS"}},
		Meta:         datamodel.Meta{RunID: "run-1"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    output.Format
		wantErr bool
	}{
		{"table", output.FormatTable, false},
		{"JSON", output.FormatJSON, false},
		{"yaml", output.FormatYAML, false},
		{"wide", output.FormatWide, false},
		{"", "", false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := output.ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, output.FormatYAML, output.DetectFormat("YAML"))
}

func TestWriteTable(t *testing.T) {
	b := testBundle()

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.WriteTable(&buf, output.FormatJSON, b, types.TableEntities))

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Road", rows[0]["Entity Name"])
		assert.Nil(t, rows[0]["Entity Description"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.WriteTable(&buf, output.FormatYAML, b, types.TableObjectLabels))
		assert.Contains(t, buf.String(), "Key: Road")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.WriteTable(&buf, output.FormatTable, b, types.TableEntities))
		assert.Contains(t, buf.String(), "Bridge")
		assert.Contains(t, buf.String(), "entity missmatch")
		assert.NotContains(t, buf.String(), "run-1")
	})
}

func TestWriteBundle(t *testing.T) {
	b := testBundle()

	t.Run("table sections", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.WriteBundle(&buf, output.FormatTable, b))
		for _, title := range []string{"entities", "attributes", "object_labels", "stats"} {
			assert.Contains(t, buf.String(), title)
		}
	})

	t.Run("json keeps meta", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.WriteBundle(&buf, output.FormatJSON, b))
		assert.Contains(t, buf.String(), "run-1")
	})
}

func TestWriteReport(t *testing.T) {
	r := &report.Report{
		EntityMismatches: []report.EntityMismatch{{ID: 2, Name: "Bridge"}},
		TopN:             15,
	}

	var buf bytes.Buffer
	require.NoError(t, output.WriteReport(&buf, output.FormatTable, r))
	assert.Contains(t, buf.String(), "Entities without a system: 1")
	assert.Contains(t, buf.String(), "Bridge")
}

func TestTableFormatterFallback(t *testing.T) {
	type sheet struct {
		SheetName string `json:"sheet_name"`
		Rows      int
	}

	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)
	require.NoError(t, f.Format(&buf, []sheet{{SheetName: "Linear", Rows: 3}}))
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "sheet name")
	assert.Contains(t, out, "linear")

	buf.Reset()
	require.NoError(t, f.Format(&buf, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a": 1}`, buf.String())
}

func TestTableFormatterSectionsSkipEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := output.NewFormatter(output.FormatTable).Format(&buf, []table.Section{
		{Title: "empty", Data: table.Data{Headers: []string{"A"}}},
		{Title: "full", Data: table.Data{Headers: []string{"A"}, Rows: [][]string{{"x"}}}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "empty\n\nfull\n"))
	assert.Contains(t, buf.String(), "x")
}
