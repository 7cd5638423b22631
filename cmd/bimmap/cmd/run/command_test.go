package run_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/cmd/bimmap/cmd/run"
	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/logging"
	"github.com/agentstation/bimmap/pkg/workbook"
)

func fixtures(t *testing.T) (vp, central string) {
	t.Helper()
	return workbook.WriteTestWorkbook(t, "vp.xlsx", workbook.TestVPSheets()...),
		workbook.WriteTestWorkbook(t, "central.xlsx", workbook.TestCentralSheets()...)
}

func execute(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := run.NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func jsonApp() *application.Mock {
	return &application.Mock{OutputFormatFunc: func() string { return "json" }}
}

func TestRunEntitiesJSON(t *testing.T) {
	logging.DisableLoggingForTest(t)
	vp, central := fixtures(t)

	out, err := execute(t, jsonApp(), "--vp", vp, "--central", central, "--table", "entities")
	require.NoError(t, err)

	var entities []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entities))
	require.Len(t, entities, 3)
	assert.Equal(t, "Wall", entities[0]["Entity Name"])
	assert.Equal(t, "RevitX, SAP", entities[0]["Entity System"])
	assert.Equal(t, "entity missmatch", entities[2]["Entity System"])
	assert.Nil(t, entities[2]["Entity Description"])
}

func TestRunUsesSettings(t *testing.T) {
	logging.DisableLoggingForTest(t)
	vp, central := fixtures(t)

	app := jsonApp()
	app.SettingsValue = application.Settings{VPFile: vp, CentralDoc: central}

	out, err := execute(t, app, "-t", "relationships")
	require.NoError(t, err)

	var rels []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rels))
	require.Len(t, rels, 2)
	assert.Equal(t, "Wall", rels[0]["Entity Parent"])
	assert.Equal(t, "Standard Entity", rels[0]["Entity Child Type"])
	assert.Equal(t, "Reference Data Table", rels[1]["Entity Child Type"])
}

func TestRunLabelTables(t *testing.T) {
	logging.DisableLoggingForTest(t)
	vp, central := fixtures(t)

	out, err := execute(t, jsonApp(), "--vp", vp, "--central", central, "--table", "objects")
	require.NoError(t, err)
	var objects []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &objects))
	assert.Equal(t, []map[string]string{
		{"Key": "Door", "System": "RevitX"},
		{"Key": "Wall", "System": "RevitX, SAP"},
	}, objects)

	out, err = execute(t, jsonApp(), "--vp", vp, "--central", central, "--table", "labels")
	require.NoError(t, err)
	var attrs []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &attrs))
	assert.Equal(t, []map[string]string{
		{"Key": "DoorWidth", "System": "RevitX"},
		{"Key": "WallID", "System": "RevitX, SAP"},
	}, attrs)
}

func TestRunAllJSONIncludesMeta(t *testing.T) {
	logging.DisableLoggingForTest(t)
	vp, central := fixtures(t)

	out, err := execute(t, jsonApp(), "--vp", vp, "--central", central)
	require.NoError(t, err)

	var bundle map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))
	for _, key := range []string{"vp_entities", "vp_attributes", "vp_relationships",
		"central_doc_object_labels", "central_doc_attribute_labels", "meta"} {
		assert.Contains(t, bundle, key)
	}
	meta := bundle["meta"].(map[string]any)
	assert.NotEmpty(t, meta["run_id"])
	assert.Equal(t, "Linear", meta["central_sheet"])
}

func TestRunTableOutput(t *testing.T) {
	logging.DisableLoggingForTest(t)
	vp, central := fixtures(t)
	app := &application.Mock{OutputFormatFunc: func() string { return "wide" }}

	out, err := execute(t, app, "--vp", vp, "--central", central, "--table", "entities")
	require.NoError(t, err)
	assert.Contains(t, out, "Wall")
	assert.Contains(t, out, "RevitX, SAP")
	assert.Contains(t, out, "A door")
}

func TestRunErrors(t *testing.T) {
	logging.DisableLoggingForTest(t)
	vp, central := fixtures(t)

	t.Run("unknown table", func(t *testing.T) {
		_, err := execute(t, jsonApp(), "--vp", vp, "--central", central, "--table", "models")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown table "models"`)
	})

	t.Run("missing inputs", func(t *testing.T) {
		_, err := execute(t, jsonApp())
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("invalid format", func(t *testing.T) {
		app := &application.Mock{OutputFormatFunc: func() string { return "xml" }}
		_, err := execute(t, app, "--vp", vp, "--central", central)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("missing sheet", func(t *testing.T) {
		_, err := execute(t, jsonApp(), "--vp", vp, "--central", central, "--sheet", "Nope")
		require.Error(t, err)
		assert.True(t, errors.IsLoadError(err))
	})
}
