package sheets_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/cmd/bimmap/cmd/sheets"
	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/workbook"
)

func TestSheets(t *testing.T) {
	central := workbook.WriteTestWorkbook(t, "central.xlsx", workbook.TestCentralSheets()...)

	t.Run("json", func(t *testing.T) {
		cmd := sheets.NewCommand(&application.Mock{OutputFormatFunc: func() string { return "json" }})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{central})
		require.NoError(t, cmd.Execute())

		var names []string
		require.NoError(t, json.Unmarshal(out.Bytes(), &names))
		assert.Equal(t, []string{"Linear", "Notes"}, names)
	})

	t.Run("table", func(t *testing.T) {
		cmd := sheets.NewCommand(&application.Mock{})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{central})
		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "Linear")
		assert.Contains(t, out.String(), "Notes")
	})

	t.Run("missing file", func(t *testing.T) {
		cmd := sheets.NewCommand(&application.Mock{})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"does-not-exist.xlsx"})
		err := cmd.Execute()
		require.Error(t, err)
		assert.True(t, errors.IsLoadError(err))
	})

	t.Run("requires one file", func(t *testing.T) {
		cmd := sheets.NewCommand(&application.Mock{})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{})
		assert.Error(t, cmd.Execute())
	})
}
