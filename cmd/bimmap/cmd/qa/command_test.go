package qa_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/cmd/bimmap/cmd/qa"
	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/pkg/logging"
	"github.com/agentstation/bimmap/pkg/report"
	"github.com/agentstation/bimmap/pkg/workbook"
)

func newApp(t *testing.T, format string) *application.Mock {
	t.Helper()
	return &application.Mock{
		OutputFormatFunc: func() string { return format },
		SettingsValue: application.Settings{
			VPFile:     workbook.WriteTestWorkbook(t, "vp.xlsx", workbook.TestVPSheets()...),
			CentralDoc: workbook.WriteTestWorkbook(t, "central.xlsx", workbook.TestCentralSheets()...),
			TopN:       15,
		},
	}
}

func execute(app application.Application, args ...string) (stdout, stderr string, err error) {
	cmd := qa.NewCommand(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestQAReport(t *testing.T) {
	logging.DisableLoggingForTest(t)

	stdout, stderr, err := execute(newApp(t, "json"))
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))

	assert.Equal(t, []report.EntityMismatch{{ID: 3, Name: "Window"}}, rep.EntityMismatches)
	assert.Equal(t, []report.AttributeMismatch{{ID: 10002, Name: "RoofPitch", EntityID: ""}}, rep.AttributeMismatches)
	assert.Empty(t, rep.MissingParents)
	assert.Empty(t, rep.MissingChildren)
	assert.Equal(t, 15, rep.TopN)
	assert.Contains(t, stderr, "1 entity and 1 attribute mismatches")
}

func TestQATopFlag(t *testing.T) {
	logging.DisableLoggingForTest(t)

	stdout, _, err := execute(newApp(t, "json"), "--top", "1")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 1, rep.TopN)
	assert.Len(t, rep.AttributesPerEntity, 1)
}

func TestQAStrict(t *testing.T) {
	logging.DisableLoggingForTest(t)

	_, _, err := execute(newApp(t, "json"), "--strict")
	assert.ErrorIs(t, err, qa.ErrIssuesFound)
}

func TestQATableOutput(t *testing.T) {
	logging.DisableLoggingForTest(t)

	stdout, _, err := execute(newApp(t, "table"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Entities without a system: 1")
	assert.Contains(t, stdout, "Window")
	assert.Contains(t, stdout, "Relationship parents not in entities: none")
	assert.Contains(t, stdout, "Top 15 entities by attribute count")
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestQAWarningWriteError(t *testing.T) {
	logging.DisableLoggingForTest(t)

	cmd := qa.NewCommand(newApp(t, "json"))
	cmd.SetOut(io.Discard)
	cmd.SetErr(closedWriter{})
	err := cmd.Execute()
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
