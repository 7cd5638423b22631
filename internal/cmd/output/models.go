package output

import (
	"io"

	"github.com/agentstation/bimmap/internal/cmd/table"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/report"
	"github.com/agentstation/bimmap/pkg/types"
)

// Write formats data for w. Table formats print tableData; other formats
// print raw.
func Write(w io.Writer, format Format, tableData, raw any) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, tableData)
	}
	return NewFormatter(format).Format(w, raw)
}

// WriteTable writes one bundle table.
func WriteTable(w io.Writer, format Format, b *datamodel.Bundle, name types.TableName) error {
	raw, _ := b.Table(name)
	wide := format == FormatWide

	var data table.Data
	switch name {
	case types.TableEntities:
		data = table.EntitiesToTableData(b.Entities, wide)
	case types.TableAttributes:
		data = table.AttributesToTableData(b.Attributes, wide)
	case types.TableRelationships:
		data = table.RelationshipsToTableData(b.Relationships)
	case types.TableObjectLabels:
		data = table.LabelsToTableData(b.ObjectLabels)
	case types.TableAttributeLabels:
		data = table.LabelsToTableData(b.AttributeLabels)
	}
	return Write(w, format, data, raw)
}

// WriteBundle writes every table of the bundle. Table formats print one
// titled section per table followed by the run statistics; other formats
// print the whole bundle including its metadata.
func WriteBundle(w io.Writer, format Format, b *datamodel.Bundle) error {
	wide := format == FormatWide
	sections := []table.Section{
		{Title: string(types.TableEntities), Data: table.EntitiesToTableData(b.Entities, wide)},
		{Title: string(types.TableAttributes), Data: table.AttributesToTableData(b.Attributes, wide)},
		{Title: string(types.TableRelationships), Data: table.RelationshipsToTableData(b.Relationships)},
		{Title: string(types.TableObjectLabels), Data: table.LabelsToTableData(b.ObjectLabels)},
		{Title: string(types.TableAttributeLabels), Data: table.LabelsToTableData(b.AttributeLabels)},
		{Title: "stats", Data: table.StatsToTableData(b.Meta.Stats)},
	}
	return Write(w, format, sections, b)
}

// WriteReport writes a QA report.
func WriteReport(w io.Writer, format Format, r *report.Report) error {
	return Write(w, format, table.ReportToSections(r), r)
}
