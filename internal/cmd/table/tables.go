// Package table converts pipeline results into rows for table output.
package table

import (
	"fmt"
	"strconv"

	"github.com/agentstation/bimmap/internal/cmd/emoji"
	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/report"
	"github.com/agentstation/bimmap/pkg/types"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Section is a titled table. Commands that print several tables at once
// render a slice of sections.
type Section struct {
	Title string
	Data  Data
}

// EntitiesToTableData converts resolved entities to table format.
// Wide output adds the description column.
func EntitiesToTableData(entities []datamodel.ResolvedEntity, wide bool) Data {
	headers := []string{"ID", "Name", "System"}
	if wide {
		headers = append(headers, "Description")
	}

	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		row := []string{strconv.Itoa(e.ID), FormatNull(e.Name), e.System}
		if wide {
			row = append(row, Truncate(FormatNull(e.Description), constants.MaxDescriptionLength))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight},
	}
}

// AttributesToTableData converts resolved attributes to table format.
// Wide output adds the primary key and description columns.
func AttributesToTableData(attributes []datamodel.ResolvedAttribute, wide bool) Data {
	headers := []string{"ID", "Name", "Entity ID", "System"}
	if wide {
		headers = append(headers, "Primary Key", "Description")
	}

	rows := make([][]string, 0, len(attributes))
	for _, a := range attributes {
		row := []string{strconv.Itoa(a.ID), FormatNull(a.Name), FormatNull(a.EntityID), a.System}
		if wide {
			row = append(row,
				FormatNull(a.PrimaryKey),
				Truncate(FormatNull(a.Description), constants.MaxDescriptionLength),
			)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignDefault, AlignRight},
	}
}

// RelationshipsToTableData converts resolved relationships to table format.
func RelationshipsToTableData(relationships []datamodel.ResolvedRelationship) Data {
	rows := make([][]string, 0, len(relationships))
	for _, r := range relationships {
		rows = append(rows, []string{FormatNull(r.Parent), FormatNull(r.Child), r.Type})
	}
	return Data{
		Headers: []string{"Parent", "Child", "Type"},
		Rows:    rows,
	}
}

// LabelsToTableData converts reconciled labels to table format.
func LabelsToTableData(labels []datamodel.ReconciledLabel) Data {
	rows := make([][]string, 0, len(labels))
	for _, l := range labels {
		rows = append(rows, []string{l.Key, l.System})
	}
	return Data{
		Headers: []string{"Key", "System"},
		Rows:    rows,
	}
}

// SheetsToTableData lists sheet names with their position in the workbook.
func SheetsToTableData(sheets []string) Data {
	rows := make([][]string, 0, len(sheets))
	for i, s := range sheets {
		rows = append(rows, []string{strconv.Itoa(i + 1), s})
	}
	return Data{
		Headers:         []string{"#", "Sheet"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight},
	}
}

// StatsToTableData summarises what each stage kept and dropped.
func StatsToTableData(stats datamodel.Stats) Data {
	label := func(name string, s datamodel.LabelStats) []string {
		return []string{
			name,
			strconv.Itoa(s.InputRows),
			strconv.Itoa(s.Keys),
			strconv.Itoa(s.Skipped),
			strconv.Itoa(s.NullKeys),
			strconv.Itoa(s.BlankSystems),
			strconv.Itoa(s.Duplicates),
		}
	}
	return Data{
		Headers: []string{"Labels", "Rows", "Keys", "Skipped", "Null Keys", "Blank Systems", "Duplicates"},
		Rows: [][]string{
			label("object", stats.ObjectLabels),
			label("attribute", stats.AttributeLabels),
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight},
	}
}

// ReportToSections converts a QA report into one titled table per check.
// Checks with nothing to show are listed with a success marker instead.
func ReportToSections(r *report.Report) []Section {
	var sections []Section

	mismatches := Data{Headers: []string{"ID", "Name"}}
	for _, m := range r.EntityMismatches {
		mismatches.Rows = append(mismatches.Rows, []string{strconv.Itoa(m.ID), m.Name})
	}
	sections = append(sections, Section{
		Title: issueTitle("Entities without a system", len(r.EntityMismatches)),
		Data:  mismatches,
	})

	attrs := Data{Headers: []string{"ID", "Name", "Entity ID"}}
	for _, m := range r.AttributeMismatches {
		attrs.Rows = append(attrs.Rows, []string{strconv.Itoa(m.ID), m.Name, m.EntityID})
	}
	sections = append(sections, Section{
		Title: issueTitle("Attributes without a system", len(r.AttributeMismatches)),
		Data:  attrs,
	})

	sections = append(sections,
		Section{
			Title: issueTitle("Relationship parents not in entities", len(r.MissingParents)),
			Data:  namesToTableData("Parent", r.MissingParents),
		},
		Section{
			Title: issueTitle("Relationship children not in entities", len(r.MissingChildren)),
			Data:  namesToTableData("Child", r.MissingChildren),
		},
		Section{
			Title: "Relationship types",
			Data:  CountsToTableData("Type", r.RelationshipTypes),
		},
		Section{
			Title: "Entity systems",
			Data:  CountsToTableData("System", r.EntitySystems),
		},
	)

	top := Data{
		Headers:         []string{"ID", "Name", "Attributes"},
		ColumnAlignment: []Align{AlignRight, AlignDefault, AlignRight},
	}
	for _, e := range r.AttributesPerEntity {
		top.Rows = append(top.Rows, []string{strconv.Itoa(e.ID), e.Name, strconv.Itoa(e.Count)})
	}
	sections = append(sections, Section{
		Title: fmt.Sprintf("Top %d entities by attribute count", r.TopN),
		Data:  top,
	})

	if r.UnexpectedFlags > 0 {
		sections = append(sections, Section{
			Title: fmt.Sprintf("%s %d foreign keys with an Identifying flag other than Yes or No",
				emoji.Warning, r.UnexpectedFlags),
		})
	}

	return sections
}

// CountsToTableData converts a distribution to table format.
func CountsToTableData(label string, counts []report.Count) Data {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Label, strconv.Itoa(c.Count)})
	}
	return Data{
		Headers:         []string{label, "Count"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignRight},
	}
}

func namesToTableData(header string, names []string) Data {
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			n = "(null)"
		}
		rows = append(rows, []string{n})
	}
	return Data{Headers: []string{header}, Rows: rows}
}

func issueTitle(title string, n int) string {
	if n == 0 {
		return fmt.Sprintf("%s %s: none", emoji.Success, title)
	}
	return fmt.Sprintf("%s %s: %d", emoji.Warning, title, n)
}

// FormatNull renders a nullable cell, using "-" for absent values.
func FormatNull[T comparable](n types.Null[T]) string {
	if !n.Valid {
		return "-"
	}
	return n.String()
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 3 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
