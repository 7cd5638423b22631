// Package export writes a pipeline bundle to an xlsx workbook with one sheet per
// table. Column headers match the bundle's JSON field names and null cells are
// left empty.
package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/types"
)

// Headers returns the column headers written for a table.
func Headers(table types.TableName) []string {
	switch table {
	case types.TableEntities:
		return []string{"Entity ID", "Entity Name", "Entity Description", "Entity System"}
	case types.TableAttributes:
		return []string{"Attribute ID", "Attribute Name", "Part Of Parent ID", "Attribute Description", "PrimaryKey", "Attribute System"}
	case types.TableRelationships:
		return []string{"Entity Parent", "Entity Child", "Entity Child Type"}
	case types.TableObjectLabels:
		return []string{"BIM Object", "System"}
	case types.TableAttributeLabels:
		return []string{"BIM Attribute", "System"}
	default:
		return nil
	}
}

// Rows returns the data rows of a table as cell values.
func Rows(b *datamodel.Bundle, table types.TableName) [][]any {
	var out [][]any
	switch table {
	case types.TableEntities:
		for _, e := range b.Entities {
			out = append(out, []any{e.ID, cell(e.Name), cell(e.Description), e.System})
		}
	case types.TableAttributes:
		for _, a := range b.Attributes {
			out = append(out, []any{a.ID, cell(a.Name), cell(a.EntityID), cell(a.Description), cell(a.PrimaryKey), a.System})
		}
	case types.TableRelationships:
		for _, r := range b.Relationships {
			out = append(out, []any{cell(r.Parent), cell(r.Child), r.Type})
		}
	case types.TableObjectLabels:
		for _, l := range b.ObjectLabels {
			out = append(out, []any{l.Key, l.System})
		}
	case types.TableAttributeLabels:
		for _, l := range b.AttributeLabels {
			out = append(out, []any{l.Key, l.System})
		}
	}
	return out
}

// NewWorkbook builds the workbook for a bundle. The caller closes it.
func NewWorkbook(b *datamodel.Bundle) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, table := range types.TableNames() {
		sheet := table.String()
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				f.Close() //nolint:errcheck // already failing
				return nil, errors.WrapResource("create", "sheet", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			f.Close() //nolint:errcheck // already failing
			return nil, errors.WrapResource("create", "sheet", sheet, err)
		}

		if err := writeRows(f, sheet, Headers(table), Rows(b, table)); err != nil {
			f.Close() //nolint:errcheck // already failing
			return nil, errors.WrapResource("write", "sheet", sheet, err)
		}
	}
	return f, nil
}

// WriteWorkbook writes the bundle as xlsx to w.
func WriteWorkbook(w io.Writer, b *datamodel.Bundle) error {
	f, err := NewWorkbook(b)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // in-memory workbook

	if _, err := f.WriteTo(w); err != nil {
		return errors.WrapIO("write", "workbook", err)
	}
	return nil
}

// SaveWorkbook writes the bundle as xlsx to path.
func SaveWorkbook(path string, b *datamodel.Bundle) error {
	f, err := NewWorkbook(b)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // in-memory workbook

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]any) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return err
		}
	}
	return nil
}

func cell[T comparable](n types.Null[T]) any {
	if v, ok := n.Get(); ok {
		return v
	}
	return nil
}
