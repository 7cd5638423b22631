package workbook

import (
	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/errors"
)

// LoadVP loads the Entity, Column and Foreign Key sheets of a VP export.
func LoadVP(r Reader) (*datamodel.RawTables, error) {
	entities, err := LoadEntities(r)
	if err != nil {
		return nil, err
	}
	attributes, err := LoadAttributes(r)
	if err != nil {
		return nil, err
	}
	relationships, err := LoadRelationships(r)
	if err != nil {
		return nil, err
	}
	return &datamodel.RawTables{
		Entities:      entities,
		Attributes:    attributes,
		Relationships: relationships,
	}, nil
}

// LoadEntities loads the Entity sheet, promoting its second row to headers.
func LoadEntities(r Reader) ([]datamodel.RawEntity, error) {
	t, err := Load(r, constants.EntitySheet, HeaderPromote)
	if err != nil {
		return nil, err
	}
	if err := t.Require(constants.ColumnID, constants.ColumnName, constants.ColumnDescription); err != nil {
		return nil, err
	}

	out := make([]datamodel.RawEntity, t.Len())
	for i := range out {
		out[i] = datamodel.RawEntity{
			ID:          t.Number(i, constants.ColumnID),
			Name:        t.String(i, constants.ColumnName),
			Description: t.String(i, constants.ColumnDescription),
		}
	}
	return out, nil
}

// LoadAttributes loads the Column sheet, promoting its second row to headers.
func LoadAttributes(r Reader) ([]datamodel.RawAttribute, error) {
	t, err := Load(r, constants.ColumnSheet, HeaderPromote)
	if err != nil {
		return nil, err
	}
	err = t.Require(
		constants.ColumnID,
		constants.ColumnName,
		constants.ColumnDescription,
		constants.ColumnPrimaryKey,
		constants.ColumnParentName,
	)
	if err != nil {
		return nil, err
	}

	out := make([]datamodel.RawAttribute, t.Len())
	for i := range out {
		out[i] = datamodel.RawAttribute{
			ID:          t.Number(i, constants.ColumnID),
			Name:        t.String(i, constants.ColumnName),
			Description: t.String(i, constants.ColumnDescription),
			PrimaryKey:  t.String(i, constants.ColumnPrimaryKey),
			ParentName:  t.String(i, constants.ColumnParentName),
		}
	}
	return out, nil
}

// LoadRelationships loads the Foreign Key sheet, promoting its second row to headers.
func LoadRelationships(r Reader) ([]datamodel.RawRelationship, error) {
	t, err := Load(r, constants.ForeignKeySheet, HeaderPromote)
	if err != nil {
		return nil, err
	}
	if err := t.Require(constants.ColumnTable, constants.ColumnReference, constants.ColumnIdentifying); err != nil {
		return nil, err
	}

	out := make([]datamodel.RawRelationship, t.Len())
	for i := range out {
		out[i] = datamodel.RawRelationship{
			Table:       t.Number(i, constants.ColumnTable),
			Reference:   t.Number(i, constants.ColumnReference),
			Identifying: t.String(i, constants.ColumnIdentifying),
		}
	}
	return out, nil
}

// LoadCentral loads a central document sheet. Its first row already holds the headers.
func LoadCentral(r Reader, sheet string) (*Table, error) {
	return Load(r, sheet, HeaderFirstRow)
}

// LabelRows projects a central document table onto keyColumn and Source System.
// A missing column is reported as a ReconcileError.
func LabelRows(t *Table, keyColumn string) ([]datamodel.SystemLabelRow, error) {
	for _, c := range []string{keyColumn, constants.ColumnSourceSystem} {
		if !t.Has(c) {
			return nil, errors.NewReconcileError(t.Sheet, c)
		}
	}

	out := make([]datamodel.SystemLabelRow, t.Len())
	for i := range out {
		out[i] = datamodel.SystemLabelRow{
			Key:    t.String(i, keyColumn),
			System: t.String(i, constants.ColumnSourceSystem),
		}
	}
	return out, nil
}
