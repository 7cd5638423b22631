package datamodel

import "github.com/agentstation/bimmap/pkg/types"

// RawEntity is one row of the VP Entity sheet.
type RawEntity struct {
	ID          types.Null[float64] `json:"ID" yaml:"ID"`
	Name        types.Null[string]  `json:"Name" yaml:"Name"`
	Description types.Null[string]  `json:"Description" yaml:"Description"`
}

// RawAttribute is one row of the VP Column sheet.
type RawAttribute struct {
	ID          types.Null[float64] `json:"ID" yaml:"ID"`
	Name        types.Null[string]  `json:"Name" yaml:"Name"`
	Description types.Null[string]  `json:"Description" yaml:"Description"`
	PrimaryKey  types.Null[string]  `json:"PrimaryKey" yaml:"PrimaryKey"`
	ParentName  types.Null[string]  `json:"Parent Name" yaml:"Parent Name"`
}

// RawRelationship is one row of the VP Foreign Key sheet.
// Table points at the child entity id and Reference at the parent entity id.
type RawRelationship struct {
	Table       types.Null[float64] `json:"Table" yaml:"Table"`
	Reference   types.Null[float64] `json:"Reference" yaml:"Reference"`
	Identifying types.Null[string]  `json:"Identifying" yaml:"Identifying"`
}

// SystemLabelRow is one key/system pair of the central document, for either
// the BIM Object or the BIM Attribute column.
type SystemLabelRow struct {
	Key    types.Null[string]
	System types.Null[string]
}

// RawTables groups the three VP sheets after loading.
type RawTables struct {
	Entities      []RawEntity
	Attributes    []RawAttribute
	Relationships []RawRelationship
}
