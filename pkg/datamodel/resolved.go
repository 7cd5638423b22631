package datamodel

import "github.com/agentstation/bimmap/pkg/types"

// LabelKind distinguishes object labels from attribute labels.
type LabelKind string

const (
	// ObjectLabel keys are BIM object names matched against entity names.
	ObjectLabel LabelKind = "object"

	// AttributeLabel keys are BIM attribute names matched against attribute names.
	AttributeLabel LabelKind = "attribute"
)

// ReconciledLabel is one distinct central document key with the comma-joined
// systems that own it, in first-seen order.
type ReconciledLabel struct {
	Key    string `json:"Key" yaml:"Key"`
	System string `json:"System" yaml:"System"`
}

// ResolvedEntity is an entity annotated with its owning systems.
type ResolvedEntity struct {
	ID          int                `json:"Entity ID" yaml:"Entity ID"`
	Name        types.Null[string] `json:"Entity Name" yaml:"Entity Name"`
	Description types.Null[string] `json:"Entity Description" yaml:"Entity Description"`
	System      string             `json:"Entity System" yaml:"Entity System"`
}

// ResolvedAttribute is an attribute annotated with its owning systems and the
// id of the entity it belongs to.
type ResolvedAttribute struct {
	ID          int                `json:"Attribute ID" yaml:"Attribute ID"`
	Name        types.Null[string] `json:"Attribute Name" yaml:"Attribute Name"`
	EntityID    types.Null[int]    `json:"Part Of Parent ID" yaml:"Part Of Parent ID"`
	Description types.Null[string] `json:"Attribute Description" yaml:"Attribute Description"`
	PrimaryKey  types.Null[string] `json:"PrimaryKey" yaml:"PrimaryKey"`
	System      string             `json:"Attribute System" yaml:"Attribute System"`
}

// ResolvedRelationship is a directed parent/child edge between entity names.
type ResolvedRelationship struct {
	Parent types.Null[string] `json:"Entity Parent" yaml:"Entity Parent"`
	Child  types.Null[string] `json:"Entity Child" yaml:"Entity Child"`
	Type   string             `json:"Entity Child Type" yaml:"Entity Child Type"`
}
