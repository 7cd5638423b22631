package datamodel

import (
	"github.com/agentstation/utc"

	"github.com/agentstation/bimmap/pkg/types"
)

// Bundle is the result of one pipeline run.
//
// The five tables are deterministic for identical inputs. Meta describes the run
// and differs between runs.
type Bundle struct {
	Entities        []ResolvedEntity       `json:"vp_entities" yaml:"vp_entities"`
	Attributes      []ResolvedAttribute    `json:"vp_attributes" yaml:"vp_attributes"`
	Relationships   []ResolvedRelationship `json:"vp_relationships" yaml:"vp_relationships"`
	ObjectLabels    []ReconciledLabel      `json:"central_doc_object_labels" yaml:"central_doc_object_labels"`
	AttributeLabels []ReconciledLabel      `json:"central_doc_attribute_labels" yaml:"central_doc_attribute_labels"`

	Meta Meta `json:"meta" yaml:"meta"`
}

// Meta describes a pipeline run.
type Meta struct {
	RunID          string   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	GeneratedAt    utc.Time `json:"generated_at" yaml:"generated_at"`
	VPFile         string   `json:"vp_file,omitempty" yaml:"vp_file,omitempty"`
	CentralDocFile string   `json:"central_doc_file,omitempty" yaml:"central_doc_file,omitempty"`
	CentralSheet   string   `json:"central_sheet,omitempty" yaml:"central_sheet,omitempty"`
	Stats          Stats    `json:"stats" yaml:"stats"`
}

// Stats counts rows at the pipeline boundaries.
type Stats struct {
	RawEntities      int        `json:"raw_entities" yaml:"raw_entities"`
	RawAttributes    int        `json:"raw_attributes" yaml:"raw_attributes"`
	RawRelationships int        `json:"raw_relationships" yaml:"raw_relationships"`
	ObjectLabels     LabelStats `json:"object_labels" yaml:"object_labels"`
	AttributeLabels  LabelStats `json:"attribute_labels" yaml:"attribute_labels"`

	// UnexpectedFlags counts foreign keys whose Identifying flag is neither Yes nor No
	UnexpectedFlags int `json:"unexpected_flags" yaml:"unexpected_flags"`
}

// LabelStats counts what the reconciler kept and dropped for one label kind.
type LabelStats struct {
	InputRows    int `json:"input_rows" yaml:"input_rows"`
	Skipped      int `json:"skipped" yaml:"skipped"`
	NullKeys     int `json:"null_keys" yaml:"null_keys"`
	BlankSystems int `json:"blank_systems" yaml:"blank_systems"`
	Duplicates   int `json:"duplicates" yaml:"duplicates"`
	Keys         int `json:"keys" yaml:"keys"`
}

// Tables returns the bundle with Meta cleared, for comparing the deterministic part
// of two runs.
func (b *Bundle) Tables() Bundle {
	return Bundle{
		Entities:        b.Entities,
		Attributes:      b.Attributes,
		Relationships:   b.Relationships,
		ObjectLabels:    b.ObjectLabels,
		AttributeLabels: b.AttributeLabels,
	}
}

// Table returns the named table as a slice value suitable for formatting.
func (b *Bundle) Table(name types.TableName) (any, bool) {
	switch name {
	case types.TableEntities:
		return b.Entities, true
	case types.TableAttributes:
		return b.Attributes, true
	case types.TableRelationships:
		return b.Relationships, true
	case types.TableObjectLabels:
		return b.ObjectLabels, true
	case types.TableAttributeLabels:
		return b.AttributeLabels, true
	default:
		return nil, false
	}
}

// EntityNames returns the set of present entity names.
func (b *Bundle) EntityNames() map[string]struct{} {
	names := make(map[string]struct{}, len(b.Entities))
	for _, e := range b.Entities {
		if name, ok := e.Name.Get(); ok {
			names[name] = struct{}{}
		}
	}
	return names
}
