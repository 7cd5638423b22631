// Package report builds data-quality summaries over a pipeline bundle: rows that
// no system label matched, relationships that name unknown entities, and the
// distributions of relationship types, entity systems and attributes per entity.
package report

import (
	"cmp"
	"slices"

	"github.com/Gobusters/ectolinq"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
)

// Report is the QA summary of one bundle.
type Report struct {
	EntityMismatches    []EntityMismatch    `json:"entity_mismatches" yaml:"entity_mismatches"`
	AttributeMismatches []AttributeMismatch `json:"attribute_mismatches" yaml:"attribute_mismatches"`

	// MissingParents and MissingChildren are the distinct relationship endpoints
	// that name no entity, sorted. A null endpoint is listed as "".
	MissingParents  []string `json:"missing_parents" yaml:"missing_parents"`
	MissingChildren []string `json:"missing_children" yaml:"missing_children"`

	RelationshipTypes   []Count            `json:"relationship_types" yaml:"relationship_types"`
	EntitySystems       []Count            `json:"entity_systems" yaml:"entity_systems"`
	AttributesPerEntity []EntityAttributes `json:"attributes_per_entity" yaml:"attributes_per_entity"`

	// UnexpectedFlags counts foreign keys treated as reference data tables
	// because their Identifying flag was neither Yes nor No.
	UnexpectedFlags int `json:"unexpected_flags" yaml:"unexpected_flags"`

	TopN int `json:"top_n" yaml:"top_n"`
}

// EntityMismatch is an entity no object label matched.
type EntityMismatch struct {
	ID   int    `json:"Entity ID" yaml:"Entity ID"`
	Name string `json:"Entity Name" yaml:"Entity Name"`
}

// AttributeMismatch is an attribute no attribute label matched.
type AttributeMismatch struct {
	ID       int    `json:"Attribute ID" yaml:"Attribute ID"`
	Name     string `json:"Attribute Name" yaml:"Attribute Name"`
	EntityID string `json:"Part Of Parent ID" yaml:"Part Of Parent ID"`
}

// Count is one bucket of a distribution.
type Count struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// EntityAttributes is the number of attributes owned by an entity.
type EntityAttributes struct {
	ID    int    `json:"Entity ID" yaml:"Entity ID"`
	Name  string `json:"Entity Name" yaml:"Entity Name"`
	Count int    `json:"Attribute Count" yaml:"Attribute Count"`
}

// Build summarises the bundle. topN bounds AttributesPerEntity; zero or less
// uses the default of 15.
func Build(b *datamodel.Bundle, topN int) *Report {
	if topN <= 0 {
		topN = constants.DefaultTopEntities
	}

	r := &Report{
		EntityMismatches:    entityMismatches(b.Entities),
		AttributeMismatches: attributeMismatches(b.Attributes),
		RelationshipTypes: Distribution(ectolinq.Map(b.Relationships, func(rel datamodel.ResolvedRelationship) string {
			return rel.Type
		})),
		EntitySystems: Distribution(ectolinq.Map(b.Entities, func(e datamodel.ResolvedEntity) string {
			return e.System
		})),
		AttributesPerEntity: attributesPerEntity(b.Entities, b.Attributes, topN),
		UnexpectedFlags:     b.Meta.Stats.UnexpectedFlags,
		TopN:                topN,
	}
	r.MissingParents, r.MissingChildren = missingEndpoints(b)
	return r
}

// HasIssues reports whether any check found a problem.
func (r *Report) HasIssues() bool {
	return len(r.EntityMismatches) > 0 ||
		len(r.AttributeMismatches) > 0 ||
		len(r.MissingParents) > 0 ||
		len(r.MissingChildren) > 0 ||
		r.UnexpectedFlags > 0
}

func entityMismatches(entities []datamodel.ResolvedEntity) []EntityMismatch {
	missed := ectolinq.Filter(entities, func(e datamodel.ResolvedEntity) bool {
		return e.System == constants.EntityMismatch
	})
	return ectolinq.Map(missed, func(e datamodel.ResolvedEntity) EntityMismatch {
		return EntityMismatch{ID: e.ID, Name: e.Name.String()}
	})
}

func attributeMismatches(attributes []datamodel.ResolvedAttribute) []AttributeMismatch {
	missed := ectolinq.Filter(attributes, func(a datamodel.ResolvedAttribute) bool {
		return a.System == constants.AttributeMismatch
	})
	return ectolinq.Map(missed, func(a datamodel.ResolvedAttribute) AttributeMismatch {
		return AttributeMismatch{ID: a.ID, Name: a.Name.String(), EntityID: a.EntityID.String()}
	})
}

func missingEndpoints(b *datamodel.Bundle) (parents, children []string) {
	names := b.EntityNames()
	parentSet := make(map[string]struct{})
	childSet := make(map[string]struct{})
	for _, rel := range b.Relationships {
		if p, ok := rel.Parent.Get(); !ok {
			parentSet[""] = struct{}{}
		} else if _, known := names[p]; !known {
			parentSet[p] = struct{}{}
		}
		if c, ok := rel.Child.Get(); !ok {
			childSet[""] = struct{}{}
		} else if _, known := names[c]; !known {
			childSet[c] = struct{}{}
		}
	}
	return sortedKeys(parentSet), sortedKeys(childSet)
}

func attributesPerEntity(entities []datamodel.ResolvedEntity, attributes []datamodel.ResolvedAttribute, topN int) []EntityAttributes {
	counts := make(map[int]int)
	for _, a := range attributes {
		if id, ok := a.EntityID.Get(); ok {
			counts[id]++
		}
	}

	out := ectolinq.Map(entities, func(e datamodel.ResolvedEntity) EntityAttributes {
		return EntityAttributes{ID: e.ID, Name: e.Name.String(), Count: counts[e.ID]}
	})
	slices.SortStableFunc(out, func(a, b EntityAttributes) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Distribution counts the labels, most frequent first and ties by label.
func Distribution(labels []string) []Count {
	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}
	out := make([]Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, Count{Label: label, Count: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
