package resolve

import (
	"cmp"
	"slices"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/types"
)

type candidate struct {
	parent, child types.Null[string]
	flag          types.Null[string]
}

// Relationships resolves foreign keys to entity names. Table names the child
// candidate and Reference the parent candidate. Rows are stably sorted by parent
// candidate with nulls last, then oriented by the Identifying flag: "Yes" keeps
// the direction as a standard entity, anything else swaps it and marks the child
// a reference data table. IDs with no entity resolve to null names.
func Relationships(raw []datamodel.RawRelationship, entities []datamodel.RawEntity) []datamodel.ResolvedRelationship {
	entityID := func(e datamodel.RawEntity) types.Null[float64] { return e.ID }

	type withChild struct {
		rel   datamodel.RawRelationship
		child types.Null[string]
	}
	var children []withChild
	leftJoin(raw, entities,
		func(r datamodel.RawRelationship) types.Null[float64] { return r.Table },
		entityID,
		func(r datamodel.RawRelationship, e *datamodel.RawEntity) {
			c := withChild{rel: r}
			if e != nil {
				c.child = e.Name
			}
			children = append(children, c)
		})

	var candidates []candidate
	leftJoin(children, entities,
		func(c withChild) types.Null[float64] { return c.rel.Reference },
		entityID,
		func(c withChild, e *datamodel.RawEntity) {
			cand := candidate{child: c.child, flag: c.rel.Identifying}
			if e != nil {
				cand.parent = e.Name
			}
			candidates = append(candidates, cand)
		})

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return compareNullLast(a.parent, b.parent)
	})

	out := make([]datamodel.ResolvedRelationship, len(candidates))
	for i, c := range candidates {
		if identifying(c.flag) {
			out[i] = datamodel.ResolvedRelationship{
				Parent: c.parent,
				Child:  c.child,
				Type:   constants.StandardEntity,
			}
			continue
		}
		out[i] = datamodel.ResolvedRelationship{
			Parent: c.child,
			Child:  c.parent,
			Type:   constants.ReferenceDataTable,
		}
	}
	return out
}

// UnexpectedFlags returns the foreign keys whose Identifying flag is neither
// "Yes" nor "No". They resolve as reference data tables.
func UnexpectedFlags(raw []datamodel.RawRelationship) []datamodel.RawRelationship {
	var out []datamodel.RawRelationship
	for _, r := range raw {
		flag, ok := r.Identifying.Get()
		if !ok || (flag != constants.IdentifyingYes && flag != constants.IdentifyingNo) {
			out = append(out, r)
		}
	}
	return out
}

func identifying(flag types.Null[string]) bool {
	v, ok := flag.Get()
	return ok && v == constants.IdentifyingYes
}

func compareNullLast(a, b types.Null[string]) int {
	switch {
	case a.Valid && b.Valid:
		return cmp.Compare(a.Value, b.Value)
	case a.Valid:
		return -1
	case b.Valid:
		return 1
	default:
		return 0
	}
}
