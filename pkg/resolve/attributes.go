package resolve

import (
	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/types"
)

// Attributes joins attributes to attribute labels by name and links each to the
// resolved entity named by its Parent Name. Attributes without a label get the
// attribute mismatch sentinel. When several entities share the parent name the
// first one in resolved order owns the attribute.
func Attributes(
	raw []datamodel.RawAttribute,
	labels []datamodel.ReconciledLabel,
	entities []datamodel.ResolvedEntity,
) []datamodel.ResolvedAttribute {
	owners := make(map[string]int, len(entities))
	for _, e := range entities {
		name, ok := e.Name.Get()
		if !ok {
			continue
		}
		if _, taken := owners[name]; !taken {
			owners[name] = e.ID
		}
	}

	out := make([]datamodel.ResolvedAttribute, 0, len(raw))
	leftJoin(raw, labels,
		func(a datamodel.RawAttribute) types.Null[string] { return a.Name },
		labelKey,
		func(a datamodel.RawAttribute, label *datamodel.ReconciledLabel) {
			system := constants.AttributeMismatch
			if label != nil {
				system = label.System
			}

			var owner types.Null[int]
			if parent, ok := a.ParentName.Get(); ok {
				if id, found := owners[parent]; found {
					owner = types.Some(id)
				}
			}

			out = append(out, datamodel.ResolvedAttribute{
				ID:          constants.FirstAttributeID + len(out),
				Name:        a.Name,
				EntityID:    owner,
				Description: a.Description,
				PrimaryKey:  a.PrimaryKey,
				System:      system,
			})
		})
	return out
}
