package resolve

import (
	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/types"
)

// Entities joins entities to object labels by name. Entities without a label get
// the entity mismatch sentinel.
func Entities(raw []datamodel.RawEntity, labels []datamodel.ReconciledLabel) []datamodel.ResolvedEntity {
	out := make([]datamodel.ResolvedEntity, 0, len(raw))
	leftJoin(raw, labels,
		func(e datamodel.RawEntity) types.Null[string] { return e.Name },
		labelKey,
		func(e datamodel.RawEntity, label *datamodel.ReconciledLabel) {
			system := constants.EntityMismatch
			if label != nil {
				system = label.System
			}
			out = append(out, datamodel.ResolvedEntity{
				ID:          constants.FirstEntityID + len(out),
				Name:        e.Name,
				Description: e.Description,
				System:      system,
			})
		})
	return out
}
