package reconcile

import (
	"fmt"

	"github.com/agentstation/bimmap/pkg/datamodel"
)

// Result is the outcome of reconciling one key column.
type Result struct {
	// Kind says whether the labels are keyed by object or attribute name
	Kind datamodel.LabelKind

	// Sheet is the central document sheet the rows came from
	Sheet string

	// Labels holds one entry per distinct key, sorted by key
	Labels []datamodel.ReconciledLabel

	// Stats counts the rows kept and dropped
	Stats datamodel.LabelStats
}

// HasWarnings reports whether rows were dropped for a reason other than the
// skip prefix or duplication.
func (r *Result) HasWarnings() bool {
	return r.Stats.NullKeys > 0 || r.Stats.BlankSystems > 0
}

// Warnings describes the rows that were dropped unexpectedly.
func (r *Result) Warnings() []string {
	var out []string
	if r.Stats.NullKeys > 0 {
		out = append(out, fmt.Sprintf("%d %s rows without a key", r.Stats.NullKeys, r.Kind))
	}
	if r.Stats.BlankSystems > 0 {
		out = append(out, fmt.Sprintf("%d %s rows without a source system", r.Stats.BlankSystems, r.Kind))
	}
	return out
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d %s labels from %d rows (%d skipped, %d duplicates)",
		r.Stats.Keys, r.Kind, r.Stats.InputRows, r.Stats.Skipped, r.Stats.Duplicates)
}
