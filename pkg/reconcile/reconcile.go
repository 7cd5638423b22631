// Package reconcile condenses central document rows into one label per key.
//
// Rows whose key starts with the skip prefix are dropped, exact duplicate
// (key, system) pairs collapse to one, and the remaining systems of each key are
// joined in first-seen order. Labels come out sorted by key.
package reconcile

import (
	"slices"
	"strings"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/workbook"
)

// Reconciler groups central document rows by key.
type Reconciler struct {
	skipPrefix string
	separator  string
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithSkipPrefix sets the key prefix that marks rows to ignore.
func WithSkipPrefix(prefix string) Option {
	return func(r *Reconciler) {
		r.skipPrefix = prefix
	}
}

// WithSeparator sets the string placed between the systems of a key.
func WithSeparator(sep string) Option {
	return func(r *Reconciler) {
		r.separator = sep
	}
}

// New creates a Reconciler using the "skip" prefix and ", " separator unless
// overridden.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		skipPrefix: constants.SkipPrefix,
		separator:  constants.SystemSeparator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type pair struct {
	key, system string
}

// Labels reconciles label rows. Null keys and rows without a system are dropped
// and counted in the returned stats.
func (r *Reconciler) Labels(rows []datamodel.SystemLabelRow) ([]datamodel.ReconciledLabel, datamodel.LabelStats) {
	stats := datamodel.LabelStats{InputRows: len(rows)}

	seen := make(map[pair]struct{}, len(rows))
	systems := make(map[string][]string)
	for _, row := range rows {
		key, ok := row.Key.Get()
		if !ok {
			stats.NullKeys++
			continue
		}
		if r.skipPrefix != "" && strings.HasPrefix(key, r.skipPrefix) {
			stats.Skipped++
			continue
		}
		system, ok := row.System.Get()
		if !ok || strings.TrimSpace(system) == "" {
			stats.BlankSystems++
			continue
		}

		p := pair{key: key, system: system}
		if _, dup := seen[p]; dup {
			stats.Duplicates++
			continue
		}
		seen[p] = struct{}{}
		systems[key] = append(systems[key], system)
	}

	keys := make([]string, 0, len(systems))
	for key := range systems {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	labels := make([]datamodel.ReconciledLabel, len(keys))
	for i, key := range keys {
		labels[i] = datamodel.ReconciledLabel{
			Key:    key,
			System: strings.Join(systems[key], r.separator),
		}
	}
	stats.Keys = len(labels)
	return labels, stats
}

// Table reconciles the keyColumn of a central document table.
func (r *Reconciler) Table(kind datamodel.LabelKind, t *workbook.Table, keyColumn string) (*Result, error) {
	rows, err := workbook.LabelRows(t, keyColumn)
	if err != nil {
		return nil, err
	}
	labels, stats := r.Labels(rows)
	return &Result{
		Kind:   kind,
		Sheet:  t.Sheet,
		Labels: labels,
		Stats:  stats,
	}, nil
}

// Labels reconciles label rows with the default options.
func Labels(rows []datamodel.SystemLabelRow) ([]datamodel.ReconciledLabel, datamodel.LabelStats) {
	return New().Labels(rows)
}

// ObjectLabels reconciles the BIM Object column of a central document table.
func ObjectLabels(t *workbook.Table) (*Result, error) {
	return New().Table(datamodel.ObjectLabel, t, constants.ColumnBIMObject)
}

// AttributeLabels reconciles the BIM Attribute column of a central document table.
func AttributeLabels(t *workbook.Table) (*Result, error) {
	return New().Table(datamodel.AttributeLabel, t, constants.ColumnBIMAttribute)
}
