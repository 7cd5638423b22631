package bimmap

import (
	"sync"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
)

// Hook function types for run events
type (
	// RunCompleteHook is called with the bundle of every successful run
	RunCompleteHook func(bundle *datamodel.Bundle)

	// EntityMismatchHook is called for each entity no object label matched
	EntityMismatchHook func(entity datamodel.ResolvedEntity)

	// AttributeMismatchHook is called for each attribute no attribute label matched
	AttributeMismatchHook func(attribute datamodel.ResolvedAttribute)
)

// hooks manages event callbacks for pipeline runs
type hooks struct {
	mu                  sync.RWMutex
	onRunComplete       []RunCompleteHook
	onEntityMismatch    []EntityMismatchHook
	onAttributeMismatch []AttributeMismatchHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRunComplete registers a callback for successful runs
func (h *hooks) OnRunComplete(fn RunCompleteHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRunComplete = append(h.onRunComplete, fn)
}

// OnEntityMismatch registers a callback for unlabelled entities
func (h *hooks) OnEntityMismatch(fn EntityMismatchHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEntityMismatch = append(h.onEntityMismatch, fn)
}

// OnAttributeMismatch registers a callback for unlabelled attributes
func (h *hooks) OnAttributeMismatch(fn AttributeMismatchHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAttributeMismatch = append(h.onAttributeMismatch, fn)
}

// trigger calls the mismatch hooks in table order, then the run hooks.
func (h *hooks) trigger(bundle *datamodel.Bundle) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.onEntityMismatch) > 0 {
		for _, e := range bundle.Entities {
			if e.System != constants.EntityMismatch {
				continue
			}
			for _, fn := range h.onEntityMismatch {
				fn(e)
			}
		}
	}

	if len(h.onAttributeMismatch) > 0 {
		for _, a := range bundle.Attributes {
			if a.System != constants.AttributeMismatch {
				continue
			}
			for _, fn := range h.onAttributeMismatch {
				fn(a)
			}
		}
	}

	for _, fn := range h.onRunComplete {
		fn(bundle)
	}
}
