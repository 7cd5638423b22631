// Package bimmap reconciles a VP data-model export with a central document that
// maps BIM objects and attributes to their source systems.
//
// A Client runs the pipeline over two xlsx workbooks and keeps the most recent
// result:
//
//	c, err := bimmap.New(bimmap.WithCentralSheet("Linear"))
//	if err != nil {
//		return err
//	}
//	bundle, err := c.Run(ctx, "vp.xlsx", "central.xlsx")
package bimmap

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/bimmap/pkg/datamodel"
	"github.com/agentstation/bimmap/pkg/logging"
	"github.com/agentstation/bimmap/pkg/pipeline"
	"github.com/agentstation/bimmap/pkg/workbook"
)

// Client runs the reconciliation pipeline.
type Client interface {
	// Run reconciles the VP export at vpFile with the central document at centralDoc
	Run(ctx context.Context, vpFile, centralDoc string) (*datamodel.Bundle, error)

	// Sheets lists the sheets of a workbook in order
	Sheets(path string) ([]string, error)

	// Last returns the bundle of the most recent successful run, or nil
	Last() *datamodel.Bundle

	// OnRunComplete registers a callback for successful runs
	OnRunComplete(RunCompleteHook)

	// OnEntityMismatch registers a callback for entities without a system label
	OnEntityMismatch(EntityMismatchHook)

	// OnAttributeMismatch registers a callback for attributes without a system label
	OnAttributeMismatch(AttributeMismatchHook)
}

// client is the internal implementation of the Client interface
type client struct {
	mu     sync.RWMutex
	config *config
	last   *datamodel.Bundle

	*hooks
}

// New creates a new Client with the given options
func New(opts ...Option) (Client, error) {
	c := &client{
		config: defaultConfig(),
		hooks:  newHooks(),
	}

	if err := c.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	return c, nil
}

// Run reconciles the two workbooks and triggers the registered hooks.
func (c *client) Run(ctx context.Context, vpFile, centralDoc string) (*datamodel.Bundle, error) {
	if c.config.logger != nil {
		ctx = logging.WithLogger(ctx, c.config.logger)
	}

	bundle, err := pipeline.Run(ctx, c.config.opener, pipeline.Sources{
		VPFile:         vpFile,
		CentralDocFile: centralDoc,
		CentralSheet:   c.config.centralSheet,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.last = bundle
	c.mu.Unlock()

	c.trigger(bundle)
	return bundle, nil
}

// Sheets lists the sheets of a workbook
func (c *client) Sheets(path string) ([]string, error) {
	return workbook.SheetNames(c.config.opener, path)
}

// Last returns the most recent bundle
func (c *client) Last() *datamodel.Bundle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}
