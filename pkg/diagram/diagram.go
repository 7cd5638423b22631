// Package diagram turns a pipeline bundle into an entity graph and renders it,
// with the QA distributions, as a standalone HTML page.
package diagram

import (
	"slices"

	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/datamodel"
)

// Palette colours systems in sorted system order, wrapping after ten.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Node is an entity in the graph.
type Node struct {
	Name        string `json:"name" yaml:"name"`
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	System      string `json:"system" yaml:"system"`
}

// Edge is a directed relationship from parent to child.
type Edge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Type   string `json:"type" yaml:"type"`
}

// Graph is the entity relationship graph of a bundle.
type Graph struct {
	Nodes   []Node   `json:"nodes" yaml:"nodes"`
	Edges   []Edge   `json:"edges" yaml:"edges"`
	Systems []string `json:"systems" yaml:"systems"`
}

// Build creates the graph. Entities are keyed by name: a repeated name keeps its
// first position and takes the later row's attributes. Entities without a name
// are left out, a blank system becomes "Unknown", and a relationship becomes an
// edge only when both ends are nodes.
func Build(b *datamodel.Bundle) *Graph {
	g := &Graph{}
	pos := make(map[string]int, len(b.Entities))
	for _, e := range b.Entities {
		name, ok := e.Name.Get()
		if !ok {
			continue
		}
		system := e.System
		if system == "" {
			system = constants.UnknownSystem
		}
		n := Node{Name: name, ID: e.ID, Description: e.Description.String(), System: system}
		if i, seen := pos[name]; seen {
			g.Nodes[i] = n
			continue
		}
		pos[name] = len(g.Nodes)
		g.Nodes = append(g.Nodes, n)
	}

	type key struct{ source, target string }
	edgePos := make(map[key]int)
	for _, rel := range b.Relationships {
		parent, pok := rel.Parent.Get()
		child, cok := rel.Child.Get()
		if !pok || !cok {
			continue
		}
		if _, ok := pos[parent]; !ok {
			continue
		}
		if _, ok := pos[child]; !ok {
			continue
		}
		e := Edge{Source: parent, Target: child, Type: rel.Type}
		k := key{parent, child}
		if i, seen := edgePos[k]; seen {
			g.Edges[i] = e
			continue
		}
		edgePos[k] = len(g.Edges)
		g.Edges = append(g.Edges, e)
	}

	for _, n := range g.Nodes {
		if !slices.Contains(g.Systems, n.System) {
			g.Systems = append(g.Systems, n.System)
		}
	}
	slices.Sort(g.Systems)
	return g
}

// Category returns the index of system in Systems, or -1.
func (g *Graph) Category(system string) int {
	return slices.Index(g.Systems, system)
}

// Color returns the palette colour of system.
func (g *Graph) Color(system string) string {
	i := g.Category(system)
	if i < 0 {
		return Palette[len(Palette)-1]
	}
	return Palette[i%len(Palette)]
}
