// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g.
//   - Append their vertices with AddVertex and connect only those vertices.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from opts and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned; no graph is returned
// on failure.
//
// Complexity: O(len(opts)) plus the sum of the constructors' costs.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		before := g.VertexCount()
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		cfg.logger.Debug("constructor applied",
			"index", i,
			"first_vertex", before,
			"vertices", g.VertexCount(),
			"edges", g.EdgeCount(),
		)
	}

	return g, nil
}

// Apply runs cons against an existing graph with the options resolved once.
// Vertices are appended after the ones g already holds. On error g keeps
// whatever the failing constructor had added so far.
func Apply(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
