// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • worker = nil        (pure/deterministic unless seeded)
//   • logger = discard    (constructors are silent unless WithLogger is set)

package builder

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/simplegraph/rng"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// worker drives stochastic choices; nil means "no randomness".
	worker *rng.Worker
	// logger receives Debug progress from BuildGraph.
	logger *slog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
