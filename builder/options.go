// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil). Constructors
//     themselves never panic.
//   • Determinism is explicit: randomness comes only from WithSeed or WithWorker.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/simplegraph/rng"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithWorker provides the random stream for stochastic constructors. The
// worker is advanced by every draw, so sharing it between concurrent builds
// is a data race.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithWorker(w *rng.Worker) BuilderOption {
	if w == nil {
		panic("builder: WithWorker(nil)")
	}
	return func(c *builderConfig) { c.worker = w }
}

// WithSeed gives every build its own single-worker rng.Set seeded with
// seed, so reusing the option yields the same graph each time. Use this in
// tests and examples to lock outcomes.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		set, err := rng.New(1, rng.WithSeed(seed))
		if err != nil {
			panic(fmt.Sprintf("builder: WithSeed(%d): %v", seed, err))
		}
		c.worker, _ = set.Worker(0)
	}
}

// WithLogger routes per-constructor Debug records to l.
// Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}
