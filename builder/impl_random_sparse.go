// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p). Each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - A worker is required when 0 < p < 1 (else ErrNeedRandSource). With
//     p ∈ {0,1} and no worker the result is the edgeless graph or K_n.
//
// Determinism: pairs are tried for i asc, then j asc, one Bernoulli draw per
// pair, so a fixed seed fixes the edge set.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		w := cfg.worker
		if w == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := appendVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				if w == nil {
					keep = p == probMax
				} else {
					keep = w.Bernoulli(p)
				}
				if !keep {
					continue
				}
				if err := connect(methodRandomSparse, g, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
