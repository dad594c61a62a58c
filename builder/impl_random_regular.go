// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Algorithm: configuration model with rejection. Each vertex contributes d
// stubs, the stub list is shuffled and paired off consecutively. A pairing
// that produces a self-loop or a repeated pair is rejected and reshuffled,
// up to maxStubMatchingAttempts times. When 2d > n-1 the sparser
// (n-1-d)-regular complement is matched instead and then inverted, so
// d = n-1 yields K_n deterministically.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   - A worker is required (else ErrNeedRandSource).
//   - Exhausted attempts → ErrConstructFailed; no edges are added then.
//
// Complexity: O(n·d) per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/katalvlaran/simplegraph/rng"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor that samples a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return tooFew(methodRandomRegular, "n", n, minRRVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.worker == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		pairs, ok := regularPairs(cfg.worker, n, d)
		if !ok {
			return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
				methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		base := appendVertices(g, n)
		for _, p := range pairs {
			if err := connect(methodRandomRegular, g, base+p[0], base+p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// regularPairs samples the sparser side: for 2d > n-1 it matches stubs for
// the (n-1-d)-regular complement and inverts it, so dense requests up to
// K_n never hit the rejection loop with near-certain collisions.
func regularPairs(w *rng.Worker, n, d int) ([][2]int, bool) {
	if 2*d <= n-1 {
		return matchStubs(w, n, d)
	}

	sparse, ok := matchStubs(w, n, n-1-d)
	if !ok {
		return nil, false
	}
	absent := make([]bool, n*n)
	for _, p := range sparse {
		absent[p[0]*n+p[1]] = true
	}

	pairs := make([][2]int, 0, n*d/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !absent[u*n+v] {
				pairs = append(pairs, [2]int{u, v})
			}
		}
	}

	return pairs, true
}

// matchStubs returns n·d/2 vertex pairs forming a simple d-regular graph on
// 0..n-1, or false once the attempts are used up.
func matchStubs(w *rng.Worker, n, d int) ([][2]int, bool) {
	stubs := make([]int, 0, n*d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}
	if len(stubs) == 0 {
		return nil, true
	}

	pairs := make([][2]int, 0, len(stubs)/2)
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(w, stubs)
		pairs = pairs[:0]
		clear(seen)

		valid := true
		for i := 0; i < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
		}
		if valid {
			return pairs, true
		}
	}

	return nil, false
}
