// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need loops or
//     parallel edges.
//   - Appends vertices base..base+n-1.
//   - Emits edges i-(i+1 mod n) for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/simplegraph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}

		base := appendVertices(g, n)
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, g, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
