// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). P_1 is a single isolated vertex.
//   - Appends vertices base..base+n-1.
//   - Emits edges (i-1)-i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/simplegraph/core"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}

		base := appendVertices(g, n)
		for i := 1; i < n; i++ {
			if err := connect(methodPath, g, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
