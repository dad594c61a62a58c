// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n²) time, n(n-1)/2 edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}

		base := appendVertices(g, n)
		for i := 0; i < n; i++ {
			if err := g.ReserveNeighbors(base+i, n-1); err != nil {
				return fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, g, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
