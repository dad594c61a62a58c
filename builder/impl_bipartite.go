// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left part is base..base+n1-1, right part follows immediately.
//   - Emits every left-right pair, left index outer, right index inner.
//
// Complexity: O(n1·n2) time and edges.

package builder

import "github.com/katalvlaran/simplegraph/core"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize {
			return tooFew(methodCompleteBipartite, "n1", n1, minPartitionSize)
		}
		if n2 < minPartitionSize {
			return tooFew(methodCompleteBipartite, "n2", n2, minPartitionSize)
		}

		left := appendVertices(g, n1+n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := connect(methodCompleteBipartite, g, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
