// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The center is the first appended vertex (base); leaves are base+1..base+n-1.
//   - Emits spokes center-leaf in increasing leaf order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/simplegraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}

		center := appendVertices(g, n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := connect(methodStar, g, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
