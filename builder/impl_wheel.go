// SPDX-License-Identifier: MIT
// Package: simplegraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): a center plus a rim C_{n-1} with at
//     least three vertices.
//   - The center is base; the rim is base+1..base+n-1.
//   - Emits rim edges first, then spokes, both in increasing order.
//
// Complexity: O(n) time, 2(n-1) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/simplegraph/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}

		center := appendVertices(g, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			u := center + 1 + i
			v := center + 1 + (i+1)%rim
			if err := connect(methodWheel, g, u, v); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := connect(methodWheel, g, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}
