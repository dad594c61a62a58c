// Package builder: internal helpers shared by the impl_*.go constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// appendVertices adds n isolated vertices to g and returns the id of the
// first one. The block is [base, base+n).
// Complexity: O(n).
func appendVertices(g *core.Graph, n int) int {
	base := g.VertexCount()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	return base
}

// connect adds u-v and tags failures with the constructor name.
func connect(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// tooFew reports a size parameter below its minimum.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
