// Package core_test contains test helpers for simplegraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep invariant checks in one place (requireValid) so every mutating test
//     can assert the structure is still a simple graph.

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/stretchr/testify/require"
)

// Common fixture sizes used across core tests (avoid magic numbers in test bodies).
const (
	NTriangle = 3
	NSquare   = 4
	NReaders  = 32
)

// newGraphWithEdges returns a graph with n isolated vertices and then the
// given edges added through AddEdge. Fails the test on any error.
func newGraphWithEdges(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()

	g, err := core.NewGraphN(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%d,%d)", e[0], e[1])
	}

	return g
}

// completeGraph returns K_n built through the public API.
func completeGraph(t testing.TB, n int) *core.Graph {
	t.Helper()

	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}

	return newGraphWithEdges(t, n, edges...)
}

// requireValid asserts all structural invariants of g.
func requireValid(t testing.TB, g *core.Graph) {
	t.Helper()
	require.NoError(t, g.Validate())
}

// writeEdgeList stores content in a fresh temp file and returns its path.
func writeEdgeList(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
