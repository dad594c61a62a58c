// File: methods_vertices.go
// Role: Vertex lifecycle & per-vertex queries: AddVertex/VertexCount/Degree/ReserveNeighbors.
//
// Vertices can only be appended; there is no single-vertex removal. Clear
// (methods_clone.go) resets the whole structure.

package core

import (
	"fmt"
	"slices"
)

// AddVertex appends one isolated vertex and returns its id, which equals the
// previous VertexCount().
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.adj)
}

// Degree returns the number of neighbors of v.
// Returns ErrVertexOutOfRange if v is invalid.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex("Degree", v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// ReserveNeighbors grows the capacity of v's neighbor list so that at least
// capacity neighbors fit without reallocation. It has no observable effect on
// the graph contents.
//
// Errors:
//   - ErrVertexOutOfRange: v is invalid.
//   - ErrInvalidArgument: capacity is negative.
//
// Complexity: O(deg(v)) when the list has to be reallocated, O(1) otherwise.
func (g *Graph) ReserveNeighbors(v, capacity int) error {
	if err := g.checkVertex("ReserveNeighbors", v); err != nil {
		return err
	}
	if capacity < 0 {
		return fmt.Errorf("ReserveNeighbors: capacity=%d: %w", capacity, ErrInvalidArgument)
	}
	if extra := capacity - len(g.adj[v]); extra > 0 {
		g.adj[v] = slices.Grow(g.adj[v], extra)
	}

	return nil
}
