// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount/Edges.
// Determinism:
//   - Edges() returns edges sorted by (U, V) ascending.
//   - Neighbor lists keep insertion order; RemoveEdge preserves the order of the rest.
// Concurrency:
//   - None internal. Mutations must be serialized by the caller.

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts the undirected edge {u, v}.
//
// Steps:
//  1. Validate both endpoints (ErrVertexOutOfRange).
//  2. Reject u == v (ErrSelfLoop).
//  3. If the edge already exists, return nil without changes.
//  4. Append v to adj[u], u to adj[v], increment the edge count.
//
// The graph is left unmodified on any error.
// Complexity: O(min(deg(u), deg(v))) for the duplicate check, O(1) amortized append.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkPair("AddEdge", u, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("AddEdge: vertex %d: %w", u, ErrSelfLoop)
	}
	g.insertEdge(u, v)

	return nil
}

// insertEdge links two distinct, valid vertices unless they are already
// adjacent. It reports whether a new edge was created.
// Shared by AddEdge and ingestion so both paths enforce the same rules.
func (g *Graph) insertEdge(u, v int) bool {
	if g.hasEdge(u, v) {
		return false
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++

	return true
}

// RemoveEdge deletes the undirected edge {u, v}.
// Removing an absent edge (including u == v) is a no-op.
// Returns ErrVertexOutOfRange if either endpoint is invalid.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkPair("RemoveEdge", u, v); err != nil {
		return err
	}

	i := slices.Index(g.adj[u], v)
	if i < 0 {
		return nil
	}
	j := slices.Index(g.adj[v], u)
	g.adj[u] = slices.Delete(g.adj[u], i, i+1)
	g.adj[v] = slices.Delete(g.adj[v], j, j+1)
	g.edges--

	return nil
}

// HasEdge reports whether {u, v} is an edge. Invalid ids yield false.
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return false
	}

	return g.hasEdge(u, v)
}

// hasEdge scans the shorter of the two neighbor lists; both ids must be valid.
func (g *Graph) hasEdge(u, v int) bool {
	if len(g.adj[u]) > len(g.adj[v]) {
		u, v = v, u
	}

	return slices.Contains(g.adj[u], v)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Edges returns every edge exactly once with U < V, sorted by (U, V).
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})

	return out
}
