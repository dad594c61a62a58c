// File: methods_adjacent.go
// Role: Neighborhood queries: Neighbors (owned copy), NeighborView (read-only
// alias), AdjacencyList (full deep copy).
// Determinism:
//   - Neighbor order is the insertion order of the underlying list.

package core

// Neighbors returns a copy of v's neighbor ids. The caller owns the result;
// modifying it does not affect the graph.
// Returns ErrVertexOutOfRange if v is invalid.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex("Neighbors", v); err != nil {
		return nil, err
	}

	return append([]int(nil), g.adj[v]...), nil
}

// NeighborView returns a non-owning, read-only view over v's neighbors.
// The view is valid until the next mutation of g.
// Returns ErrVertexOutOfRange if v is invalid.
// Complexity: O(1).
func (g *Graph) NeighborView(v int) (View, error) {
	if err := g.checkVertex("NeighborView", v); err != nil {
		return View{}, err
	}

	// Capacity is clipped: appends to the view's slice must reallocate.
	return View{ids: g.adj[v][:len(g.adj[v]):len(g.adj[v])]}, nil
}

// AdjacencyList returns a deep copy of the adjacency lists: element i holds
// the neighbors of vertex i.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, len(g.adj))
	for i, nbrs := range g.adj {
		out[i] = append([]int(nil), nbrs...)
	}

	return out
}
