// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package core

// Clone returns a deep copy of g. The clone shares no storage with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return &Graph{adj: g.AdjacencyList(), edges: g.edges}
}

// Clear resets g to the empty graph: zero vertices, zero edges.
// Complexity: O(1); the old lists are released to the garbage collector.
func (g *Graph) Clear() {
	g.adj = nil
	g.edges = 0
}
