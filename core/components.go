// File: components.go
// Role: Connectivity analysis: ConnectedComponent, ConnectedComponents,
//       ComponentCount, IsConnected.
// Determinism:
//   - Each component is sorted ascending.
//   - Components are ordered by their smallest vertex id (seeds are tried in
//     ascending order).
// Algorithm:
//   - Breadth-first search with the queue kept in a slice and a visited
//     []bool sized to VertexCount(). No recursion.

package core

import "slices"

// ConnectedComponent returns the sorted ids of every vertex reachable from
// start, start included.
// Returns ErrVertexOutOfRange if start is invalid.
// Complexity: O(C + E_C + C log C) where C/E_C are the component's vertices/edges.
func (g *Graph) ConnectedComponent(start int) ([]int, error) {
	if err := g.checkVertex("ConnectedComponent", start); err != nil {
		return nil, err
	}
	comp := g.collect(start, make([]bool, len(g.adj)), nil)
	slices.Sort(comp)

	return comp, nil
}

// ConnectedComponents partitions [0, VertexCount()) into connected components.
// Every vertex appears in exactly one component. The empty graph yields nil.
// Complexity: O(V + E + V log V).
func (g *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.adj))
	var comps [][]int

	for v := range g.adj {
		if seen[v] {
			continue
		}
		comp := g.collect(v, seen, nil)
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}

// ComponentCount returns the number of connected components without
// materializing them. The empty graph has zero components.
// Complexity: O(V + E).
func (g *Graph) ComponentCount() int {
	seen := make([]bool, len(g.adj))
	queue := make([]int, 0, len(g.adj))
	count := 0

	for v := range g.adj {
		if seen[v] {
			continue
		}
		// Reuse one queue buffer across components.
		queue = g.collect(v, seen, queue[:0])
		count++
	}

	return count
}

// IsConnected reports whether every vertex is reachable from vertex 0.
// Graphs with zero or one vertex are connected.
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	n := len(g.adj)
	if n <= 1 {
		return true
	}

	return len(g.collect(0, make([]bool, n), make([]int, 0, n))) == n
}

// collect runs a BFS from start, marking seen and appending every discovered
// vertex to buf in discovery order. The returned slice doubles as the queue:
// vertices before the read cursor are processed, the rest are pending.
// start must be valid and unseen.
func (g *Graph) collect(start int, seen []bool, buf []int) []int {
	queue := append(buf, start)
	seen[start] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, w := range g.adj[u] {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	return queue
}
