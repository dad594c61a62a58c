package core

import "fmt"

// Validate checks every structural invariant of g and returns an error
// wrapping ErrCorrupt for the first violation found, or nil.
//
// Checked: ids in range, no self-loops, no duplicate neighbors, symmetry,
// and EdgeCount() == Σdeg/2.
//
// Complexity: O(V + E) time, O(E) extra space for the symmetry check.
func (g *Graph) Validate() error {
	n := len(g.adj)
	type pair struct{ u, v int }
	seen := make(map[pair]struct{}, 2*g.edges)
	total := 0

	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return fmt.Errorf("Validate: vertex %d lists %d outside [0,%d): %w", u, v, n, ErrCorrupt)
			}
			if v == u {
				return fmt.Errorf("Validate: vertex %d lists itself: %w", u, ErrCorrupt)
			}
			p := pair{u, v}
			if _, dup := seen[p]; dup {
				return fmt.Errorf("Validate: vertex %d lists %d twice: %w", u, v, ErrCorrupt)
			}
			seen[p] = struct{}{}
		}
		total += len(nbrs)
	}

	for p := range seen {
		if _, ok := seen[pair{p.v, p.u}]; !ok {
			return fmt.Errorf("Validate: edge %d->%d has no mirror: %w", p.u, p.v, ErrCorrupt)
		}
	}
	if total != 2*g.edges {
		return fmt.Errorf("Validate: edge count %d, degree sum %d: %w", g.edges, total, ErrCorrupt)
	}

	return nil
}
