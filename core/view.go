// File: view.go
// Role: Read-only, non-owning view over one vertex's neighbor list.
// Determinism:
//   - Iteration follows the stored insertion order.
// Lifetime:
//   - A View aliases graph storage. Any mutation of the graph invalidates it;
//     copy with AppendTo or Neighbors when the data must outlive the next write.

package core

import (
	"iter"
	"slices"
)

// View exposes a vertex's neighbors without allowing mutation of the graph.
// The zero View is empty.
type View struct {
	ids []int
}

// Len returns the number of neighbors in the view.
func (v View) Len() int { return len(v.ids) }

// At returns the i-th neighbor id. It panics if i is outside [0, Len()),
// like indexing a slice.
func (v View) At(i int) int { return v.ids[i] }

// Contains reports whether id is present in the view.
// Complexity: O(Len()).
func (v View) Contains(id int) bool { return slices.Contains(v.ids, id) }

// All yields every neighbor id in stored order.
func (v View) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, id := range v.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// AppendTo appends the neighbor ids to dst and returns the extended slice.
// The result never aliases graph storage.
func (v View) AppendTo(dst []int) []int {
	return append(dst, v.ids...)
}
