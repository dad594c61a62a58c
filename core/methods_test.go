// File: core/methods_test.go
package core_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddEdge_Symmetric verifies that a new edge is visible from both ends
// and bumps EdgeCount by exactly one.
func TestAddEdge_Symmetric(t *testing.T) {
	g := newGraphWithEdges(t, NSquare)

	for u := 0; u < NSquare; u++ {
		for v := 0; v < NSquare; v++ {
			if u == v {
				continue
			}
			before := g.EdgeCount()
			existed := g.HasEdge(u, v)

			require.NoError(t, g.AddEdge(u, v))
			assert.True(t, g.HasEdge(u, v))
			assert.True(t, g.HasEdge(v, u))
			if existed {
				assert.Equal(t, before, g.EdgeCount(), "re-adding %d-%d must not count", u, v)
			} else {
				assert.Equal(t, before+1, g.EdgeCount(), "adding %d-%d", u, v)
			}
			requireValid(t, g)
		}
	}
	assert.Equal(t, 6, g.EdgeCount())
}

// TestAddEdge_Idempotent checks that a repeated AddEdge leaves the state unchanged.
func TestAddEdge_Idempotent(t *testing.T) {
	once := newGraphWithEdges(t, NTriangle, [2]int{0, 1})
	twice := newGraphWithEdges(t, NTriangle, [2]int{0, 1}, [2]int{0, 1}, [2]int{1, 0})

	assert.Equal(t, once.EdgeCount(), twice.EdgeCount())
	assert.Equal(t, once.AdjacencyList(), twice.AdjacencyList())
}

// TestAddEdge_Errors covers out-of-range endpoints and self-loops; the graph
// must be untouched after each failure.
func TestAddEdge_Errors(t *testing.T) {
	tests := []struct {
		name    string
		u, v    int
		wantErr error
	}{
		{name: "u too large", u: 3, v: 0, wantErr: core.ErrVertexOutOfRange},
		{name: "v too large", u: 0, v: 7, wantErr: core.ErrVertexOutOfRange},
		{name: "negative", u: -1, v: 1, wantErr: core.ErrVertexOutOfRange},
		{name: "self-loop", u: 2, v: 2, wantErr: core.ErrSelfLoop},
		{name: "self-loop out of range", u: 9, v: 9, wantErr: core.ErrVertexOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGraphWithEdges(t, NTriangle, [2]int{0, 1})
			before := g.AdjacencyList()

			err := g.AddEdge(tc.u, tc.v)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 1, g.EdgeCount())
			assert.Equal(t, before, g.AdjacencyList())
		})
	}
}

// TestAddEdge_SelfLoopIsInvalidArgument lets callers branch on the general
// argument class as well as the specific sentinel.
func TestAddEdge_SelfLoopIsInvalidArgument(t *testing.T) {
	g := newGraphWithEdges(t, NTriangle)

	err := g.AddEdge(1, 1)
	require.ErrorIs(t, err, core.ErrSelfLoop)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.NotErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.Equal(t, 0, g.EdgeCount())
}

// TestRemoveEdge undoes AddEdge exactly and treats absent edges as no-ops.
func TestRemoveEdge(t *testing.T) {
	g := newGraphWithEdges(t, NSquare, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	snapshot := g.Clone()

	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.RemoveEdge(3, 0))
	assert.False(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(3, 0))
	assert.Equal(t, snapshot.EdgeCount(), g.EdgeCount())
	assert.Equal(t, snapshot.Edges(), g.Edges())
	requireValid(t, g)

	// Absent edge and u == v: no-op, no error.
	require.NoError(t, g.RemoveEdge(0, 2))
	require.NoError(t, g.RemoveEdge(1, 1))
	assert.Equal(t, 3, g.EdgeCount())

	// Invalid endpoint: error, nothing removed.
	require.ErrorIs(t, g.RemoveEdge(1, 4), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.RemoveEdge(-2, 1), core.ErrVertexOutOfRange)
	assert.Equal(t, 3, g.EdgeCount())
}

// TestRemoveEdge_KeepsNeighborOrder checks that removal preserves the
// relative order of the remaining neighbors.
func TestRemoveEdge_KeepsNeighborOrder(t *testing.T) {
	g := newGraphWithEdges(t, 5, [2]int{0, 4}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 1})

	require.NoError(t, g.RemoveEdge(0, 2))
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 1}, nbrs)
}

// TestHasEdge_InvalidIDs never fails, it only answers false.
func TestHasEdge_InvalidIDs(t *testing.T) {
	g := newGraphWithEdges(t, 2, [2]int{0, 1})

	assert.False(t, g.HasEdge(-1, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(5, 6))
	assert.False(t, g.HasEdge(0, 0))
	assert.False(t, core.NewGraph().HasEdge(0, 0))
}

// TestAddVertex appends isolated vertices with sequential ids.
func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	for want := 0; want < 4; want++ {
		assert.Equal(t, want, g.AddVertex())
	}
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())

	require.NoError(t, g.AddEdge(0, 3))
	id := g.AddVertex()
	assert.Equal(t, 4, id)
	d, err := g.Degree(id)
	require.NoError(t, err)
	assert.Zero(t, d)
	requireValid(t, g)
}

// TestDegreeAndNeighbors checks per-vertex queries and their bounds checks.
func TestDegreeAndNeighbors(t *testing.T) {
	g := newGraphWithEdges(t, NSquare, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, nbrs)

	_, err = g.Degree(4)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Neighbors(-1)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.NeighborView(4)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestNeighbors_ReturnsCopy makes sure callers cannot reach graph storage.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := newGraphWithEdges(t, NTriangle, [2]int{0, 1}, [2]int{0, 2})

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	nbrs[0] = 99
	_ = append(nbrs, 42)

	again, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, again)
	requireValid(t, g)
}

// TestNeighborView reads through the view without copying and cannot write
// back through AppendTo.
func TestNeighborView(t *testing.T) {
	g := newGraphWithEdges(t, NSquare, [2]int{1, 0}, [2]int{1, 3})

	view, err := g.NeighborView(1)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Len())
	assert.Equal(t, 0, view.At(0))
	assert.Equal(t, 3, view.At(1))
	assert.True(t, view.Contains(3))
	assert.False(t, view.Contains(2))
	assert.Equal(t, []int{0, 3}, slices.Collect(view.All()))

	out := view.AppendTo(nil)
	out[0] = 77
	assert.Equal(t, 0, view.At(0))

	// Early break from the iterator.
	var first []int
	for id := range view.All() {
		first = append(first, id)
		break
	}
	assert.Equal(t, []int{0}, first)

	isolated, err := g.NeighborView(2)
	require.NoError(t, err)
	assert.Zero(t, isolated.Len())
	assert.Empty(t, slices.Collect(isolated.All()))
	assert.Zero(t, core.View{}.Len())
}

// TestReserveNeighbors is a pure hint: contents are unchanged.
func TestReserveNeighbors(t *testing.T) {
	g := newGraphWithEdges(t, NTriangle, [2]int{0, 1})
	before := g.AdjacencyList()

	require.NoError(t, g.ReserveNeighbors(0, 128))
	require.NoError(t, g.ReserveNeighbors(2, 0))
	assert.Equal(t, before, g.AdjacencyList())
	assert.Equal(t, 1, g.EdgeCount())

	require.ErrorIs(t, g.ReserveNeighbors(3, 4), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.ReserveNeighbors(0, -1), core.ErrInvalidArgument)

	require.NoError(t, g.AddEdge(0, 2))
	requireValid(t, g)
}

// TestClear resets to the empty graph and the graph stays usable afterwards.
func TestClear(t *testing.T) {
	g := completeGraph(t, NSquare)

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.ConnectedComponents())
	requireValid(t, g)

	assert.Equal(t, 0, g.AddVertex())
	assert.Equal(t, 1, g.AddVertex())
	require.NoError(t, g.AddEdge(0, 1))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestClone_Independent checks that mutating a clone leaves the source intact.
func TestClone_Independent(t *testing.T) {
	g := newGraphWithEdges(t, NTriangle, [2]int{0, 1}, [2]int{1, 2})
	c := g.Clone()

	require.NoError(t, c.RemoveEdge(0, 1))
	require.NoError(t, c.AddEdge(0, 2))
	c.AddVertex()

	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, NTriangle, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	requireValid(t, g)
	requireValid(t, c)
}

// TestEdges_SortedUnique lists every edge once with U < V.
func TestEdges_SortedUnique(t *testing.T) {
	g := newGraphWithEdges(t, 5, [2]int{4, 0}, [2]int{2, 1}, [2]int{0, 1}, [2]int{3, 0})

	want := []core.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 1, V: 2}}
	assert.Equal(t, want, g.Edges())
}
