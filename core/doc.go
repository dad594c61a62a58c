// Package core provides a compact in-memory simple graph: undirected,
// unweighted, no self-loops, no parallel edges, with vertices identified by
// dense integers 0..n-1.
//
// Storage is one neighbor list per vertex ([][]int). That keeps the
// structure cache friendly and makes every per-vertex lookup an index
// operation, at the price of requiring dense ids; ingestion renumbers
// arbitrary external labels to restore that property.
//
// Construction:
//
//	NewGraph()                 // empty
//	NewGraphN(n)               // n isolated vertices
//	FromFile(path, opts...)    // edge list on disk
//	FromReader(r, opts...)     // edge list from any io.Reader
//
// Core Methods:
//
//	// Mutation
//	AddVertex() int                    // O(1) amortized, returns new id
//	AddEdge(u, v int) error            // duplicate ⇒ no-op; u==v ⇒ ErrSelfLoop
//	RemoveEdge(u, v int) error         // absent ⇒ no-op
//	ReserveNeighbors(v, capacity) error
//	Clear()
//
//	// Query
//	HasEdge(u, v int) bool             // invalid ids ⇒ false
//	Degree(v int) (int, error)
//	Neighbors(v int) ([]int, error)    // owned copy
//	NeighborView(v int) (View, error)  // read-only alias, valid until next write
//	VertexCount() / EdgeCount() int
//	Edges() []Edge                     // sorted, U < V
//
//	// Connectivity
//	IsConnected() bool
//	ConnectedComponent(start int) ([]int, error)  // sorted
//	ConnectedComponents() [][]int                 // partition of [0, V)
//	ComponentCount() int
//
//	// Statistics
//	Density(), AverageDegree() float64
//	MinDegree(), MaxDegree() int
//	DegreeStats() DegreeSummary
//	Stats() *GraphStats
//
// Edge-list format:
//
//	# comment
//	10 42
//	42 7
//
// Lines are trimmed; blank and '#' lines are skipped; every other line must
// hold exactly two unsigned integers. Labels are renumbered by rank (smallest
// label ⇒ vertex 0). Pairs that collapse to a self-loop or repeat an earlier
// pair are dropped silently; pass WithLogger to see them at Debug level.
//
// Errors:
//
//	ErrVertexOutOfRange   – vertex id outside [0, VertexCount())
//	ErrSelfLoop           – AddEdge(v, v); also matches ErrInvalidArgument
//	ErrInvalidArgument    – negative size or capacity, self-loop
//	ErrResourceNotFound   – ingestion path does not exist
//	ErrResourceUnreadable – ingestion source cannot be opened or read
//	ErrFormat             – malformed line (*FormatError carries the line number)
//	ErrCorrupt            – Validate found a broken invariant
//
// Concurrency:
//
// Graph does no locking. Any number of goroutines may read concurrently as
// long as no goroutine mutates; writers need exclusive access, which the
// owner must arrange.
package core
