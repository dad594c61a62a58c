// Package core defines the central Graph type, its sentinel errors and
// constructors.
//
// A Graph is a simple undirected, unweighted graph stored as adjacency lists
// indexed by compact vertex identifiers 0..n-1.
//
// This file declares Graph, Edge, the sentinel errors and the NewGraph /
// NewGraphN constructors.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex id outside [0, VertexCount()).
//	ErrSelfLoop         - AddEdge(v, v).
//	ErrInvalidArgument  - malformed argument (negative size or capacity).
//	ErrResourceNotFound - ingestion source does not exist.
//	ErrResourceUnreadable - ingestion source cannot be opened or read.
//	ErrFormat           - ingestion line does not parse as two unsigned integers.
//	ErrCorrupt          - Validate found a broken structural invariant.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrInvalidArgument indicates a malformed argument: a negative size or
	// capacity, or identical AddEdge endpoints.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	// errors.Is(ErrSelfLoop, ErrInvalidArgument) holds.
	ErrSelfLoop = fmt.Errorf("%w: self-loop not allowed", ErrInvalidArgument)

	// ErrResourceNotFound indicates the ingestion path does not resolve to an existing resource.
	ErrResourceNotFound = errors.New("core: resource not found")

	// ErrResourceUnreadable indicates the ingestion resource exists but could not be opened or read.
	ErrResourceUnreadable = errors.New("core: resource unreadable")

	// ErrFormat indicates a malformed edge-list line. See FormatError for the line details.
	ErrFormat = errors.New("core: malformed edge list")

	// ErrCorrupt indicates Validate found a broken adjacency invariant.
	ErrCorrupt = errors.New("core: adjacency invariant violated")
)

// Edge is an undirected edge reported by Edges. U is always smaller than V.
type Edge struct {
	U, V int
}

// String renders the edge as "U-V".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// Graph is a simple undirected, unweighted graph backed by adjacency lists.
//
// Invariants (hold after every public method returns):
//   - no vertex lists itself as a neighbor;
//   - v ∈ adj[u] ⇔ u ∈ adj[v];
//   - no neighbor list holds duplicates;
//   - edges == Σ len(adj[i]) / 2;
//   - every stored id lies in [0, len(adj)).
//
// Graph does no internal locking. Concurrent readers are safe only while no
// writer is active; mutation must be serialized by the owner.
type Graph struct {
	// adj[i] holds the neighbor ids of vertex i, in insertion order.
	adj [][]int

	// edges counts undirected edges once.
	edges int
}

// NewGraph creates an empty Graph (zero vertices, zero edges).
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}

// NewGraphN creates a Graph with n isolated vertices 0..n-1.
// Returns ErrInvalidArgument when n is negative.
// Complexity: O(n).
func NewGraphN(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraphN: n=%d: %w", n, ErrInvalidArgument)
	}

	return &Graph{adj: make([][]int, n)}, nil
}

// checkVertex returns a wrapped ErrVertexOutOfRange when v is not a valid id.
// method is the caller's name, used as the error prefix.
func (g *Graph) checkVertex(method string, v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%s: vertex %d not in [0,%d): %w", method, v, len(g.adj), ErrVertexOutOfRange)
	}

	return nil
}

// checkPair validates both endpoints of an edge operation.
func (g *Graph) checkPair(method string, u, v int) error {
	if err := g.checkVertex(method, u); err != nil {
		return err
	}

	return g.checkVertex(method, v)
}
