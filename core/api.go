// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Degree and density statistics plus a one-call Stats snapshot.
// Policy:
//   - Pure queries: no mutation, no hidden state.
//   - Degenerate graphs (V < 2 for density, V == 0 otherwise) report zeros, never NaN.

package core

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// GraphStats is a read-only snapshot of size, density, degree and
// connectivity figures for a graph.
type GraphStats struct {
	VertexCount    int
	EdgeCount      int
	Density        float64
	MinDegree      int
	MaxDegree      int
	AverageDegree  float64
	ComponentCount int
	Connected      bool
}

// DegreeSummary describes the degree sequence of a graph.
// All fields are zero for the empty graph.
type DegreeSummary struct {
	Min, Max int
	Mean     float64
	StdDev   float64
}

// Density returns 2E / (V·(V-1)) for V ≥ 2 and 0 otherwise. The result lies
// in [0, 1] for any simple graph.
// Complexity: O(1).
func (g *Graph) Density() float64 {
	n := len(g.adj)
	if n < 2 {
		return 0
	}

	return 2 * float64(g.edges) / (float64(n) * float64(n-1))
}

// MaxDegree returns the largest neighbor count, or 0 for the empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	best := 0
	for _, nbrs := range g.adj {
		best = max(best, len(nbrs))
	}

	return best
}

// MinDegree returns the smallest neighbor count, or 0 for the empty graph.
// Complexity: O(V).
func (g *Graph) MinDegree() int {
	if len(g.adj) == 0 {
		return 0
	}
	best := len(g.adj[0])
	for _, nbrs := range g.adj[1:] {
		best = min(best, len(nbrs))
	}

	return best
}

// AverageDegree returns 2E / V, or 0 for the empty graph.
// Complexity: O(1).
func (g *Graph) AverageDegree() float64 {
	if len(g.adj) == 0 {
		return 0
	}

	return 2 * float64(g.edges) / float64(len(g.adj))
}

// DegreeStats summarizes the degree sequence: extremes, mean and population
// standard deviation.
// Complexity: O(V).
func (g *Graph) DegreeStats() DegreeSummary {
	n := len(g.adj)
	if n == 0 {
		return DegreeSummary{}
	}

	degrees := make([]float64, n)
	for i, nbrs := range g.adj {
		degrees[i] = float64(len(nbrs))
	}
	sample := stats.Sample{Xs: degrees}

	// Sample.StdDev is the sample (n-1) estimator; rescale to the population
	// figure so a single vertex reports 0 rather than NaN.
	var sd float64
	if n > 1 {
		sd = sample.StdDev() * math.Sqrt(float64(n-1)/float64(n))
	}

	return DegreeSummary{
		Min:    g.MinDegree(),
		Max:    g.MaxDegree(),
		Mean:   sample.Mean(),
		StdDev: sd,
	}
}

// Stats computes a GraphStats snapshot.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	comps := g.ComponentCount()

	return &GraphStats{
		VertexCount:    len(g.adj),
		EdgeCount:      g.edges,
		Density:        g.Density(),
		MinDegree:      g.MinDegree(),
		MaxDegree:      g.MaxDegree(),
		AverageDegree:  g.AverageDegree(),
		ComponentCount: comps,
		Connected:      comps <= 1,
	}
}
