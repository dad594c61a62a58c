// Package builder assembles deterministic core.Graph fixtures from small,
// composable topology constructors.
//
// Every Constructor appends its own block of vertices to the target graph
// (via core.Graph.AddVertex) and then wires edges between them (via
// core.Graph.AddEdge), so the public mutation path enforces the simple-graph
// invariants. Composing several constructors in one BuildGraph call therefore
// yields their disjoint union, with ids assigned in call order:
//
//	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(4))
//	// Path occupies 0..2, Cycle occupies 3..6.
//
// Constructors:
//
//   - Path(n)                 P_n, n ≥ 1
//   - Cycle(n)                C_n, n ≥ 3
//   - Star(n)                 center plus n-1 leaves, n ≥ 2
//   - Wheel(n)                center plus C_{n-1} rim, n ≥ 4
//   - Complete(n)             K_n, n ≥ 1
//   - CompleteBipartite(a, b) K_{a,b}, a, b ≥ 1
//   - Grid(rows, cols)        4-neighborhood lattice, rows, cols ≥ 1
//   - RandomSparse(n, p)      G(n, p), needs a worker when 0 < p < 1
//   - RandomRegular(n, d)     random d-regular graph, needs a worker
//
// Randomness comes from an *rng.Worker supplied by WithWorker or created by
// WithSeed. For a fixed seed, option set and constructor order the output is
// identical across runs.
//
// Errors are the sentinels in errors.go wrapped with the constructor name;
// branch on them with errors.Is. Option constructors panic on nil arguments.
package builder
