// Package simplegraph is an in-memory toolkit for loading, building and
// measuring simple undirected graphs.
//
// 🚀 What is simplegraph?
//
//	A small, dense-id graph library with a matching command-line tool:
//		• Core container: adjacency lists, O(1) vertex lookup, no self-loops or parallel edges
//		• Ingestion: whitespace edge lists with arbitrary uint64 labels, renumbered by rank
//		• Structure: connected components, connectivity check, degree and density statistics
//		• Randomness: reproducible per-worker generators derived from one master seed
//		• Fixtures: composable Path/Cycle/Star/Wheel/Complete/Grid/random constructors
//
// ✨ Why choose simplegraph?
//
//   - Predictable : every query is deterministic for a given graph and seed
//   - Strict : malformed input fails with the offending line, never a partial graph
//   - Observable : ingestion and construction report through log/slog
//
// Under the hood, everything is organized under a few subpackages:
//
//	core/            : Graph, View, Edge, ingestion, components & statistics
//	rng/             : seeded worker RNG set (MT19937 streams)
//	builder/         : topology constructors over core.Graph
//	internal/config/ : viper-backed settings and slog logger setup
//	cmd/graphstat/   : cobra CLI: stats, components, sample, rng
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2   4
//
//	is two components: a 4-cycle and the isolated vertex 4.
//
//	go install github.com/katalvlaran/simplegraph/cmd/graphstat@latest
package simplegraph
