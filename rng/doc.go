// Package rng provides a set of independent pseudo-random generators, one per
// logical worker, all derived from a single master seed.
//
// What:
//
//   - Set owns N Workers. Worker i is a 64-bit Mersenne Twister
//     (github.com/seehuhn/mt19937) wrapped in a math/rand.Rand.
//   - The per-worker seeds are the first N outputs of a separate seeding
//     Mersenne Twister initialised with the master seed, so one master seed
//     reproduces every worker stream exactly.
//   - Without WithSeed the master seed is drawn from crypto/rand; MasterSeed
//     reports it so that a run can be logged and replayed.
//
// Draws:
//
//	UniformInt(lo, hi)       integer in [lo, hi]
//	UniformReal(lo, hi)      float in [lo, hi)
//	Normal(mean, stddev)     N(mean, stddev²) via go-moremath stats.NormalDist
//	Bernoulli(p)             true with probability p
//	Shuffle(w, s)            in-place Fisher-Yates over any slice
//
// Invalid ranges (lo > hi, stddev < 0, p outside [0,1]) panic, like the
// corresponding math/rand functions.
//
// Concurrency:
//
//   - There is no locking. A Worker must be used by one goroutine at a time;
//     distinct Workers share no state and can run in parallel.
//   - Reseed rewrites every Worker and must not race with draws.
package rng
