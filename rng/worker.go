// File: worker.go
// Role: Distribution helpers on a single worker stream.
// Concurrency: a Worker is not safe for concurrent use.

package rng

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aclements/go-moremath/stats"
)

// Worker is one generator of a Set.
type Worker struct {
	id int
	r  *rand.Rand
}

// ID returns the worker's index in its Set.
func (w *Worker) ID() int { return w.id }

// Rand exposes the underlying *rand.Rand for APIs that take one.
// It shares state with w.
func (w *Worker) Rand() *rand.Rand { return w.r }

// Uint64 returns 64 uniformly random bits.
func (w *Worker) Uint64() uint64 { return w.r.Uint64() }

// Float64 returns a float in [0, 1).
func (w *Worker) Float64() float64 { return w.r.Float64() }

// Intn returns an int in [0, n). Panics if n <= 0.
func (w *Worker) Intn(n int) int { return w.r.Intn(n) }

// UniformInt returns an int in the closed range [lo, hi].
// Panics if lo > hi.
func (w *Worker) UniformInt(lo, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("rng: UniformInt: lo %d > hi %d", lo, hi))
	}

	span := uint64(hi) - uint64(lo)
	if span >= math.MaxInt64 {
		// Range too wide for Int63n: reject draws above span.
		for {
			if x := w.r.Uint64(); x <= span {
				return lo + int(x)
			}
		}
	}

	return lo + int(w.r.Int63n(int64(span)+1))
}

// UniformReal returns a float in the half-open range [lo, hi).
// UniformReal(x, x) returns x. Panics if lo > hi or either bound is NaN.
func (w *Worker) UniformReal(lo, hi float64) float64 {
	if !(lo <= hi) {
		panic(fmt.Sprintf("rng: UniformReal: invalid range [%v, %v)", lo, hi))
	}
	if lo == hi {
		return lo
	}

	for {
		// Rounding can land exactly on hi for wide ranges.
		if x := lo + (hi-lo)*w.r.Float64(); x < hi {
			return x
		}
	}
}

// Normal returns a draw from N(mean, stddev²).
// Panics if stddev is negative or NaN.
func (w *Worker) Normal(mean, stddev float64) float64 {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("rng: Normal: invalid stddev %v", stddev))
	}

	return stats.NormalDist{Mu: mean, Sigma: stddev}.Rand(w.r)
}

// Bernoulli returns true with probability p.
// Panics if p is outside [0, 1].
func (w *Worker) Bernoulli(p float64) bool {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("rng: Bernoulli: probability %v not in [0,1]", p))
	}

	return w.r.Float64() < p
}

// Perm returns a random permutation of 0..n-1. Panics if n < 0.
func (w *Worker) Perm(n int) []int {
	if n < 0 {
		panic(fmt.Sprintf("rng: Perm: negative n %d", n))
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(w, p)

	return p
}

// Shuffle permutes s in place with a Fisher-Yates pass driven by w.
// Complexity: O(len(s)) time, O(1) extra space.
func Shuffle[T any](w *Worker, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := w.r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
