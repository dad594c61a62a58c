// File: types.go
// Role: Sentinel errors and functional options for rng.Set.

package rng

import (
	"errors"
	"io"
)

// Sentinel errors.
var (
	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("rng: worker count must be at least 1")

	// ErrWorkerOutOfRange indicates a worker id outside [0, Workers()).
	ErrWorkerOutOfRange = errors.New("rng: worker id out of range")

	// ErrSeedSource indicates the entropy source could not supply a master seed.
	ErrSeedSource = errors.New("rng: cannot read master seed")
)

// Option configures New.
type Option func(*config)

type config struct {
	seed    uint64
	seeded  bool
	entropy io.Reader
}

// WithSeed fixes the master seed. Two Sets built with the same seed and worker
// count produce identical streams.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithEntropy replaces crypto/rand as the source of the master seed when no
// WithSeed is given. Eight bytes are read, little-endian.
// Panics on nil.
func WithEntropy(r io.Reader) Option {
	if r == nil {
		panic("rng: WithEntropy(nil)")
	}
	return func(c *config) { c.entropy = r }
}
