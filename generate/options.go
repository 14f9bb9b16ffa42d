// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: WithSeed, WithRand or WithSource.
//   • Later options override earlier ones.

package generate

import (
	"math/rand"
)

// Source supplies the uniform random integers every generator consumes.
// Intn must return a value in [0, n) for n > 0. *rand.Rand satisfies it;
// tests may plug in a scripted sequence.
type Source interface {
	Intn(n int) int
}

// Option customizes a generator call by mutating its config.
type Option func(*config)

// config aggregates the knobs shared by all generators.
type config struct {
	// src drives every random choice.
	src Source
	// maxSteps bounds the direction draws of random-walk generators; 0 = unbounded.
	maxSteps int
}

// WithSeed uses a new *rand.Rand seeded with seed.
// seed == 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rngFromSeed(seed)
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.src = r
	}
}

// WithSource uses an arbitrary Source. Panics on nil.
func WithSource(s Source) Option {
	if s == nil {
		panic("generate: WithSource(nil)")
	}
	return func(c *config) {
		c.src = s
	}
}

// WithMaxSteps bounds the number of direction draws made by AldousBroder
// and Wilson. Exceeding it fails with ErrStepLimit. 0 means unbounded.
// Panics if n < 0. Other generators ignore it.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("generate: WithMaxSteps(n<0)")
	}
	return func(c *config) {
		c.maxSteps = n
	}
}

// newConfig applies opts over the deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		src:      nil,
		maxSteps: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rngFromSeed(0)
	}

	return cfg
}
