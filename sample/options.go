// SPDX-License-Identifier: MIT
// Package sample: functional options.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on programmer errors (nil
//     sources); sampling functions themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand. No time-based sources.

package sample

import "math/rand"

// Option customizes a sampling call.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed draws from a new deterministic source seeded with seed.
// Seed 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws from r. The caller owns r and must not share it across
// goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// newConfig applies opts over the default deterministic source.
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}
