// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • rng      = nil   (pure/deterministic unless seeded)
//   • weightFn = constant 1

package builder

import (
	"fmt"
	"math/rand"
)

// defaultConstWeight is the edge weight used when no weight function is set.
const defaultConstWeight = int64(1)

// config aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type config struct {
	rng      *rand.Rand             // RNG for stochastic choices; nil means "no randomness"
	weightFn func(*rand.Rand) int64 // per-edge weight generator
}

// Option configures a builder run.
type Option func(*config)

// newConfig constructs a config with deterministic defaults and applies all
// options in order (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithRand attaches an existing RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// ConstantWeight returns a weight function that always yields value.
// Panics if value < 0.
func ConstantWeight(value int64) func(*rand.Rand) int64 {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantWeight must be ≥ 0, got %d", value))
	}
	return func(*rand.Rand) int64 { return value }
}

// UniformWeight returns a weight function sampling uniformly in [min, max].
// With a nil RNG it yields min. Panics if min < 0 or max < min.
func UniformWeight(min, max int64) func(*rand.Rand) int64 {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: UniformWeight requires 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
