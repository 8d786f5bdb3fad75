// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand/v2"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed fixes the seed: constructors get a PCG source seeded with it and a
// Generator derives its per-buffer seeds from it.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
		c.rng = newRand(seed)
	}
}

// WithSize sets the default buffer size used by Generator.Next(0).
// Panics if n is outside [MinSize, MaxSize].
func WithSize(n int) BuilderOption {
	if n < MinSize || n > MaxSize {
		panic(fmt.Sprintf("builder: WithSize(%d) outside [%d,%d]", n, MinSize, MaxSize))
	}
	return func(c *builderConfig) {
		c.size = n
	}
}

// WithMaxValue bounds generated array values to [1, v]. Panics if v < 1.
func WithMaxValue(v int) BuilderOption {
	if v < 1 {
		panic("builder: WithMaxValue(v<1)")
	}
	return func(c *builderConfig) {
		c.maxValue = v
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDensity sets the extra-edge probability of generated graphs.
// Panics if p is outside [0,1].
func WithDensity(p float64) BuilderOption {
	if p < MinProbability || p > MaxProbability {
		panic(fmt.Sprintf("builder: WithDensity(%g) outside [0,1]", p))
	}
	return func(c *builderConfig) {
		c.density = p
	}
}
