// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • seed      = 1                   (Generator's base seed)
//   • size      = DefaultSize
//   • maxValue  = DefaultMaxValue
//   • weightFn  = DefaultWeightFn
//   • density   = DefaultDensity

package builder

import (
	"math/rand/v2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// seed is the base seed a Generator derives per-buffer seeds from.
	seed uint64
	// size is the default buffer size for Generator.Next(0).
	size int
	// maxValue bounds generated array values.
	maxValue int
	// Weight generator for edges.
	weightFn WeightFn
	// density is the extra-edge probability of generated graphs.
	density float64
}

const defaultSeed uint64 = 1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		seed:     defaultSeed,
		size:     DefaultSize,
		maxValue: DefaultMaxValue,
		weightFn: DefaultWeightFn,
		density:  DefaultDensity,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newRand returns the PCG source all builders draw from for a given seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5deece66d))
}
