// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand/v2"
	"testing"
)

// TestDefaults verifies the documented deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.seed != defaultSeed || cfg.size != DefaultSize || cfg.maxValue != DefaultMaxValue {
		t.Errorf("defaults: got seed=%d size=%d maxValue=%d", cfg.seed, cfg.size, cfg.maxValue)
	}
	if cfg.density != DefaultDensity {
		t.Errorf("default density: expected %g, got %g", DefaultDensity, cfg.density)
	}
	if w := cfg.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("default weightFn(nil): expected %d, got %d", DefaultEdgeWeight, w)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewPCG(1, 2))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 2. WithSeed should produce reproducible RNG and record the seed
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfgSeed1.rng.Uint64(), cfgSeed1.rng.Uint64()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfgSeed2.rng.Uint64(), cfgSeed2.rng.Uint64()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
	if cfgSeed1.seed != 42 {
		t.Errorf("WithSeed: expected seed 42, got %d", cfgSeed1.seed)
	}
}

// TestOptionOverrides verifies last-wins semantics.
func TestOptionOverrides(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithSize(5), WithSize(9),
		WithMaxValue(3),
		WithDensity(0), WithDensity(1),
		WithWeightFn(ConstantWeightFn(2)), WithWeightFn(ConstantWeightFn(4)),
	)
	if cfg.size != 9 {
		t.Errorf("WithSize override: expected 9, got %d", cfg.size)
	}
	if cfg.maxValue != 3 {
		t.Errorf("WithMaxValue: expected 3, got %d", cfg.maxValue)
	}
	if cfg.density != 1 {
		t.Errorf("WithDensity override: expected 1, got %g", cfg.density)
	}
	if w := cfg.weightFn(nil); w != 4 {
		t.Errorf("WithWeightFn override: expected 4, got %d", w)
	}
}

// TestOptionPanics verifies that option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand(nil)", func() { WithRand(nil) }},
		{"WithSize(0)", func() { WithSize(0) }},
		{"WithSize(MaxSize+1)", func() { WithSize(MaxSize + 1) }},
		{"WithMaxValue(0)", func() { WithMaxValue(0) }},
		{"WithWeightFn(nil)", func() { WithWeightFn(nil) }},
		{"WithDensity(-0.1)", func() { WithDensity(-0.1) }},
		{"WithDensity(1.5)", func() { WithDensity(1.5) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tc.name)
				}
			}()
			tc.fn()
		})
	}
}
