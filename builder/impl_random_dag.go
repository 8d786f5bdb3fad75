// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// impl_random_dag.go - implementation of RandomDAG(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator restricted to forward pairs: each edge i→j
//     with j > i+1 is included independently with probability p. Consecutive
//     pairs are left to Path so the two compose without duplicate edges.
//   - Edges only ever point from a lower to a higher index, so the result is
//     acyclic whatever p is.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
)

// RandomDAG returns a Constructor that samples forward edges over n vertices
// with independent edge probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomDAG, n, MinRandomDAGNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomDAG, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomDAG, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1.
		ensureVertices(g, n)

		// 3) Sample forward edges in a stable order.
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				switch {
				case p == MinProbability:
					continue
				case p < MaxProbability && cfg.rng.Float64() >= p:
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", MethodRandomDAG, i, j, w, err)
				}
			}
		}

		return nil
	}
}
