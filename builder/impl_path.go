// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Ensures vertices 0..n-1 exist.
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Weights come from cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
)

// Path returns a Constructor that builds the chain 0→1→…→n-1. In a directed
// graph it is the spine that keeps generated DAGs weakly connected.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ensureVertices(g, n)

		// Emit path edges from 0->1->2->...->(n-1) in stable order.
		for i := 1; i < n; i++ {
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(i-1, i, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", MethodPath, i-1, i, w, err)
			}
		}

		return nil
	}
}
