// Package builder provides validation helpers to enforce
// parameter contracts in constructors.
package builder

import "fmt"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateSize enforces size ∈ [MinSize, MaxSize].
func validateSize(method string, size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%s: size=%d not in [%d,%d]: %w", method, size, MinSize, MaxSize, ErrBadSize)
	}

	return nil
}
