// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Option constructors panic on meaningless values; everything else returns errors.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a vertex count is smaller than the allowed
// minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was run without a
// *rand.Rand in the resolved builderConfig.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not be applied
// (e.g. a nil constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid buffer size (size < MinSize or > MaxSize).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrInvalidScenario indicates a scenario document that failed validation.
// Individual problems are aggregated; use multierr.Errors to list them.
var ErrInvalidScenario = errors.New("builder: invalid scenario")

// ErrCyclicGraph indicates a scenario graph containing a cycle while cycles
// were not allowed.
var ErrCyclicGraph = errors.New("builder: graph contains a cycle")
