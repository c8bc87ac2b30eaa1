// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (see wrapf).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the graph has fewer vertices than the
// constructor needs (e.g. Path on an empty graph).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not be applied.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method context to an underlying error, e.g.
// "Cycle: AddEdge(3→0): matrix: index out of range".
func wrapf(method, what string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, what, err)
}
