// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public mutators MUST return these sentinels (optionally wrapped with
// coordinates via %w) and tests MUST check them via errors.Is. No public
// method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a negative vertex count was requested.
	ErrInvalidDimensions = errors.New("matrix: vertex count must be >= 0")

	// ErrOutOfRange indicates that a source or dest index lies outside [0, n).
	// AddEdge/DelEdge/Neighbors return it instead of panicking; the call has no effect.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilGraph indicates that a nil *Digraph receiver was used.
	ErrNilGraph = errors.New("matrix: nil digraph")
)

// ---------- error context tags ----------

const (
	ctxAddEdge   = "AddEdge"
	ctxDelEdge   = "DelEdge"
	ctxNeighbors = "Neighbors"
)

// digraphErrorf wraps a sentinel with the method tag and coordinates,
// e.g. "Digraph.AddEdge(3,7): matrix: index out of range".
func digraphErrorf(method string, source, dest int, err error) error {
	return fmt.Errorf("Digraph.%s(%d,%d): %w", method, source, dest, err)
}
