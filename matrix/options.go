// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Digraph.
// This file defines:
//   - EdgeCountPolicy (how the edge counter reacts to mutations),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// EdgeCountPolicy controls how Digraph.EdgeCount reacts to AddEdge/DelEdge.
type EdgeCountPolicy int

const (
	// EdgeCountTracked counts presence transitions only: absent→present
	// increments, present→absent decrements. The count always equals the
	// number of present cells.
	EdgeCountTracked EdgeCountPolicy = iota

	// EdgeCountLegacy increments on every valid AddEdge and decrements on
	// every valid DelEdge, regardless of the prior cell state. Repeated
	// add/delete on one cell makes the count drift (it may even go negative).
	EdgeCountLegacy
)

// String returns a readable policy name.
func (p EdgeCountPolicy) String() string {
	switch p {
	case EdgeCountTracked:
		return "tracked"
	case EdgeCountLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// DefaultEdgeCountPolicy is the policy used when no option overrides it.
const DefaultEdgeCountPolicy = EdgeCountTracked

// Options holds Digraph construction settings. Fields are unexported;
// callers configure through Option constructors.
type Options struct {
	edgeCount EdgeCountPolicy
}

// Option mutates Options.
type Option func(*Options)

// WithEdgeCountPolicy selects the edge-count policy explicitly.
// Panics on an unknown policy value (programmer error).
func WithEdgeCountPolicy(p EdgeCountPolicy) Option {
	if p != EdgeCountTracked && p != EdgeCountLegacy {
		panic("matrix: unknown EdgeCountPolicy")
	}

	return func(o *Options) {
		o.edgeCount = p
	}
}

// WithLegacyEdgeCount is shorthand for WithEdgeCountPolicy(EdgeCountLegacy).
func WithLegacyEdgeCount() Option {
	return WithEdgeCountPolicy(EdgeCountLegacy)
}

// DefaultOptions returns Options initialized with package defaults.
func DefaultOptions() Options {
	return Options{edgeCount: DefaultEdgeCountPolicy}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
