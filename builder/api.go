// SPDX-License-Identifier: MIT
// Package builder generates deterministic matrix.Digraph fixtures: paths,
// cycles, complete digraphs and seeded random sparse digraphs.
//
// Design contract:
//   - One orchestrator: BuildDigraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (Option) resolve into an immutable config (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//     Option constructors panic on nonsensical arguments (programmer error).
package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/matrix"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate their parameters early and return sentinel errors.
type Constructor func(g *matrix.Digraph, cfg config) error

// BuildDigraph creates an n-vertex matrix.Digraph with graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any constructor error is wrapped with "BuildDigraph: %w".
func BuildDigraph(n int, gopts []matrix.Option, bopts []Option, cons ...Constructor) (*matrix.Digraph, error) {
	g, err := matrix.NewDigraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildDigraph: %w", err)
	}

	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDigraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildDigraph: %w", err)
		}
	}

	return g, nil
}
