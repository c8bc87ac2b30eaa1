// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_topology.go — deterministic constructors: Path, Cycle, Complete.
//
// Contract:
//   • Vertices are the graph's indices 0..n-1; constructors never resize.
//   • Edges are emitted in ascending (source, dest) order; weights are drawn
//     from cfg.weightFn in that order, so a seeded RNG gives identical graphs.
//
// Complexity:
//   • Path/Cycle: O(n). Complete: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/matrix"
)

// File-local method tags and minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	minPathNodes   = 1
	minCycleNodes  = 2
)

// addEdge draws a weight and stores u→v, wrapping failures with method context.
func addEdge(method string, g *matrix.Digraph, cfg config, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return wrapf(method, fmt.Sprintf("AddEdge(%d→%d, w=%d)", u, v, w), err)
	}

	return nil
}

// Path returns a Constructor that links 0→1→…→n-1.
func Path() Constructor {
	return func(g *matrix.Digraph, cfg config) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that links 0→1→…→n-1→0.
func Cycle() Constructor {
	return func(g *matrix.Digraph, cfg config) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that adds every ordered pair (i, j), i != j.
func Complete() Constructor {
	return func(g *matrix.Digraph, cfg config) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minPathNodes, ErrTooFewVertices)
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
