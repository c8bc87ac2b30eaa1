// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go — RandomSparse(p, loops) constructor.
//
// Model:
//   • Erdős–Rényi-like: include each ordered pair (i,j) independently with probability p.
//   • Self-loops are trialled only when loops is true.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 and p is not NaN (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   • Stable trial order: i asc, then j asc. One Float64 draw per trial,
//     followed by one weight draw per accepted edge.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/digraph/matrix"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples directed edges with
// independent probability p.
func RandomSparse(p float64, loops bool) Constructor {
	return func(g *matrix.Digraph, cfg config) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minPathNodes, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var (
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
