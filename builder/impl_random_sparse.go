// SPDX-License-Identifier: MIT
// Package: hamcircuit/builder
//
// impl_random_sparse.go — RandomSparse(n, p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   • n ≥ 1, p ∈ [0,1], cfg.rng != nil (WithSeed).
//   • Trial order: for i asc, j>i asc — fixed, so a fixed seed gives a fixed graph.
//
// Complexity:
//   • Time: O(n²) Bernoulli trials, Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcircuit/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p) with independent
// edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var i, j int
		for i = 0; i < n; i++ {
			g.AddVertex(cfg.id(i))
		}
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					g.AddEdge(cfg.id(i), cfg.id(j))
				}
			}
		}

		return nil
	}
}
