// SPDX-License-Identifier: MIT
// Package: hamcircuit/builder
//
// impl_complete.go — Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges for all pairs (i,j), i<j, in lexicographic order.
//
// Complexity:
//   • Time: O(n² log n), Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcircuit/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		var i, j int
		for i = 0; i < n; i++ {
			g.AddVertex(cfg.id(i))
		}
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				g.AddEdge(cfg.id(i), cfg.id(j))
			}
		}

		return nil
	}
}
