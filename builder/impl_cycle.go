// SPDX-License-Identifier: MIT
// Package: hamcircuit/builder
//
// impl_cycle.go — Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; Path: n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices in ascending index order, then edges i–(i+1) (and n-1–0 for Cycle).
//
// Complexity:
//   • Time: O(n log n), Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcircuit/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 1
)

// Cycle returns a Constructor that builds the n-vertex simple cycle C_n.
// C_n is Hamiltonian for every n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addChain(g, cfg, n)
		g.AddEdge(cfg.id(n-1), cfg.id(0))

		return nil
	}
}

// Path returns a Constructor that builds the path P_n: 0–1–…–(n-1).
// P_n has no Hamiltonian circuit for n ≥ 3.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addChain(g, cfg, n)

		return nil
	}
}

// addChain adds vertices 0..n-1 and the edges between consecutive indices.
func addChain(g *core.Graph, cfg builderConfig, n int) {
	var i int
	for i = 0; i < n; i++ {
		g.AddVertex(cfg.id(i))
	}
	for i = 0; i+1 < n; i++ {
		g.AddEdge(cfg.id(i), cfg.id(i+1))
	}
}
