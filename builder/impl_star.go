// SPDX-License-Identifier: MIT
// Package: hamcircuit/builder
//
// impl_star.go — Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; hub is index 0, leaves are 1..n-1.
//   • Wheel: n ≥ 4; rim is C_{n-1} over indices 0..n-2, hub is index n-1.
//
// Determinism:
//   • Spokes emitted by increasing leaf/rim index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcircuit/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // rim C_{n-1} needs n-1 ≥ 3
)

// Star returns a Constructor that builds K_{1,n-1}: one hub and n-1 leaves.
// Leaves have degree 1, so a star has no Hamiltonian circuit for n ≥ 3.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.id(0)
		g.AddVertex(hub)
		for i := 1; i < n; i++ {
			g.AddEdge(hub, cfg.id(i))
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := cfg.id(n - 1)
		for i := 0; i < n-1; i++ {
			g.AddEdge(hub, cfg.id(i))
		}

		return nil
	}
}
