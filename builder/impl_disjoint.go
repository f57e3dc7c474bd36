// SPDX-License-Identifier: MIT
// Package: hamcircuit/builder
//
// impl_disjoint.go — Disjoint(cons...) composes components side by side.
//
// Contract:
//   • Each component is built with firstID = (max ID so far)+1, so components
//     never share vertices or edges.
//   • An empty graph starts at cfg.firstID.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcircuit/core"
)

const methodDisjoint = "Disjoint"

// Disjoint returns a Constructor that builds the disjoint union of cons.
// Any graph with two or more non-empty components has no Hamiltonian circuit.
func Disjoint(cons ...Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for k, c := range cons {
			local := cfg
			if vs := g.Vertices(); len(vs) > 0 {
				local.firstID = vs[len(vs)-1] + 1
			}
			if err := c(g, local); err != nil {
				return fmt.Errorf("%s: component %d: %w", methodDisjoint, k, err)
			}
		}

		return nil
	}
}
