package hamilton

import (
	"fmt"

	"github.com/katalvlaran/hamcircuit/core"
)

// ValidateCircuit enforces the Hamiltonian circuit invariants of c on g:
//   - len(c) == |V|+1 and c[0] == c[|V|] (closure);
//   - c[0..|V|-1] is a permutation of all vertices of g (coverage);
//   - every consecutive pair is an edge of g (adjacency).
//
// A single-vertex graph accepts [v, v] without a self-loop, matching the
// default closure policy of FindCircuit. An empty graph has no circuit.
//
// Complexity: O(V log d) time, O(V) space.
func ValidateCircuit(g *core.Graph, c []int) error {
	if g == nil {
		return ErrGraphNil
	}

	n := g.VertexCount()
	if n == 0 {
		return fmt.Errorf("%w: empty graph", ErrInvalidCircuit)
	}
	if len(c) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidCircuit, len(c), n+1)
	}
	if c[0] != c[n] {
		return fmt.Errorf("%w: not closed (%d != %d)", ErrInvalidCircuit, c[0], c[n])
	}

	seen := make(map[int]struct{}, n)
	var i int
	for i = 0; i < n; i++ {
		if !g.HasVertex(c[i]) {
			return fmt.Errorf("%w: position %d: unknown vertex %d", ErrInvalidCircuit, i, c[i])
		}
		if _, dup := seen[c[i]]; dup {
			return fmt.Errorf("%w: position %d: vertex %d repeated", ErrInvalidCircuit, i, c[i])
		}
		seen[c[i]] = struct{}{}
	}

	if n == 1 {
		return nil
	}
	for i = 0; i < n; i++ {
		if !g.HasEdge(c[i], c[i+1]) {
			return fmt.Errorf("%w: position %d: no edge %d-%d", ErrInvalidCircuit, i, c[i], c[i+1])
		}
	}

	return nil
}
