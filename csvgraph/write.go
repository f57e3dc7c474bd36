package csvgraph

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hamcircuit/core"
)

// DefaultProblemType is written when Write is given an empty type.
const DefaultProblemType = "edge"

// Write emits g in the format read by Load: a p-line, one v-line per vertex
// in ascending order (so isolated vertices survive a round trip), then one
// e-line per undirected edge with u ≤ v, ordered by (u, v).
func Write(w io.Writer, g *core.Graph, problemType string) error {
	if g == nil {
		return ErrGraphNil
	}
	if problemType == "" {
		problemType = DefaultProblemType
	}

	bw := bufio.NewWriter(w)
	adj := g.AdjacencyList()
	vertices := g.Vertices()

	fmt.Fprintf(bw, "p,%s,%d,%d\n", problemType, len(vertices), g.EdgeCount())
	for _, v := range vertices {
		fmt.Fprintf(bw, "v,%d\n", v)
	}
	for _, u := range vertices {
		for _, v := range adj[u] {
			if u <= v {
				fmt.Fprintf(bw, "e,%d,%d\n", u, v)
			}
		}
	}

	return errors.Wrap(bw.Flush(), "csvgraph: write")
}
