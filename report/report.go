// Package report renders the outcome of a circuit search for people:
// the circuit (or its absence), load and search timings, and search
// statistics with thousands separators.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hamcircuit/hamilton"
)

// Separator joins consecutive circuit vertices.
const Separator = " -> "

// NotFound is printed when no circuit was produced.
const NotFound = "No Hamiltonian Circuit found."

// Summary is everything the reporter prints about one run.
type Summary struct {
	Result     *hamilton.Result // nil is reported as not found
	ReadTime   time.Duration
	SearchTime time.Duration
	Vertices   int
	Edges      int
	Cached     bool // Result came from the cache; SearchTime is the lookup
}

// FormatCircuit joins the vertices of c with Separator.
func FormatCircuit(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, Separator)
}

// Write renders s to w, one fact per line.
func Write(w io.Writer, s Summary) error {
	var b strings.Builder

	if s.Result != nil && s.Result.Found {
		fmt.Fprintf(&b, "Hamiltonian Circuit: %s\n", FormatCircuit(s.Result.Circuit))
	} else {
		b.WriteString(NotFound + "\n")
	}
	fmt.Fprintf(&b, "Time to read graph: %0.6fs\n", s.ReadTime.Seconds())
	fmt.Fprintf(&b, "Time to find path: %0.6fs\n", s.SearchTime.Seconds())

	var expansions int64
	if s.Result != nil {
		expansions = s.Result.Expansions
	}
	fmt.Fprintf(&b, "Graph: %s vertices, %s edges; %s expansions",
		humanize.Comma(int64(s.Vertices)), humanize.Comma(int64(s.Edges)), humanize.Comma(expansions))
	if s.Cached {
		b.WriteString(" (cached)")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())

	return err
}
