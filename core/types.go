// Package core declares the Graph type, its sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is an undirected simple graph over integer vertex IDs.
//
// adjacency maps every known vertex to its neighbour set. A vertex with no
// edges still owns an (empty) set, which is how isolated vertices are kept.
// edgeCount counts undirected edges once; a self-loop counts as one edge.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[int]*treeset.Set // vertex → ordered neighbour set
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[int]*treeset.Set),
	}
}

// newNeighborSet returns an empty set ordered by ascending vertex ID.
func newNeighborSet() *treeset.Set {
	return treeset.NewWithIntComparator()
}
