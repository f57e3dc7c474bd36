// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog and adjacency share one RWMutex.
package core

import "sort"

// AddVertex inserts v with an empty neighbour set if it is missing.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op and keeps its edges.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// HasVertex reports whether v is known to the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]

	return ok
}

// VertexCount returns the number of distinct vertices, isolated ones included.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Vertices returns all vertex IDs in ascending order.
// The returned slice is owned by the caller.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// Degree returns the size of v's neighbour set. A self-loop contributes 1.
//
// Errors:
//   - ErrVertexNotFound: if v is unknown.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return set.Size(), nil
}

// ensureVertex bootstraps v's neighbour set. Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(v int) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = newNeighborSet()
	}
}
