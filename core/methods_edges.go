// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Policy:
//   - Edges are undirected and unweighted; AddEdge mirrors u↔v.
//   - Parallel edges collapse into one (sets), so AddEdge is idempotent.
//   - Self-loops are accepted and stored once.
package core

// AddEdge inserts the undirected edge u–v.
//
// Implementation:
//   - Stage 1: Under the write lock, bootstrap neighbour sets for u and v
//     (both become known vertices as a side effect).
//   - Stage 2: If v is already a neighbour of u, return (idempotent).
//   - Stage 3: Insert v into N(u) and u into N(v); bump the edge count.
//
// Complexity:
//   - Time O(log d), Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)

	if g.adjacency[u].Contains(v) {
		return
	}
	g.adjacency[u].Add(v)
	g.adjacency[v].Add(u)
	g.edgeCount++
}

// HasEdge reports whether the undirected edge u–v exists.
// Unknown endpoints yield false.
// Complexity: O(log d).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[u]
	if !ok {
		return false
	}

	return set.Contains(v)
}

// EdgeCount returns the number of undirected edges; each self-loop counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
