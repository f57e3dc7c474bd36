// File: methods_adjacent.go
// Role: Neighbourhood APIs (Neighbors, AdjacencyList).
// Determinism:
//   - Neighbors() returns IDs ascending (tree-set order).
//   - AdjacencyList() returns per-vertex slices ascending; slices are independent.
package core

import "github.com/emirpasic/gods/sets/treeset"

// Neighbors returns the IDs adjacent to v in ascending order.
//
// Implementation:
//   - Stage 1: Acquire the read lock for a consistent snapshot.
//   - Stage 2: Validate vertex existence (ErrVertexNotFound).
//   - Stage 3: Copy the tree-set contents into a fresh []int.
//
// Behavior highlights:
//   - Isolated vertices return an empty, non-nil slice.
//   - A self-loop on v makes v appear in its own result.
//   - The returned slice is owned by the caller; mutating it does not affect g.
//
// Errors:
//   - ErrVertexNotFound: if v does not exist.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the size of v's neighbour set.
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return setToInts(set), nil
}

// AdjacencyList returns a snapshot mapping every vertex to its ascending
// neighbour IDs. The snapshot shares no backing storage with g, so callers
// may read it without holding any lock while g is mutated elsewhere.
//
// Complexity: O(V + E) time and space.
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for v, set := range g.adjacency {
		out[v] = setToInts(set)
	}

	return out
}

// setToInts copies an int tree-set into an ascending slice.
func setToInts(set *treeset.Set) []int {
	out := make([]int, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}

	return out
}
