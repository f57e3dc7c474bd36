// Package core provides the undirected, unweighted in-memory Graph that the
// circuit search runs over.
//
// The Graph G = (V,E) is a mapping from integer vertex IDs to ordered
// neighbour sets:
//
//   - Undirected: AddEdge(u, v) mirrors the edge into both neighbour sets.
//   - Total: every vertex that was ever named (explicitly via AddVertex or as
//     an edge endpoint) owns a neighbour set, possibly empty.
//   - Idempotent construction: re-adding a vertex or an edge is a no-op.
//   - Self-loops are stored as given (v appears in its own neighbour set);
//     they are not validated.
//   - Deterministic iteration: Vertices(), Neighbors() and AdjacencyList()
//     return IDs in ascending order. Neighbour sets are red-black tree sets
//     (gods treeset), so no per-call sorting is required.
//
// A Graph is built once and then read. All methods are safe for concurrent
// use; readers share a sync.RWMutex read lock.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//
// Complexity:
//
//   - AddVertex, HasVertex, VertexCount:  O(1)
//   - AddEdge, HasEdge:                   O(log d)
//   - Neighbors(v):                       O(d)
//   - Vertices():                         O(V log V)
//   - AdjacencyList():                    O(V + E)
package core
