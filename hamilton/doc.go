// Package hamilton searches a core.Graph for a Hamiltonian circuit by
// exhaustive depth-first backtracking.
//
// What:
//
//   - FindCircuit(g, start, opts...) extends a path from start one neighbour
//     at a time, in ascending vertex order. When the path covers every vertex
//     and its last vertex is adjacent to start, the path closed with start is
//     returned. Otherwise the most recent extension is undone and the next
//     neighbour is tried. The first circuit found wins.
//   - ValidateCircuit(g, c) checks closure, coverage and adjacency of a
//     candidate circuit.
//
// The search owns exactly one path slice and one visited set. Every push is
// paired with a pop on every non-success exit (not found, budget, cancel,
// hook error), so sibling branches always start from a clean prefix.
//
// State machine per call:
//
//	Extending ─► Checking-Complete ─► Done-Found
//	    ▲               │
//	    └── Backtracking◄┘ ─► Done-Exhausted (all branches from start tried)
//
// Policies:
//
//   - Empty graph: not found, no error, start is never looked up.
//   - Single vertex: trivially a circuit [v, v]. WithStrictClosure requires a
//     self-loop instead.
//   - Two vertices joined by one edge: [u, v, u]; the closing step reuses
//     the only edge, exactly as the plain adjacency test allows.
//
// Options:
//
//   - WithContext(ctx)          cancellation/deadline, checked on each frame entry.
//   - WithMaxExpansions(n)      node budget; ErrBudgetExceeded past n extensions.
//   - WithExplicitStack()       iterative frame stack instead of recursion.
//   - WithStrictClosure()       single vertex needs a self-loop to close.
//   - WithOnExtend(fn)          hook after each tentative extension.
//
// Complexity:
//
//   - Time:   O(V!) worst case (bounded by Δ^V for max degree Δ); no memoization.
//   - Memory: O(V + E) for the adjacency snapshot, O(V) for path, visited and
//     the recursion (or explicit) stack.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in a non-empty graph
//   - ErrBudgetExceeded       WithMaxExpansions budget used up
//   - context errors          search canceled via WithContext
//   - hook errors             propagated from OnExtend
//   - ErrInvalidCircuit       ValidateCircuit rejected a candidate
package hamilton
