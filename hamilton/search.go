package hamilton

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hamcircuit/core"
)

// searcher encapsulates state during one circuit search.
// path and visited always hold the same vertices.
type searcher struct {
	adj  map[int][]int // ascending neighbour snapshot
	n    int           // |V|
	opts Options

	path       []int
	visited    map[int]struct{}
	expansions int64
}

// FindCircuit searches g for a Hamiltonian circuit that starts and ends at start.
// It returns a Result with Found=false when every branch from start has been
// exhausted, or an error if the input is invalid or the search was aborted
// by context, budget or hook.
func FindCircuit(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 3. Empty graph is a defined no-circuit outcome; start is never touched.
	n := g.VertexCount()
	if n == 0 {
		return &Result{}, nil
	}

	// 4. Verify start before any search work.
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 5. Snapshot adjacency once; the graph is read-only during search.
	s := newSearcher(g.AdjacencyList(), n, start, sopts)

	var (
		found bool
		err   error
	)
	if sopts.ExplicitStack {
		found, err = s.runStack()
	} else {
		found, err = s.extend()
	}

	res := &Result{Expansions: s.expansions}
	if err != nil {
		return res, err
	}
	if found {
		res.Found = true
		res.Circuit = s.circuit()
	}

	return res, nil
}

// newSearcher seeds path and visited with the singleton {start}.
func newSearcher(adj map[int][]int, n, start int, opts Options) *searcher {
	s := &searcher{
		adj:     adj,
		n:       n,
		opts:    opts,
		path:    make([]int, 0, n+1),
		visited: make(map[int]struct{}, n),
	}
	s.path = append(s.path, start)
	s.visited[start] = struct{}{}

	return s
}

// extend is the recursive step. On a false return path and visited are
// exactly as they were on entry; on true they hold the full vertex order.
func (s *searcher) extend() (bool, error) {
	if err := s.checkContext(); err != nil {
		return false, err
	}

	// Checking-Complete
	if s.complete() {
		return true, nil
	}

	last := s.path[len(s.path)-1]
	var (
		nb    int
		found bool
		err   error
	)
	for _, nb = range s.adj[last] {
		if _, seen := s.visited[nb]; seen {
			continue
		}

		if err = s.push(nb); err != nil {
			return false, err
		}
		found, err = s.extend()
		if found {
			return true, nil
		}
		// Backtracking
		s.pop()
		if err != nil {
			return false, err
		}
	}

	return false, nil
}

// complete reports whether the path covers every vertex and closes back to
// its first vertex.
func (s *searcher) complete() bool {
	if len(s.path) != s.n {
		return false
	}
	first, last := s.path[0], s.path[len(s.path)-1]
	if s.n == 1 && !s.opts.StrictClosure {
		return true
	}

	return adjacent(s.adj[last], first)
}

// push tentatively extends the path with v, charging the budget and running
// the hook. On error nothing is left pushed.
func (s *searcher) push(v int) error {
	if s.opts.MaxExpansions >= 0 && s.expansions >= s.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, s.expansions)
	}
	s.expansions++

	s.visited[v] = struct{}{}
	s.path = append(s.path, v)

	if s.opts.OnExtend != nil {
		if err := s.opts.OnExtend(s.path); err != nil {
			s.pop()

			return fmt.Errorf("hamilton: OnExtend hook at %d: %w", v, err)
		}
	}

	return nil
}

// pop undoes the most recent push.
func (s *searcher) pop() {
	last := s.path[len(s.path)-1]
	s.path = s.path[:len(s.path)-1]
	delete(s.visited, last)
}

// circuit returns a detached copy of the path closed with its first vertex.
func (s *searcher) circuit() []int {
	out := make([]int, 0, len(s.path)+1)
	out = append(out, s.path...)

	return append(out, s.path[0])
}

func (s *searcher) checkContext() error {
	select {
	case <-s.opts.Ctx.Done():
		return fmt.Errorf("hamilton: search canceled: %w", s.opts.Ctx.Err())
	default:
		return nil
	}
}

// adjacent reports whether v is in the ascending slice nbs.
func adjacent(nbs []int, v int) bool {
	i := sort.SearchInts(nbs, v)

	return i < len(nbs) && nbs[i] == v
}
