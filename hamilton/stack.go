package hamilton

// frame is one level of the explicit search stack: the path vertex it
// extends from is implied by its depth, next indexes the neighbour to try.
type frame struct {
	entered bool
	next    int
}

// runStack is the iterative form of extend. It visits neighbours in the same
// order and finds the same circuit; recursion depth is replaced by a slice
// of frames so very long paths do not grow the goroutine stack.
//
// Invariant: len(stack) == len(s.path) while the search is running.
func (s *searcher) runStack() (bool, error) {
	stack := make([]frame, 1, s.n)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Checking-Complete happens once per frame, on entry.
		if !top.entered {
			top.entered = true
			if err := s.checkContext(); err != nil {
				s.unwind()

				return false, err
			}
			if s.complete() {
				return true, nil
			}
		}

		nbs := s.adj[s.path[len(s.path)-1]]
		advanced := false
		for top.next < len(nbs) {
			nb := nbs[top.next]
			top.next++
			if _, seen := s.visited[nb]; seen {
				continue
			}
			if err := s.push(nb); err != nil {
				s.unwind()

				return false, err
			}
			stack = append(stack, frame{})
			advanced = true
			break
		}

		if !advanced {
			// Backtracking: drop the frame and undo the push that created it.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				s.pop()
			}
		}
	}

	return false, nil
}

// unwind pops every extension, leaving only the start vertex.
func (s *searcher) unwind() {
	for len(s.path) > 1 {
		s.pop()
	}
}
