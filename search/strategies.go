package search

import "github.com/amoffat/chessplace/board"

// runStack walks the frontier with an explicit stack, the canonical
// order: children are pushed in reverse so that popping them delivers
// place children ascending by kind-id, then the skip child last.
// Grounded in the teacher's FixedSize/VariableSize goroutine-plus-stopper
// pattern for the channel and cancellation plumbing, and in the stack
// loop of the Python original's find_solutions_s for the traversal
// itself.
func runStack(p problem, root SearchState, out chan<- board.Board, stop <-chan struct{}) {
	stack := []SearchState{root}

	for len(stack) > 0 {
		select {
		case <-stop:
			return
		default:
		}

		n := len(stack) - 1
		s := stack[n]
		stack = stack[:n]
		p.stats.visit()

		if s.isTerminal() {
			select {
			case out <- s.Board:
			case <-stop:
				return
			}
			continue
		}

		kids := children(p, s)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

// runRecursive walks the same canonical order as runStack, but via the
// Go call stack: children are visited in forward order directly, which
// already matches the canonical order, so no reversal is needed.
// Grounded in the Python original's find_solutions_r.
func runRecursive(p problem, root SearchState, out chan<- board.Board, stop <-chan struct{}) {
	var visit func(s SearchState) (cancelled bool)
	visit = func(s SearchState) bool {
		select {
		case <-stop:
			return true
		default:
		}
		p.stats.visit()

		if s.isTerminal() {
			select {
			case out <- s.Board:
				return false
			case <-stop:
				return true
			}
		}

		for _, child := range children(p, s) {
			if visit(child) {
				return true
			}
		}
		return false
	}
	visit(root)
}

// runQueue walks the frontier breadth-first with a FIFO queue. It visits
// the same set of complete boards as runStack and runRecursive, in a
// different order; nothing downstream should rely on that order.
// Grounded in the Python original's find_solutions_q.
func runQueue(p problem, root SearchState, out chan<- board.Board, stop <-chan struct{}) {
	queue := []SearchState{root}

	for len(queue) > 0 {
		select {
		case <-stop:
			return
		default:
		}

		s := queue[0]
		queue = queue[1:]
		p.stats.visit()

		if s.isTerminal() {
			select {
			case out <- s.Board:
			case <-stop:
				return
			}
			continue
		}

		queue = append(queue, children(p, s)...)
	}
}
