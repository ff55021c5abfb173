// Package search enumerates every way to place a fixed multiset of
// non-attacking chess pieces on an R x C board, lazily, as a stream of
// board.Board values pulled off a channel. Three interchangeable
// strategies walk the same frontier in different orders; all three visit
// the same set of complete boards.
package search

import (
	"sync"

	"github.com/amoffat/chessplace/board"
	"github.com/amoffat/chessplace/piece"
	"github.com/pkg/errors"
)

// Strategy selects which traversal order Solutions uses to walk the
// frontier. All three visit the same set of complete boards; only the
// order they arrive in the output channel differs.
type Strategy int

const (
	// StrategyStack is the canonical order: an explicit stack, place
	// children visited ascending kind-id before the skip child. This is
	// the order §8's ordering property is defined against, and the
	// default.
	StrategyStack Strategy = iota
	// StrategyRecursive walks the same canonical order via the Go call
	// stack instead of an explicit one.
	StrategyRecursive
	// StrategyQueue visits the same frontier breadth-first via a FIFO
	// queue; the resulting order is not the canonical one.
	StrategyQueue
)

type config struct {
	strategy Strategy
	stats    *Stats
}

// Option configures a Solutions call.
type Option func(*config)

// WithStrategy selects the traversal strategy. The default is StrategyStack.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// Solutions enumerates every non-attacking placement of the pieces named
// in counts (a map from piece symbol to how many of that piece to place)
// onto an r x c board. It returns a channel of boards, a stop function,
// and an error from the boundary check.
//
// The returned channel is unbuffered and lazy: the search blocks on each
// send, so it works at most one board ahead of the reader. Callers that do not
// drain the channel to completion must call stop to release the
// background goroutine; calling stop after the channel has already been
// drained and closed is safe.
//
// An error return means no enumeration was started at all, and the
// channel and stop function are nil; it is always distinguishable from a
// legitimately empty solution set, which instead yields a channel that
// closes having sent nothing.
func Solutions(r, c int, counts map[byte]int, opts ...Option) (<-chan board.Board, func(), error) {
	p, root, err := validate(r, c, counts)
	if err != nil {
		return nil, nil, err
	}

	cfg := config{strategy: StrategyStack}
	for _, opt := range opts {
		opt(&cfg)
	}
	p.stats = cfg.stats

	out := make(chan board.Board)
	stop := make(chan struct{})
	var once sync.Once
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		defer close(out)
		switch cfg.strategy {
		case StrategyRecursive:
			runRecursive(p, root, out, stop)
		case StrategyQueue:
			runQueue(p, root, out, stop)
		default:
			runStack(p, root, out, stop)
		}
	}()

	stopFn := func() {
		once.Do(func() { close(stop) })
		wg.Wait()
	}

	return out, stopFn, nil
}

// validate checks the boundary conditions of §7 and builds the initial
// frontier state for a valid problem.
func validate(r, c int, counts map[byte]int) (problem, SearchState, error) {
	if r < 2 || c < 2 {
		return problem{}, SearchState{}, errors.Wrapf(ErrInvalidDimensions, "%dx%d", r, c)
	}

	var remaining [piece.NumKinds]int
	sum := 0
	for sym, n := range counts {
		k, err := piece.BySymbol(sym)
		if err != nil {
			return problem{}, SearchState{}, errors.Wrapf(ErrUnknownSymbol, "%q", sym)
		}
		if n < 0 {
			return problem{}, SearchState{}, errors.Wrapf(ErrInvalidCount, "%q: %d", sym, n)
		}
		remaining[k.ID()] = n
		sum += n
	}

	total := r * c
	if sum > total {
		return problem{}, SearchState{}, errors.Wrapf(ErrInvalidCount, "%d pieces on %d cells", sum, total)
	}

	p := problem{rows: r, cols: c, total: total, stats: nil}
	root := SearchState{
		Board:        board.Empty(),
		Remaining:    remaining,
		RemainingSum: sum,
	}
	return p, root, nil
}
