package search

// Stats accumulates search diagnostics for a single Solutions call, for
// consumers that want to report on search effort (the cmd/chessplace
// --verbose flag) without the core package ever writing to stdout/stderr
// itself. A Stats value is only ever written by the single goroutine
// running the enumeration, so it needs no synchronization of its own.
type Stats struct {
	// Visited counts frontier nodes popped and examined, including
	// terminal (complete-board) nodes.
	Visited int
	// Pruned counts child states that were not generated because a
	// placement would violate the non-attacking invariant, or because a
	// placement or the skip option would leave too few cells for the
	// remaining pieces.
	Pruned int
}

// prune and visit are nil-receiver-safe so call sites never need to
// check whether a caller opted into WithStats.
func (s *Stats) prune() {
	if s != nil {
		s.Pruned++
	}
}

func (s *Stats) visit() {
	if s != nil {
		s.Visited++
	}
}

// WithStats attaches s to a Solutions call so the driver records search
// effort into it as the enumeration proceeds. s is updated live, in the
// same goroutine that sends boards on the output channel, and that
// goroutine keeps updating it after each send, so a consumer must read s
// only after the channel has closed or after stop has returned.
func WithStats(s *Stats) Option {
	return func(c *config) { c.stats = s }
}
