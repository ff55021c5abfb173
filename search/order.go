package search

import (
	"math/big"

	"github.com/amoffat/chessplace/board"
)

// OrderCheckResult reports the findings of CheckOrderAndUniqueness.
type OrderCheckResult struct {
	Count             int
	StrictlyOrdered   bool
	Unique            bool
	FirstOutOfOrderAt int // -1 if every key was strictly below the previous one
	FirstDuplicateAt  int // -1 if no key repeated
}

// CheckOrderAndUniqueness drains boards (expected to come from the
// canonical StrategyStack order) and verifies two properties: that
// CanonicalKey strictly decreases from one board to the next, and that
// no two boards share a key. Grounded in the Python original's
// check_board_gen_order_uniqueness, which performs the same pass over a
// generated sequence of boards.
func CheckOrderAndUniqueness(boards <-chan board.Board, rows, cols int) OrderCheckResult {
	res := OrderCheckResult{FirstOutOfOrderAt: -1, FirstDuplicateAt: -1, StrictlyOrdered: true, Unique: true}
	seen := map[string]struct{}{}

	var prevKey *big.Int
	idx := 0
	for b := range boards {
		key := b.CanonicalKey(rows, cols)
		keyStr := key.String()

		if _, dup := seen[keyStr]; dup {
			if res.FirstDuplicateAt == -1 {
				res.FirstDuplicateAt = idx
			}
			res.Unique = false
		}
		seen[keyStr] = struct{}{}

		if prevKey != nil && key.Cmp(prevKey) >= 0 {
			if res.FirstOutOfOrderAt == -1 {
				res.FirstOutOfOrderAt = idx
			}
			res.StrictlyOrdered = false
		}
		prevKey = key

		idx++
	}

	res.Count = idx
	return res
}
