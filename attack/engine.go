// Package attack answers pure attack queries against a board.Board: is a
// cell attacked by anything already on the board, and would a candidate
// piece attack anything already on the board. Both queries are O(|board|)
// and short-circuit on the first hit.
package attack

import (
	"github.com/amoffat/chessplace/board"
	"github.com/amoffat/chessplace/piece"
)

// PosAttackedByBoard reports whether some piece already on b attacks the
// cell (r, c). b is assumed not to contain (r, c) itself; the zero
// displacement case is handled safely regardless (see piece.Kind.Attacks).
func PosAttackedByBoard(b board.Board, r, c int) bool {
	for _, e := range b.Entries() {
		if e.Kind.Attacks(r-e.Cell.Row, c-e.Cell.Col) {
			return true
		}
	}
	return false
}

// PieceAttacksBoard reports whether a piece of kind k placed at (r, c)
// would attack some piece already on b.
func PieceAttacksBoard(k piece.Kind, b board.Board, r, c int) bool {
	for _, e := range b.Entries() {
		if k.Attacks(e.Cell.Row-r, e.Cell.Col-c) {
			return true
		}
	}
	return false
}
