package search

import (
	"github.com/amoffat/chessplace/attack"
	"github.com/amoffat/chessplace/board"
	"github.com/amoffat/chessplace/piece"
)

// SearchState is one frontier node: a partial placement, how many pieces
// of each kind are still unplaced, and the next cell index eligible for
// a decision (place or skip).
type SearchState struct {
	Board         board.Board
	Remaining     [piece.NumKinds]int
	RemainingSum  int
	NextCellIndex int
}

func (s SearchState) isTerminal() bool {
	return s.RemainingSum == 0
}

// problem is the validated, immutable shape of a single Solutions call.
type problem struct {
	rows, cols int
	total      int
	stats      *Stats
}

// children returns s's child frontier states in canonical order: the
// place children first, in ascending kind-id, followed by the skip
// child last. A place child that happens to already be complete is
// still returned like any other child; its completeness is discovered
// by the terminal check the next time it is processed, not here. This
// mirrors the stack-based original, which always pushes the successor
// state regardless of whether it finishes the placement.
func children(p problem, s SearchState) []SearchState {
	cellIdx := s.NextCellIndex
	cell := board.CellAt(cellIdx, p.cols)

	var out []SearchState

	if !attack.PosAttackedByBoard(s.Board, cell.Row, cell.Col) {
		for _, k := range piece.AllKinds() {
			id := k.ID()
			if s.Remaining[id] < 0 {
				panic("search: negative remaining count")
			}
			if s.Remaining[id] == 0 {
				continue
			}
			if attack.PieceAttacksBoard(k, s.Board, cell.Row, cell.Col) {
				p.stats.prune()
				continue
			}
			newSum := s.RemainingSum - 1
			if cellIdx >= p.total-newSum {
				p.stats.prune()
				continue
			}
			newRemaining := s.Remaining
			newRemaining[id]--
			out = append(out, SearchState{
				Board:         s.Board.WithPlaced(cell, k),
				Remaining:     newRemaining,
				RemainingSum:  newSum,
				NextCellIndex: cellIdx + 1,
			})
		}
	} else {
		p.stats.prune()
	}

	if cellIdx < p.total-s.RemainingSum {
		out = append(out, SearchState{
			Board:         s.Board,
			Remaining:     s.Remaining,
			RemainingSum:  s.RemainingSum,
			NextCellIndex: cellIdx + 1,
		})
	} else {
		p.stats.prune()
	}

	return out
}
