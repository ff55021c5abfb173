package attack

import (
	"testing"

	"github.com/amoffat/chessplace/board"
	"github.com/amoffat/chessplace/piece"
	"github.com/stretchr/testify/assert"
)

func TestPosAttackedByBoard(t *testing.T) {
	b := board.Empty().
		WithPlaced(board.Cell{Row: 0, Col: 0}, piece.Queen).
		WithPlaced(board.Cell{Row: 0, Col: 4}, piece.King).
		WithPlaced(board.Cell{Row: 2, Col: 4}, piece.Rook).
		WithPlaced(board.Cell{Row: 3, Col: 0}, piece.Bishop).
		WithPlaced(board.Cell{Row: 4, Col: 4}, piece.Knight)

	notAttacked := []board.Cell{{Row: 3, Col: 1}, {Row: 4, Col: 2}, {Row: 4, Col: 3}}
	notAttackedSet := map[board.Cell]bool{}
	for _, c := range notAttacked {
		notAttackedSet[c] = true
		assert.False(t, PosAttackedByBoard(b, c.Row, c.Col), "%v should not be attacked", c)
	}

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell := board.Cell{Row: r, Col: c}
			if b.Contains(cell) || notAttackedSet[cell] {
				continue
			}
			assert.True(t, PosAttackedByBoard(b, r, c), "%v should be attacked", cell)
		}
	}
}

func TestPieceAttacksBoard(t *testing.T) {
	b := board.Empty().WithPlaced(board.Cell{Row: 5, Col: 5}, piece.King)

	assert.True(t, PieceAttacksBoard(piece.Rook, b, 5, 1))
	assert.False(t, PieceAttacksBoard(piece.Bishop, b, 5, 1))
	assert.True(t, PieceAttacksBoard(piece.Knight, b, 3, 4))
}
