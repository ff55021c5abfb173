package format

import (
	"strings"
	"testing"

	"github.com/amoffat/chessplace/board"
	"github.com/amoffat/chessplace/piece"
	"github.com/stretchr/testify/assert"
)

func TestFormatEmptyBoardLayout(t *testing.T) {
	got := Format(board.Empty(), 2, 2)
	lines := strings.Split(got, "\n")
	a := assert.New(t)
	a.Len(lines, 5)
	a.Equal("---------", lines[0])
	a.Equal("|   |   |", lines[1])
	a.Equal("---------", lines[2])
	a.Equal("|   |   |", lines[3])
	a.Equal("---------", lines[4])
}

func TestFormatPlacedPieces(t *testing.T) {
	b := board.Empty().
		WithPlaced(board.Cell{Row: 0, Col: 0}, piece.King).
		WithPlaced(board.Cell{Row: 1, Col: 1}, piece.Queen)
	got := Format(b, 2, 2)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "| K |   |", lines[1])
	assert.Equal(t, "|   | Q |", lines[3])
}

func TestMarkAttackedMarksEmptyAttackedCells(t *testing.T) {
	b := board.Empty().WithPlaced(board.Cell{Row: 0, Col: 0}, piece.Rook)
	got := MarkAttacked(b, 2, 2)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "| R | x |", lines[1])
	assert.Equal(t, "| x |   |", lines[3])
}

func TestMarkAttackedLeavesOccupiedCellsAsTheirSymbol(t *testing.T) {
	b := board.Empty().
		WithPlaced(board.Cell{Row: 0, Col: 0}, piece.Rook).
		WithPlaced(board.Cell{Row: 0, Col: 1}, piece.Knight)
	got := MarkAttacked(b, 2, 2)
	assert.Contains(t, got, "| R | N |")
}
