// Package format renders a board.Board as human-readable text, for the
// CLI collaborator. Nothing in here is exercised by the search package
// itself; it exists purely to turn a Board into something a terminal
// user can read. Grounded in the Python original's chess_util.format_board
// and cmd_chess_util.mark_board_under_attack_cells.
package format

import (
	"strings"

	"github.com/amoffat/chessplace/attack"
	"github.com/amoffat/chessplace/board"
)

// Format renders an rows x cols board as a bordered grid: a separator
// line of '-' repeated cols*4+1 times, then for each row a line of the
// form "| a | b | c |" where each cell's contents is its piece symbol or
// a single space, followed by another separator line.
func Format(b board.Board, rows, cols int) string {
	return render(rows, cols, func(r, c int) byte {
		if k, ok := b.Get(board.Cell{Row: r, Col: c}); ok {
			return k.Symbol()
		}
		return ' '
	})
}

// MarkAttacked renders the same bordered grid as Format, but shows 'x'
// in place of the blank for every empty cell that is attacked by some
// piece on the board. Occupied cells always show their piece's symbol.
func MarkAttacked(b board.Board, rows, cols int) string {
	return render(rows, cols, func(r, c int) byte {
		cell := board.Cell{Row: r, Col: c}
		if k, ok := b.Get(cell); ok {
			return k.Symbol()
		}
		if attack.PosAttackedByBoard(b, r, c) {
			return 'x'
		}
		return ' '
	})
}

func render(rows, cols int, cellAt func(r, c int) byte) string {
	separator := strings.Repeat("-", cols*4+1)

	var sb strings.Builder
	sb.WriteString(separator)
	for r := 0; r < rows; r++ {
		sb.WriteByte('\n')
		sb.WriteString("| ")
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteByte(cellAt(r, c))
		}
		sb.WriteString(" |\n")
		sb.WriteString(separator)
	}
	return sb.String()
}
