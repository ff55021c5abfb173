// Package randomboard builds arbitrary random boards — pieces scattered
// at a given density, attacks and all — for fuzzing the attack engine
// and the formatter. It has nothing to do with search.Solutions and
// never produces a board guaranteed to be non-attacking; it is not a
// substitute for the enumerator and is never used in its correctness
// tests. Grounded in the Python original's chess_util.make_random_board.
package randomboard

import (
	"math/rand"

	"github.com/amoffat/chessplace/board"
	"github.com/amoffat/chessplace/piece"
	"github.com/pkg/errors"
)

// ErrInvalidDimensions is returned when rows or cols is smaller than 1.
var ErrInvalidDimensions = errors.New("randomboard: invalid board dimensions")

// ErrInvalidDensity is returned when density is outside [0, 1].
var ErrInvalidDensity = errors.New("randomboard: invalid density")

// Build scatters pieces of random kind across an rows x cols board: each
// cell is independently occupied with probability density, and an
// occupied cell's kind is drawn uniformly from piece.AllKinds. The
// result may contain attacking pairs; callers that need a legal
// placement should use search.Solutions instead.
func Build(rng *rand.Rand, rows, cols int, density float64) (board.Board, error) {
	if rows < 1 || cols < 1 {
		return board.Board{}, errors.Wrapf(ErrInvalidDimensions, "%dx%d", rows, cols)
	}
	if density < 0 || density > 1 {
		return board.Board{}, errors.Wrapf(ErrInvalidDensity, "%v", density)
	}

	kinds := piece.AllKinds()
	b := board.Empty()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() >= density {
				continue
			}
			k := kinds[rng.Intn(len(kinds))]
			b = b.WithPlaced(board.Cell{Row: r, Col: c}, k)
		}
	}
	return b, nil
}
