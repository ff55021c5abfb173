// Package board represents partial and complete chess-piece placements.
// A Board is copy-on-write: WithPlaced never mutates the receiver, so a
// search frontier can hold many near-identical boards that share their
// entry list (the Contains/Get index map is copied per board), the same way the teacher's powerset frontier shares
// indices list tails between sibling nodes.
package board

import (
	"math/big"

	"github.com/amoffat/chessplace/piece"
	"github.com/amoffat/linkedlist"
)

// Cell is a zero-based (row, col) position on the board.
type Cell struct {
	Row, Col int
}

// Index returns the row-major linearization row*cols+col, the total
// order over cells the search walks in.
func (c Cell) Index(cols int) int {
	return c.Row*cols + c.Col
}

// CellAt inverts Index: given a cell index and the board's column count,
// it returns the corresponding (row, col) cell.
func CellAt(index, cols int) Cell {
	return Cell{Row: index / cols, Col: index % cols}
}

// Entry pairs an occupied cell with the kind of piece placed there.
type Entry struct {
	Cell Cell
	Kind piece.Kind
}

// Board is a finite mapping from cell to piece kind, with at most one
// kind per cell. The zero value is not a valid Board; use Empty.
type Board struct {
	entries *linkedlist.List    // persistent list of Entry, most recent first
	index   map[Cell]piece.Kind // copy-on-write accelerator for Contains/Get
}

// Empty returns a Board with no pieces placed.
func Empty() Board {
	return Board{entries: linkedlist.New(nil), index: map[Cell]piece.Kind{}}
}

// Contains reports whether cell is occupied.
func (b Board) Contains(cell Cell) bool {
	_, ok := b.index[cell]
	return ok
}

// Get returns the kind occupying cell, if any.
func (b Board) Get(cell Cell) (piece.Kind, bool) {
	k, ok := b.index[cell]
	return k, ok
}

// Len returns the number of occupied cells.
func (b Board) Len() int {
	return len(b.index)
}

// WithPlaced returns a new Board with k placed at cell, leaving the
// receiver untouched. The caller is responsible for ensuring cell is not
// already occupied and that placing k there does not violate the
// non-attacking invariant; WithPlaced itself performs no such checks,
// mirroring the teacher's copyState/copyMap helpers which only extend
// state, never validate it.
func (b Board) WithPlaced(cell Cell, k piece.Kind) Board {
	newIndex := make(map[Cell]piece.Kind, len(b.index)+1)
	for c, kk := range b.index {
		newIndex[c] = kk
	}
	newIndex[cell] = k
	return Board{
		entries: b.entries.Push(Entry{Cell: cell, Kind: k}),
		index:   newIndex,
	}
}

// Entries returns the board's occupied cells in no particular order.
func (b Board) Entries() []Entry {
	out := make([]Entry, 0, len(b.index))
	for n := b.entries; n != nil && n.Value() != nil; n = n.Next() {
		out = append(out, n.Value().(Entry))
	}
	return out
}

// CanonicalKey computes the positional encoding of §3: for each occupied
// cell with kind-id k, cellOrd = rows*cols - cellIndex and symbolValue =
// NumKinds - k contribute symbolValue * (NumKinds+1)^cellOrd to the sum.
// Used for uniqueness and ordering tests; a *big.Int is used
// unconditionally since (NumKinds+1)^(rows*cols) overflows a 64-bit
// accumulator for boards of even modest size.
func (b Board) CanonicalKey(rows, cols int) *big.Int {
	base := big.NewInt(int64(piece.NumKinds + 1))
	total := rows * cols

	key := new(big.Int)
	term := new(big.Int)
	pow := new(big.Int)
	for _, e := range b.Entries() {
		cellOrd := total - e.Cell.Index(cols)
		symbolValue := int64(piece.NumKinds - e.Kind.ID())

		pow.Exp(base, big.NewInt(int64(cellOrd)), nil)
		term.Mul(pow, big.NewInt(symbolValue))
		key.Add(key, term)
	}
	return key
}
