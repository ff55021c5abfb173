package search

import "github.com/pkg/errors"

// Sentinel errors for the three ways a problem can fail the boundary
// check in Solutions, before any enumeration starts. Wrap these with
// errors.Wrapf at call sites that need extra context; compare against
// them with errors.Is.
var (
	// ErrInvalidDimensions is returned when R < 2 or C < 2.
	ErrInvalidDimensions = errors.New("search: invalid board dimensions")
	// ErrInvalidCount is returned when a count is negative, or the sum
	// of all counts exceeds the number of cells on the board.
	ErrInvalidCount = errors.New("search: invalid piece count")
	// ErrUnknownSymbol is returned when counts names a symbol that is
	// not one of 'K', 'Q', 'B', 'R', 'N'.
	ErrUnknownSymbol = errors.New("search: unknown piece symbol")
)
