package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownTile indicates a symbol outside the tile alphabet.
	ErrUnknownTile = errors.New("grid: unknown tile")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNoStart indicates the grid holds no start marker.
	ErrNoStart = errors.New("grid: no start tile found")
	// ErrMultipleStarts indicates the grid holds more than one start marker.
	ErrMultipleStarts = errors.New("grid: more than one start tile")
)
