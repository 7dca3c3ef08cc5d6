// Package grid models a rectangular field of pipe tiles and answers the
// local questions every other package asks about it.
//
// What:
//
//   - Grid wraps a rectangular, row-major slice of Tile values parsed from text.
//   - Tile is a closed enumeration of the symbols . | - F 7 L J S.
//   - Position is a comparable (Row, Col) pair usable as a map key.
//   - Connections resolves which two cells a pipe tile joins.
//   - Render draws a grid with box-drawing glyphs and optional overlays.
//
// Coordinates:
//
//	Row grows downward, Col grows rightward. (0,0) is the top-left cell.
//
// Complexity:
//
//   - Parse:        O(W×H) time and memory.
//   - At, InBounds: O(1).
//   - Find, Start:  O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: a character outside the tile alphabet.
//   - ErrOutOfBounds: a lookup outside the grid.
//   - ErrNoStart, ErrMultipleStarts: start marker missing or repeated.
package grid
