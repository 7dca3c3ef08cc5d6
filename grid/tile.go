package grid

import "fmt"

// ParseTile maps an input character to its Tile.
// Returns ErrUnknownTile for any character outside ". | - F 7 L J S".
func ParseTile(c byte) (Tile, error) {
	for t, s := range symbols {
		if s == c {
			return Tile(t), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownTile, c)
}

// Valid reports whether t is a member of the enumeration.
func (t Tile) Valid() bool {
	return t < numTiles
}

// IsPipe reports whether t joins two neighbouring cells.
// Empty and Start are not pipes; Start's connections are inferred by the tracer.
func (t Tile) IsPipe() bool {
	_, _, ok := t.Directions()
	return ok
}

// String returns the input symbol for t.
func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
	return string(symbols[t])
}

// Glyph returns the box-drawing rune used to render t.
func (t Tile) Glyph() rune {
	if !t.Valid() {
		return '?'
	}
	return glyphs[t]
}

// Directions returns the two directions a pipe tile opens toward, in the
// order used by Neighbors. ok is false for Empty, Start, and invalid tiles.
func (t Tile) Directions() (a, b Direction, ok bool) {
	switch t {
	case Vertical:
		return Down, Up, true
	case Horizontal:
		return Right, Left, true
	case TopLeft:
		return Right, Down, true
	case TopRight:
		return Left, Down, true
	case BottomLeft:
		return Right, Up, true
	case BottomRight:
		return Left, Up, true
	}
	return Direction{}, Direction{}, false
}

// Connects reports whether t opens toward d.
func (t Tile) Connects(d Direction) bool {
	a, b, ok := t.Directions()
	return ok && (a == d || b == d)
}

// TileFor returns the pipe tile opening toward both a and b.
// ok is false if a and b are equal or either is not a cardinal direction.
func TileFor(a, b Direction) (Tile, bool) {
	for t := Vertical; t <= BottomRight; t++ {
		if a != b && t.Connects(a) && t.Connects(b) {
			return t, true
		}
	}
	return Empty, false
}
