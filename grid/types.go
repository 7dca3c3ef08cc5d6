package grid

import "fmt"

// Tile is the shape of a single grid cell.
type Tile uint8

const (
	// Empty is ground with no pipe (.).
	Empty Tile = iota
	// Vertical joins up and down (|).
	Vertical
	// Horizontal joins left and right (-).
	Horizontal
	// TopLeft is the top-left corner of a box, joining down and right (F).
	TopLeft
	// TopRight is the top-right corner of a box, joining down and left (7).
	TopRight
	// BottomLeft is the bottom-left corner of a box, joining up and right (L).
	BottomLeft
	// BottomRight is the bottom-right corner of a box, joining up and left (J).
	BottomRight
	// Start marks the cell the loop passes through; its shape is inferred (S).
	Start

	numTiles
)

// symbols maps each Tile to its input character.
var symbols = [numTiles]byte{
	Empty:       '.',
	Vertical:    '|',
	Horizontal:  '-',
	TopLeft:     'F',
	TopRight:    '7',
	BottomLeft:  'L',
	BottomRight: 'J',
	Start:       'S',
}

// glyphs maps each Tile to the rune used when rendering.
var glyphs = [numTiles]rune{
	Empty:       ' ',
	Vertical:    '║',
	Horizontal:  '═',
	TopLeft:     '╔',
	TopRight:    '╗',
	BottomLeft:  '╚',
	BottomRight: '╝',
	Start:       'S',
}

// Direction is a unit step along one axis.
type Direction struct {
	DRow, DCol int
}

var (
	// Down moves one row toward the bottom.
	Down = Direction{DRow: 1}
	// Right moves one column toward the right.
	Right = Direction{DCol: 1}
	// Up moves one row toward the top.
	Up = Direction{DRow: -1}
	// Left moves one column toward the left.
	Left = Direction{DCol: -1}
)

// Cardinals lists the four directions in probe order: down, right, up, left.
var Cardinals = [4]Direction{Down, Right, Up, Left}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// IsUnit reports whether d is one of the four cardinal directions.
func (d Direction) IsUnit() bool {
	return (d.DRow == 0) != (d.DCol == 0) &&
		d.DRow >= -1 && d.DRow <= 1 && d.DCol >= -1 && d.DCol <= 1
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	}
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// Position is a (row, column) pair. It is comparable and may be used as a map key.
type Position struct {
	Row, Col int
}

// Step returns the position one unit away from p in direction d.
func (p Position) Step(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Sub returns the offset from q to p as a Direction value.
// The result is a unit direction only when p and q are 4-adjacent.
func (p Position) Sub(q Position) Direction {
	return Direction{DRow: p.Row - q.Row, DCol: p.Col - q.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Link is the pair of cells a pipe tile joins.
type Link struct {
	A, B Position
}

// Has reports whether p is one of the two linked cells.
func (l Link) Has(p Position) bool {
	return l.A == p || l.B == p
}

// Other returns the linked cell that is not p.
// ok is false when p is not part of the link.
func (l Link) Other(p Position) (Position, bool) {
	switch p {
	case l.A:
		return l.B, true
	case l.B:
		return l.A, true
	}
	return Position{}, false
}

// Grid is an immutable rectangular field of tiles, stored row-major.
// Height and Width define dimensions; tiles[Index(p)] holds the tile at p.
type Grid struct {
	Height, Width int
	tiles         []Tile
}
