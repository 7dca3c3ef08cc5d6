package grid

import "fmt"

// Connections returns the two cells a pipe tile at p joins.
// ok is false for tiles that are not pipes (Empty, Start, invalid values).
// The returned cells may lie outside any particular grid; callers check bounds.
// Complexity: O(1).
func Connections(t Tile, p Position) (Link, bool) {
	a, b, ok := t.Directions()
	if !ok {
		return Link{}, false
	}
	return Link{A: p.Step(a), B: p.Step(b)}, true
}

// Neighbors returns the 0–2 cells reachable from p by following the pipe
// shape of t. Empty and Start yield an empty list; Start's real connections
// are discovered by probing its four neighbours.
// Returns ErrUnknownTile for values outside the enumeration.
func Neighbors(t Tile, p Position) ([]Position, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTile, t)
	}
	link, ok := Connections(t, p)
	if !ok {
		return []Position{}, nil
	}
	return []Position{link.A, link.B}, nil
}

// Neighbors4 returns the four orthogonal neighbours of p in Cardinals order.
// Bounds are not checked.
func Neighbors4(p Position) [4]Position {
	var out [4]Position
	for i, d := range Cardinals {
		out[i] = p.Step(d)
	}
	return out
}
