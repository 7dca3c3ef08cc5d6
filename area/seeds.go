package area

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// SeedsToRight returns the cells immediately to the right of travel when
// moving from cur to the 4-adjacent cell next, whose tile is nextTile.
// The first cell is beside next; when next is a bend turning away from the
// right-hand side, the cell past the outer corner is added as well.
// Returns nil if cur and next are not 4-adjacent.
//
//	travelling right: below next; also right of next into J
//	travelling left:  above next; also left of next into F
//	travelling down:  left of next; also below next into L
//	travelling up:    right of next; also above next into 7
func SeedsToRight(cur, next grid.Position, nextTile grid.Tile) []grid.Position {
	switch next.Sub(cur) {
	case grid.Right:
		out := []grid.Position{next.Step(grid.Down)}
		if nextTile == grid.BottomRight {
			out = append(out, next.Step(grid.Right))
		}
		return out
	case grid.Left:
		out := []grid.Position{next.Step(grid.Up)}
		if nextTile == grid.TopLeft {
			out = append(out, next.Step(grid.Left))
		}
		return out
	case grid.Down:
		out := []grid.Position{next.Step(grid.Left)}
		if nextTile == grid.BottomLeft {
			out = append(out, next.Step(grid.Down))
		}
		return out
	case grid.Up:
		out := []grid.Position{next.Step(grid.Right)}
		if nextTile == grid.TopRight {
			out = append(out, next.Step(grid.Up))
		}
		return out
	}
	return nil
}

// RightHandSeeds walks l as a cyclic sequence of steps and collects the
// in-bounds, non-loop cells to the right of each step, deduplicated in order
// of first appearance. The start marker counts as its resolved shape.
// Complexity: O(L).
func RightHandSeeds(g *grid.Grid, l *loop.Loop) ([]grid.Position, error) {
	if err := validate(g, l); err != nil {
		return nil, err
	}

	seen := grid.NewSet()
	var seeds []grid.Position
	for i := 0; i < l.Len(); i++ {
		cur, next := l.At(i), l.At(i+1)
		tile, err := l.TileAt(g, next)
		if err != nil {
			return nil, fmt.Errorf("area: %w", err)
		}
		for _, p := range SeedsToRight(cur, next, tile) {
			if !g.InBounds(p) || l.Contains(p) {
				continue
			}
			if seen.Add(p) {
				seeds = append(seeds, p)
			}
		}
	}
	return seeds, nil
}

// validate rejects nil arguments and loops traced on a different grid.
func validate(g *grid.Grid, l *loop.Loop) error {
	if g == nil {
		return ErrNilGrid
	}
	if l == nil {
		return ErrNilLoop
	}
	if !l.Fits(g) {
		return ErrGridMismatch
	}
	return nil
}
