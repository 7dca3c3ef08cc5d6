package area

import (
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// Classify splits the non-loop cells of g into those enclosed by l and
// those outside it.
//
// Behavior:
//  1. Collect the right-hand seeds of every step of l.
//  2. Flood all seeds at once into the right-hand region.
//  3. Every other non-loop cell forms the left-hand region.
//  4. If l runs clockwise the right-hand region is Enclosed, otherwise Outside.
//
// Returns ErrNilGrid, ErrNilLoop, or ErrGridMismatch for invalid input.
// Complexity: O(W·H) time and memory.
func Classify(g *grid.Grid, l *loop.Loop) (*Result, error) {
	seeds, err := RightHandSeeds(g, l)
	if err != nil {
		return nil, err
	}
	flooded := Flood(g, l, seeds)

	rest := make(grid.Set, g.Len()-l.Len()-flooded.Len())
	for i := 0; i < g.Len(); i++ {
		p := g.Coordinate(i)
		if l.Contains(p) || flooded.Has(p) {
			continue
		}
		rest.Add(p)
	}

	res := &Result{Flooded: flooded}
	if l.Clockwise() {
		res.FloodedSide = Enclosed
		res.Enclosed, res.Outside = flooded, rest
	} else {
		res.FloodedSide = Outside
		res.Enclosed, res.Outside = rest, flooded
	}
	return res, nil
}
