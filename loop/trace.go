package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
)

// tracer encapsulates the state shared by the walk attempts.
type tracer struct {
	grid  *grid.Grid
	start grid.Position
	limit int
}

// Trace finds the loop of connected pipes passing through g's start marker.
// Neighbours of start are probed in the order set by opts (down, right, up,
// left by default); the first one whose walk returns to start defines the
// loop. Returns ErrNilGrid, ErrOptionViolation, grid.ErrNoStart,
// grid.ErrMultipleStarts, or ErrNoLoop.
func Trace(g *grid.Grid, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.Start()
	if err != nil {
		return nil, fmt.Errorf("loop: %w", err)
	}

	t := &tracer{grid: g, start: start, limit: g.Len()}
	for _, d := range o.Probe {
		first := start.Step(d)
		if !g.InBounds(first) {
			continue
		}
		if cells, ok := t.walk(first); ok {
			return newLoop(cells)
		}
	}

	return nil, fmt.Errorf("%w: start %v", ErrNoLoop, start)
}

// walk follows pipes from start through first until it returns to start.
// It reports false when the path breaks, leaves the grid, or runs longer
// than the grid has cells.
func (t *tracer) walk(first grid.Position) ([]grid.Position, bool) {
	cells := []grid.Position{t.start}
	previous, current := t.start, first
	for current != t.start {
		tile, err := t.grid.At(current)
		if err != nil {
			return nil, false
		}
		link, ok := grid.Connections(tile, current)
		if !ok {
			return nil, false
		}
		next, ok := link.Other(previous)
		if !ok {
			return nil, false
		}
		cells = append(cells, current)
		if len(cells) > t.limit {
			return nil, false
		}
		previous, current = current, next
	}
	return cells, true
}

// newLoop indexes cells and resolves the shape hidden under the start marker
// from the directions of its two loop neighbours.
func newLoop(cells []grid.Position) (*Loop, error) {
	start := cells[0]
	shape, ok := grid.TileFor(cells[1].Sub(start), cells[len(cells)-1].Sub(start))
	if !ok {
		// start's two loop neighbours must lie in distinct directions
		return nil, fmt.Errorf("%w: start %v", ErrNoLoop, start)
	}
	index := make(map[grid.Position]int, len(cells))
	for i, p := range cells {
		index[p] = i
	}
	return &Loop{cells: cells, index: index, startTile: shape}, nil
}

// Len returns the number of cells on the loop.
func (l *Loop) Len() int {
	return len(l.cells)
}

// Start returns the start cell, which is always the first loop cell.
func (l *Loop) Start() grid.Position {
	return l.cells[0]
}

// StartTile returns the pipe shape hidden under the start marker.
func (l *Loop) StartTile() grid.Tile {
	return l.startTile
}

// Cells returns a copy of the loop cells in traversal order.
func (l *Loop) Cells() []grid.Position {
	return append([]grid.Position(nil), l.cells...)
}

// At returns the i-th loop cell, wrapping cyclically in both directions.
func (l *Loop) At(i int) grid.Position {
	n := len(l.cells)
	return l.cells[((i%n)+n)%n]
}

// Contains reports whether p lies on the loop.
// Complexity: O(1).
func (l *Loop) Contains(p grid.Position) bool {
	_, ok := l.index[p]
	return ok
}

// IndexOf returns p's position in traversal order, or -1 if p is not on the loop.
func (l *Loop) IndexOf(p grid.Position) int {
	if i, ok := l.index[p]; ok {
		return i
	}
	return -1
}

// Set returns the loop cells as a grid.Set.
func (l *Loop) Set() grid.Set {
	return grid.NewSet(l.cells...)
}

// TileAt returns the tile at loop cell p with the start marker replaced by
// its resolved shape. Cells off the loop are looked up in g unchanged.
func (l *Loop) TileAt(g *grid.Grid, p grid.Position) (grid.Tile, error) {
	if p == l.Start() {
		return l.startTile, nil
	}
	return g.At(p)
}

// Farthest returns the number of steps from start to the farthest loop cell,
// measured along the loop in whichever direction is shorter.
func (l *Loop) Farthest() int {
	return len(l.cells) / 2
}

// Fits reports whether every loop cell lies within g and g's start marker
// sits at the loop's start.
func (l *Loop) Fits(g *grid.Grid) bool {
	if g == nil {
		return false
	}
	for _, p := range l.cells {
		if !g.InBounds(p) {
			return false
		}
	}
	t, err := g.At(l.Start())
	return err == nil && t == grid.Start
}
