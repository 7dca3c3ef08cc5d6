package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *grid.Grid
	loop    *Loop
	queue   []queueItem
	visited map[grid.Position]bool
	res     *DistanceResult
}

// Distances runs breadth-first search from l's start over mutual pipe
// connections in g, with the start marker standing for its resolved shape.
// Every loop cell is reached; Max equals l.Farthest().
// Returns ErrNilGrid, ErrNilLoop, or a wrapped grid error if l does not lie on g.
// Complexity: O(L) time and memory.
func Distances(g *grid.Grid, l *Loop) (*DistanceResult, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if l == nil {
		return nil, ErrNilLoop
	}

	n := l.Len()
	w := &walker{
		grid:    g,
		loop:    l,
		queue:   make([]queueItem, 0, n),
		visited: make(map[grid.Position]bool, n),
		res: &DistanceResult{
			Order:  make([]grid.Position, 0, n),
			Depth:  make(map[grid.Position]int, n),
			Parent: make(map[grid.Position]grid.Position, n),
		},
	}

	w.enqueue(l.Start(), 0, nil)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.pos)
		if item.depth > w.res.Max {
			w.res.Max = item.depth
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}
	return w.res, nil
}

// enqueue marks p visited at depth d and records its parent.
func (w *walker) enqueue(p grid.Position, d int, parent *grid.Position) {
	w.visited[p] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// enqueueNeighbors follows both ends of item's pipe, keeping only cells
// whose own pipe links back to item.
func (w *walker) enqueueNeighbors(item queueItem) error {
	link, err := w.link(item.pos)
	if err != nil {
		return err
	}
	for _, nbr := range [2]grid.Position{link.A, link.B} {
		if w.visited[nbr] || !w.grid.InBounds(nbr) {
			continue
		}
		back, err := w.link(nbr)
		if err != nil || !back.Has(item.pos) {
			continue
		}
		parent := item.pos
		w.enqueue(nbr, item.depth+1, &parent)
	}
	return nil
}

// link returns the pipe link at p, resolving the start marker.
func (w *walker) link(p grid.Position) (grid.Link, error) {
	tile, err := w.loop.TileAt(w.grid, p)
	if err != nil {
		return grid.Link{}, fmt.Errorf("loop: distances: %w", err)
	}
	link, ok := grid.Connections(tile, p)
	if !ok {
		return grid.Link{}, fmt.Errorf("loop: distances: %v at %v is not a pipe", tile, p)
	}
	return link, nil
}
