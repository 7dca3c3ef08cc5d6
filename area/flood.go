package area

import (
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// Flood grows seeds into every cell reachable by 4-directional steps that
// stay inside g and off the loop. Seeds on the loop or outside g are ignored.
// All seeds share one visited table, so each cell is enqueued at most once
// no matter how many seeds reach it.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Flood(g *grid.Grid, l *loop.Loop, seeds []grid.Position) grid.Set {
	total := g.Len()
	blocked := make([]bool, total)
	for _, p := range l.Cells() {
		if g.InBounds(p) {
			blocked[g.Index(p)] = true
		}
	}

	seen := make([]bool, total)
	queue := make([]int, 0, len(seeds))
	for _, p := range seeds {
		if !g.InBounds(p) {
			continue
		}
		i := g.Index(p)
		if blocked[i] || seen[i] {
			continue
		}
		seen[i] = true
		queue = append(queue, i)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, v := range grid.Neighbors4(u) {
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if blocked[vi] || seen[vi] {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	out := make(grid.Set, len(queue))
	for _, i := range queue {
		out.Add(g.Coordinate(i))
	}
	return out
}
