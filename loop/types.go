// Package loop provides tunable options, sentinel errors, and result types
// for tracing the pipe loop.
package loop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
)

// Sentinel errors for loop tracing.
var (
	// ErrNoLoop is returned when no probe from start closes a cycle.
	ErrNoLoop = errors.New("loop: no loop found through start")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("loop: grid is nil")

	// ErrNilLoop is returned if a nil loop pointer is passed.
	ErrNilLoop = errors.New("loop: loop is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")
)

// Option configures Trace via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Trace is invoked.
type Option func(*Options)

// Options holds the parameters of a trace.
type Options struct {
	// Probe is the order in which start's neighbours are tried.
	Probe []grid.Direction

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options probing down, right, up, left.
func DefaultOptions() Options {
	return Options{
		Probe: grid.Cardinals[:],
	}
}

// WithProbeOrder overrides the order in which start's neighbours are tried.
// The list must be non-empty and hold distinct cardinal directions.
func WithProbeOrder(dirs ...grid.Direction) Option {
	return func(o *Options) {
		if len(dirs) == 0 {
			o.err = fmt.Errorf("%w: probe order is empty", ErrOptionViolation)
			return
		}
		seen := make(map[grid.Direction]bool, len(dirs))
		for _, d := range dirs {
			if !d.IsUnit() {
				o.err = fmt.Errorf("%w: %v is not a cardinal direction", ErrOptionViolation, d)
				return
			}
			if seen[d] {
				o.err = fmt.Errorf("%w: direction %v repeated", ErrOptionViolation, d)
				return
			}
			seen[d] = true
		}
		o.Probe = append([]grid.Direction(nil), dirs...)
	}
}

// Loop is the ordered cycle of cells through the start marker.
// cells[0] is start; cells[i] and cells[(i+1)%Len()] are joined by pipes.
// A Loop is immutable once traced.
type Loop struct {
	cells     []grid.Position
	index     map[grid.Position]int
	startTile grid.Tile
}

// DistanceResult holds the outcome of a breadth-first walk from start:
//   - Order: cells in visit sequence.
//   - Depth: steps from start to each cell along the pipes.
//   - Parent: predecessor of each cell in the BFS tree.
//   - Max: the largest depth reached.
type DistanceResult struct {
	Order  []grid.Position
	Depth  map[grid.Position]int
	Parent map[grid.Position]grid.Position
	Max    int
}

// PathTo reconstructs the path from start to dest.
// Returns an error if dest was not reached.
func (r *DistanceResult) PathTo(dest grid.Position) ([]grid.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("loop: no path to %v", dest)
	}
	path := []grid.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
