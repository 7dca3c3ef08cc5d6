package pipeloop

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pipeloop/area"
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// Answer holds both puzzle answers together with the sizes they derive from.
type Answer struct {
	// Steps is the distance along the loop from start to its farthest cell.
	Steps int
	// Enclosed counts the cells strictly inside the loop.
	Enclosed int
	// Outside counts the non-loop cells outside the loop.
	Outside int
	// LoopLength is the number of cells on the loop.
	LoopLength int

	Height, Width int
}

// Solve reads a pipe grid from r and computes both answers.
// Any parse, trace, or classification error aborts with no partial result.
func Solve(r io.Reader) (*Answer, error) {
	g, err := grid.Read(r)
	if err != nil {
		return nil, err
	}
	return SolveGrid(g)
}

// SolveFile reads the pipe grid stored at path and computes both answers.
func SolveFile(path string) (*Answer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: %w", err)
	}
	defer f.Close()

	return Solve(f)
}

// SolveGrid computes both answers for an already parsed grid.
func SolveGrid(g *grid.Grid) (*Answer, error) {
	l, err := loop.Trace(g)
	if err != nil {
		return nil, err
	}
	res, err := area.Classify(g, l)
	if err != nil {
		return nil, err
	}
	return &Answer{
		Steps:      l.Farthest(),
		Enclosed:   res.Enclosed.Len(),
		Outside:    res.Outside.Len(),
		LoopLength: l.Len(),
		Height:     g.Height,
		Width:      g.Width,
	}, nil
}
