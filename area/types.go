package area

import (
	"errors"

	"github.com/katalvlaran/pipeloop/grid"
)

var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("area: grid is nil")
	// ErrNilLoop is returned if a nil loop pointer is passed.
	ErrNilLoop = errors.New("area: loop is nil")
	// ErrGridMismatch indicates the loop does not lie on the given grid.
	ErrGridMismatch = errors.New("area: loop does not fit grid")
)

// Side names one of the two regions the loop separates.
type Side int

const (
	// Outside is the region connected to infinity.
	Outside Side = iota
	// Enclosed is the region strictly inside the loop.
	Enclosed
)

func (s Side) String() string {
	switch s {
	case Outside:
		return "outside"
	case Enclosed:
		return "enclosed"
	}
	return "unknown"
}

// Result holds the classification of every non-loop cell.
// Enclosed, Outside, and the loop partition the grid.
type Result struct {
	Enclosed grid.Set
	Outside  grid.Set

	// Flooded is the region grown from the right-hand seeds; it is the
	// same set as Enclosed or Outside, as FloodedSide says.
	Flooded     grid.Set
	FloodedSide Side
}

// Candidates returns the size of the flooded region and of its complement,
// the two numbers one of which is the enclosed count.
func (r *Result) Candidates() (flooded, complement int) {
	flooded = r.Flooded.Len()
	complement = r.Enclosed.Len() + r.Outside.Len() - flooded
	return flooded, complement
}
