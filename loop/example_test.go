// File: loop/example_test.go
package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Trace
////////////////////////////////////////////////////////////////////////////////

// ExampleTrace traces a square loop hidden among unconnected pipes.
// Scenario:
//
//   - Start sits on the top-left corner of a 3×3 ring.
//   - Probing down first, the walk runs counter-clockwise.
//   - The farthest cell is the opposite corner, four steps away.
func ExampleTrace() {
	g, _ := grid.Parse([]string{
		"-L|F7",
		"7S-7|",
		"L|7||",
		"-L-J|",
		"L|-JF",
	})
	l, err := loop.Trace(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("length:", l.Len())
	fmt.Println("start shape:", l.StartTile())
	fmt.Println("farthest:", l.Farthest())
	fmt.Println("cells:", l.Cells())
	// Output:
	// length: 8
	// start shape: F
	// farthest: 4
	// cells: [(1,1) (2,1) (3,1) (3,2) (3,3) (2,3) (1,3) (1,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Distances
////////////////////////////////////////////////////////////////////////////////

// ExampleDistances walks the same ring breadth-first from start.
func ExampleDistances() {
	g, _ := grid.Parse([]string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	})
	l, _ := loop.Trace(g)
	res, _ := loop.Distances(g, l)
	fmt.Println("max:", res.Max)
	fmt.Println("order:", res.Order)
	// Output:
	// max: 4
	// order: [(1,1) (1,2) (2,1) (1,3) (3,1) (2,3) (3,2) (3,3)]
}
