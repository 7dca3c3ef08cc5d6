// File: area/example_test.go
package area_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/area"
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// ExampleClassify counts the cells enclosed by a loop whose outside
// squeezes between two pipes at the bottom.
func ExampleClassify() {
	g, _ := grid.Parse([]string{
		"...........",
		".S-------7.",
		".|F-----7|.",
		".||.....||.",
		".||.....||.",
		".|L-7.F-J|.",
		".|..|.|..|.",
		".L--J.L--J.",
		"...........",
	})
	l, _ := loop.Trace(g)
	res, err := area.Classify(g, l)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("enclosed:", res.Enclosed.Len())
	fmt.Println("cells:", res.Enclosed.Sorted())
	fmt.Println("flooded side:", res.FloodedSide)
	// Output:
	// enclosed: 4
	// cells: [(6,2) (6,3) (6,7) (6,8)]
	// flooded side: outside
}
