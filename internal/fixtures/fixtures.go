// Package fixtures holds the small example inputs shared by the package
// tests, each paired with its known answers.
package fixtures

import "strings"

// Fixture is a named example input and its expected answers.
// Steps or Enclosed are -1 when the example does not pin them down.
type Fixture struct {
	Name     string
	Text     string
	Steps    int
	Enclosed int
}

// Lines splits the fixture text into rows.
func (f Fixture) Lines() []string {
	return strings.Split(strings.TrimRight(f.Text, "\n"), "\n")
}

// Square is a 5×5 loop surrounded by pipes that do not connect to it.
var Square = Fixture{
	Name: "square_with_junk",
	Text: `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`,
	Steps:    4,
	Enclosed: 1,
}

// Complex is a 5×5 grid whose 16-cell loop winds through junk pipes.
var Complex = Fixture{
	Name: "complex_loop",
	Text: `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`,
	Steps:    8,
	Enclosed: 1,
}

// Gaps encloses four cells; the outside squeezes between two pipes.
var Gaps = Fixture{
	Name: "enclosed_four",
	Text: `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`,
	Steps:    23,
	Enclosed: 4,
}

// Squeezed encloses four cells with no gap to the border at all.
var Squeezed = Fixture{
	Name: "enclosed_four_squeezed",
	Text: `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`,
	Steps:    22,
	Enclosed: 4,
}

// Large encloses eight cells among many stray pipes.
var Large = Fixture{
	Name: "enclosed_eight",
	Text: `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`,
	Steps:    70,
	Enclosed: 8,
}

// Junk encloses ten cells and has junk pipes touching the loop everywhere.
var Junk = Fixture{
	Name: "enclosed_ten",
	Text: `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`,
	Steps:    80,
	Enclosed: 10,
}

// All lists every loop fixture.
var All = []Fixture{Square, Complex, Gaps, Squeezed, Large, Junk}
