package schematic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pipeloop/grid"
)

var (
	// ErrEmptySchematic indicates the input has no rows or no columns.
	ErrEmptySchematic = errors.New("schematic: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("schematic: all rows must have the same length")
)

// GearSymbol marks a potential gear.
const GearSymbol = '*'

// offsets8 lists the eight neighbour offsets, clockwise from north.
var offsets8 = [8][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// Schematic is an immutable rectangular character grid.
type Schematic struct {
	Height, Width int
	rows          []string
}

// Number is a maximal run of digits on one row.
type Number struct {
	Value int
	Row   int
	Col   int // column of the leading digit
	Len   int
}

// Gear is a '*' touching exactly two distinct numbers.
type Gear struct {
	At    grid.Position
	Parts [2]int
	Ratio int
}

// Parse builds a Schematic from text lines, dropping blank lines at either
// end and trailing carriage returns.
func Parse(lines []string) (*Schematic, error) {
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, strings.TrimRight(l, "\r"))
	}
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptySchematic
	}
	w := len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	return &Schematic{Height: len(rows), Width: w, rows: rows}, nil
}

// Read parses a Schematic from r, one line per row.
func Read(r io.Reader) (*Schematic, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("schematic: read: %w", err)
	}
	return Parse(lines)
}

// ReadFile parses the Schematic stored in the file at path.
func ReadFile(path string) (*Schematic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schematic: %w", err)
	}
	defer f.Close()

	return Read(f)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return c != '.' && !isDigit(c)
}

// at returns the character at (r,c) and whether it lies inside the schematic.
func (s *Schematic) at(r, c int) (byte, bool) {
	if r < 0 || r >= s.Height || c < 0 || c >= s.Width {
		return 0, false
	}
	return s.rows[r][c], true
}

// Numbers returns every digit run in row-major order.
func (s *Schematic) Numbers() []Number {
	var out []Number
	for r, row := range s.rows {
		for c := 0; c < s.Width; {
			if !isDigit(row[c]) {
				c++
				continue
			}
			end := c
			for end < s.Width && isDigit(row[end]) {
				end++
			}
			v, err := strconv.Atoi(row[c:end])
			if err != nil {
				// only overflow can fail on a pure digit run; skip it
				c = end
				continue
			}
			out = append(out, Number{Value: v, Row: r, Col: c, Len: end - c})
			c = end
		}
	}
	return out
}

// around calls fn for every in-bounds cell touching n, including diagonals.
// Cells may be reported more than once.
func (s *Schematic) around(n Number, fn func(r, c int, ch byte)) {
	for c := n.Col; c < n.Col+n.Len; c++ {
		for _, d := range offsets8 {
			rr, cc := n.Row+d[0], c+d[1]
			if ch, ok := s.at(rr, cc); ok {
				fn(rr, cc, ch)
			}
		}
	}
}

// PartNumbers returns the values of numbers touching at least one symbol.
func (s *Schematic) PartNumbers() []int {
	var out []int
	for _, n := range s.Numbers() {
		part := false
		s.around(n, func(_, _ int, ch byte) {
			if isSymbol(ch) {
				part = true
			}
		})
		if part {
			out = append(out, n.Value)
		}
	}
	return out
}

// Gears returns every '*' touching exactly two distinct numbers, in
// row-major order. Two numbers with the same value at different places
// count as distinct.
func (s *Schematic) Gears() []Gear {
	nums := s.Numbers()
	touching := make(map[grid.Position][]int)
	for i, n := range nums {
		seen := make(map[grid.Position]bool)
		s.around(n, func(r, c int, ch byte) {
			p := grid.Position{Row: r, Col: c}
			if ch != GearSymbol || seen[p] {
				return
			}
			seen[p] = true
			touching[p] = append(touching[p], i)
		})
	}

	var out []Gear
	for p, idx := range touching {
		if len(idx) != 2 {
			continue
		}
		a, b := nums[idx[0]].Value, nums[idx[1]].Value
		out = append(out, Gear{At: p, Parts: [2]int{a, b}, Ratio: a * b})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].At.Row != out[j].At.Row {
			return out[i].At.Row < out[j].At.Row
		}
		return out[i].At.Col < out[j].At.Col
	})
	return out
}

// GearRatios returns the sum of all gear ratios.
func (s *Schematic) GearRatios() int {
	total := 0
	for _, g := range s.Gears() {
		total += g.Ratio
	}
	return total
}

// Sum adds xs.
func Sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
