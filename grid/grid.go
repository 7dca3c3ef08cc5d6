package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse builds a Grid from text lines, one line per row.
// Trailing carriage returns are stripped and blank lines at either end are
// ignored, so the raw contents of a file split on '\n' parse cleanly.
// Returns ErrEmptyGrid if no row or column remains, ErrNonRectangular if any
// row length differs from the first, and ErrUnknownTile for any character
// outside the tile alphabet.
// Complexity: O(W×H) time and memory.
func Parse(lines []string) (*Grid, error) {
	rows := trimBlank(lines)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(row), w)
		}
	}

	tiles := make([]Tile, 0, h*w)
	for r, row := range rows {
		for c := 0; c < w; c++ {
			t, err := ParseTile(row[c])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			tiles = append(tiles, t)
		}
	}

	return &Grid{Height: h, Width: w, tiles: tiles}, nil
}

// Read parses a Grid from r, one line per row.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return Parse(lines)
}

// ReadFile parses the Grid stored in the file at path.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// trimBlank strips '\r' from every line and drops empty lines at both ends.
func trimBlank(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, "\r")
	}
	for len(out) > 0 && strings.TrimSpace(out[0]) == "" {
		out = out[1:]
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return out
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the tile at p, or ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) At(p Position) (Tile, error) {
	if !g.InBounds(p) {
		return Empty, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Height, g.Width)
	}
	return g.tiles[g.Index(p)], nil
}

// Len returns the number of cells in the grid.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.Width, Col: idx % g.Width}
}

// Find returns every position holding tile t, in row-major order.
// Complexity: O(W×H).
func (g *Grid) Find(t Tile) []Position {
	var out []Position
	for i, v := range g.tiles {
		if v == t {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Start returns the position of the single start marker.
// Returns ErrNoStart if there is none and ErrMultipleStarts if there are several.
func (g *Grid) Start() (Position, error) {
	starts := g.Find(Start)
	switch len(starts) {
	case 0:
		return Position{}, ErrNoStart
	case 1:
		return starts[0], nil
	}
	return Position{}, fmt.Errorf("%w: found %d at %v", ErrMultipleStarts, len(starts), starts)
}

// String returns the grid in its input form, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for i, t := range g.tiles {
		sb.WriteByte(symbols[t])
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
