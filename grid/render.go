package grid

import (
	"bufio"
	"io"
)

// DefaultBlank is the rune drawn for cells outside the rendered path.
const DefaultBlank = '░'

// RenderOption configures Render via functional arguments.
type RenderOption func(*RenderOptions)

// RenderOptions holds the overlays Render draws.
type RenderOptions struct {
	// Path selects the cells drawn with their tile glyph. Nil draws every cell.
	Path Set
	// Blank is drawn for cells not in Path.
	Blank rune
	// Marks overlay single runes on top of everything else.
	Marks []Mark
}

// Mark draws Rune on every cell of Cells.
type Mark struct {
	Cells Set
	Rune  rune
}

// DefaultRenderOptions draws every tile glyph with no marks.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Blank: DefaultBlank}
}

// WithPath restricts glyph drawing to the cells of path.
func WithPath(path Set) RenderOption {
	return func(o *RenderOptions) {
		o.Path = path
	}
}

// WithBlank sets the rune drawn for cells outside the path.
func WithBlank(r rune) RenderOption {
	return func(o *RenderOptions) {
		o.Blank = r
	}
}

// WithMarks overlays r on every cell of cells. Later marks win.
func WithMarks(cells Set, r rune) RenderOption {
	return func(o *RenderOptions) {
		if cells != nil {
			o.Marks = append(o.Marks, Mark{Cells: cells, Rune: r})
		}
	}
}

// Render writes g to w, one row per line, using box-drawing glyphs.
func Render(w io.Writer, g *Grid, opts ...RenderOption) error {
	o := DefaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := Position{Row: r, Col: c}
			ch := o.Blank
			if o.Path == nil || o.Path.Has(p) {
				ch = g.tiles[g.Index(p)].Glyph()
			}
			for _, m := range o.Marks {
				if m.Cells.Has(p) {
					ch = m.Rune
				}
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
