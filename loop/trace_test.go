package loop_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/internal/fixtures"
	"github.com/katalvlaran/pipeloop/loop"
)

func mustParse(t testing.TB, lines []string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(lines)
	require.NoError(t, err)
	return g
}

// TestTrace_Fixtures checks the farthest-step answer on every example.
func TestTrace_Fixtures(t *testing.T) {
	for _, fx := range fixtures.All {
		t.Run(fx.Name, func(t *testing.T) {
			g := mustParse(t, fx.Lines())
			l, err := loop.Trace(g)
			require.NoError(t, err)
			assert.Equal(t, fx.Steps, l.Farthest())
			assert.Equal(t, 2*fx.Steps, l.Len())
		})
	}
}

// TestTrace_SquareOrder pins the exact traversal of the junk-surrounded square:
// start probes down first, so the walk runs counter-clockwise.
func TestTrace_SquareOrder(t *testing.T) {
	g := mustParse(t, fixtures.Square.Lines())
	l, err := loop.Trace(g)
	require.NoError(t, err)

	want := []grid.Position{
		{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2},
		{Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 1, Col: 2},
	}
	if diff := cmp.Diff(want, l.Cells()); diff != "" {
		t.Errorf("Cells() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, grid.TopLeft, l.StartTile())
	assert.Equal(t, grid.Position{Row: 1, Col: 1}, l.Start())
	assert.Equal(t, want[7], l.At(-1))
	assert.Equal(t, want[0], l.At(8))
	assert.Equal(t, 4, l.IndexOf(grid.Position{Row: 3, Col: 3}))
	assert.Equal(t, -1, l.IndexOf(grid.Position{Row: 2, Col: 2}))
	assert.False(t, l.Contains(grid.Position{Row: 2, Col: 2}))
	assert.True(t, l.Fits(g))

	cells := l.Cells()
	cells[0] = grid.Position{Row: 9, Col: 9}
	assert.Equal(t, grid.Position{Row: 1, Col: 1}, l.Start(), "Cells must return a copy")
}

// TestTrace_Connected verifies that every consecutive pair (including
// last→first) is joined by pipes and no cell repeats.
func TestTrace_Connected(t *testing.T) {
	for _, fx := range fixtures.All {
		t.Run(fx.Name, func(t *testing.T) {
			g := mustParse(t, fx.Lines())
			l, err := loop.Trace(g)
			require.NoError(t, err)

			seen := grid.NewSet()
			for i := 0; i < l.Len(); i++ {
				cur, next := l.At(i), l.At(i+1)
				require.True(t, seen.Add(cur), "cell %v repeats", cur)

				tile, err := l.TileAt(g, cur)
				require.NoError(t, err)
				link, ok := grid.Connections(tile, cur)
				require.True(t, ok, "%v at %v is not a pipe", tile, cur)
				assert.True(t, link.Has(next), "%v does not lead to %v", cur, next)
				assert.True(t, link.Has(l.At(i-1)), "%v does not lead back to %v", cur, l.At(i-1))
			}
			assert.Equal(t, l.Len(), l.Set().Len())
		})
	}
}

// TestTrace_StartTile resolves the shape under S on each example.
func TestTrace_StartTile(t *testing.T) {
	cases := []struct {
		fx   fixtures.Fixture
		want grid.Tile
	}{
		{fixtures.Square, grid.TopLeft},
		{fixtures.Complex, grid.TopLeft},
		{fixtures.Large, grid.TopLeft},
		{fixtures.Junk, grid.TopRight},
	}
	for _, tc := range cases {
		t.Run(tc.fx.Name, func(t *testing.T) {
			l, err := loop.Trace(mustParse(t, tc.fx.Lines()))
			require.NoError(t, err)
			assert.Equal(t, tc.want, l.StartTile())
		})
	}
}

// TestTrace_ProbeOrder reverses the traversal by probing right first.
func TestTrace_ProbeOrder(t *testing.T) {
	g := mustParse(t, fixtures.Square.Lines())
	l, err := loop.Trace(g, loop.WithProbeOrder(grid.Right, grid.Down))
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 1, Col: 2}, l.At(1))
	assert.Equal(t, grid.Position{Row: 2, Col: 1}, l.At(-1))
	assert.Equal(t, 4, l.Farthest())
}

// TestTrace_Errors covers every failure mode of Trace.
func TestTrace_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		opts  []loop.Option
		err   error
	}{
		{"NoStart", []string{"F7", "LJ"}, nil, grid.ErrNoStart},
		{"TwoStarts", []string{"S7", "LS"}, nil, grid.ErrMultipleStarts},
		{"EdgeStartDeadEnds", []string{"S-.", "|.."}, nil, loop.ErrNoLoop},
		{"NothingConnects", []string{"...", ".S.", "..."}, nil, loop.ErrNoLoop},
		{"BrokenLoop", []string{"S-7", "|.|", "L-."}, nil, loop.ErrNoLoop},
		{"LoopNotThroughStart", []string{"F7.", "LJS"}, nil, loop.ErrNoLoop},
		{"EmptyProbe", []string{"S7", "LJ"}, []loop.Option{loop.WithProbeOrder()}, loop.ErrOptionViolation},
		{"DiagonalProbe", []string{"S7", "LJ"}, []loop.Option{loop.WithProbeOrder(grid.Direction{DRow: 1, DCol: 1})}, loop.ErrOptionViolation},
		{"RepeatedProbe", []string{"S7", "LJ"}, []loop.Option{loop.WithProbeOrder(grid.Down, grid.Down)}, loop.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loop.Trace(mustParse(t, tc.lines), tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := loop.Trace(nil)
	assert.ErrorIs(t, err, loop.ErrNilGrid)
}

// TestTrace_ProbeSkipsRejected restricts probing to a direction that
// cannot close the loop.
func TestTrace_ProbeSkipsRejected(t *testing.T) {
	g := mustParse(t, []string{"S7", "LJ"})
	_, err := loop.Trace(g, loop.WithProbeOrder(grid.Up, grid.Left))
	assert.ErrorIs(t, err, loop.ErrNoLoop)

	l, err := loop.Trace(g, loop.WithProbeOrder(grid.Up, grid.Right))
	require.NoError(t, err)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 2, l.Farthest())
	assert.Equal(t, grid.TopLeft, l.StartTile())
}
