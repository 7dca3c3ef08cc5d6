package pipeloop_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// TestSolveFile checks both answers on every example input.
func TestSolveFile(t *testing.T) {
	cases := []struct {
		file     string
		steps    int
		enclosed int
	}{
		{"steps_square.txt", 4, 1},
		{"steps_complex.txt", 8, 1},
		{"enclosed_four.txt", 23, 4},
		{"enclosed_four_squeezed.txt", 22, 4},
		{"enclosed_eight.txt", 70, 8},
		{"enclosed_ten.txt", 80, 10},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			ans, err := pipeloop.SolveFile(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.steps, ans.Steps)
			assert.Equal(t, tc.enclosed, ans.Enclosed)
			assert.Equal(t, 2*tc.steps, ans.LoopLength)
			assert.Equal(t, ans.Height*ans.Width-ans.Enclosed-ans.LoopLength, ans.Outside)
		})
	}
}

// TestSolveFile_RealInput runs the full-size puzzle input when it is present.
// Puzzle inputs are not redistributed, so the file is normally absent.
func TestSolveFile_RealInput(t *testing.T) {
	path := filepath.Join("testdata", "real_input.txt")
	if _, err := os.Stat(path); err != nil {
		t.Skip("testdata/real_input.txt not present")
	}
	ans, err := pipeloop.SolveFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6697, ans.Steps)
	assert.Equal(t, 423, ans.Enclosed)
	assert.Equal(t, ans.Height*ans.Width-423-ans.LoopLength, ans.Outside)
}

func TestSolve_Errors(t *testing.T) {
	_, err := pipeloop.SolveFile(filepath.Join("testdata", "no_loop.txt"))
	assert.ErrorIs(t, err, loop.ErrNoLoop)

	_, err = pipeloop.SolveFile(filepath.Join("testdata", "ragged.txt"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = pipeloop.SolveFile(filepath.Join("testdata", "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = pipeloop.Solve(strings.NewReader("F-7\n|.|\nL-J\n"))
	assert.ErrorIs(t, err, grid.ErrNoStart)

	_, err = pipeloop.Solve(strings.NewReader("S-7\n|?|\nL-J\n"))
	assert.ErrorIs(t, err, grid.ErrUnknownTile)
}
