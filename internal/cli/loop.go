package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/area"
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/loop"
)

func newLoopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loop FILE",
		Short: "Print the farthest-step count and the enclosed cell count",
		Long: `Traces the loop of pipes through S and prints two lines:
the number of steps from S to the farthest loop cell, then the number
of cells enclosed by the loop.`,
		Args: cobra.ExactArgs(1),
		RunE: runLoop,
	}
}

func runLoop(cmd *cobra.Command, args []string) error {
	_, l, res, err := analyze(cmd, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n%d\n", l.Farthest(), res.Enclosed.Len())
	return err
}

// analyze parses, traces, and classifies the grid at path, logging each
// stage and cross-checking the enclosed count against Pick's theorem.
func analyze(cmd *cobra.Command, path string) (*grid.Grid, *loop.Loop, *area.Result, error) {
	log := logging.FromContext(cmd.Context()).With("file", path)

	g, err := grid.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read grid: %w", err)
	}
	log.Debug("parsed grid", "height", g.Height, "width", g.Width)

	l, err := loop.Trace(g)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to trace loop: %w", err)
	}
	log.Debug("traced loop", "length", l.Len(), "start", l.Start().String(),
		"start_tile", l.StartTile().String(), "clockwise", l.Clockwise())

	res, err := area.Classify(g, l)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to classify cells: %w", err)
	}
	flooded, complement := res.Candidates()
	log.Debug("classified cells", "flooded", flooded, "complement", complement,
		"flooded_side", res.FloodedSide.String())

	if pick := l.Interior(); pick != res.Enclosed.Len() {
		log.Warn("enclosed count disagrees with Pick's theorem",
			"flood", res.Enclosed.Len(), "pick", pick)
	}
	return g, l, res, nil
}
