package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/grid"
)

// enclosedMark is drawn on every enclosed cell.
const enclosedMark = 'I'

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the loop with its enclosed cells marked",
		Long: `Draws the loop through S with box-drawing glyphs. Cells off the
loop are shaded and enclosed cells are marked with I.`,
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	g, l, res, err := analyze(cmd, args[0])
	if err != nil {
		return err
	}
	return grid.Render(cmd.OutOrStdout(), g,
		grid.WithPath(l.Set()),
		grid.WithMarks(res.Enclosed, enclosedMark),
	)
}
