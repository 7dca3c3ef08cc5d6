package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCmd builds the pipeloop command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pipeloop",
		Short: "Solve the pipe-maze and engine-schematic grid puzzles",
		Long: `pipeloop reads a puzzle grid from a text file and prints its answers.

  loop       steps to the farthest loop cell, then the enclosed cell count
  render     the loop drawn with box-drawing glyphs, enclosed cells marked I
  schematic  the part-number sum, then the gear-ratio sum`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = Version
	root.SetVersionTemplate("pipeloop version {{.Version}}\n")

	root.AddCommand(newLoopCmd(), newRenderCmd(), newSchematicCmd())
	return root
}

// Execute runs the root command with a warn-level logger on stderr.
func Execute() error {
	ctx := logging.WithLogger(context.Background(), logging.New(os.Stderr, logging.DefaultLevel))
	return NewRootCmd().ExecuteContext(ctx)
}
