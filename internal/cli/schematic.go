package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/schematic"
)

func newSchematicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schematic FILE",
		Short: "Print the part-number sum and the gear-ratio sum",
		Long: `Reads an engine schematic and prints two lines: the sum of all
numbers adjacent to a symbol, then the sum of all gear ratios.`,
		Args: cobra.ExactArgs(1),
		RunE: runSchematic,
	}
}

func runSchematic(cmd *cobra.Command, args []string) error {
	log := logging.FromContext(cmd.Context()).With("file", args[0])

	s, err := schematic.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read schematic: %w", err)
	}
	parts := s.PartNumbers()
	gears := s.Gears()
	log.Debug("scanned schematic", "height", s.Height, "width", s.Width,
		"parts", len(parts), "gears", len(gears))

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n%d\n", schematic.Sum(parts), s.GearRatios())
	return err
}
