// Command pipeloop solves the pipe-maze and engine-schematic grid puzzles.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pipeloop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
