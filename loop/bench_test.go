package loop_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// ringLines builds an n×n grid whose border is a single loop with S at (0,0).
func ringLines(n int) []string {
	lines := make([]string, n)
	lines[0] = "S" + strings.Repeat("-", n-2) + "7"
	for r := 1; r < n-1; r++ {
		lines[r] = "|" + strings.Repeat(".", n-2) + "|"
	}
	lines[n-1] = "L" + strings.Repeat("-", n-2) + "J"
	return lines
}

// BenchmarkTrace measures Trace around the border of a 140×140 grid.
// Complexity: O(W×H)
func BenchmarkTrace(b *testing.B) {
	g, err := grid.Parse(ringLines(140))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := loop.Trace(g); err != nil {
			b.Fatalf("Trace failed: %v", err)
		}
	}
}

// BenchmarkDistances measures the BFS walk over the same ring.
func BenchmarkDistances(b *testing.B) {
	g, err := grid.Parse(ringLines(140))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	l, err := loop.Trace(g)
	if err != nil {
		b.Fatalf("setup Trace failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loop.Distances(g, l)
	}
}
