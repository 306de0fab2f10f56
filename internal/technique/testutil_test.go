package technique

import "sudoku-engine/internal/grid"

// restrictTo eliminates every candidate from cell c except those in keep,
// without solving it — the common fixture-building move across this
// package's tests (mirrors singles_test.go's inline candidate surgery).
func restrictTo(g *grid.Grid, c int, keep ...int) {
	for d := 1; d <= 9; d++ {
		if !containsInt(keep, d) {
			g.Eliminate("test", d, []int{c})
		}
	}
}

// clearDigitFrom eliminates d from every cell in cells.
func clearDigitFrom(g *grid.Grid, d int, cells []int) {
	g.Eliminate("test", d, cells)
}
