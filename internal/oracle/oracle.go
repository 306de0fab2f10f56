// Package oracle defines the external collaborator spec.md §4.7 calls
// out: something that can answer "how many solutions does this grid
// have" and "is this grid's solution unique" without itself being part of
// the human-technique engine. It fixes the contract callers (the solver
// loop's fallback path, puzzle generators, test fixtures) code against,
// and also holds one concrete implementation, BitmaskBacktracker
// (backtrack.go).
package oracle

import "sudoku-engine/internal/grid"

// Oracle answers completeness questions about a grid that the human
// technique library alone cannot: whether it has any solution, how many,
// and whether that count is exactly one. Implementations are expected to
// use an algorithm outside the human-technique family (DLX, bitmask
// backtracking, SAT) — never the Technique catalogue itself, which only
// proves partial progress, not completeness.
type Oracle interface {
	// Solutions returns up to limit distinct solved grids reachable from
	// g by standard sudoku placement rules, each as a completed value
	// array. A limit of 0 means unbounded; callers that only need a
	// uniqueness check should pass 2.
	Solutions(g *grid.Grid, limit int) ([][grid.Cells]int, error)

	// IsUnique reports whether g has exactly one solution.
	IsUnique(g *grid.Grid) (bool, error)
}
