// Package technique implements the ~35 named human-sudoku deductions of
// spec.md §4.5: each technique finds one application in the current grid,
// mutates it through the grid package's journaled primitives, and reports
// what it did. Grounded on the teacher's internal/sudoku/human package
// (technique_registry.go's TechniqueDescriptor, and the techniques_*.go
// family of detector functions), generalised onto the grid package's
// history-backed Grid instead of the teacher's flat Board.
package technique

import (
	"sudoku-engine/internal/explain"
	"sudoku-engine/internal/grid"
)

// Tier buckets techniques by the difficulty they imply, mirroring the
// teacher's constants.Tier* classification (simple/medium/hard/extreme).
type Tier string

const (
	TierSimple  Tier = "simple"
	TierMedium  Tier = "medium"
	TierHard    Tier = "hard"
	TierExtreme Tier = "extreme"
)

// Outcome reports what a technique did when it found an application.
type Outcome struct {
	Eliminations int
	Explanation  explain.Explanation
}

// Func finds one application of a technique in g; if found, it mutates g
// (through grid's journaled Place/Eliminate primitives) and returns a
// non-nil Outcome. If no application exists, it returns nil and leaves g
// untouched — spec.md §4.5's "never make a partial mutation when returning
// zero". explainFlag controls whether Outcome.Explanation is populated;
// when false, techniques may skip building the (more expensive) snapshot.
type Func func(g *grid.Grid, explainFlag bool) *Outcome

// Technique is one catalogue entry: identity, metadata, and its Func.
type Technique struct {
	ID       string
	Name     string
	Tier     Tier
	Priority int
	Apply    Func
}

// ============================================================================
// Shared helpers used across technique families
// ============================================================================

// UnsolvedCells returns every cell index without a value, in index order.
func UnsolvedCells(g *grid.Grid) []int {
	var out []int
	for i := 0; i < grid.Cells; i++ {
		if !g.IsSolvedCell(i) {
			out = append(out, i)
		}
	}
	return out
}

// Combinations returns every k-element combination of xs, in the
// lexicographic order of indices into xs — the tie-break spec.md §4.5.1
// requires for subset/fish enumeration.
func Combinations(xs []int, k int) [][]int {
	if k <= 0 || k > len(xs) {
		return nil
	}
	var out [][]int
	var cur []int
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			combo := append([]int(nil), cur...)
			out = append(out, combo)
			return
		}
		for i := start; i <= len(xs)-(k-len(cur)); i++ {
			cur = append(cur, xs[i])
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}

// UnionCandidates returns the union of g's candidate sets over cells.
func UnionCandidates(g *grid.Grid, cells []int) grid.Candidates {
	var u grid.Candidates
	for _, c := range cells {
		u = u.Union(g.CandidatesAt(c))
	}
	return u
}

// CellsSeeingAll returns every unsolved cell that is a peer of every cell
// in cells (and is not itself one of them).
func CellsSeeingAll(g *grid.Grid, cells []int) []int {
	common := grid.CommonPeers(cells)
	var out []int
	for _, c := range common {
		if !g.IsSolvedCell(c) {
			out = append(out, c)
		}
	}
	return out
}

// PlanFromPairs builds a RemovalMap from a flat list of (cell, digit)
// elimination pairs — the common shape a technique assembles before
// calling grid.EliminateMap.
func PlanFromPairs(pairs [][2]int) grid.RemovalMap {
	plan := grid.RemovalMap{}
	for _, p := range pairs {
		cell, digit := p[0], p[1]
		plan[digit] = append(plan[digit], cell)
	}
	return plan
}

// digitsOf is a tiny convenience over Candidates.ToSlice used pervasively.
func digitsOf(c grid.Candidates) []int { return c.ToSlice() }

// containsInt reports whether v is present in xs.
func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// countEliminations totals the cells touched across every digit in a
// RemovalMap — used as Outcome.Eliminations.
func countEliminations(removed grid.RemovalMap) int {
	n := 0
	for _, cells := range removed {
		n += len(cells)
	}
	return n
}
