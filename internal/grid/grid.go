// Package grid implements the candidate-propagation core: the 81-cell
// board, its fixed unit structure, and the mutation/history primitives that
// every technique drives. Grounded on the teacher's internal/sudoku/human
// Board (board.go, grid.go) generalised with the journal-with-cursor
// undo/redo model described by the original sudosol.py's history replay.
package grid

import "fmt"

// DecorationMode selects how a dump render decorates candidates.
type DecorationMode int

const (
	DecorationDefault DecorationMode = iota
	DecorationColour
	DecorationMarker
	DecorationPlain
)

// Grid is the 81-cell Sudoku board together with its candidate state and
// mutation history. The unit/peer structure is shared package state (see
// structure.go); only value/candidate/history state is per-instance.
type Grid struct {
	value      [Cells]int
	given      [Cells]bool
	candidates [Cells]Candidates

	entries []Entry
	cursor  int

	decoration DecorationMode
}

// New returns an empty grid: every cell unsolved with the full candidate set.
func New() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset clears the grid back to 81 empty cells with full candidates and an
// empty history.
func (g *Grid) Reset() {
	for i := 0; i < Cells; i++ {
		g.value[i] = 0
		g.given[i] = false
		g.candidates[i] = Full
	}
	g.entries = nil
	g.cursor = 0
}

// LoadGivens resets the grid then places each non-zero given in cell-index
// order via Place, so the resulting history replays to the same state
// (spec.md §3 Lifecycle).
func (g *Grid) LoadGivens(givens [Cells]int) error {
	g.Reset()
	for idx, d := range givens {
		if d == 0 {
			continue
		}
		if d < 1 || d > 9 {
			return fmt.Errorf("grid: given at cell %d out of range: %d", idx, d)
		}
		if !g.candidates[idx].Has(d) {
			return fmt.Errorf("grid: given %d at cell %d conflicts with an earlier given", d, idx)
		}
		g.place("given", idx, d, true)
	}
	return nil
}

// Value returns the solved digit of a cell, or 0 if unsolved.
func (g *Grid) Value(idx int) int { return g.value[idx] }

// Given reports whether the cell's value originated from the initial puzzle.
func (g *Grid) Given(idx int) bool { return g.given[idx] }

// CandidatesAt returns the candidate set of a cell (empty if solved).
func (g *Grid) CandidatesAt(idx int) Candidates { return g.candidates[idx] }

// IsSolvedCell reports whether idx carries a value.
func (g *Grid) IsSolvedCell(idx int) bool { return g.value[idx] != 0 }

// Solved reports whether every cell carries a value.
func (g *Grid) Solved() bool {
	for i := 0; i < Cells; i++ {
		if g.value[i] == 0 {
			return false
		}
	}
	return true
}

// IsValid reports whether no two peers share an equal value — a cheap
// contradiction check independent of technique application.
func (g *Grid) IsValid() bool {
	for i := 0; i < Cells; i++ {
		if g.value[i] == 0 {
			continue
		}
		for _, p := range Peers(i) {
			if g.value[p] == g.value[i] {
				return false
			}
		}
	}
	return true
}

// SetDecoration sets the dump renderer's decoration mode.
func (g *Grid) SetDecoration(mode DecorationMode) { g.decoration = mode }

// Decoration returns the dump renderer's current decoration mode.
func (g *Grid) Decoration() DecorationMode { return g.decoration }

// Clone returns a deep, independent copy of g, including history.
func (g *Grid) Clone() *Grid {
	ng := &Grid{
		value:      g.value,
		given:      g.given,
		candidates: g.candidates,
		cursor:     g.cursor,
		decoration: g.decoration,
	}
	ng.entries = make([]Entry, len(g.entries))
	copy(ng.entries, g.entries)
	return ng
}

// ============================================================================
// Read-only queries (spec.md §4.1)
// ============================================================================

// CandidatesIn returns, among cells, those that carry digit as a candidate.
func (g *Grid) CandidatesIn(cells []int, digit int) []int {
	var out []int
	for _, c := range cells {
		if g.candidates[c].Has(digit) {
			out = append(out, c)
		}
	}
	return out
}

// CellsWith returns the cells of unit that carry digit as a candidate.
func (g *Grid) CellsWith(digit int, unit Unit) []int {
	return g.CandidatesIn(unit.Cells[:], digit)
}

// IsBivalue reports whether idx is unsolved with exactly two candidates.
func (g *Grid) IsBivalue(idx int) bool {
	return g.value[idx] == 0 && g.candidates[idx].Count() == 2
}

// ConjugatePartners returns the union, over every unit containing idx, of the
// other cell in that unit carrying digit — but only for units where idx is
// one of exactly two carriers of digit (a conjugate pair / strong link).
func (g *Grid) ConjugatePartners(idx, digit int) []int {
	if !g.candidates[idx].Has(digit) {
		return nil
	}
	var out []int
	seen := map[int]bool{}
	consider := func(cells [9]int) {
		var carriers []int
		for _, c := range cells {
			if g.candidates[c].Has(digit) {
				carriers = append(carriers, c)
			}
		}
		if len(carriers) == 2 {
			for _, c := range carriers {
				if c != idx && !seen[c] {
					seen[c] = true
					out = append(out, c)
				}
			}
		}
	}
	consider(RowCells(RowOf(idx)))
	consider(ColCells(ColOf(idx)))
	consider(BoxCells(BoxOf(idx)))
	return sortedInts(out)
}
