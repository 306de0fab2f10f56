package technique

import (
	"fmt"

	"sudoku-engine/internal/explain"
	"sudoku-engine/internal/format"
	"sudoku-engine/internal/grid"
)

// Pointing: a digit confined within a box to a single box-row/col triplet
// is removed from the rest of that row/col.
func Pointing(g *grid.Grid, explainFlag bool) *Outcome {
	return scanTriplets(g, explainFlag, "lc1", "Pointing", func(t grid.Triplet, d int) ([]int, []int) {
		boxCells := grid.BoxCells(t.Box)
		boxCarriers := g.CandidatesIn(boxCells[:], d)
		if len(boxCarriers) < 2 || !subsetOf(boxCarriers, t.Cells[:]) {
			return nil, nil
		}
		victims := g.CandidatesIn(t.LineComplement, d)
		return victims, t.Cells[:]
	})
}

// Claiming: a digit confined within a row/col to a single box-row/col
// triplet is removed from the rest of that box.
func Claiming(g *grid.Grid, explainFlag bool) *Outcome {
	return scanTriplets(g, explainFlag, "lc2", "Claiming", func(t grid.Triplet, d int) ([]int, []int) {
		var lineCells [9]int
		if t.IsRow {
			lineCells = grid.RowCells(t.Line)
		} else {
			lineCells = grid.ColCells(t.Line)
		}
		lineCarriers := g.CandidatesIn(lineCells[:], d)
		if len(lineCarriers) < 2 || !subsetOf(lineCarriers, t.Cells[:]) {
			return nil, nil
		}
		victims := g.CandidatesIn(t.BoxComplement, d)
		return victims, t.Cells[:]
	})
}

// scanTriplets walks the 27 box-row triplets then the 27 box-col triplets
// (spec.md §4.5.1 row-before-col tie-break), digits ascending, calling
// check for each; check returns the victim cells to eliminate digit from,
// and the defining cells, or (nil, nil) if the pattern doesn't hold there.
func scanTriplets(g *grid.Grid, explainFlag bool, id, name string, check func(grid.Triplet, int) ([]int, []int)) *Outcome {
	for _, t := range grid.BoxRowTriplets() {
		if out := tryTriplet(g, explainFlag, id, name, t, check); out != nil {
			return out
		}
	}
	for _, t := range grid.BoxColTriplets() {
		if out := tryTriplet(g, explainFlag, id, name, t, check); out != nil {
			return out
		}
	}
	return nil
}

func tryTriplet(g *grid.Grid, explainFlag bool, id, name string, t grid.Triplet, check func(grid.Triplet, int) ([]int, []int)) *Outcome {
	for d := 1; d <= 9; d++ {
		victims, defining := check(t, d)
		if len(victims) == 0 {
			continue
		}
		removed := g.Eliminate(id, d, victims)
		if len(removed) == 0 {
			continue
		}
		return &Outcome{
			Eliminations: countEliminations(removed),
			Explanation:  explainFor(name, defining, []int{d}, removed),
		}
	}
	return nil
}

// LockedPair finds a pair of cells within a box-row/col triplet whose
// candidates collectively form exactly two digits, eliminating them from
// the rest of both the enclosing row/col and the enclosing box.
func LockedPair(g *grid.Grid, explainFlag bool) *Outcome {
	return lockedSubset(g, explainFlag, "l2", "Locked Pair", 2)
}

// LockedTriple is LockedPair generalised to three cells/candidates.
func LockedTriple(g *grid.Grid, explainFlag bool) *Outcome {
	return lockedSubset(g, explainFlag, "l3", "Locked Triple", 3)
}

func lockedSubset(g *grid.Grid, explainFlag bool, id, name string, size int) *Outcome {
	triplets := append(grid.BoxRowTriplets(), grid.BoxColTriplets()...)
	for _, t := range triplets {
		var unsolved []int
		for _, c := range t.Cells {
			if !g.IsSolvedCell(c) {
				unsolved = append(unsolved, c)
			}
		}
		if len(unsolved) != size {
			continue
		}
		union := UnionCandidates(g, unsolved)
		if union.Count() != size {
			continue
		}
		var victims [][2]int
		for _, d := range union.ToSlice() {
			for _, c := range t.LineComplement {
				if g.CandidatesAt(c).Has(d) {
					victims = append(victims, [2]int{c, d})
				}
			}
			for _, c := range t.BoxComplement {
				if g.CandidatesAt(c).Has(d) {
					victims = append(victims, [2]int{c, d})
				}
			}
		}
		if len(victims) == 0 {
			continue
		}
		removed := g.EliminateMap(id, PlanFromPairs(victims))
		if len(removed) == 0 {
			continue
		}
		return &Outcome{
			Eliminations: countEliminations(removed),
			Explanation:  explainFor(name, unsolved, union.ToSlice(), removed),
		}
	}
	return nil
}

func subsetOf(small, big []int) bool {
	for _, s := range small {
		if !containsInt(big, s) {
			return false
		}
	}
	return true
}

// explainFor is the shared explanation builder for eliminate-only
// techniques: defining cells plus the digits removed, then the discard
// description rendered from the removal map.
func explainFor(name string, defining, digits []int, removed grid.RemovalMap) explain.Explanation {
	desc := fmt.Sprintf("%s restricted to %s", format.Candidates(digits), format.Coordinates(defining))
	return explain.Explanation{
		Technique:   name,
		Description: explain.Line(name, desc, format.Discard(removed)),
		Snapshot: explain.Snapshot{Specs: []explain.Spec{
			{Cells: defining, Decor: explain.DecorDefining},
		}},
	}
}
