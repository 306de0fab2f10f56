package technique

import (
	"sudoku-engine/internal/grid"
)

// NakedPair, NakedTriple, NakedQuad: k cells of a unit collectively carrying
// exactly k candidates let those candidates be removed from the unit's
// other cells.
func NakedPair(g *grid.Grid, explainFlag bool) *Outcome   { return nakedSubset(g, explainFlag, "n2", "Naked Pair", 2) }
func NakedTriple(g *grid.Grid, explainFlag bool) *Outcome { return nakedSubset(g, explainFlag, "n3", "Naked Triple", 3) }
func NakedQuad(g *grid.Grid, explainFlag bool) *Outcome   { return nakedSubset(g, explainFlag, "n4", "Naked Quad", 4) }

// HiddenPair, HiddenTriple, HiddenQuad: k candidates of a unit confined to
// exactly k cells let every other candidate be cleared from those cells.
func HiddenPair(g *grid.Grid, explainFlag bool) *Outcome {
	return hiddenSubset(g, explainFlag, "h2", "Hidden Pair", 2)
}
func HiddenTriple(g *grid.Grid, explainFlag bool) *Outcome {
	return hiddenSubset(g, explainFlag, "h3", "Hidden Triple", 3)
}
func HiddenQuad(g *grid.Grid, explainFlag bool) *Outcome {
	return hiddenSubset(g, explainFlag, "h4", "Hidden Quad", 4)
}

func nakedSubset(g *grid.Grid, explainFlag bool, id, name string, size int) *Outcome {
	for _, u := range grid.AllUnits() {
		var unsolved []int
		for _, c := range u.Cells {
			if !g.IsSolvedCell(c) && g.CandidatesAt(c).Count() >= 2 && g.CandidatesAt(c).Count() <= size {
				unsolved = append(unsolved, c)
			}
		}
		if len(unsolved) < size {
			continue
		}
		for _, combo := range Combinations(unsolved, size) {
			union := UnionCandidates(g, combo)
			if union.Count() != size {
				continue
			}
			var victims [][2]int
			for _, c := range u.Cells {
				if containsInt(combo, c) {
					continue
				}
				for _, d := range union.ToSlice() {
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
				Explanation:  explainFor(name, combo, union.ToSlice(), removed),
			}
		}
	}
	return nil
}

func hiddenSubset(g *grid.Grid, explainFlag bool, id, name string, size int) *Outcome {
	for _, u := range grid.AllUnits() {
		var presentDigits []int
		for d := 1; d <= 9; d++ {
			if len(g.CellsWith(d, u)) > 0 {
				presentDigits = append(presentDigits, d)
			}
		}
		if len(presentDigits) < size {
			continue
		}
		for _, combo := range Combinations(presentDigits, size) {
			cellSet := map[int]bool{}
			for _, d := range combo {
				for _, c := range g.CellsWith(d, u) {
					cellSet[c] = true
				}
			}
			if len(cellSet) != size {
				continue
			}
			var cells []int
			for c := range cellSet {
				cells = append(cells, c)
			}
			cells = sortInts(cells)

			var victims [][2]int
			for _, c := range cells {
				for _, d := range g.CandidatesAt(c).ToSlice() {
					if !containsInt(combo, d) {
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
				Explanation:  explainFor(name, cells, combo, removed),
			}
		}
	}
	return nil
}

func sortInts(xs []int) []int {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
	return xs
}
