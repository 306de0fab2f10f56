package technique

import "sudoku-engine/internal/grid"

// BasicFish2, BasicFish3, BasicFish4: X-Wing, Swordfish, Jellyfish. A digit
// confined, within size lines of one orientation, to cells that all fall in
// the same size cross-lines lets it be eliminated from the rest of those
// cross-lines. Scanned rows-as-base before cols-as-base (spec.md §4.5.1).
func BasicFish2(g *grid.Grid, explainFlag bool) *Outcome { return basicFish(g, explainFlag, "bf2", "X-Wing", 2) }
func BasicFish3(g *grid.Grid, explainFlag bool) *Outcome {
	return basicFish(g, explainFlag, "bf3", "Swordfish", 3)
}
func BasicFish4(g *grid.Grid, explainFlag bool) *Outcome {
	return basicFish(g, explainFlag, "bf4", "Jellyfish", 4)
}

func basicFish(g *grid.Grid, explainFlag bool, id, name string, size int) *Outcome {
	if out := fishPass(g, explainFlag, id, name, size, true); out != nil {
		return out
	}
	return fishPass(g, explainFlag, id, name, size, false)
}

// fishPass hunts for a fish with base lines of one orientation (rows when
// baseIsRow, else cols) and cover lines of the other.
func fishPass(g *grid.Grid, explainFlag bool, id, name string, size int, baseIsRow bool) *Outcome {
	for d := 1; d <= 9; d++ {
		var lines []int // base line indices that carry d at least once, at most size times
		for i := 0; i < grid.Size; i++ {
			cells := lineCells(i, baseIsRow)
			n := len(g.CandidatesIn(cells[:], d))
			if n >= 1 && n <= size {
				lines = append(lines, i)
			}
		}
		if len(lines) < size {
			continue
		}
		for _, combo := range Combinations(lines, size) {
			coverSet := map[int]bool{}
			var defining []int
			for _, li := range combo {
				cells := lineCells(li, baseIsRow)
				for _, c := range g.CandidatesIn(cells[:], d) {
					coverSet[crossIndex(c, baseIsRow)] = true
					defining = append(defining, c)
				}
			}
			if len(coverSet) != size {
				continue
			}
			var victims [][2]int
			for cv := range coverSet {
				cross := lineCells(cv, !baseIsRow)
				for _, c := range cross {
					if !g.CandidatesAt(c).Has(d) {
						continue
					}
					if containsInt(defining, c) {
						continue
					}
					if containsInt(combo, lineIndex(c, baseIsRow)) {
						continue
					}
					victims = append(victims, [2]int{c, d})
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
				Explanation:  explainFor(name, defining, []int{d}, removed),
			}
		}
	}
	return nil
}

func lineCells(i int, isRow bool) [9]int {
	if isRow {
		return grid.RowCells(i)
	}
	return grid.ColCells(i)
}

// crossIndex returns the cross-orientation line index (col if base is row,
// row if base is col) a cell belongs to.
func crossIndex(cell int, baseIsRow bool) int {
	if baseIsRow {
		return grid.ColOf(cell)
	}
	return grid.RowOf(cell)
}

// lineIndex returns the base-orientation line index a cell belongs to.
func lineIndex(cell int, baseIsRow bool) int {
	if baseIsRow {
		return grid.RowOf(cell)
	}
	return grid.ColOf(cell)
}
