package technique

import "sudoku-engine/internal/grid"

// FinnedFish2, FinnedFish3, FinnedFish4: finned X-Wing/Swordfish/Jellyfish.
// A finned fish relaxes the basic fish shape: base lines may carry extra
// "fin" cells outside the cover lines, so long as every fin cell shares a
// box with every other fin cell. Eliminations then only reach cells that
// are peers of every fin cell (sashimi fish, where a base line holds only
// fin cells and no true cover cell, falls out of this same search and is
// not distinguished as a separate technique — see DESIGN.md).
func FinnedFish2(g *grid.Grid, explainFlag bool) *Outcome {
	return finnedFish(g, explainFlag, "fbf2", "Finned X-Wing", 2)
}
func FinnedFish3(g *grid.Grid, explainFlag bool) *Outcome {
	return finnedFish(g, explainFlag, "fbf3", "Finned Swordfish", 3)
}
func FinnedFish4(g *grid.Grid, explainFlag bool) *Outcome {
	return finnedFish(g, explainFlag, "fbf4", "Finned Jellyfish", 4)
}

const maxFinCells = 3

func finnedFish(g *grid.Grid, explainFlag bool, id, name string, size int) *Outcome {
	if out := finnedFishPass(g, explainFlag, id, name, size, true); out != nil {
		return out
	}
	return finnedFishPass(g, explainFlag, id, name, size, false)
}

func finnedFishPass(g *grid.Grid, explainFlag bool, id, name string, size int, baseIsRow bool) *Outcome {
	for d := 1; d <= 9; d++ {
		var lines []int
		for i := 0; i < grid.Size; i++ {
			line := lineCells(i, baseIsRow)
			n := len(g.CandidatesIn(line[:], d))
			if n >= 1 && n <= size+maxFinCells {
				lines = append(lines, i)
			}
		}
		if len(lines) < size {
			continue
		}
		for _, baseCombo := range Combinations(lines, size) {
			var cells []int
			crossSeen := map[int]bool{}
			for _, li := range baseCombo {
				line := lineCells(li, baseIsRow)
				for _, c := range g.CandidatesIn(line[:], d) {
					cells = append(cells, c)
					crossSeen[crossIndex(c, baseIsRow)] = true
				}
			}
			var crossLines []int
			for cv := range crossSeen {
				crossLines = append(crossLines, cv)
			}
			if len(crossLines) < size {
				continue
			}
			for _, coverCombo := range Combinations(crossLines, size) {
				var fins []int
				for _, c := range cells {
					if !containsInt(coverCombo, crossIndex(c, baseIsRow)) {
						fins = append(fins, c)
					}
				}
				if len(fins) == 0 || len(fins) > maxFinCells {
					continue
				}
				if !sameBox(fins) {
					continue
				}
				var victims [][2]int
				for _, cv := range coverCombo {
					for _, c := range lineCells(cv, !baseIsRow) {
						if !g.CandidatesAt(c).Has(d) {
							continue
						}
						if containsInt(baseCombo, lineIndex(c, baseIsRow)) {
							continue
						}
						if !grid.AllSeeAll([]int{c}, fins) {
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
				defining := append(append([]int(nil), cells...))
				return &Outcome{
					Eliminations: countEliminations(removed),
					Explanation:  explainFor(name, defining, []int{d}, removed),
				}
			}
		}
	}
	return nil
}

func sameBox(cells []int) bool {
	if len(cells) == 0 {
		return false
	}
	b := grid.BoxOf(cells[0])
	for _, c := range cells[1:] {
		if grid.BoxOf(c) != b {
			return false
		}
	}
	return true
}
