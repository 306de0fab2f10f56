package technique

import "sudoku-engine/internal/grid"

// Skyscraper: two rows (or two cols) each hold a digit in exactly two
// cells, one column (row) shared between them; the two "roof" cells both
// see any cell that sees both non-shared ends, so the digit is removed
// from there. A same-orientation specialisation of the basic fish family.
func Skyscraper(g *grid.Grid, explainFlag bool) *Outcome {
	if out := skyscraperPass(g, explainFlag, true); out != nil {
		return out
	}
	return skyscraperPass(g, explainFlag, false)
}

func skyscraperPass(g *grid.Grid, explainFlag bool, baseIsRow bool) *Outcome {
	for d := 1; d <= 9; d++ {
		var lines []int
		for i := 0; i < grid.Size; i++ {
			line := lineCells(i, baseIsRow)
			if len(g.CandidatesIn(line[:], d)) == 2 {
				lines = append(lines, i)
			}
		}
		for _, combo := range Combinations(lines, 2) {
			lineA, lineB := lineCells(combo[0], baseIsRow), lineCells(combo[1], baseIsRow)
			cellsA := g.CandidatesIn(lineA[:], d)
			cellsB := g.CandidatesIn(lineB[:], d)
			var sharedCross = -1
			var endA, endB int
			found := false
			for _, a := range cellsA {
				for _, b := range cellsB {
					if crossIndex(a, baseIsRow) == crossIndex(b, baseIsRow) {
						sharedCross = crossIndex(a, baseIsRow)
						var otherA, otherB int
						for _, x := range cellsA {
							if x != a {
								otherA = x
							}
						}
						for _, x := range cellsB {
							if x != b {
								otherB = x
							}
						}
						endA, endB = otherA, otherB
						found = true
					}
				}
			}
			if !found || sharedCross < 0 {
				continue
			}
			victims := CellsSeeingAll(g, []int{endA, endB})
			var plan [][2]int
			for _, c := range victims {
				if g.CandidatesAt(c).Has(d) {
					plan = append(plan, [2]int{c, d})
				}
			}
			if len(plan) == 0 {
				continue
			}
			removed := g.EliminateMap("sk", PlanFromPairs(plan))
			if len(removed) == 0 {
				continue
			}
			return &Outcome{
				Eliminations: countEliminations(removed),
				Explanation:  explainFor("Skyscraper", []int{endA, endB}, []int{d}, removed),
			}
		}
	}
	return nil
}

// TwoStringKite: a row and a column each hold a digit in exactly two
// cells, sharing a box; the two free ends both see any cell at their
// row/column intersection, which loses the digit.
func TwoStringKite(g *grid.Grid, explainFlag bool) *Outcome {
	for d := 1; d <= 9; d++ {
		for r := 0; r < grid.Size; r++ {
			rowUnit := grid.RowCells(r)
			rowCells := g.CandidatesIn(rowUnit[:], d)
			if len(rowCells) != 2 {
				continue
			}
			for c := 0; c < grid.Size; c++ {
				colUnit := grid.ColCells(c)
				colCells := g.CandidatesIn(colUnit[:], d)
				if len(colCells) != 2 {
					continue
				}
				if containsInt(colCells, rowCells[0]) || containsInt(colCells, rowCells[1]) {
					continue
				}
				var rowLink, rowEnd, colLink, colEnd int
				linked := false
				for _, rc := range rowCells {
					for _, cc := range colCells {
						if rc == cc {
							continue
						}
						if grid.BoxOf(rc) == grid.BoxOf(cc) {
							rowLink, colLink = rc, cc
							linked = true
						}
					}
				}
				if !linked {
					continue
				}
				for _, rc := range rowCells {
					if rc != rowLink {
						rowEnd = rc
					}
				}
				for _, cc := range colCells {
					if cc != colLink {
						colEnd = cc
					}
				}
				target := grid.IndexOf(grid.RowOf(colEnd), grid.ColOf(rowEnd))
				if target == rowEnd || target == colEnd || !g.CandidatesAt(target).Has(d) {
					continue
				}
				if g.IsSolvedCell(target) {
					continue
				}
				removed := g.Eliminate("2sk", d, []int{target})
				if len(removed) == 0 {
					continue
				}
				return &Outcome{
					Eliminations: countEliminations(removed),
					Explanation:  explainFor("2-String Kite", []int{rowEnd, colEnd}, []int{d}, removed),
				}
			}
		}
	}
	return nil
}

// TurbotFish generalises Skyscraper/2-String Kite: any two conjugate
// (strong-link) pairs of the same digit joined by a shared unit, whether
// row-row, row-col, or col-col.
func TurbotFish(g *grid.Grid, explainFlag bool) *Outcome {
	for d := 1; d <= 9; d++ {
		var strong [][2]int
		for _, u := range grid.AllUnits() {
			cells := g.CellsWith(d, u)
			if len(cells) == 2 {
				strong = append(strong, [2]int{cells[0], cells[1]})
			}
		}
		for i := 0; i < len(strong); i++ {
			for j := i + 1; j < len(strong); j++ {
				p, q := strong[i], strong[j]
				for _, linkP := range p {
					for _, linkQ := range q {
						if linkP == linkQ || !grid.ArePeers(linkP, linkQ) {
							continue
						}
						endP := other(p, linkP)
						endQ := other(q, linkQ)
						if endP == endQ || endP == linkQ || endQ == linkP {
							continue
						}
						var plan [][2]int
						for _, c := range CellsSeeingAll(g, []int{endP, endQ}) {
							if g.CandidatesAt(c).Has(d) {
								plan = append(plan, [2]int{c, d})
							}
						}
						if len(plan) == 0 {
							continue
						}
						removed := g.EliminateMap("tf", PlanFromPairs(plan))
						if len(removed) == 0 {
							continue
						}
						return &Outcome{
							Eliminations: countEliminations(removed),
							Explanation:  explainFor("Turbot Fish", []int{linkP, linkQ}, []int{d}, removed),
						}
					}
				}
			}
		}
	}
	return nil
}

func other(pair [2]int, one int) int {
	if pair[0] == one {
		return pair[1]
	}
	return pair[0]
}

// EmptyRectangle: a box whose candidates for a digit all lie on one row
// and one column inside it (its "pivot" row/col — an empty rectangle
// covers the other two rows and columns) acts as a strong link from that
// pivot row to the pivot column. Paired with a conjugate pair elsewhere on
// the pivot row, the digit is removed from the cell at the conjugate's
// far-end row crossed with the pivot column.
func EmptyRectangle(g *grid.Grid, explainFlag bool) *Outcome {
	for d := 1; d <= 9; d++ {
		for box := 0; box < 9; box++ {
			boxUnit := grid.BoxCells(box)
			cells := g.CandidatesIn(boxUnit[:], d)
			if len(cells) < 2 {
				continue
			}
			pivotRow, pivotCol, ok := emptyRectanglePivot(cells)
			if !ok {
				continue
			}
			pivotRowUnit := grid.RowCells(pivotRow)
			for _, rc := range g.CandidatesIn(pivotRowUnit[:], d) {
				if grid.BoxOf(rc) == box {
					continue
				}
				farCol := grid.ColOf(rc)
				farColUnit := grid.ColCells(farCol)
				colCarriers := g.CandidatesIn(farColUnit[:], d)
				if len(colCarriers) != 2 {
					continue
				}
				var farRow int
				for _, cc := range colCarriers {
					if grid.RowOf(cc) != pivotRow {
						farRow = grid.RowOf(cc)
					}
				}
				target := grid.IndexOf(farRow, pivotCol)
				if grid.BoxOf(target) == box || g.IsSolvedCell(target) || !g.CandidatesAt(target).Has(d) {
					continue
				}
				removed := g.Eliminate("er", d, []int{target})
				if len(removed) == 0 {
					continue
				}
				return &Outcome{
					Eliminations: countEliminations(removed),
					Explanation:  explainFor("Empty Rectangle", cells, []int{d}, removed),
				}
			}
		}
	}
	return nil
}

// emptyRectanglePivot reports whether a box's digit candidates collapse
// onto a single row and a single column within the box, and if so which.
func emptyRectanglePivot(cells []int) (row, col int, ok bool) {
	rowSet := map[int]bool{}
	colSet := map[int]bool{}
	for _, c := range cells {
		rowSet[grid.RowOf(c)] = true
		colSet[grid.ColOf(c)] = true
	}
	if len(rowSet) != 2 || len(colSet) != 2 {
		return 0, 0, false
	}
	// the pivot is the row/col touched by every candidate that lies off
	// the other axis's minority line; simplest sound check: every cell
	// lies in the pivot row or the pivot col (never neither).
	for r := range rowSet {
		for c := range colSet {
			allCovered := true
			for _, cell := range cells {
				if grid.RowOf(cell) != r && grid.ColOf(cell) != c {
					allCovered = false
					break
				}
			}
			if allCovered {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
