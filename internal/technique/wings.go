package technique

import "sudoku-engine/internal/grid"

// XYWing: a bivalue pivot {x,y} with two bivalue pincers {x,z} and {y,z},
// each a peer of the pivot, forces z out of any cell seeing both pincers.
func XYWing(g *grid.Grid, explainFlag bool) *Outcome {
	bivalues := UnsolvedCells(g)
	for _, pivot := range bivalues {
		if !g.IsBivalue(pivot) {
			continue
		}
		pd := g.CandidatesAt(pivot).ToSlice()
		x, y := pd[0], pd[1]
		var pincersX, pincersY []int
		for _, p := range grid.Peers(pivot) {
			if g.IsSolvedCell(p) || !g.IsBivalue(p) {
				continue
			}
			cd := g.CandidatesAt(p).ToSlice()
			if containsInt(cd, x) && !containsInt(cd, y) {
				pincersX = append(pincersX, p)
			} else if containsInt(cd, y) && !containsInt(cd, x) {
				pincersY = append(pincersY, p)
			}
		}
		for _, px := range pincersX {
			zx := otherDigit(g, px, x)
			for _, py := range pincersY {
				zy := otherDigit(g, py, y)
				if zx != zy || zx == 0 {
					continue
				}
				z := zx
				victims := CellsSeeingAll(g, []int{px, py})
				var plan [][2]int
				for _, v := range victims {
					if v == pivot {
						continue
					}
					if g.CandidatesAt(v).Has(z) {
						plan = append(plan, [2]int{v, z})
					}
				}
				if len(plan) == 0 {
					continue
				}
				removed := g.EliminateMap("xy", PlanFromPairs(plan))
				if len(removed) == 0 {
					continue
				}
				return &Outcome{
					Eliminations: countEliminations(removed),
					Explanation:  explainFor("XY-Wing", []int{pivot, px, py}, []int{z}, removed),
				}
			}
		}
	}
	return nil
}

// XYZWing: like XYWing but the pivot itself carries z too (a trivalue
// pivot {x,y,z}), so the pivot also sees every elimination target.
func XYZWing(g *grid.Grid, explainFlag bool) *Outcome {
	for pivot := 0; pivot < grid.Cells; pivot++ {
		if g.IsSolvedCell(pivot) || g.CandidatesAt(pivot).Count() != 3 {
			continue
		}
		pd := g.CandidatesAt(pivot).ToSlice()
		for _, combo := range Combinations(pd, 2) {
			x, y := combo[0], combo[1]
			var z int
			for _, d := range pd {
				if d != x && d != y {
					z = d
				}
			}
			var pincersX, pincersY []int
			for _, p := range grid.Peers(pivot) {
				if g.IsSolvedCell(p) || !g.IsBivalue(p) {
					continue
				}
				cd := g.CandidatesAt(p).ToSlice()
				if containsInt(cd, x) && containsInt(cd, z) && !containsInt(cd, y) {
					pincersX = append(pincersX, p)
				}
				if containsInt(cd, y) && containsInt(cd, z) && !containsInt(cd, x) {
					pincersY = append(pincersY, p)
				}
			}
			for _, px := range pincersX {
				for _, py := range pincersY {
					victims := CellsSeeingAll(g, []int{pivot, px, py})
					var plan [][2]int
					for _, v := range victims {
						if g.CandidatesAt(v).Has(z) {
							plan = append(plan, [2]int{v, z})
						}
					}
					if len(plan) == 0 {
						continue
					}
					removed := g.EliminateMap("xyz", PlanFromPairs(plan))
					if len(removed) == 0 {
						continue
					}
					return &Outcome{
						Eliminations: countEliminations(removed),
						Explanation:  explainFor("XYZ-Wing", []int{pivot, px, py}, []int{z}, removed),
					}
				}
			}
		}
	}
	return nil
}

// WWing: two bivalue cells sharing the same pair {x,y} and not peers of
// each other, linked by a conjugate pair on digit y whose one end sees the
// first cell and whose other end sees the second; x is removed from any
// cell seeing both pair-cells.
func WWing(g *grid.Grid, explainFlag bool) *Outcome {
	var pairs []int
	for i := 0; i < grid.Cells; i++ {
		if !g.IsSolvedCell(i) && g.IsBivalue(i) {
			pairs = append(pairs, i)
		}
	}
	for _, combo := range Combinations(pairs, 2) {
		a, b := combo[0], combo[1]
		da := g.CandidatesAt(a).ToSlice()
		db := g.CandidatesAt(b).ToSlice()
		if !sameDigitPair(da, db) || grid.ArePeers(a, b) {
			continue
		}
		x, y := da[0], da[1]
		for _, linkDigit := range [2]int{x, y} {
			eliminated := x
			if linkDigit == x {
				eliminated = y
			}
			if hasConjugateLink(g, a, b, linkDigit) {
				victims := CellsSeeingAll(g, []int{a, b})
				var plan [][2]int
				for _, v := range victims {
					if g.CandidatesAt(v).Has(eliminated) {
						plan = append(plan, [2]int{v, eliminated})
					}
				}
				if len(plan) == 0 {
					continue
				}
				removed := g.EliminateMap("w", PlanFromPairs(plan))
				if len(removed) == 0 {
					continue
				}
				return &Outcome{
					Eliminations: countEliminations(removed),
					Explanation:  explainFor("W-Wing", []int{a, b}, []int{eliminated}, removed),
				}
			}
		}
	}
	return nil
}

func otherDigit(g *grid.Grid, cell, known int) int {
	for _, d := range g.CandidatesAt(cell).ToSlice() {
		if d != known {
			return d
		}
	}
	return 0
}

func sameDigitPair(a, b []int) bool {
	return len(a) == 2 && len(b) == 2 && containsInt(b, a[0]) && containsInt(b, a[1])
}

// hasConjugateLink reports whether some conjugate pair p,q on d (the only
// two carriers of d in a unit they share) has p seeing a and q seeing b,
// with neither p nor q being a or b.
func hasConjugateLink(g *grid.Grid, a, b, d int) bool {
	for _, p := range grid.Peers(a) {
		if p == b || g.IsSolvedCell(p) || !g.CandidatesAt(p).Has(d) {
			continue
		}
		for _, q := range grid.Peers(b) {
			if q == a || q == p || g.IsSolvedCell(q) || !g.CandidatesAt(q).Has(d) {
				continue
			}
			if conjugateOn(g, p, q, d) {
				return true
			}
		}
	}
	return false
}

// conjugateOn reports whether x and y are the only two carriers of d in
// some unit they share.
func conjugateOn(g *grid.Grid, x, y, d int) bool {
	if !grid.ArePeers(x, y) {
		return false
	}
	for _, u := range grid.AllUnits() {
		if !containsInt(u.Cells[:], x) || !containsInt(u.Cells[:], y) {
			continue
		}
		if len(g.CellsWith(d, u)) == 2 {
			return true
		}
	}
	return false
}
