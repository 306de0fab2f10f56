package technique

import "sudoku-engine/internal/grid"

// rectangle is a candidate unique-rectangle shape: four cells at the
// corners of two rows and two columns that together touch exactly two
// boxes (the deadly-pattern precondition every UR type shares).
type rectangle struct {
	cells [4]int // (r1,c1) (r1,c2) (r2,c1) (r2,c2)
	r1, r2, c1, c2 int
}

func allRectangles() []rectangle {
	var out []rectangle
	for r1 := 0; r1 < grid.Size; r1++ {
		for r2 := r1 + 1; r2 < grid.Size; r2++ {
			for c1 := 0; c1 < grid.Size; c1++ {
				for c2 := c1 + 1; c2 < grid.Size; c2++ {
					cells := [4]int{
						grid.IndexOf(r1, c1), grid.IndexOf(r1, c2),
						grid.IndexOf(r2, c1), grid.IndexOf(r2, c2),
					}
					boxes := map[int]bool{}
					for _, c := range cells {
						boxes[grid.BoxOf(c)] = true
					}
					if len(boxes) != 2 {
						continue
					}
					out = append(out, rectangle{cells: cells, r1: r1, r2: r2, c1: c1, c2: c2})
				}
			}
		}
	}
	return out
}

// UniqueRectangleType1: three corners hold exactly {x,y}; the fourth,
// which holds {x,y} plus more, loses x and y — leaving it alone would let
// the rectangle toggle between two equally valid solutions.
func UniqueRectangleType1(g *grid.Grid, explainFlag bool) *Outcome {
	for x := 1; x <= 9; x++ {
		for y := x + 1; y <= 9; y++ {
			for _, rect := range allRectangles() {
				pure, impure := splitRectangle(g, rect, x, y)
				if len(pure) != 3 || len(impure) != 1 {
					continue
				}
				odd := impure[0]
				removed := g.Eliminate("u1", x, []int{odd})
				removed2 := g.Eliminate("u1", y, []int{odd})
				merged := mergeRemovals(removed, removed2)
				if len(merged) == 0 {
					continue
				}
				return &Outcome{
					Eliminations: countEliminations(merged),
					Explanation:  explainFor("Unique Rectangle (Type 1)", pure, []int{x, y}, merged),
				}
			}
		}
	}
	return nil
}

// UniqueRectangleType2: two corners are exactly {x,y}; the other two share
// one extra digit z and lie in a common unit — z is removed from any cell
// seeing both of them, else the rectangle could still toggle.
func UniqueRectangleType2(g *grid.Grid, explainFlag bool) *Outcome {
	for x := 1; x <= 9; x++ {
		for y := x + 1; y <= 9; y++ {
			for _, rect := range allRectangles() {
				pure, impure := splitRectangle(g, rect, x, y)
				if len(pure) != 2 || len(impure) != 2 {
					continue
				}
				if g.CandidatesAt(impure[0]).Count() != 3 || g.CandidatesAt(impure[1]).Count() != 3 {
					continue
				}
				extras := make(map[int][]int)
				for _, c := range impure {
					for _, d := range g.CandidatesAt(c).ToSlice() {
						if d != x && d != y {
							extras[d] = append(extras[d], c)
						}
					}
				}
				for z, holders := range extras {
					if len(holders) != 2 {
						continue
					}
					victims := CellsSeeingAll(g, holders)
					var plan [][2]int
					for _, v := range victims {
						if g.CandidatesAt(v).Has(z) {
							plan = append(plan, [2]int{v, z})
						}
					}
					if len(plan) == 0 {
						continue
					}
					removed := g.EliminateMap("u2", PlanFromPairs(plan))
					if len(removed) == 0 {
						continue
					}
					return &Outcome{
						Eliminations: countEliminations(removed),
						Explanation:  explainFor("Unique Rectangle (Type 2)", rect.cells[:], []int{x, y, z}, removed),
					}
				}
			}
		}
	}
	return nil
}

// UniqueRectangleType4: two corners are exactly {x,y}; in the unit shared
// by the other two corners, one of x/y is conjugate-restricted to just
// those two cells, so the other digit can never be the toggle and is
// removed from both.
func UniqueRectangleType4(g *grid.Grid, explainFlag bool) *Outcome {
	for x := 1; x <= 9; x++ {
		for y := x + 1; y <= 9; y++ {
			for _, rect := range allRectangles() {
				pure, impure := splitRectangle(g, rect, x, y)
				if len(pure) != 2 || len(impure) != 2 {
					continue
				}
				for _, u := range grid.AllUnits() {
					if !containsInt(u.Cells[:], impure[0]) || !containsInt(u.Cells[:], impure[1]) {
						continue
					}
					for _, restricted := range [2]int{x, y} {
						eliminated := y
						if restricted == y {
							eliminated = x
						}
						if len(g.CellsWith(restricted, u)) != 2 {
							continue
						}
						var plan [][2]int
						for _, c := range impure {
							if g.CandidatesAt(c).Has(eliminated) {
								plan = append(plan, [2]int{c, eliminated})
							}
						}
						if len(plan) == 0 {
							continue
						}
						removed := g.EliminateMap("u4", PlanFromPairs(plan))
						if len(removed) == 0 {
							continue
						}
						return &Outcome{
							Eliminations: countEliminations(removed),
							Explanation:  explainFor("Unique Rectangle (Type 4)", rect.cells[:], []int{x, y}, removed),
						}
					}
				}
			}
		}
	}
	return nil
}

// UniqueRectangleType3: two corners are exactly {x,y}; the other two
// corners' extra candidates, together with another cell sharing their
// unit, form a naked subset — the subset digits are removed from the rest
// of that unit exactly as a plain naked-subset would, but grounded in the
// UR deadly pattern rather than the unit alone.
func UniqueRectangleType3(g *grid.Grid, explainFlag bool) *Outcome {
	for x := 1; x <= 9; x++ {
		for y := x + 1; y <= 9; y++ {
			for _, rect := range allRectangles() {
				pure, impure := splitRectangle(g, rect, x, y)
				if len(pure) != 2 || len(impure) != 2 {
					continue
				}
				extraUnion := UnionCandidates(g, impure).Subtract(grid.NewCandidates([]int{x, y}))
				if extraUnion.IsEmpty() {
					continue
				}
				for _, u := range grid.AllUnits() {
					if !containsInt(u.Cells[:], impure[0]) || !containsInt(u.Cells[:], impure[1]) {
						continue
					}
					for size := 2; size <= 3; size++ {
						var others []int
						for _, c := range u.Cells {
							if c != impure[0] && c != impure[1] && !g.IsSolvedCell(c) {
								others = append(others, c)
							}
						}
						for _, combo := range Combinations(others, size-1) {
							union := extraUnion
							for _, c := range combo {
								union = union.Union(g.CandidatesAt(c))
							}
							if union.Count() != size {
								continue
							}
							var plan [][2]int
							for _, c := range u.Cells {
								if c == impure[0] || c == impure[1] || containsInt(combo, c) {
									continue
								}
								for _, d := range union.ToSlice() {
									if g.CandidatesAt(c).Has(d) {
										plan = append(plan, [2]int{c, d})
									}
								}
							}
							if len(plan) == 0 {
								continue
							}
							removed := g.EliminateMap("u3", PlanFromPairs(plan))
							if len(removed) == 0 {
								continue
							}
							defining := append(append([]int(nil), impure...), combo...)
							return &Outcome{
								Eliminations: countEliminations(removed),
								Explanation:  explainFor("Unique Rectangle (Type 3)", defining, union.ToSlice(), removed),
							}
						}
					}
				}
			}
		}
	}
	return nil
}

// splitRectangle classifies a rectangle's corners against pair {x,y}: a
// "pure" corner has exactly {x,y}; an "impure" one has both plus more.
// Corners missing either digit disqualify the whole rectangle.
func splitRectangle(g *grid.Grid, rect rectangle, x, y int) (pure, impure []int) {
	for _, c := range rect.cells {
		if g.IsSolvedCell(c) {
			return nil, nil
		}
		cd := g.CandidatesAt(c)
		if !cd.Has(x) || !cd.Has(y) {
			return nil, nil
		}
		if cd.Count() == 2 {
			pure = append(pure, c)
		} else {
			impure = append(impure, c)
		}
	}
	return pure, impure
}

func mergeRemovals(a, b grid.RemovalMap) grid.RemovalMap {
	out := grid.RemovalMap{}
	for d, cells := range a {
		out[d] = append(out[d], cells...)
	}
	for d, cells := range b {
		out[d] = append(out[d], cells...)
	}
	return out
}

// AvoidableRectangle1/2 mirror Unique Rectangle 1/2 but with corners that
// are already solved by placement (not givens) instead of bivalue
// candidates: Type 1 has three solved corners, Type 2 has two. Placed
// values could be swapped around the rectangle without touching any given,
// so the unsolved corners must not complete that swap. A rectangle with a
// given corner is skipped.
func AvoidableRectangle1(g *grid.Grid, explainFlag bool) *Outcome {
	for _, rect := range allRectangles() {
		solved, unsolved := splitGivenRectangle(g, rect)
		if len(solved) < 2 || len(unsolved) != 1 {
			continue
		}
		x, y, ok := inferPairFromGivens(g, solved)
		if !ok {
			continue
		}
		odd := unsolved[0]
		if !g.CandidatesAt(odd).Has(x) && !g.CandidatesAt(odd).Has(y) {
			continue
		}
		r1 := g.Eliminate("ar1", x, []int{odd})
		r2 := g.Eliminate("ar1", y, []int{odd})
		merged := mergeRemovals(r1, r2)
		if len(merged) == 0 {
			continue
		}
		return &Outcome{
			Eliminations: countEliminations(merged),
			Explanation:  explainFor("Avoidable Rectangle (Type 1)", solved, []int{x, y}, merged),
		}
	}
	return nil
}

func AvoidableRectangle2(g *grid.Grid, explainFlag bool) *Outcome {
	for _, rect := range allRectangles() {
		solved, unsolved := splitGivenRectangle(g, rect)
		if len(solved) != 2 || len(unsolved) != 2 {
			continue
		}
		x, y, ok := inferPairFromGivens(g, solved)
		if !ok {
			continue
		}
		extras := make(map[int][]int)
		for _, c := range unsolved {
			cd := g.CandidatesAt(c)
			if !cd.Has(x) || !cd.Has(y) {
				continue
			}
			for _, d := range cd.ToSlice() {
				if d != x && d != y {
					extras[d] = append(extras[d], c)
				}
			}
		}
		for z, holders := range extras {
			if len(holders) != 2 {
				continue
			}
			victims := CellsSeeingAll(g, holders)
			var plan [][2]int
			for _, v := range victims {
				if g.CandidatesAt(v).Has(z) {
					plan = append(plan, [2]int{v, z})
				}
			}
			if len(plan) == 0 {
				continue
			}
			removed := g.EliminateMap("ar2", PlanFromPairs(plan))
			if len(removed) == 0 {
				continue
			}
			return &Outcome{
				Eliminations: countEliminations(removed),
				Explanation:  explainFor("Avoidable Rectangle (Type 2)", rect.cells[:], []int{x, y, z}, removed),
			}
		}
	}
	return nil
}

// splitGivenRectangle sorts a rectangle's corners into solved and unsolved;
// a corner holding a given disqualifies the whole rectangle.
func splitGivenRectangle(g *grid.Grid, rect rectangle) (solved, unsolved []int) {
	for _, c := range rect.cells {
		if g.Given(c) {
			return nil, nil
		}
		if g.IsSolvedCell(c) {
			solved = append(solved, c)
		} else {
			unsolved = append(unsolved, c)
		}
	}
	return solved, unsolved
}

func inferPairFromGivens(g *grid.Grid, solved []int) (x, y int, ok bool) {
	values := map[int]bool{}
	for _, c := range solved {
		values[g.Value(c)] = true
	}
	if len(values) != 2 {
		return 0, 0, false
	}
	var vs []int
	for v := range values {
		vs = append(vs, v)
	}
	vs = sortInts(vs)
	return vs[0], vs[1], true
}

// HiddenRectangle: two corners are exactly {x,y}; when exactly one of x/y
// is confined to the other two corners on the row or column they share,
// the other digit is removed from the first of those two corners that
// carries it. When both x and y are confined there, the rectangle is
// skipped.
func HiddenRectangle(g *grid.Grid, explainFlag bool) *Outcome {
	for x := 1; x <= 9; x++ {
		for y := x + 1; y <= 9; y++ {
			for _, rect := range allRectangles() {
				pure, impure := splitRectangle(g, rect, x, y)
				if len(pure) != 2 || len(impure) != 2 {
					continue
				}
				floor0, floor1 := impure[0], impure[1]
				if conjugateRestrictedOnLine(g, rect, floor0, floor1, x) && conjugateRestrictedOnLine(g, rect, floor0, floor1, y) {
					continue // both restricted means this degenerates to Type 1/4, already covered
				}
				for _, d := range [2]int{x, y} {
					other := y
					if d == y {
						other = x
					}
					if conjugateRestrictedOnLine(g, rect, floor0, floor1, d) {
						for _, target := range impure {
							if g.CandidatesAt(target).Has(other) {
								removed := g.Eliminate("hr", other, []int{target})
								if len(removed) == 0 {
									continue
								}
								return &Outcome{
									Eliminations: countEliminations(removed),
									Explanation:  explainFor("Hidden Rectangle", pure, []int{x, y}, removed),
								}
							}
						}
					}
				}
			}
		}
	}
	return nil
}

// conjugateRestrictedOnLine reports whether digit d is confined to floor0
// and floor1 within the row or column they share.
func conjugateRestrictedOnLine(g *grid.Grid, rect rectangle, floor0, floor1, d int) bool {
	for _, u := range grid.AllUnits() {
		if u.Kind == grid.KindBox {
			continue
		}
		if !containsInt(u.Cells[:], floor0) || !containsInt(u.Cells[:], floor1) {
			continue
		}
		if len(g.CellsWith(d, u)) == 2 {
			return true
		}
	}
	return false
}

// BUG1 (Bivalue Universal Grave +1): if every unsolved cell is bivalue
// except one cell with exactly three candidates, the puzzle is one step
// from a BUG deadlock; the extra cell's digit that appears an odd number
// of times among the candidates of its row must be the solution, and it is
// placed there.
func BUG1(g *grid.Grid, explainFlag bool) *Outcome {
	var triple = -1
	for _, c := range UnsolvedCells(g) {
		n := g.CandidatesAt(c).Count()
		if n == 2 {
			continue
		}
		if n == 3 && triple == -1 {
			triple = c
			continue
		}
		return nil // some cell isn't bivalue and isn't the single tri-value cell
	}
	if triple == -1 {
		return nil
	}
	for _, d := range g.CandidatesAt(triple).ToSlice() {
		if bugDigitCountOdd(g, triple, d) {
			removed := g.Place("bug1", triple, d)
			return &Outcome{
				Eliminations: countEliminations(removed) + 1,
				Explanation:  explainFor("BUG+1", []int{triple}, []int{d}, removed),
			}
		}
	}
	return nil
}

func bugDigitCountOdd(g *grid.Grid, cell, d int) bool {
	row := grid.AllUnits()[grid.RowOf(cell)]
	return len(g.CellsWith(d, row))%2 == 1
}

// SueDeCoq: in a box-row/col intersection of 2 or 3 cells whose union of
// candidates has size >= len(intersection)+2, a partition of those
// candidates into a row/col-side digit set and a box-side digit set is
// only sound once each side is actually realized by a naked subset in its
// own complement — some k cells of the line (or box) complement whose
// combined candidates equal exactly that side's digits, k matching the
// digit count (spec.md §4.5.1: "pairs them with naked subsets (δ=1 or
// δ=2) of the row/col and box complements such that the union covers the
// subset's candidates"). Only once both sides' subsets are confirmed do
// their digits get purged from the rest of their own line/box, mirroring
// UniqueRectangleType3's Combinations-based naked-subset search.
func SueDeCoq(g *grid.Grid, explainFlag bool) *Outcome {
	triplets := append(grid.BoxRowTriplets(), grid.BoxColTriplets()...)
	for _, t := range triplets {
		var inter []int
		for _, c := range t.Cells {
			if !g.IsSolvedCell(c) {
				inter = append(inter, c)
			}
		}
		if len(inter) < 2 {
			continue
		}
		union := UnionCandidates(g, inter)
		if union.Count() < len(inter)+2 {
			continue
		}
		lineOthers := unsolvedOthers(g, t.LineComplement)
		boxOthers := unsolvedOthers(g, t.BoxComplement)
		digits := union.ToSlice()
		for size := 1; size < len(digits); size++ {
			for _, lineDigits := range Combinations(digits, size) {
				boxDigits := complementDigits(digits, lineDigits)
				lineSubset := nakedSubsetCells(g, lineOthers, lineDigits)
				if lineSubset == nil {
					continue
				}
				boxSubset := nakedSubsetCells(g, boxOthers, boxDigits)
				if boxSubset == nil {
					continue
				}
				var plan [][2]int
				for _, c := range lineOthers {
					if containsInt(lineSubset, c) {
						continue
					}
					for _, d := range lineDigits {
						if g.CandidatesAt(c).Has(d) {
							plan = append(plan, [2]int{c, d})
						}
					}
				}
				for _, c := range boxOthers {
					if containsInt(boxSubset, c) {
						continue
					}
					for _, d := range boxDigits {
						if g.CandidatesAt(c).Has(d) {
							plan = append(plan, [2]int{c, d})
						}
					}
				}
				if len(plan) == 0 {
					continue
				}
				removed := g.EliminateMap("sdc", PlanFromPairs(plan))
				if len(removed) == 0 {
					continue
				}
				defining := append(append([]int(nil), lineSubset...), boxSubset...)
				return &Outcome{
					Eliminations: countEliminations(removed),
					Explanation:  explainFor("Sue de Coq", defining, digits, removed),
				}
			}
		}
	}
	return nil
}

// nakedSubsetCells searches cells for a combination of exactly len(digits)
// cells whose combined candidates equal digits exactly, returning that
// combination or nil if none exists — the same check
// UniqueRectangleType3 makes via Combinations/union.Count(), generalised
// to a caller-supplied target digit set instead of an implied one.
func nakedSubsetCells(g *grid.Grid, cells []int, digits []int) []int {
	k := len(digits)
	if k == 0 || k > len(cells) {
		return nil
	}
	target := grid.NewCandidates(digits)
	for _, combo := range Combinations(cells, k) {
		if UnionCandidates(g, combo).Equals(target) {
			return combo
		}
	}
	return nil
}

func unsolvedOthers(g *grid.Grid, cells []int) []int {
	var out []int
	for _, c := range cells {
		if !g.IsSolvedCell(c) {
			out = append(out, c)
		}
	}
	return out
}

func complementDigits(all, subset []int) []int {
	var out []int
	for _, d := range all {
		if !containsInt(subset, d) {
			out = append(out, d)
		}
	}
	return out
}
