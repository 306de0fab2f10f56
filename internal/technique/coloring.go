package technique

import (
	"sudoku-engine/internal/grid"
)

// component is one connected chain of conjugate pairs for a single digit,
// bipartitioned into two colors. The seed cell (lowest index in the chain)
// is always assigned color 0 — the "blue-first" canonicalisation that keeps
// technique output deterministic across runs (grounded on sudosol.py's
// colour-chain seeding, which always starts from the first-encountered
// strong link).
type component struct {
	colorOf map[int]int
	color0  []int
	color1  []int
}

// conjugatePairs builds the strong-link graph for digit d: an edge between
// two cells exists wherever some unit has exactly those two cells as its
// only carriers of d.
func conjugatePairs(g *grid.Grid, d int) map[int][]int {
	adj := map[int][]int{}
	addEdge := func(a, b int) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for _, u := range grid.AllUnits() {
		cells := g.CellsWith(d, u)
		if len(cells) == 2 {
			addEdge(cells[0], cells[1])
		}
	}
	return adj
}

// colorComponents partitions the conjugate-pair graph of digit d into its
// connected components, each bipartitioned by alternating color.
func colorComponents(g *grid.Grid, d int) []component {
	adj := conjugatePairs(g, d)
	visited := map[int]bool{}
	var comps []component

	var seeds []int
	for c := range adj {
		seeds = append(seeds, c)
	}
	seeds = sortInts(seeds)

	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		colorOf := map[int]int{seed: 0}
		visited[seed] = true
		queue := []int{seed}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			neighbors := sortInts(append([]int(nil), adj[cur]...))
			for _, n := range neighbors {
				if visited[n] {
					continue
				}
				visited[n] = true
				colorOf[n] = 1 - colorOf[cur]
				queue = append(queue, n)
			}
		}
		var c0, c1 []int
		for cell, col := range colorOf {
			if col == 0 {
				c0 = append(c0, cell)
			} else {
				c1 = append(c1, cell)
			}
		}
		comps = append(comps, component{colorOf: colorOf, color0: sortInts(c0), color1: sortInts(c1)})
	}
	return comps
}

// anySeesAny reports whether some cell of as is a peer of some cell of bs.
func anySeesAny(as, bs []int) bool {
	for _, a := range as {
		for _, b := range bs {
			if grid.ArePeers(a, b) {
				return true
			}
		}
	}
	return false
}

// sees reports whether x is a peer of some cell in cells.
func sees(x int, cells []int) bool {
	for _, c := range cells {
		if grid.ArePeers(x, c) {
			return true
		}
	}
	return false
}

// ColourTrap (sc1): if two same-coloured cells of a chain see each other,
// that colour is impossible everywhere, so the digit is removed from every
// cell of that colour.
func ColourTrap(g *grid.Grid, explainFlag bool) *Outcome {
	for d := 1; d <= 9; d++ {
		for _, comp := range colorComponents(g, d) {
			if anySeesAny(comp.color0, comp.color0) {
				if out := eliminateColour(g, explainFlag, "sc1", "Simple Colouring (Trap)", d, comp.color0); out != nil {
					return out
				}
			}
			if anySeesAny(comp.color1, comp.color1) {
				if out := eliminateColour(g, explainFlag, "sc1", "Simple Colouring (Trap)", d, comp.color1); out != nil {
					return out
				}
			}
		}
	}
	return nil
}

// ColourWrap (sc2): an uncoloured cell that sees both colours of a chain
// cannot itself hold the digit.
func ColourWrap(g *grid.Grid, explainFlag bool) *Outcome {
	for d := 1; d <= 9; d++ {
		for _, comp := range colorComponents(g, d) {
			for i := 0; i < grid.Cells; i++ {
				if _, in := comp.colorOf[i]; in {
					continue
				}
				if !g.CandidatesAt(i).Has(d) {
					continue
				}
				if sees(i, comp.color0) && sees(i, comp.color1) {
					removed := g.Eliminate("sc2", d, []int{i})
					if len(removed) == 0 {
						continue
					}
					defining := append(append([]int(nil), comp.color0...), comp.color1...)
					return &Outcome{
						Eliminations: countEliminations(removed),
						Explanation:  explainFor("Simple Colouring (Wrap)", defining, []int{d}, removed),
					}
				}
			}
		}
	}
	return nil
}

func eliminateColour(g *grid.Grid, explainFlag bool, id, name string, d int, colour []int) *Outcome {
	removed := g.Eliminate(id, d, colour)
	if len(removed) == 0 {
		return nil
	}
	return &Outcome{
		Eliminations: countEliminations(removed),
		Explanation:  explainFor(name, colour, []int{d}, removed),
	}
}

// MultiColourType2 (mc2): if one colour of a chain sees both colours of a
// second chain of the same digit, that colour is impossible and the digit
// is removed from every cell of it — the second chain must supply the
// digit for the conflicted unit regardless of which of its own colours
// holds.
func MultiColourType2(g *grid.Grid, explainFlag bool) *Outcome {
	for d := 1; d <= 9; d++ {
		comps := colorComponents(g, d)
		for i := range comps {
			for j := range comps {
				if i == j {
					continue
				}
				a, b := comps[i], comps[j]
				if anySeesAny(a.color0, b.color0) && anySeesAny(a.color0, b.color1) {
					if out := eliminateColour(g, explainFlag, "mc2", "Multi-Colouring (Type 2)", d, a.color0); out != nil {
						return out
					}
				}
				if anySeesAny(a.color1, b.color0) && anySeesAny(a.color1, b.color1) {
					if out := eliminateColour(g, explainFlag, "mc2", "Multi-Colouring (Type 2)", d, a.color1); out != nil {
						return out
					}
				}
			}
		}
	}
	return nil
}

// MultiColourType1 (mc1): given two chains where one colour of each sees
// the other (A1 sees A2), the remaining colours B1/B2 can't both be false,
// so any cell seeing both a B1 and a B2 cell loses the digit.
func MultiColourType1(g *grid.Grid, explainFlag bool) *Outcome {
	for d := 1; d <= 9; d++ {
		comps := colorComponents(g, d)
		for i := range comps {
			for j := i + 1; j < len(comps); j++ {
				a, b := comps[i], comps[j]
				pairs := []struct{ a1, b1, a2, b2 []int }{
					{a.color0, a.color1, b.color0, b.color1},
					{a.color0, a.color1, b.color1, b.color0},
				}
				for _, p := range pairs {
					if !anySeesAny(p.a1, p.a2) {
						continue
					}
					var victims [][2]int
					for c := 0; c < grid.Cells; c++ {
						if !g.CandidatesAt(c).Has(d) {
							continue
						}
						if _, in := a.colorOf[c]; in {
							continue
						}
						if _, in := b.colorOf[c]; in {
							continue
						}
						if sees(c, p.b1) && sees(c, p.b2) {
							victims = append(victims, [2]int{c, d})
						}
					}
					if len(victims) == 0 {
						continue
					}
					removed := g.EliminateMap("mc1", PlanFromPairs(victims))
					if len(removed) == 0 {
						continue
					}
					defining := append(append([]int(nil), p.a1...), p.a2...)
					return &Outcome{
						Eliminations: countEliminations(removed),
						Explanation:  explainFor("Multi-Colouring (Type 1)", defining, []int{d}, removed),
					}
				}
			}
		}
	}
	return nil
}
