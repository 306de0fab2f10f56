package technique

import "sudoku-engine/internal/grid"

// XChain is single-digit chaining generalised beyond the basic fish and
// skyscraper shapes: it reuses the conjugate-pair graph simple colouring
// already builds, since an alternating strong/weak chain on one digit is
// exactly a path through that graph, and a chain whose two ends carry
// opposite colours produces the same "sees both colours" elimination as
// ColourWrap. Kept as its own catalogue entry (id "x") because it is
// offered to callers under the chain-family name, not the colouring one.
func XChain(g *grid.Grid, explainFlag bool) *Outcome {
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
					removed := g.Eliminate("x", d, []int{i})
					if len(removed) == 0 {
						continue
					}
					defining := append(append([]int(nil), comp.color0...), comp.color1...)
					return &Outcome{
						Eliminations: countEliminations(removed),
						Explanation:  explainFor("X-Chain", defining, []int{d}, removed),
					}
				}
			}
		}
	}
	return nil
}

// RemotePair: a chain of bivalue cells all sharing the same candidate pair
// {x,y}, linked consecutively as peers. Two opposite-parity (odd chain
// distance) cells in the chain force every one of their common peers to
// lose both x and y, since whichever assignment the chain actually takes,
// those two cells take opposite values of the pair between them.
func RemotePair(g *grid.Grid, explainFlag bool) *Outcome {
	for x := 1; x <= 9; x++ {
		for y := x + 1; y <= 9; y++ {
			var nodes []int
			for i := 0; i < grid.Cells; i++ {
				if g.IsSolvedCell(i) {
					continue
				}
				cd := g.CandidatesAt(i).ToSlice()
				if len(cd) == 2 && cd[0] == x && cd[1] == y {
					nodes = append(nodes, i)
				}
			}
			if len(nodes) < 4 {
				continue
			}
			visited := map[int]bool{}
			for _, seed := range nodes {
				if visited[seed] {
					continue
				}
				parity := map[int]int{seed: 0}
				visited[seed] = true
				queue := []int{seed}
				for len(queue) > 0 {
					cur := queue[0]
					queue = queue[1:]
					for _, n := range nodes {
						if visited[n] || !grid.ArePeers(cur, n) {
							continue
						}
						visited[n] = true
						parity[n] = 1 - parity[cur]
						queue = append(queue, n)
					}
				}
				var evens, odds []int
				for n, p := range parity {
					if p == 0 {
						evens = append(evens, n)
					} else {
						odds = append(odds, n)
					}
				}
				evens, odds = sortInts(evens), sortInts(odds)
				var pairs [][2]int
				for _, a := range evens {
					for _, b := range odds {
						pairs = append(pairs, [2]int{a, b})
					}
				}
				for _, pair := range pairs {
					a, b := pair[0], pair[1]
					if grid.ArePeers(a, b) {
						continue
					}
					common := grid.CommonPeers([]int{a, b})
					var plan [][2]int
					for _, c := range common {
						if containsInt(nodes, c) {
							continue
						}
						if g.CandidatesAt(c).Has(x) {
							plan = append(plan, [2]int{c, x})
						}
						if g.CandidatesAt(c).Has(y) {
							plan = append(plan, [2]int{c, y})
						}
					}
					if len(plan) == 0 {
						continue
					}
					removed := g.EliminateMap("rp", PlanFromPairs(plan))
					if len(removed) == 0 {
						continue
					}
					return &Outcome{
						Eliminations: countEliminations(removed),
						Explanation:  explainFor("Remote Pair", []int{a, b}, []int{x, y}, removed),
					}
				}
			}
		}
	}
	return nil
}

const xyChainMaxDepth = 7

// XYChain (v1): a path of bivalue cells, each consecutive pair peers
// sharing exactly one linking digit, whose two endpoints both carry some
// digit z not used as a link along the path. z is removed from any cell
// seeing both endpoints. Bounded to short chains (spec.md's "only v1").
func XYChain(g *grid.Grid, explainFlag bool) *Outcome {
	cells := UnsolvedCells(g)
	var bivalues []int
	for _, c := range cells {
		if g.IsBivalue(c) {
			bivalues = append(bivalues, c)
		}
	}
	for _, start := range bivalues {
		for _, z := range g.CandidatesAt(start).ToSlice() {
			visited := map[int]bool{start: true}
			link := g.CandidatesAt(start).Clear(z).ToSlice()[0]
			if out := xyChainSearch(g, start, z, link, visited, []int{start}, bivalues, explainFlag); out != nil {
				return out
			}
		}
	}
	return nil
}

// xyChainSearch extends the chain from cur, whose outgoing digit is link;
// z is the start cell's non-link digit, which the far end must leave free.
func xyChainSearch(g *grid.Grid, cur, z, link int, visited map[int]bool, path, bivalues []int, explainFlag bool) *Outcome {
	if len(path) > xyChainMaxDepth {
		return nil
	}
	if len(path) >= 3 && link == z && cur != path[0] {
		start := path[0]
		if !grid.ArePeers(start, cur) {
			victims := CellsSeeingAll(g, []int{start, cur})
			var plan [][2]int
			for _, v := range victims {
				if containsInt(path, v) {
					continue
				}
				if g.CandidatesAt(v).Has(z) {
					plan = append(plan, [2]int{v, z})
				}
			}
			if len(plan) > 0 {
				removed := g.EliminateMap("xyc", PlanFromPairs(plan))
				if len(removed) > 0 {
					return &Outcome{
						Eliminations: countEliminations(removed),
						Explanation:  explainFor("XY-Chain", path, []int{z}, removed),
					}
				}
			}
		}
	}
	for _, next := range bivalues {
		if visited[next] || !grid.ArePeers(cur, next) {
			continue
		}
		nd := g.CandidatesAt(next).ToSlice()
		if !containsInt(nd, link) {
			continue
		}
		var nextLink int
		for _, d := range nd {
			if d != link {
				nextLink = d
			}
		}
		visited[next] = true
		if out := xyChainSearch(g, next, z, nextLink, visited, append(path, next), bivalues, explainFlag); out != nil {
			return out
		}
		delete(visited, next)
	}
	return nil
}
