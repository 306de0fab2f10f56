package technique

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestXChainEliminates(t *testing.T) {
	g := grid.New()
	d := 7
	// A 3-node conjugate chain 0-1-19 on digit 7: row 0 links 0,1; col 1
	// links 1,19. Cell 9 (uncoloured) sees both ends' colours.
	clearDigitFrom(g, d, []int{2, 3, 4, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{10, 28, 37, 46, 55, 64, 73})

	out := XChain(g, false)
	if out == nil {
		t.Fatal("expected XChain to find the cell seeing both colours")
	}
	if g.CandidatesAt(9).Has(d) {
		t.Errorf("expected cell 9 to lose candidate %d", d)
	}
}

func TestXChainReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := XChain(g, false); out != nil {
		t.Error("expected XChain to find nothing on a fresh grid")
	}
}

func TestRemotePairEliminates(t *testing.T) {
	g := grid.New()
	// A 4-cell remote pair chain on {2,5}: 0-4 (row), 4-40 (col), 40-44
	// (row). Cells 0 and 44 are three links apart and aren't peers, so they
	// take opposite values and their common peers 8 and 36 lose both
	// candidates.
	restrictTo(g, 0, 2, 5)
	restrictTo(g, 4, 2, 5)
	restrictTo(g, 40, 2, 5)
	restrictTo(g, 44, 2, 5)

	out := RemotePair(g, false)
	if out == nil {
		t.Fatal("expected RemotePair to find the chain")
	}
	for _, d := range []int{2, 5} {
		if g.CandidatesAt(36).Has(d) {
			t.Errorf("expected cell 36 to lose candidate %d", d)
		}
	}
}

func TestRemotePairReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := RemotePair(g, false); out != nil {
		t.Error("expected RemotePair to find nothing on a fresh grid")
	}
}

func TestXYChainEliminates(t *testing.T) {
	g := grid.New()
	restrictTo(g, 0, 2, 4)  // start {2,4}
	restrictTo(g, 1, 2, 3)  // mid {2,3}, row peer of start, linked on 2
	restrictTo(g, 46, 3, 4) // end {3,4}, col peer of mid, linked on 3

	out := XYChain(g, false)
	if out == nil {
		t.Fatal("expected XYChain to find the chain")
	}
	for _, c := range []int{10, 19, 27, 36, 45} {
		if g.CandidatesAt(c).Has(4) {
			t.Errorf("expected cell %d to lose candidate 4", c)
		}
	}
}

func TestXYChainReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := XYChain(g, false); out != nil {
		t.Error("expected XYChain to find nothing on a fresh grid")
	}
}
