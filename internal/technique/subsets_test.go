package technique

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestNakedPairEliminatesFromUnit(t *testing.T) {
	g := grid.New()
	restrictTo(g, 0, 3, 4)
	restrictTo(g, 1, 3, 4)

	out := NakedPair(g, false)
	if out == nil {
		t.Fatal("expected NakedPair to find the confined pair")
	}
	for _, c := range []int{2, 3, 4, 5, 6, 7, 8} {
		for _, d := range []int{3, 4} {
			if g.CandidatesAt(c).Has(d) {
				t.Errorf("expected cell %d to lose candidate %d", c, d)
			}
		}
	}
}

func TestNakedTripleEliminatesFromUnit(t *testing.T) {
	g := grid.New()
	restrictTo(g, 0, 1, 2)
	restrictTo(g, 1, 2, 3)
	restrictTo(g, 2, 1, 3)

	out := NakedTriple(g, false)
	if out == nil {
		t.Fatal("expected NakedTriple to find the confined triple")
	}
	for _, c := range []int{3, 4, 5, 6, 7, 8} {
		for _, d := range []int{1, 2, 3} {
			if g.CandidatesAt(c).Has(d) {
				t.Errorf("expected cell %d to lose candidate %d", c, d)
			}
		}
	}
}

func TestNakedQuadEliminatesFromUnit(t *testing.T) {
	g := grid.New()
	restrictTo(g, 0, 1, 2)
	restrictTo(g, 1, 2, 3)
	restrictTo(g, 2, 3, 4)
	restrictTo(g, 3, 1, 4)

	out := NakedQuad(g, false)
	if out == nil {
		t.Fatal("expected NakedQuad to find the confined quad")
	}
	for _, c := range []int{4, 5, 6, 7, 8} {
		for _, d := range []int{1, 2, 3, 4} {
			if g.CandidatesAt(c).Has(d) {
				t.Errorf("expected cell %d to lose candidate %d", c, d)
			}
		}
	}
}

func TestHiddenPairEliminatesExtras(t *testing.T) {
	g := grid.New()
	rest := []int{2, 3, 4, 5, 6, 7, 8}
	clearDigitFrom(g, 3, rest)
	clearDigitFrom(g, 4, rest)

	out := HiddenPair(g, false)
	if out == nil {
		t.Fatal("expected HiddenPair to find the confined pair")
	}
	for _, c := range []int{0, 1} {
		for d := 1; d <= 9; d++ {
			if d == 3 || d == 4 {
				continue
			}
			if g.CandidatesAt(c).Has(d) {
				t.Errorf("expected cell %d to lose candidate %d", c, d)
			}
		}
	}
}

func TestHiddenTripleEliminatesExtras(t *testing.T) {
	g := grid.New()
	rest := []int{3, 4, 5, 6, 7, 8}
	clearDigitFrom(g, 3, rest)
	clearDigitFrom(g, 4, rest)
	clearDigitFrom(g, 5, rest)

	out := HiddenTriple(g, false)
	if out == nil {
		t.Fatal("expected HiddenTriple to find the confined triple")
	}
	for _, c := range []int{0, 1, 2} {
		for d := 1; d <= 9; d++ {
			if d == 3 || d == 4 || d == 5 {
				continue
			}
			if g.CandidatesAt(c).Has(d) {
				t.Errorf("expected cell %d to lose candidate %d", c, d)
			}
		}
	}
}

func TestHiddenQuadEliminatesExtras(t *testing.T) {
	g := grid.New()
	rest := []int{4, 5, 6, 7, 8}
	clearDigitFrom(g, 3, rest)
	clearDigitFrom(g, 4, rest)
	clearDigitFrom(g, 5, rest)
	clearDigitFrom(g, 6, rest)

	out := HiddenQuad(g, false)
	if out == nil {
		t.Fatal("expected HiddenQuad to find the confined quad")
	}
	for _, c := range []int{0, 1, 2, 3} {
		for d := 1; d <= 9; d++ {
			if d == 3 || d == 4 || d == 5 || d == 6 {
				continue
			}
			if g.CandidatesAt(c).Has(d) {
				t.Errorf("expected cell %d to lose candidate %d", c, d)
			}
		}
	}
}
