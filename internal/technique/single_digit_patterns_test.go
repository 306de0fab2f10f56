package technique

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestSkyscraperEliminates(t *testing.T) {
	g := grid.New()
	d := 4
	// Row 0 carries digit 4 at cols 0,3; row 2 carries it at cols 0,5 — a
	// shared column (0) links them, leaving cols 3 and 5 as the roof ends.
	clearDigitFrom(g, d, []int{1, 2, 4, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{19, 20, 21, 22, 24, 25, 26})

	out := Skyscraper(g, false)
	if out == nil {
		t.Fatal("expected Skyscraper to find the roofed pair")
	}
	for _, c := range []int{12, 13, 14} {
		if g.CandidatesAt(c).Has(d) {
			t.Errorf("expected cell %d to lose candidate %d", c, d)
		}
	}
}

func TestSkyscraperReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := Skyscraper(g, false); out != nil {
		t.Error("expected Skyscraper to find nothing on a fresh grid")
	}
}

func TestTwoStringKiteReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := TwoStringKite(g, false); out != nil {
		t.Error("expected TwoStringKite to find nothing on a fresh grid")
	}
}

func TestTurbotFishReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := TurbotFish(g, false); out != nil {
		t.Error("expected TurbotFish to find nothing on a fresh grid")
	}
}

func TestEmptyRectangleEliminates(t *testing.T) {
	g := grid.New()
	d := 9
	// Box 0's candidates for digit 9 collapse onto row 0 and col 0 (cells
	// 0, 1, 9) — an empty rectangle pivoting at (row 0, col 0).
	clearDigitFrom(g, d, []int{2, 10, 11, 18, 19, 20})
	// Row 0's only other carrier of digit 9 outside box 0 is cell 5.
	clearDigitFrom(g, d, []int{3, 4, 6, 7, 8})
	// Column 5's only other carrier is cell 68 (row 7) — the far end.
	clearDigitFrom(g, d, []int{14, 23, 32, 41, 50, 59, 77})

	out := EmptyRectangle(g, false)
	if out == nil {
		t.Fatal("expected EmptyRectangle to find the pattern")
	}
	if g.CandidatesAt(63).Has(d) {
		t.Errorf("expected cell 63 to lose candidate %d", d)
	}
}

func TestEmptyRectangleReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := EmptyRectangle(g, false); out != nil {
		t.Error("expected EmptyRectangle to find nothing on a fresh grid")
	}
}
