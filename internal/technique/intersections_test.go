package technique

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestPointingEliminatesAlongLine(t *testing.T) {
	g := grid.New()
	d := 5
	// Confine digit 5 within box 0 to row 0's triplet (cells 0,1,2) by
	// clearing it from the box's other two rows.
	clearDigitFrom(g, d, []int{9, 10, 11, 18, 19, 20})

	out := Pointing(g, false)
	if out == nil {
		t.Fatal("expected Pointing to find the confined digit")
	}
	for _, c := range []int{3, 4, 5, 6, 7, 8} {
		if g.CandidatesAt(c).Has(d) {
			t.Errorf("expected cell %d to lose candidate %d", c, d)
		}
	}
}

func TestPointingReturnsNilWhenNoConfinement(t *testing.T) {
	g := grid.New()
	if out := Pointing(g, false); out != nil {
		t.Error("expected Pointing to find nothing on a fresh grid")
	}
}

func TestClaimingEliminatesWithinBox(t *testing.T) {
	g := grid.New()
	d := 5
	// Confine digit 5 within row 0 to box 0's triplet (cells 0,1,2) by
	// clearing it from the rest of the row.
	clearDigitFrom(g, d, []int{3, 4, 5, 6, 7, 8})

	out := Claiming(g, false)
	if out == nil {
		t.Fatal("expected Claiming to find the confined digit")
	}
	for _, c := range []int{9, 10, 11, 18, 19, 20} {
		if g.CandidatesAt(c).Has(d) {
			t.Errorf("expected cell %d to lose candidate %d", c, d)
		}
	}
}

func TestLockedPairEliminatesFromComplements(t *testing.T) {
	g := grid.New()
	// Solve cell 2 so box 0 - row 0's triplet has exactly two unsolved
	// cells left, then lock them onto digits 1 and 2.
	g.Place("test", 2, 9)
	restrictTo(g, 0, 1, 2)
	restrictTo(g, 1, 1, 2)

	out := LockedPair(g, false)
	if out == nil {
		t.Fatal("expected LockedPair to find the confined pair")
	}
	for _, c := range []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 18, 19, 20} {
		for _, d := range []int{1, 2} {
			if g.CandidatesAt(c).Has(d) {
				t.Errorf("expected cell %d to lose candidate %d", c, d)
			}
		}
	}
}

func TestLockedTripleEliminatesFromComplements(t *testing.T) {
	g := grid.New()
	// box 0 - row 0's triplet (cells 0,1,2), all unsolved, locked onto
	// digits 1, 2, 3 between them.
	restrictTo(g, 0, 1, 2)
	restrictTo(g, 1, 2, 3)
	restrictTo(g, 2, 1, 3)

	out := LockedTriple(g, false)
	if out == nil {
		t.Fatal("expected LockedTriple to find the confined triple")
	}
	for _, c := range []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 18, 19, 20} {
		for _, d := range []int{1, 2, 3} {
			if g.CandidatesAt(c).Has(d) {
				t.Errorf("expected cell %d to lose candidate %d", c, d)
			}
		}
	}
}
