package technique

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestColourTrapEliminates(t *testing.T) {
	g := grid.New()
	d := 7
	// Chain 0-1-19 on digit 7: row 0 links cells 0,1; col 1 links cells
	// 1,19. Cells 0 and 19 end up the same colour and share box 0, so the
	// whole colour is eliminated.
	clearDigitFrom(g, d, []int{2, 3, 4, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{10, 28, 37, 46, 55, 64, 73})

	out := ColourTrap(g, false)
	if out == nil {
		t.Fatal("expected ColourTrap to find the contradiction")
	}
	for _, c := range []int{0, 19} {
		if g.CandidatesAt(c).Has(d) {
			t.Errorf("expected cell %d to lose candidate %d", c, d)
		}
	}
}

func TestColourTrapReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := ColourTrap(g, false); out != nil {
		t.Error("expected ColourTrap to find nothing on a fresh grid")
	}
}

func TestColourWrapEliminates(t *testing.T) {
	g := grid.New()
	d := 7
	// Same chain as the trap fixture: cell 9 is uncoloured but sees both
	// colour 0 (cells 0,19, via box/col) and colour 1 (cell 1, via box).
	clearDigitFrom(g, d, []int{2, 3, 4, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{10, 28, 37, 46, 55, 64, 73})

	out := ColourWrap(g, false)
	if out == nil {
		t.Fatal("expected ColourWrap to find the cell seeing both colours")
	}
	if g.CandidatesAt(9).Has(d) {
		t.Errorf("expected cell 9 to lose candidate %d", d)
	}
}

func TestColourWrapReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := ColourWrap(g, false); out != nil {
		t.Error("expected ColourWrap to find nothing on a fresh grid")
	}
}

func TestMultiColourType1Eliminates(t *testing.T) {
	g := grid.New()
	d := 3
	// Two separate conjugate pairs on digit 3: row 0 links cells 0,4;
	// row 1 links cells 9,13. Cell 0 sees cell 9 (col 0) and cell 4 sees
	// cell 13 (col 4), so any other col-4 cell sees both chains' second
	// colour and loses the digit.
	clearDigitFrom(g, d, []int{1, 2, 3, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{10, 11, 12, 14, 15, 16, 17})

	out := MultiColourType1(g, false)
	if out == nil {
		t.Fatal("expected MultiColourType1 to find the conflict")
	}
	for _, c := range []int{22, 31, 40, 49, 58, 67, 76} {
		if g.CandidatesAt(c).Has(d) {
			t.Errorf("expected cell %d to lose candidate %d", c, d)
		}
	}
}

func TestMultiColourType1ReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := MultiColourType1(g, false); out != nil {
		t.Error("expected MultiColourType1 to find nothing on a fresh grid")
	}
}

func TestMultiColourType2Eliminates(t *testing.T) {
	g := grid.New()
	d := 3
	// Row 0 links cells 0,4; row 1 links cells 9,11. Cell 0 sees both
	// colours of the second chain (9 via col 0, 11 via box 0), so cell 0
	// itself is eliminated.
	clearDigitFrom(g, d, []int{1, 2, 3, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{10, 12, 13, 14, 15, 16, 17})

	out := MultiColourType2(g, false)
	if out == nil {
		t.Fatal("expected MultiColourType2 to find the conflict")
	}
	if g.CandidatesAt(0).Has(d) {
		t.Errorf("expected cell 0 to lose candidate %d", d)
	}
}

func TestMultiColourType2ReturnsNilWhenNoneApply(t *testing.T) {
	g := grid.New()
	if out := MultiColourType2(g, false); out != nil {
		t.Error("expected MultiColourType2 to find nothing on a fresh grid")
	}
}
