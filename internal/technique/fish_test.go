package technique

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestBasicFish2EliminatesXWing(t *testing.T) {
	g := grid.New()
	d := 7
	// Digit 7 confined to cols 0,1 in both row 0 and row 4: an X-Wing.
	clearDigitFrom(g, d, []int{2, 3, 4, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{38, 39, 40, 41, 42, 43, 44})

	out := BasicFish2(g, false)
	if out == nil {
		t.Fatal("expected BasicFish2 to find the X-Wing")
	}
	victims := []int{9, 18, 27, 45, 54, 63, 72, 10, 19, 28, 46, 55, 64, 73}
	for _, c := range victims {
		if g.CandidatesAt(c).Has(d) {
			t.Errorf("expected cell %d to lose candidate %d", c, d)
		}
	}
}

func TestBasicFish2ReturnsNilWhenNoFishExists(t *testing.T) {
	g := grid.New()
	if out := BasicFish2(g, false); out != nil {
		t.Error("expected BasicFish2 to find nothing on a fresh grid")
	}
}

func TestBasicFish3EliminatesSwordfish(t *testing.T) {
	g := grid.New()
	d := 6
	// Digit 6 confined, across rows 0/3/6, to two of cover cols {1,4,7}
	// each — row 0 at {1,4}, row 3 at {4,7}, row 6 at {1,7} — a swordfish.
	clearDigitFrom(g, d, []int{0, 2, 3, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{27, 28, 29, 30, 32, 33, 35})
	clearDigitFrom(g, d, []int{54, 56, 57, 58, 59, 60, 62})

	out := BasicFish3(g, false)
	if out == nil {
		t.Fatal("expected BasicFish3 to find the swordfish")
	}
	victims := []int{
		10, 19, 37, 46, 64, 73,
		13, 22, 40, 49, 67, 76,
		16, 25, 43, 52, 70, 79,
	}
	for _, c := range victims {
		if g.CandidatesAt(c).Has(d) {
			t.Errorf("expected cell %d to lose candidate %d", c, d)
		}
	}
}
