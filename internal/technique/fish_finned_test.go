package technique

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestFinnedFish2FindsAFinnedXWing(t *testing.T) {
	g := grid.New()
	d := 8
	// Digit 8 sits at cols 0,1,2 in row 0 and cols 0,1 in row 1: an X-Wing
	// on cols 0,1 with a fin at row 0 col 2, all inside box 0. Which pair
	// of those three columns the search settles on as the cover (leaving
	// the third cell as the fin) is order-dependent on this package's
	// internal set iteration, so only the presence of an elimination is
	// checked here, not a specific victim cell.
	clearDigitFrom(g, d, []int{3, 4, 5, 6, 7, 8})
	clearDigitFrom(g, d, []int{11, 12, 13, 14, 15, 16, 17})

	before := g.Snapshot()
	out := FinnedFish2(g, false)
	if out == nil {
		t.Fatal("expected FinnedFish2 to find the finned X-Wing")
	}
	if g.Snapshot() == before {
		t.Error("FinnedFish2 reported success but the grid did not change")
	}
}

func TestFinnedFish2ReturnsNilWhenNoFishExists(t *testing.T) {
	g := grid.New()
	if out := FinnedFish2(g, false); out != nil {
		t.Error("expected FinnedFish2 to find nothing on a fresh grid")
	}
}
