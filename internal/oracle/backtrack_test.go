package oracle

import (
	"testing"

	"sudoku-engine/internal/codec"
	"sudoku-engine/internal/grid"
)

const uniqueS81 = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestBitmaskBacktrackerIsUnique(t *testing.T) {
	values, err := codec.DecodeS81(uniqueS81)
	if err != nil {
		t.Fatalf("DecodeS81: %v", err)
	}
	g := grid.New()
	if err := g.LoadGivens(values); err != nil {
		t.Fatalf("LoadGivens: %v", err)
	}

	var o BitmaskBacktracker
	unique, err := o.IsUnique(g)
	if err != nil {
		t.Fatalf("IsUnique: %v", err)
	}
	if !unique {
		t.Error("expected the classic easy puzzle to have a unique solution")
	}
}

func TestBitmaskBacktrackerSolutionsRespectsLimit(t *testing.T) {
	g := grid.New() // every cell empty: astronomically many solutions
	var o BitmaskBacktracker
	solutions, err := o.Solutions(g, 3)
	if err != nil {
		t.Fatalf("Solutions: %v", err)
	}
	if len(solutions) != 3 {
		t.Errorf("expected exactly 3 solutions under limit=3, got %d", len(solutions))
	}
	for _, sol := range solutions {
		for _, v := range sol {
			if v < 1 || v > 9 {
				t.Fatalf("solution contains out-of-range value %d", v)
			}
		}
	}
}

func TestBitmaskBacktrackerDetectsNonUnique(t *testing.T) {
	g := grid.New() // no givens at all: far more than one completion
	var o BitmaskBacktracker
	unique, err := o.IsUnique(g)
	if err != nil {
		t.Fatalf("IsUnique: %v", err)
	}
	if unique {
		t.Error("an empty grid should not have a unique solution")
	}
}
