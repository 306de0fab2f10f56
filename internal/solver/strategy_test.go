package solver

import (
	"testing"

	"sudoku-engine/internal/technique"
)

func TestParseStrategySimpleList(t *testing.T) {
	s, err := ParseStrategy("fh,n1,h1")
	if err != nil {
		t.Fatalf("ParseStrategy: %v", err)
	}
	if len(s.IDs) != 3 {
		t.Fatalf("expected 3 ids, got %d: %v", len(s.IDs), s.IDs)
	}
}

func TestParseStrategyMacro(t *testing.T) {
	s, err := ParseStrategy("ssts")
	if err != nil {
		t.Fatalf("ParseStrategy: %v", err)
	}
	if len(s.IDs) == 0 {
		t.Fatal("expected ssts to expand to a non-empty id list")
	}
}

func TestParseStrategySubtraction(t *testing.T) {
	all, err := ParseStrategy("all")
	if err != nil {
		t.Fatalf("ParseStrategy(all): %v", err)
	}
	without, err := ParseStrategy("all-fh")
	if err != nil {
		t.Fatalf("ParseStrategy(all-fh): %v", err)
	}
	if len(without.IDs) != len(all.IDs)-1 {
		t.Fatalf("expected all-fh to drop exactly one id, got %d vs %d", len(without.IDs), len(all.IDs))
	}
	for _, id := range without.IDs {
		if id == "fh" {
			t.Error("expected 'fh' to be excluded from all-fh")
		}
	}
}

func TestParseStrategyUnknownID(t *testing.T) {
	if _, err := ParseStrategy("not-a-real-technique"); err == nil {
		t.Error("expected an error for an unknown technique id")
	}
}

func TestTechniquesSortedByPriority(t *testing.T) {
	s, err := ParseStrategy("all")
	if err != nil {
		t.Fatalf("ParseStrategy: %v", err)
	}
	ts := s.Techniques()
	if len(ts) != len(technique.Catalogue()) {
		t.Fatalf("expected every catalogue technique to resolve, got %d of %d", len(ts), len(technique.Catalogue()))
	}
	for i := 1; i < len(ts); i++ {
		if ts[i-1].Priority > ts[i].Priority {
			t.Fatalf("techniques not sorted by priority at index %d: %d > %d", i, ts[i-1].Priority, ts[i].Priority)
		}
	}
}
