package grid

import "testing"

func TestLoadGivensThenSolved(t *testing.T) {
	g := New()
	var givens [Cells]int
	givens[0] = 5
	if err := g.LoadGivens(givens); err != nil {
		t.Fatalf("LoadGivens: %v", err)
	}
	if g.Value(0) != 5 {
		t.Errorf("expected cell 0 = 5, got %d", g.Value(0))
	}
	if !g.Given(0) {
		t.Error("expected cell 0 to be given")
	}
	if g.Solved() {
		t.Error("grid should not be solved with only one given")
	}
	for _, p := range Peers(0) {
		if g.CandidatesAt(p).Has(5) {
			t.Errorf("peer %d should have lost candidate 5", p)
		}
	}
}

func TestLoadGivensRejectsConflict(t *testing.T) {
	g := New()
	var givens [Cells]int
	givens[RowCells(0)[0]] = 5
	givens[RowCells(0)[1]] = 5
	if err := g.LoadGivens(givens); err == nil {
		t.Error("expected an error for two equal givens in the same row")
	}
}

func TestUndoRedoInvolution(t *testing.T) {
	g := New()
	before := g.Snapshot()

	removed := g.Place("test", 0, 7)
	if len(removed) == 0 {
		t.Fatal("expected Place to record removals on an empty grid")
	}
	if !g.CanUndo() {
		t.Fatal("expected CanUndo after a Place")
	}

	if !g.Undo() {
		t.Fatal("Undo should succeed")
	}
	after := g.Snapshot()
	if before != after {
		t.Error("Undo did not restore the pre-Place snapshot")
	}

	if !g.Redo() {
		t.Fatal("Redo should succeed")
	}
	if g.Value(0) != 7 {
		t.Errorf("expected cell 0 = 7 after Redo, got %d", g.Value(0))
	}
}

func TestEliminateMapUndo(t *testing.T) {
	g := New()
	plan := RemovalMap{3: {0, 1}, 4: {2}}
	removed := g.EliminateMap("test", plan)
	if len(removed[3]) != 2 || len(removed[4]) != 1 {
		t.Fatalf("unexpected removal map: %+v", removed)
	}
	if g.CandidatesAt(0).Has(3) {
		t.Error("cell 0 should have lost candidate 3")
	}
	if !g.Undo() {
		t.Fatal("Undo should succeed")
	}
	if !g.CandidatesAt(0).Has(3) {
		t.Error("Undo should have restored candidate 3 on cell 0")
	}
}

func TestReplayFromGivensMatches(t *testing.T) {
	g := New()
	var givens [Cells]int
	givens[0] = 1
	givens[1] = 2
	if err := g.LoadGivens(givens); err != nil {
		t.Fatalf("LoadGivens: %v", err)
	}
	g.Eliminate("test", 3, []int{10})

	replayed := g.ReplayFromGivens()
	if !g.Equal(replayed) {
		t.Error("ReplayFromGivens should reproduce the original grid bit-for-bit")
	}
}

func TestConjugatePartners(t *testing.T) {
	g := New()
	row := RowCells(0)
	// Eliminate digit 9 from every row-0 cell except two, forcing a conjugate pair.
	for _, c := range row {
		if c != row[0] && c != row[1] {
			g.Eliminate("test", 9, []int{c})
		}
	}
	partners := g.ConjugatePartners(row[0], 9)
	if len(partners) != 1 || partners[0] != row[1] {
		t.Errorf("expected exactly %d as conjugate partner, got %v", row[1], partners)
	}
}
