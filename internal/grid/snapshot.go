package grid

// CellState is a codec-facing view of one cell: either solved (Value set,
// Given distinguishing an original clue from a derived placement) or
// unsolved (Cands holding its candidate set). Used by internal/codec to
// ingest and emit the four textual representations of spec.md §4.3.
type CellState struct {
	Value int
	Given bool
	Cands Candidates
}

// LoadSnapshot replaces the grid's state wholesale from a codec-decoded
// representation and resets history: a snapshot (CSV/GVC/clipboard) is a
// save point, not a sequence of mutations to journal. Subsequent technique
// application still journals from here onward.
func (g *Grid) LoadSnapshot(cells [Cells]CellState) {
	g.entries = nil
	g.cursor = 0
	for i, cs := range cells {
		g.value[i] = cs.Value
		g.given[i] = cs.Given && cs.Value != 0
		if cs.Value != 0 {
			g.candidates[i] = 0
		} else {
			g.candidates[i] = cs.Cands
		}
	}
}

// Snapshot exports the grid's current state as a codec-facing view.
func (g *Grid) Snapshot() [Cells]CellState {
	var out [Cells]CellState
	for i := 0; i < Cells; i++ {
		out[i] = CellState{Value: g.value[i], Given: g.given[i], Cands: g.candidates[i]}
	}
	return out
}
