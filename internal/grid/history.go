package grid

// EntryKind tags a history entry as a placement or a bare elimination.
type EntryKind int

const (
	EntryPlace EntryKind = iota
	EntryDiscard
)

// RemovalMap records, per digit, the cells whose candidate for that digit
// was removed by a single mutation — the shared shape behind both Placement
// and Elimination history entries (spec.md §3 History entry).
type RemovalMap map[int][]int

// Entry is one journal record. For EntryPlace, Cell/Digit/Given describe the
// placement and Removed carries every implied elimination (the cell's own
// remaining candidates, keyed by digit, plus each peer that lost Digit).
// For EntryDiscard, only Removed is meaningful.
type Entry struct {
	Kind      EntryKind
	Technique string
	Cell      int
	Digit     int
	Given     bool
	Removed   RemovalMap
}

// Entries returns the full journal (applied and redoable).
func (g *Grid) Entries() []Entry {
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Cursor returns the number of currently-applied entries.
func (g *Grid) Cursor() int { return g.cursor }

// CanUndo reports whether there is an applied entry to undo.
func (g *Grid) CanUndo() bool { return g.cursor > 0 }

// CanRedo reports whether there is a redoable entry.
func (g *Grid) CanRedo() bool { return g.cursor < len(g.entries) }

func (g *Grid) push(e Entry) {
	g.entries = g.entries[:g.cursor]
	g.entries = append(g.entries, e)
	g.cursor++
}

// Place assigns digit to cell idx. Precondition: digit is a candidate of
// idx; violating it is a programmer error (spec.md §7 Internal), so Place
// panics rather than returning an error. It returns the removal map it
// recorded, mirroring spec.md §4.2.
func (g *Grid) Place(technique string, idx, digit int) RemovalMap {
	if !g.candidates[idx].Has(digit) {
		panic("grid: place of non-candidate digit")
	}
	return g.place(technique, idx, digit, false)
}

func (g *Grid) place(technique string, idx, digit int, given bool) RemovalMap {
	removed := RemovalMap{}

	for _, d := range g.candidates[idx].ToSlice() {
		if d == digit {
			continue
		}
		removed[d] = append(removed[d], idx)
	}
	for _, p := range Peers(idx) {
		if g.candidates[p].Has(digit) {
			removed[digit] = append(removed[digit], p)
		}
	}

	g.value[idx] = digit
	g.given[idx] = given
	g.candidates[idx] = 0
	for _, p := range Peers(idx) {
		g.candidates[p] = g.candidates[p].Clear(digit)
	}

	g.push(Entry{
		Kind:      EntryPlace,
		Technique: technique,
		Cell:      idx,
		Digit:     digit,
		Given:     given,
		Removed:   removed,
	})
	return removed
}

// Eliminate removes digit from every listed cell's candidates, recording
// only the cells where the digit was actually present (spec.md §4.2).
func (g *Grid) Eliminate(technique string, digit int, cells []int) RemovalMap {
	removed := RemovalMap{}
	for _, c := range cells {
		if g.candidates[c].Has(digit) {
			g.candidates[c] = g.candidates[c].Clear(digit)
			removed[digit] = append(removed[digit], c)
		}
	}
	if len(removed) == 0 {
		return removed
	}
	g.push(Entry{Kind: EntryDiscard, Technique: technique, Removed: removed})
	return removed
}

// EliminateMap removes a multi-digit removal map in one history entry —
// used by techniques (naked/hidden subsets, fishes, …) that eliminate
// several digits across several cells in a single logical step.
func (g *Grid) EliminateMap(technique string, plan RemovalMap) RemovalMap {
	removed := RemovalMap{}
	for digit, cells := range plan {
		for _, c := range cells {
			if g.candidates[c].Has(digit) {
				g.candidates[c] = g.candidates[c].Clear(digit)
				removed[digit] = append(removed[digit], c)
			}
		}
	}
	if len(removed) == 0 {
		return removed
	}
	g.push(Entry{Kind: EntryDiscard, Technique: technique, Removed: removed})
	return removed
}

// Undo inverts the last applied entry and retreats the cursor.
func (g *Grid) Undo() bool {
	if g.cursor == 0 {
		return false
	}
	g.cursor--
	e := g.entries[g.cursor]
	switch e.Kind {
	case EntryPlace:
		g.value[e.Cell] = 0
		g.given[e.Cell] = false
		g.candidates[e.Cell] = g.candidates[e.Cell].Set(e.Digit)
		for digit, cells := range e.Removed {
			for _, c := range cells {
				g.candidates[c] = g.candidates[c].Set(digit)
			}
		}
	case EntryDiscard:
		for digit, cells := range e.Removed {
			for _, c := range cells {
				if g.shadowedByPeerValue(c, digit) {
					continue
				}
				g.candidates[c] = g.candidates[c].Set(digit)
			}
		}
	}
	return true
}

// shadowedByPeerValue reports whether a peer of c is already solved to
// digit, which would forbid reinstating digit as a candidate of c — the
// guard spec.md §4.2 requires so undo tolerates replay in a different order.
func (g *Grid) shadowedByPeerValue(c, digit int) bool {
	for _, p := range Peers(c) {
		if g.value[p] == digit {
			return true
		}
	}
	return false
}

// Redo reapplies the entry at the current cursor and advances it.
func (g *Grid) Redo() bool {
	if g.cursor >= len(g.entries) {
		return false
	}
	e := g.entries[g.cursor]
	switch e.Kind {
	case EntryPlace:
		g.value[e.Cell] = e.Digit
		g.given[e.Cell] = e.Given
		g.candidates[e.Cell] = 0
		for digit, cells := range e.Removed {
			for _, c := range cells {
				if c == e.Cell {
					continue
				}
				g.candidates[c] = g.candidates[c].Clear(digit)
			}
		}
	case EntryDiscard:
		for digit, cells := range e.Removed {
			for _, c := range cells {
				g.candidates[c] = g.candidates[c].Clear(digit)
			}
		}
	}
	g.cursor++
	return true
}

// ReplayFromGivens rebuilds a fresh grid from the given digits recorded by
// every EntryPlace with Given=true in the current journal, replaying
// entries[0:cursor] in order, and returns it. This is the round-trip check
// of spec.md §8 invariant 3: it must equal g bit-for-bit.
func (g *Grid) ReplayFromGivens() *Grid {
	ng := New()
	for _, e := range g.entries[:g.cursor] {
		switch e.Kind {
		case EntryPlace:
			ng.place(e.Technique, e.Cell, e.Digit, e.Given)
		case EntryDiscard:
			plan := RemovalMap{}
			for digit, cells := range e.Removed {
				plan[digit] = cells
			}
			ng.EliminateMap(e.Technique, plan)
		}
	}
	return ng
}

// Equal reports whether g and other carry identical values, given-flags,
// and candidates (history is not compared).
func (g *Grid) Equal(other *Grid) bool {
	return g.value == other.value && g.given == other.given && g.candidates == other.candidates
}
