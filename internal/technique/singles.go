package technique

import (
	"fmt"

	"sudoku-engine/internal/explain"
	"sudoku-engine/internal/format"
	"sudoku-engine/internal/grid"
)

// FullHouse places the missing digit of a unit with exactly one empty cell.
// Grounded on the teacher's naked-single family; full house is the
// degenerate case where the unit itself, not the cell, pins the digit.
func FullHouse(g *grid.Grid, explainFlag bool) *Outcome {
	for _, u := range grid.AllUnits() {
		var empty int = -1
		found := 0
		var missing grid.Candidates
		for _, c := range u.Cells {
			if !g.IsSolvedCell(c) {
				found++
				empty = c
			} else {
				missing = missing.Set(g.Value(c))
			}
		}
		if found != 1 {
			continue
		}
		digit, ok := grid.Full.Subtract(missing).Only()
		if !ok {
			continue
		}
		return applyPlacement(g, "fh", "Full House", empty, digit, explainFlag, func() string {
			return fmt.Sprintf("%s is the only empty cell in %s %d", format.Cell(empty), u.Kind, u.Index+1)
		})
	}
	return nil
}

// NakedSingle places the digit of any unsolved cell with exactly one
// candidate.
func NakedSingle(g *grid.Grid, explainFlag bool) *Outcome {
	for i := 0; i < grid.Cells; i++ {
		if g.IsSolvedCell(i) {
			continue
		}
		digit, ok := g.CandidatesAt(i).Only()
		if !ok {
			continue
		}
		return applyPlacement(g, "n1", "Naked Single", i, digit, explainFlag, func() string {
			return fmt.Sprintf("%s has only one candidate: %d", format.Cell(i), digit)
		})
	}
	return nil
}

// HiddenSingle places a digit that can only go in one cell of some unit,
// scanning units row-then-col-then-box and digits ascending (spec.md
// §4.5.1 tie-break).
func HiddenSingle(g *grid.Grid, explainFlag bool) *Outcome {
	for _, u := range grid.AllUnits() {
		for d := 1; d <= 9; d++ {
			cells := g.CellsWith(d, u)
			if len(cells) != 1 {
				continue
			}
			cell := cells[0]
			if g.CandidatesAt(cell).Count() == 1 {
				continue // a naked single; let n1 claim it
			}
			return applyPlacement(g, "h1", "Hidden Single", cell, d, explainFlag, func() string {
				return fmt.Sprintf("%d can only go in %s within %s %d", d, format.Cell(cell), u.Kind, u.Index+1)
			})
		}
	}
	return nil
}

// applyPlacement is the shared placement path every single-producing
// technique uses: Place through the grid, then optionally build the
// explanation from describe().
func applyPlacement(g *grid.Grid, id, name string, cell, digit int, explainFlag bool, describe func() string) *Outcome {
	removed := g.Place(id, cell, digit)
	out := &Outcome{Eliminations: countEliminations(removed) + 1}
	if explainFlag {
		out.Explanation = explain.Explanation{
			Technique:   name,
			Description: explain.Line(name, describe(), fmt.Sprintf("%s=%d", format.Cell(cell), digit)),
			Snapshot: explain.Snapshot{Specs: []explain.Spec{
				{Cells: []int{cell}, Decor: explain.DecorDefining},
			}},
		}
	}
	return out
}
