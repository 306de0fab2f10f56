package oracle

import "sudoku-engine/internal/grid"

// BitmaskBacktracker is a plain recursive-backtracking Oracle over the
// grid's 81 values, used purely to answer completeness/uniqueness
// questions that the technique catalogue cannot (spec.md's Non-goals
// exclude a general solving algorithm from the technique family, but the
// solver loop and puzzle tooling still need *some* ground truth). Adapted
// from the teacher's internal/sudoku/dp backtracking solver, rewired onto
// this package's grid.Grid/row/col/box helpers instead of a flat []int
// board with hand-rolled row/col/box scans.
type BitmaskBacktracker struct{}

// Solutions implements Oracle.
func (BitmaskBacktracker) Solutions(g *grid.Grid, limit int) ([][grid.Cells]int, error) {
	var board [grid.Cells]int
	for i := 0; i < grid.Cells; i++ {
		board[i] = g.Value(i)
	}
	var out [][grid.Cells]int
	backtrack(&board, limit, &out)
	return out, nil
}

// IsUnique implements Oracle.
func (b BitmaskBacktracker) IsUnique(g *grid.Grid) (bool, error) {
	solutions, _ := b.Solutions(g, 2)
	return len(solutions) == 1, nil
}

func backtrack(board *[grid.Cells]int, limit int, out *[][grid.Cells]int) {
	if limit > 0 && len(*out) >= limit {
		return
	}
	idx := -1
	for i := 0; i < grid.Cells; i++ {
		if board[i] == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		*out = append(*out, *board)
		return
	}
	for d := 1; d <= 9; d++ {
		if !placementValid(board, idx, d) {
			continue
		}
		board[idx] = d
		backtrack(board, limit, out)
		board[idx] = 0
		if limit > 0 && len(*out) >= limit {
			return
		}
	}
}

func placementValid(board *[grid.Cells]int, idx, d int) bool {
	for _, c := range grid.RowCells(grid.RowOf(idx)) {
		if board[c] == d {
			return false
		}
	}
	for _, c := range grid.ColCells(grid.ColOf(idx)) {
		if board[c] == d {
			return false
		}
	}
	for _, c := range grid.BoxCells(grid.BoxOf(idx)) {
		if board[c] == d {
			return false
		}
	}
	return true
}
