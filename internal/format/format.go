// Package format implements the coordinate/candidate/discard formatting
// helpers of spec.md §4.8, grounded on sudosol.py's packed_coordinates and
// the teacher's FormatCell/FormatDigits family in internal/sudoku/human/grid.go.
package format

import (
	"fmt"
	"sort"
	"strings"

	"sudoku-engine/internal/grid"
)

// Cell formats a single cell index as "R<row>C<col>" (1-indexed).
func Cell(idx int) string {
	return fmt.Sprintf("R%dC%d", grid.RowOf(idx)+1, grid.ColOf(idx)+1)
}

// Coordinates packs a set of cells into compact "r<rows>c<cols>" notation,
// choosing whichever axis (row-major or column-major) yields fewer groups —
// spec.md §4.8 / §4.5.1's "collapse by the axis with fewer entries".
func Coordinates(cells []int) string {
	if len(cells) == 0 {
		return ""
	}
	rowToCols := map[int][]int{}
	colToRows := map[int][]int{}
	for _, c := range cells {
		r, col := grid.RowOf(c)+1, grid.ColOf(c)+1
		rowToCols[r] = append(rowToCols[r], col)
		colToRows[col] = append(colToRows[col], r)
	}

	if len(rowToCols) <= len(colToRows) {
		return packBy(rowToCols, "r%dc%s")
	}
	return packBy(colToRows, "c%dr%s")
}

// packBy renders groups keyed by the chosen axis, each group's members
// concatenated in ascending order, groups joined by commas in ascending
// key order.
func packBy(groups map[int][]int, layout string) string {
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		members := append([]int(nil), groups[k]...)
		sort.Ints(members)
		var digits strings.Builder
		for _, m := range members {
			fmt.Fprintf(&digits, "%d", m)
		}
		parts = append(parts, fmt.Sprintf(layout, k, digits.String()))
	}
	return strings.Join(parts, ",")
}

// Candidates formats digits in ascending order, comma-separated.
func Candidates(digits []int) string {
	sorted := append([]int(nil), digits...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, ",")
}

// Discard renders a removal map as "rCOORDS<>d" fragments joined by ";",
// sorted by digit (spec.md §4.8).
func Discard(removed grid.RemovalMap) string {
	digits := make([]int, 0, len(removed))
	for d := range removed {
		digits = append(digits, d)
	}
	sort.Ints(digits)

	parts := make([]string, 0, len(digits))
	for _, d := range digits {
		parts = append(parts, fmt.Sprintf("%s<>%d", Coordinates(removed[d]), d))
	}
	return strings.Join(parts, ";")
}
