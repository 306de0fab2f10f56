// Package codec implements the four textual Sudoku representations of
// spec.md §4.3/§6: S81, CSV-of-candidates, GVC, and the SS clipboard block.
// Grounded on the teacher's puzzle string handling in
// internal/transport/http/routes.go's validatePuzzleString, generalised to
// the full format family sudosol.py's ssc.py and sudosol.py support.
package codec

import (
	"strings"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/sudokuerr"
)

const s81Format = "S81"

// DecodeS81 parses an 81-character givens string; '.' and '0' denote an
// empty cell, '1'..'9' a given digit.
func DecodeS81(s string) ([grid.Cells]int, error) {
	var out [grid.Cells]int
	if len(s) != grid.Cells {
		return out, sudokuerr.NewBadFormat(s81Format, "expected 81 characters")
	}
	for i := 0; i < grid.Cells; i++ {
		ch := s[i]
		switch {
		case ch == '.' || ch == '0':
			out[i] = 0
		case ch >= '1' && ch <= '9':
			out[i] = int(ch - '0')
		default:
			return out, sudokuerr.NewBadFormatAt(s81Format, i, "expected a digit 0-9 or '.'")
		}
	}
	return out, nil
}

// EncodeS81 renders a grid's solved cells as digits and unsolved cells as
// '.', in cell-index order.
func EncodeS81(g *grid.Grid) string {
	var sb strings.Builder
	sb.Grow(grid.Cells)
	for i := 0; i < grid.Cells; i++ {
		if v := g.Value(i); v != 0 {
			sb.WriteByte(byte('0' + v))
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
