package codec

import (
	"regexp"
	"strings"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/sudokuerr"
)

const csvFormat = "CSV"

var csvPattern = regexp.MustCompile(`^([1-9]{1,9},){80}[1-9]{1,9}$`)

// DecodeCSV parses the 81-group comma-separated candidate encoding. Each
// group is a non-empty ascending run of digits 1-9; a one-digit group marks
// a given (spec.md §4.3/§6).
func DecodeCSV(s string) ([grid.Cells]grid.CellState, error) {
	var out [grid.Cells]grid.CellState
	if !csvPattern.MatchString(s) {
		return out, sudokuerr.NewBadFormat(csvFormat, "does not match ([1-9]{1,9},){80}[1-9]{1,9}")
	}
	groups := strings.Split(s, ",")
	if len(groups) != grid.Cells {
		return out, sudokuerr.NewBadFormat(csvFormat, "expected 81 comma-separated groups")
	}
	for i, g := range groups {
		digits, err := ascendingDigits(g)
		if err != nil {
			return out, sudokuerr.NewBadFormatAt(csvFormat, i, err.Error())
		}
		if len(digits) == 1 {
			out[i] = grid.CellState{Value: digits[0], Given: true}
		} else {
			out[i] = grid.CellState{Cands: grid.NewCandidates(digits)}
		}
	}
	return out, nil
}

// EncodeCSV renders a grid as the 81-group candidate encoding: solved cells
// as a single digit, unsolved cells as their ascending candidate digits.
func EncodeCSV(g *grid.Grid) string {
	var sb strings.Builder
	snap := g.Snapshot()
	for i, cs := range snap {
		if i > 0 {
			sb.WriteByte(',')
		}
		if cs.Value != 0 {
			sb.WriteByte(byte('0' + cs.Value))
			continue
		}
		for _, d := range cs.Cands.ToSlice() {
			sb.WriteByte(byte('0' + d))
		}
	}
	return sb.String()
}

// ascendingDigits validates that g is a strictly ascending run of distinct
// digits 1-9 and returns them as ints.
func ascendingDigits(g string) ([]int, error) {
	digits := make([]int, 0, len(g))
	prev := 0
	for i := 0; i < len(g); i++ {
		d := int(g[i] - '0')
		if d <= prev {
			return nil, errNotAscending
		}
		prev = d
		digits = append(digits, d)
	}
	return digits, nil
}

var errNotAscending = sudokuerr.NewBadFormat(csvFormat, "candidate group digits must be strictly ascending")
