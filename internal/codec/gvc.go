package codec

import (
	"strings"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/sudokuerr"
)

const gvcFormat = "GVC"

// DecodeGVC parses the concatenation of 81 tokens "g<d>", "v<d>", or
// "c<ds>" — given digit, non-given value, or remaining candidates
// (spec.md §4.3/§6).
func DecodeGVC(s string) ([grid.Cells]grid.CellState, error) {
	var out [grid.Cells]grid.CellState
	pos := 0
	for i := 0; i < grid.Cells; i++ {
		if pos >= len(s) {
			return out, sudokuerr.NewBadFormatAt(gvcFormat, pos, "unexpected end of input")
		}
		tag := s[pos]
		if tag != 'g' && tag != 'v' && tag != 'c' {
			return out, sudokuerr.NewBadFormatAt(gvcFormat, pos, "expected token tag 'g', 'v', or 'c'")
		}
		start := pos + 1
		end := start
		for end < len(s) && s[end] >= '1' && s[end] <= '9' {
			end++
		}
		if end == start {
			return out, sudokuerr.NewBadFormatAt(gvcFormat, start, "token carries no digits")
		}
		digits := make([]int, 0, end-start)
		for j := start; j < end; j++ {
			digits = append(digits, int(s[j]-'0'))
		}
		switch tag {
		case 'g':
			if len(digits) != 1 {
				return out, sudokuerr.NewBadFormatAt(gvcFormat, pos, "'g' token must carry exactly one digit")
			}
			out[i] = grid.CellState{Value: digits[0], Given: true}
		case 'v':
			if len(digits) != 1 {
				return out, sudokuerr.NewBadFormatAt(gvcFormat, pos, "'v' token must carry exactly one digit")
			}
			out[i] = grid.CellState{Value: digits[0], Given: false}
		case 'c':
			out[i] = grid.CellState{Cands: grid.NewCandidates(digits)}
		}
		pos = end
	}
	if pos != len(s) {
		return out, sudokuerr.NewBadFormatAt(gvcFormat, pos, "trailing input after 81 tokens")
	}
	return out, nil
}

// EncodeGVC renders a grid as 81 concatenated "g<d>"/"v<d>"/"c<ds>" tokens.
func EncodeGVC(g *grid.Grid) string {
	var sb strings.Builder
	snap := g.Snapshot()
	for _, cs := range snap {
		switch {
		case cs.Value != 0 && cs.Given:
			sb.WriteByte('g')
			sb.WriteByte(byte('0' + cs.Value))
		case cs.Value != 0:
			sb.WriteByte('v')
			sb.WriteByte(byte('0' + cs.Value))
		default:
			sb.WriteByte('c')
			for _, d := range cs.Cands.ToSlice() {
				sb.WriteByte(byte('0' + d))
			}
		}
	}
	return sb.String()
}
