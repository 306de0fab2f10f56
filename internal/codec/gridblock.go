package codec

import (
	"strings"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/sudokuerr"
)

const gridBlockFormat = "grid-block"

// fieldWidth is the padded width of one cell's content; lineWidth is a full
// 91-character border or content line: "+" + 29 dashes, three times, + "+".
// Grounded byte-for-byte on sudosol.py's Grid.dump(): hborder =
// ('+' + '-'*29) * 3 + '+', and each content line is nine 9-wide fields
// separated by ' ' within a box and '|' at box boundaries.
const (
	fieldWidth = 9
	lineWidth  = 91
)

// EncodeGridBlock renders the ASCII art grid-with-candidates block: a
// horizontal rule, three rows, a rule, three rows, a rule, three rows, and
// a final rule. Each cell shows its value, or its ascending candidate
// digits padded to fieldWidth with trailing spaces.
func EncodeGridBlock(g *grid.Grid) string {
	snap := g.Snapshot()
	border := strings.Repeat("+"+strings.Repeat("-", 29), 3) + "+"

	var lines []string
	for r := 0; r < grid.Size; r++ {
		if r%3 == 0 {
			lines = append(lines, border)
		}
		var sb strings.Builder
		for c := 0; c < grid.Size; c++ {
			if c%3 == 0 {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			cs := snap[grid.IndexOf(r, c)]
			sb.WriteString(cellField(cs))
		}
		sb.WriteByte('|')
		lines = append(lines, sb.String())
	}
	lines = append(lines, border)
	return strings.Join(lines, "\n")
}

func cellField(cs grid.CellState) string {
	var content string
	if cs.Value != 0 {
		content = string(rune('0' + cs.Value))
	} else {
		for _, d := range cs.Cands.ToSlice() {
			content += string(rune('0' + d))
		}
	}
	if len(content) < fieldWidth {
		content += strings.Repeat(" ", fieldWidth-len(content))
	}
	return content
}

// DecodeGridBlock parses the ASCII art grid-with-candidates block produced
// by EncodeGridBlock, recovering each cell's value or candidate set. A
// single-digit field denotes a given, as in the CSV format (spec.md §4.3).
func DecodeGridBlock(s string) ([grid.Cells]grid.CellState, error) {
	var out [grid.Cells]grid.CellState
	rawLines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(rawLines) != 13 {
		return out, sudokuerr.NewBadFormat(gridBlockFormat, "expected 13 lines (4 rules, 9 rows)")
	}

	contentLineAt := map[int]int{1: 0, 2: 1, 3: 2, 5: 3, 6: 4, 7: 5, 9: 6, 10: 7, 11: 8}
	for lineIdx, row := range contentLineAt {
		line := rawLines[lineIdx]
		if len(line) != lineWidth {
			return out, sudokuerr.NewBadFormatAt(gridBlockFormat, lineIdx, "content line is not 91 characters")
		}
		for c := 0; c < grid.Size; c++ {
			start := 1 + c*(fieldWidth+1)
			field := strings.TrimRight(line[start:start+fieldWidth], " ")
			idx := grid.IndexOf(row, c)
			if field == "" {
				return out, sudokuerr.NewBadFormatAt(gridBlockFormat, start, "cell field is empty")
			}
			if len(field) == 1 && field[0] >= '1' && field[0] <= '9' {
				out[idx] = grid.CellState{Value: int(field[0] - '0'), Given: true}
				continue
			}
			digits := make([]int, 0, len(field))
			prev := 0
			for i := 0; i < len(field); i++ {
				d := int(field[i] - '0')
				if d < 1 || d > 9 || d <= prev {
					return out, sudokuerr.NewBadFormatAt(gridBlockFormat, start+i, "candidate field must be strictly ascending digits 1-9")
				}
				prev = d
				digits = append(digits, d)
			}
			out[idx] = grid.CellState{Cands: grid.NewCandidates(digits)}
		}
	}
	return out, nil
}
