package codec

import (
	"regexp"
	"strings"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/sudokuerr"
)

const clipboardFormat = "clipboard"

var digitRun = regexp.MustCompile(`\b\d+\b`)

// DecodeClipboard parses the Simple Sudoku clipboard layout: a 28-line
// block (givens only, "when starting") or a 43-line block (values plus
// candidates, "after first move"). Only the fixed line ranges carrying
// semantic content are read; everything else is box-drawing. Grounded on
// sudosol.py's load_ss_clipboard.
func DecodeClipboard(content string) ([grid.Cells]grid.CellState, error) {
	var out [grid.Cells]grid.CellState
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	switch len(lines) {
	case 28:
		values, err := valuesFromLines(lines, []int{1, 2, 3, 5, 6, 7, 9, 10, 11})
		if err != nil {
			return out, err
		}
		for i, v := range values {
			if v != 0 {
				out[i] = grid.CellState{Value: v, Given: true}
			} else {
				out[i] = grid.CellState{Cands: grid.Full}
			}
		}
		return out, nil

	case 43:
		values, err := valuesFromLines(lines, []int{16, 17, 18, 20, 21, 22, 24, 25, 26})
		if err != nil {
			return out, err
		}
		candLines := pickLines(lines, []int{31, 32, 33, 35, 36, 37, 39, 40, 41})
		var tokens []string
		for _, line := range candLines {
			matches := digitRun.FindAllString(line, -1)
			if len(matches) != grid.Size {
				return out, sudokuerr.NewBadFormat(clipboardFormat, "candidate line does not carry 9 digit runs")
			}
			tokens = append(tokens, matches...)
		}
		for i := 0; i < grid.Cells; i++ {
			if values[i] != 0 {
				out[i] = grid.CellState{Value: values[i], Given: true}
				continue
			}
			digits := make([]int, 0, len(tokens[i]))
			for _, ch := range tokens[i] {
				digits = append(digits, int(ch-'0'))
			}
			out[i] = grid.CellState{Cands: grid.NewCandidates(digits)}
		}
		return out, nil

	default:
		return out, sudokuerr.NewBadFormat(clipboardFormat, "expected a 28-line or 43-line block")
	}
}

func pickLines(lines []string, idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		if i < len(lines) {
			out = append(out, lines[i])
		} else {
			out = append(out, "")
		}
	}
	return out
}

func valuesFromLines(lines []string, idx []int) ([grid.Cells]int, error) {
	var out [grid.Cells]int
	joined := strings.Join(pickLines(lines, idx), "")
	joined = strings.NewReplacer("|", "", " ", "").Replace(joined)
	if len(joined) != grid.Cells {
		return out, sudokuerr.NewBadFormat(clipboardFormat, "value block does not decode to 81 characters")
	}
	for i := 0; i < grid.Cells; i++ {
		ch := joined[i]
		switch {
		case ch == '.' || ch == '0':
			out[i] = 0
		case ch >= '1' && ch <= '9':
			out[i] = int(ch - '0')
		default:
			return out, sudokuerr.NewBadFormatAt(clipboardFormat, i, "expected a digit or '.' in the value block")
		}
	}
	return out, nil
}

// EncodeClipboard renders a grid as the 43-line Simple Sudoku clipboard
// layout (values plus candidates), the richer of the two forms, so the
// encoding is always round-trippable back through DecodeClipboard.
func EncodeClipboard(g *grid.Grid) string {
	snap := g.Snapshot()
	rowLine := func(r int) string {
		var sb strings.Builder
		for c := 0; c < grid.Size; c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			idx := grid.IndexOf(r, c)
			if v := snap[idx].Value; v != 0 {
				sb.WriteByte(' ')
				sb.WriteByte(byte('0' + v))
				sb.WriteByte(' ')
			} else {
				sb.WriteString(" . ")
			}
		}
		return sb.String()
	}
	candLine := func(r int) string {
		var sb strings.Builder
		for c := 0; c < grid.Size; c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			idx := grid.IndexOf(r, c)
			cs := snap[idx]
			if cs.Value != 0 {
				sb.WriteByte(' ')
				sb.WriteByte(byte('0' + cs.Value))
				sb.WriteByte(' ')
				continue
			}
			var digits strings.Builder
			for _, d := range cs.Cands.ToSlice() {
				digits.WriteByte(byte('0' + d))
			}
			sb.WriteString(digits.String())
		}
		return sb.String()
	}

	var lines [43]string
	for i := range lines {
		lines[i] = strings.Repeat("-", 31)
	}
	ri := 0
	for box := 0; box < 3; box++ {
		for j := 0; j < 3; j++ {
			lines[16+box*4+j] = rowLine(ri)
			lines[31+box*4+j] = candLine(ri)
			ri++
		}
	}
	return strings.Join(lines[:], "\n")
}
