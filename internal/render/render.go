// Package render implements the grid dump renderer of spec.md's component
// 9: a multi-line grid printout with per-candidate decoration, selected by
// the grid's DecorationMode. Grounded on sudosol.py's Grid.dump /
// colorize_candidates, which render the same 91-char-per-line layout the
// codec package's grid-with-candidates block ingests losslessly — this
// renderer adds decoration on top of that shared layout.
package render

import (
	"strings"

	"sudoku-engine/internal/explain"
	"sudoku-engine/internal/grid"
)

// ansiFor maps a decoration to an ANSI colour code; used only in
// DecorationColour mode. No third-party terminal-colour library is wired
// here: terminal colouring is an explicit external collaborator per
// spec.md §1, so this stays a handful of raw escape sequences, the same
// scope sudosol.py's colorama usage covers.
var ansiFor = map[explain.Decor]string{
	explain.DecorDefault:  "\x1b[36m", // cyan, sudosol's default candidate colour
	explain.DecorDefining: "\x1b[33m", // yellow
	explain.DecorRemoved:  "\x1b[31m", // red
	explain.DecorColour1:  "\x1b[32m", // green
	explain.DecorColour2:  "\x1b[35m", // magenta
	explain.DecorColour3:  "\x1b[34m", // blue
	explain.DecorColour4:  "\x1b[37m", // white
	explain.DecorValue:    "\x1b[1m",  // bold
	explain.DecorGiven:    "\x1b[1m",  // bold
}

const ansiReset = "\x1b[0m"

var markerFor = map[explain.Decor]struct{ open, close string }{
	explain.DecorDefault:  {"", ""},
	explain.DecorDefining: {"*", "*"},
	explain.DecorRemoved:  {"-", "-"},
	explain.DecorColour1:  {"a", "a"},
	explain.DecorColour2:  {"b", "b"},
	explain.DecorColour3:  {"c", "c"},
	explain.DecorColour4:  {"d", "d"},
	explain.DecorValue:    {"", ""},
	explain.DecorGiven:    {"", ""},
}

// Dump renders g as a multi-line grid-with-candidates printout, decorating
// cells/candidates named in snapshot according to g's DecorationMode.
func Dump(g *grid.Grid, snapshot explain.Snapshot) string {
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
			idx := grid.IndexOf(r, c)
			sb.WriteString(decorateCell(g, idx, snapshot))
		}
		sb.WriteByte('|')
		lines = append(lines, sb.String())
	}
	lines = append(lines, border)
	return strings.Join(lines, "\n")
}

func decorateCell(g *grid.Grid, idx int, snapshot explain.Snapshot) string {
	mode := g.Decoration()

	if v := g.Value(idx); v != 0 {
		decor := explain.DecorValue
		if g.Given(idx) {
			decor = explain.DecorGiven
		}
		decor = overrideIfSpecified(snapshot, idx, 0, decor)
		return pad(decorateText(mode, decor, string(rune('0'+v))), 9)
	}

	var sb strings.Builder
	for _, d := range g.CandidatesAt(idx).ToSlice() {
		decor := snapshot.DecorFor(idx, d)
		sb.WriteString(decorateText(mode, decor, string(rune('0'+d))))
	}
	return pad(sb.String(), 9)
}

// overrideIfSpecified lets a snapshot spec with nil Digits (a whole-cell
// spec) override the default value/given decoration.
func overrideIfSpecified(snapshot explain.Snapshot, idx, _ int, fallback explain.Decor) explain.Decor {
	decor := fallback
	for _, spec := range snapshot.Specs {
		if spec.Digits != nil {
			continue
		}
		for _, c := range spec.Cells {
			if c == idx {
				decor = spec.Decor
			}
		}
	}
	return decor
}

func decorateText(mode grid.DecorationMode, decor explain.Decor, text string) string {
	switch mode {
	case grid.DecorationColour:
		code, ok := ansiFor[decor]
		if !ok || decor == explain.DecorDefault {
			return text
		}
		return code + text + ansiReset
	case grid.DecorationMarker:
		m := markerFor[decor]
		return m.open + text + m.close
	default: // grid.DecorationPlain
		return text
	}
}

// pad left-justifies s to width, accounting for non-printable ANSI escapes
// by padding on the printable-rune count, the way sudosol.py pads after
// colorama has already inserted escape codes.
func pad(s string, width int) string {
	printable := visibleLen(s)
	if printable >= width {
		return s
	}
	return s + strings.Repeat(" ", width-printable)
}

func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		n++
	}
	return n
}
