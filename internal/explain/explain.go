// Package explain implements the human-readable explanation layer of
// spec.md §4.4: a one-line technique description and a per-cell/per-
// candidate colour snapshot for grid dumps. Grounded on sudosol.py's
// colorize_candidates col_spec convention ("cells and candidates are
// iterables... the last colour spec is taken into account").
package explain

import "fmt"

// Decor names a decoration applied to a (cell, candidate) pair in a
// snapshot, or to a whole cell when it carries a value.
type Decor int

const (
	DecorDefault Decor = iota
	DecorDefining
	DecorRemoved
	DecorColour1
	DecorColour2
	DecorColour3
	DecorColour4
	DecorValue
	DecorGiven
)

// Spec is one entry of a snapshot's colour specification: apply Decor to
// every (cell, digit) pair in the cross product of Cells and Digits. A nil
// Digits means "the cell as a whole" (used for DecorValue/DecorGiven).
type Spec struct {
	Cells  []int
	Digits []int
	Decor  Decor
}

// Snapshot is an ordered list of specs; later specs win over earlier ones
// for any (cell, digit) pair they both cover.
type Snapshot struct {
	Specs []Spec
}

// DecorFor resolves the decoration of one (cell, digit) pair by scanning
// Specs in order and keeping the last match — last-wins per spec.md §4.4.
func (s Snapshot) DecorFor(cell, digit int) Decor {
	decor := DecorDefault
	for _, spec := range s.Specs {
		if !containsInt(spec.Cells, cell) {
			continue
		}
		if spec.Digits == nil || containsInt(spec.Digits, digit) {
			decor = spec.Decor
		}
	}
	return decor
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Explanation is one technique application's human-facing output: a
// single-line description plus the colour snapshot used to render it.
type Explanation struct {
	Technique   string
	Description string
	Snapshot    Snapshot
}

// Line renders "<Technique>: <defining> => <eliminations>" per spec.md §4.4.
func Line(technique, defining, eliminations string) string {
	if eliminations == "" {
		return fmt.Sprintf("%s: %s", technique, defining)
	}
	return fmt.Sprintf("%s: %s => %s", technique, defining, eliminations)
}
