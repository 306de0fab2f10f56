// Package solver implements the strategy-string grammar and step/run loop
// of spec.md §4.6, dispatching over internal/technique's catalogue in
// priority order. Grounded on the teacher's solver.go dispatch loop
// (internal/sudoku/human/solver.go), generalised from the teacher's fixed
// technique slice to a parsed, user-specified strategy expression.
package solver

import (
	"fmt"
	"sort"
	"strings"

	"sudoku-engine/internal/sudokuerr"
	"sudoku-engine/internal/technique"
)

// macros name common technique subsets, copied from sudosol.py's literal
// STRATEGY_SSTS/STRATEGY_HODOKU_* constants so strategy-string behaviour
// matches the original tool exactly (spec.md §8's scenarios depend on
// the literal membership of these sets, not just their rough size).
// sudosol.py's STRATEGY_HODOKU_HARD also lists U5, U6, and a separately
// tracked sashimi/finned-X-Wing pair (SBF2 alongside FBF2); this
// catalogue has no U5/U6 uniqueness variants and folds sashimi into the
// same finned-fish search as its base case (see fish_finned.go), so
// those names are dropped from the hard macro rather than left dangling.
var ssts = []string{
	"n1", "h1", "n2", "lc1", "lc2", "n3", "n4", "h2",
	"bf2", "bf3", "sc1", "sc2", "mc1", "mc2", "h3", "xy", "h4",
}

var macros = map[string][]string{
	"ssts":        ssts,
	"hodoku_easy": {"n1", "h1"},
	"hodoku_medium": {
		"n1", "h1", "l2", "l3", "lc1", "lc2", "n2", "n3", "h2", "h3",
	},
	"hodoku_hard": {
		"n1", "h1", "l2", "l3", "lc1", "lc2", "n2", "n3", "h2", "h3", "n4", "h4",
		"bf2", "bf3", "bf4", "rp", "bug1", "sk", "2sk", "tf", "er", "w", "xy", "xyz",
		"u1", "u2", "u3", "u4", "hr", "ar1", "ar2", "fbf2", "sc1", "sc2", "mc1", "mc2",
	},
	"hodoku_unfair": append(append([]string(nil), ssts...), "xyc"),
	"all":           allTechniqueIDs(),
}

func allTechniqueIDs() []string {
	var ids []string
	for _, t := range technique.Catalogue() {
		ids = append(ids, t.ID)
	}
	return ids
}

// Strategy is a resolved, ordered, de-duplicated list of technique IDs —
// the dispatch order a Solve call will walk.
type Strategy struct {
	IDs []string
}

// ParseStrategy parses spec.md §4.6's grammar:
//
//	term        = identifier | macro
//	term-list   = term (',' term)*
//	expression  = term-list ('-' term-list)?
//
// The left term-list's macros/ids are expanded and unioned in first-seen
// order; the right term-list (if present) is then subtracted from it.
func ParseStrategy(s string) (Strategy, error) {
	parts := strings.SplitN(s, "-", 2)
	included, err := expandTermList(parts[0])
	if err != nil {
		return Strategy{}, err
	}
	if len(parts) == 1 {
		return Strategy{IDs: included}, nil
	}
	excluded, err := expandTermList(parts[1])
	if err != nil {
		return Strategy{}, err
	}
	excludeSet := map[string]bool{}
	for _, id := range excluded {
		excludeSet[id] = true
	}
	var out []string
	for _, id := range included {
		if !excludeSet[id] {
			out = append(out, id)
		}
	}
	return Strategy{IDs: out}, nil
}

func expandTermList(s string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	catalogue := technique.ByID()
	for _, term := range strings.Split(s, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if ids, isMacro := macros[term]; isMacro {
			for _, id := range ids {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
			continue
		}
		if _, ok := catalogue[term]; !ok {
			return nil, sudokuerr.NewUnknownTechnique(term)
		}
		if !seen[term] {
			seen[term] = true
			out = append(out, term)
		}
	}
	return out, nil
}

// Techniques resolves s's IDs against the catalogue, in priority order
// (not strategy-string order — dispatch always walks by priority; the
// strategy only decides which techniques are in play).
func (s Strategy) Techniques() []technique.Technique {
	set := map[string]bool{}
	for _, id := range s.IDs {
		set[id] = true
	}
	var out []technique.Technique
	for _, t := range technique.Catalogue() {
		if set[t.ID] {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// String renders the resolved ID list back as a term-list, for logging.
func (s Strategy) String() string {
	return fmt.Sprintf("[%s]", strings.Join(s.IDs, ","))
}
