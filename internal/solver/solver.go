package solver

import (
	"sudoku-engine/internal/explain"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/technique"
)

// Step is one logged application of a technique during a Run: its ID plus
// the Outcome the technique reported.
type Step struct {
	TechniqueID string
	Outcome     *technique.Outcome
}

// Result reports what a Run accomplished: every step taken, in order, and
// whether the grid ended up solved.
type Result struct {
	Steps  []Step
	Solved bool
}

// Step1 applies the first technique in s (by priority) that finds an
// application, mutating g and returning what happened. It returns
// (nil, false) if no technique in the strategy applies — the natural
// termination condition for a step call, not an error.
func Step1(g *grid.Grid, s Strategy, explainFlag bool) (*Step, bool) {
	for _, t := range s.Techniques() {
		if out := t.Apply(g, explainFlag); out != nil {
			return &Step{TechniqueID: t.ID, Outcome: out}, true
		}
	}
	return nil, false
}

// Run repeatedly applies Step1, restarting the priority scan from the top
// after every success (spec.md §4.6: the solver always retries the
// simplest techniques first after any mutation, since a placement or
// elimination can re-enable a technique that previously failed). It stops
// when the grid is solved or no technique in the strategy applies.
func Run(g *grid.Grid, s Strategy, explainFlag bool) Result {
	var steps []Step
	for {
		if g.Solved() {
			return Result{Steps: steps, Solved: true}
		}
		step, ok := Step1(g, s, explainFlag)
		if !ok {
			return Result{Steps: steps, Solved: g.Solved()}
		}
		steps = append(steps, *step)
	}
}

// Explanations flattens a Result's steps into their Explanation text, in
// application order, skipping steps whose Outcome carries no Explanation.
// Single placements leave it empty when run without explainFlag; most other
// techniques fill it in either way.
func Explanations(r Result) []explain.Explanation {
	var out []explain.Explanation
	for _, s := range r.Steps {
		if s.Outcome.Explanation.Technique != "" {
			out = append(out, s.Outcome.Explanation)
		}
	}
	return out
}
