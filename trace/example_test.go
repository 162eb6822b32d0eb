package trace_test

import (
	"fmt"

	"github.com/katalvlaran/ltlsynth/ltl"
	"github.com/katalvlaran/ltlsynth/trace"
)

// ExampleEval_untilSequence shows a U b holding on a trace where b arrives
// on the second instant, after a has held continuously up to that point.
func ExampleEval_untilSequence() {
	a, b := ltl.Atom(0), ltl.Atom(1)
	f := ltl.Until(a, b)
	tr := trace.Trace{
		{true, false},
		{false, true},
		{false, false},
	}
	fmt.Println(trace.Eval(f, tr))
	// Output:
	// true
}
