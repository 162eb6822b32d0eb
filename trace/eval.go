package trace

import "github.com/katalvlaran/ltlsynth/ltl"

// Eval evaluates f against tr at time 0, the public entry point for
// satisfaction checking. Panics if tr is empty.
func Eval(f *ltl.Formula, tr Trace) bool {
	return EvalAt(f, tr, 0)
}

// EvalAt evaluates f against tr at time t, per the finite-trace semantics
// documented on the package. Panics if tr is empty or t is out of range.
func EvalAt(f *ltl.Formula, tr Trace, t int) bool {
	invariant(tr, t)
	return evalAt(f, tr, t)
}

// evalAt assumes its precondition (0 <= t < len(tr)) has already been
// checked by the public entry points; recursive calls stay within that
// window by construction (Next only recurses when t+1 < len(tr), and
// Globally/Finally/Until/Release only recurse over t' in [t, len(tr))).
func evalAt(f *ltl.Formula, tr Trace, t int) bool {
	switch f.Kind() {
	case ltl.KindAtom:
		return tr[t][f.AtomIndex()]
	case ltl.KindNot:
		left, _ := f.Children()
		return !evalAt(left, tr, t)
	case ltl.KindNext:
		left, _ := f.Children()
		return t+1 < len(tr) && evalAt(left, tr, t+1)
	case ltl.KindGlobally:
		left, _ := f.Children()
		// Scan in reverse time: empirically yields earlier short-circuit.
		for tp := len(tr) - 1; tp >= t; tp-- {
			if !evalAt(left, tr, tp) {
				return false
			}
		}
		return true
	case ltl.KindFinally:
		left, _ := f.Children()
		for tp := len(tr) - 1; tp >= t; tp-- {
			if evalAt(left, tr, tp) {
				return true
			}
		}
		return false
	case ltl.KindAnd:
		left, right := f.Children()
		return evalAt(left, tr, t) && evalAt(right, tr, t)
	case ltl.KindOr:
		left, right := f.Children()
		return evalAt(left, tr, t) || evalAt(right, tr, t)
	case ltl.KindImplies:
		left, right := f.Children()
		return !evalAt(left, tr, t) || evalAt(right, tr, t)
	case ltl.KindUntil:
		left, right := f.Children()
		for tp := t; tp < len(tr); tp++ {
			if evalAt(right, tr, tp) {
				return true
			}
			if !evalAt(left, tr, tp) {
				return false
			}
		}
		// Strong until fails if the right operand never holds.
		return false
	case ltl.KindRelease:
		left, right := f.Children()
		for tp := t; tp < len(tr); tp++ {
			if evalAt(right, tr, tp) {
				continue
			}
			// right failed at tp: released only if left held at some t'' < tp.
			held := false
			for tpp := t; tpp < tp; tpp++ {
				if evalAt(left, tr, tpp) {
					held = true
					break
				}
			}
			if !held {
				return false
			}
		}
		return true
	default:
		panic("trace: unknown formula kind")
	}
}
