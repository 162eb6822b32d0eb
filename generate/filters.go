package generate

import "github.com/katalvlaran/ltlsynth/ltl"

// checkNot rejects ¬¬ϕ (double negation) and ¬(a→b) (rewrite as a∧¬b,
// reachable through checkAnd instead).
func checkNot(child *ltl.Formula) bool {
	return child.Kind() != ltl.KindNot && child.Kind() != ltl.KindImplies
}

// checkNext rejects XXϕ. Nested Next is expected to arise, if at all,
// through an equivalent form produced by a sibling skeleton rather than
// through direct double-wrapping here.
func checkNext(child *ltl.Formula) bool {
	return child.Kind() != ltl.KindNext
}

// checkGlobally rejects GGϕ (idempotence) and GFϕ, leaving the latter to
// be produced, when needed, as F with a G child instead.
func checkGlobally(child *ltl.Formula) bool {
	return child.Kind() != ltl.KindGlobally && child.Kind() != ltl.KindFinally
}

// checkFinally rejects FFϕ (idempotence).
func checkFinally(child *ltl.Formula) bool {
	return child.Kind() != ltl.KindFinally
}

// checkAnd rejects:
//   - l ≥ r under Less (commutativity: keep only the ordered representative)
//   - l itself And(·,·) (right-associative normal form)
//   - both operands Not (De Morgan: ¬a∧¬b ≡ ¬(a∨b))
//   - both operands Next (Xa∧Xb ≡ X(a∧b))
//   - both operands Globally (Ga∧Gb ≡ G(a∧b))
//   - both operands Implies sharing an antecedent or a consequent
//   - absorption: one side Or(x,y), the other equal to x or y
//   - distributivity: both sides Or sharing a child
func checkAnd(l, r *ltl.Formula) bool {
	if !ltl.Less(l, r) {
		return false
	}
	if l.Kind() == ltl.KindAnd {
		return false
	}
	if l.Kind() == ltl.KindNot && r.Kind() == ltl.KindNot {
		return false
	}
	if l.Kind() == ltl.KindNext && r.Kind() == ltl.KindNext {
		return false
	}
	if l.Kind() == ltl.KindGlobally && r.Kind() == ltl.KindGlobally {
		return false
	}
	if l.Kind() == ltl.KindImplies && r.Kind() == ltl.KindImplies {
		ll, lr := l.Children()
		rl, rr := r.Children()
		if ltl.Equal(ll, rl) || ltl.Equal(lr, rr) {
			return false
		}
	}
	if l.Kind() == ltl.KindOr {
		x, y := l.Children()
		if ltl.Equal(x, r) || ltl.Equal(y, r) {
			return false
		}
	}
	if r.Kind() == ltl.KindOr {
		x, y := r.Children()
		if ltl.Equal(x, l) || ltl.Equal(y, l) {
			return false
		}
	}
	if l.Kind() == ltl.KindOr && r.Kind() == ltl.KindOr {
		lx, ly := l.Children()
		rx, ry := r.Children()
		if ltl.Equal(lx, rx) || ltl.Equal(lx, ry) || ltl.Equal(ly, rx) || ltl.Equal(ly, ry) {
			return false
		}
	}
	return true
}

// checkOr is checkAnd's symmetric dual: And↔Or and Globally↔Finally are
// swapped, and the absorption/distributivity checks run against And
// instead of Or.
func checkOr(l, r *ltl.Formula) bool {
	if !ltl.Less(l, r) {
		return false
	}
	if l.Kind() == ltl.KindOr {
		return false
	}
	if l.Kind() == ltl.KindNot && r.Kind() == ltl.KindNot {
		return false
	}
	if l.Kind() == ltl.KindNext && r.Kind() == ltl.KindNext {
		return false
	}
	if l.Kind() == ltl.KindFinally && r.Kind() == ltl.KindFinally {
		return false
	}
	if l.Kind() == ltl.KindImplies && r.Kind() == ltl.KindImplies {
		ll, lr := l.Children()
		rl, rr := r.Children()
		if ltl.Equal(ll, rl) || ltl.Equal(lr, rr) {
			return false
		}
	}
	if l.Kind() == ltl.KindAnd {
		x, y := l.Children()
		if ltl.Equal(x, r) || ltl.Equal(y, r) {
			return false
		}
	}
	if r.Kind() == ltl.KindAnd {
		x, y := r.Children()
		if ltl.Equal(x, l) || ltl.Equal(y, l) {
			return false
		}
	}
	if l.Kind() == ltl.KindAnd && r.Kind() == ltl.KindAnd {
		lx, ly := l.Children()
		rx, ry := r.Children()
		if ltl.Equal(lx, rx) || ltl.Equal(lx, ry) || ltl.Equal(ly, rx) || ltl.Equal(ly, ry) {
			return false
		}
	}
	return true
}

// checkImplies rejects a Not antecedent (¬a→b is subsumed by the Or
// candidate a∨b) and a≡b (a→a is a tautology, contributing nothing a
// smaller formula wouldn't).
func checkImplies(l, r *ltl.Formula) bool {
	if l.Kind() == ltl.KindNot {
		return false
	}
	return !ltl.Equal(l, r)
}

// checkUntil rejects a≡b (aUa≡a), both operands Next (XaUXb≡X(aUb)), and
// r itself Until with l as its left operand (aU(aUb)≡aUb).
func checkUntil(l, r *ltl.Formula) bool {
	if ltl.Equal(l, r) {
		return false
	}
	if l.Kind() == ltl.KindNext && r.Kind() == ltl.KindNext {
		return false
	}
	if r.Kind() == ltl.KindUntil {
		rl, _ := r.Children()
		if ltl.Equal(rl, l) {
			return false
		}
	}
	return true
}

// checkRelease rejects a≡b (aRa≡a) and both operands Next (XaRXb≡X(aRb)).
func checkRelease(l, r *ltl.Formula) bool {
	if ltl.Equal(l, r) {
		return false
	}
	if l.Kind() == ltl.KindNext && r.Kind() == ltl.KindNext {
		return false
	}
	return true
}
