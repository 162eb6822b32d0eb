package ltl

// Kind returns the operator (or KindAtom) at the root of f.
func (f *Formula) Kind() Kind { return f.kind }

// Size returns the number of leaves in f: unary operators do not increase
// size.
func (f *Formula) Size() int { return f.size }

// AtomIndex returns the propositional-variable index of f. Only meaningful
// when f.Kind() == KindAtom.
func (f *Formula) AtomIndex() int { return f.atom }

// Children returns f's subtrees. Right is nil for an atom or a unary
// operator.
func (f *Formula) Children() (left, right *Formula) { return f.left, f.right }

// Vars returns one plus the highest atomic index appearing in f, i.e. the
// number of propositional variables f ranges over.
func (f *Formula) Vars() int {
	switch f.kind {
	case KindAtom:
		return f.atom + 1
	case KindNot, KindNext, KindGlobally, KindFinally:
		return f.left.Vars()
	default:
		lv, rv := f.left.Vars(), f.right.Vars()
		if lv > rv {
			return lv
		}
		return rv
	}
}
