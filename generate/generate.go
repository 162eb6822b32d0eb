package generate

import (
	"iter"

	"github.com/katalvlaran/ltlsynth/ltl"
	"github.com/katalvlaran/ltlsynth/skeleton"
)

// Formulae returns every LTL formula whose shape matches sk and whose
// atoms are drawn from atoms, with candidates provably equivalent to an
// already- (or later-) produced one filtered out by the check* predicates.
// The result is lazy at the root: root candidates beyond what the caller
// actually ranges over are never constructed. The candidates of a node's
// subtrees are materialized in full (see collect) before the node's own
// candidates are formed.
func Formulae(sk *skeleton.Skeleton, atoms Atoms) iter.Seq[*ltl.Formula] {
	return func(yield func(*ltl.Formula) bool) {
		generate(sk, atoms, yield)
	}
}

// generate walks sk, invoking yield for every surviving candidate in turn.
// It returns false the moment yield asks to stop, so a caller partway
// through a Binary node's cartesian product (or higher up the recursion)
// can unwind promptly instead of finishing the bucket.
func generate(sk *skeleton.Skeleton, atoms Atoms, yield func(*ltl.Formula) bool) bool {
	switch sk.Shape {
	case skeleton.Leaf:
		for _, i := range atoms {
			if !yield(ltl.Atom(i)) {
				return false
			}
		}
		return true

	case skeleton.Unary:
		for _, child := range collect(sk.Left, atoms) {
			if checkNot(child) && !yield(ltl.Not(child)) {
				return false
			}
			if checkNext(child) && !yield(ltl.Next(child)) {
				return false
			}
			if checkGlobally(child) && !yield(ltl.Globally(child)) {
				return false
			}
			if checkFinally(child) && !yield(ltl.Finally(child)) {
				return false
			}
		}
		return true

	default: // skeleton.Binary
		lefts := collect(sk.Left, atoms)
		rights := collect(sk.Right, atoms)
		for _, l := range lefts {
			for _, r := range rights {
				if checkAnd(l, r) && !yield(ltl.And(l, r)) {
					return false
				}
				if checkOr(l, r) && !yield(ltl.Or(l, r)) {
					return false
				}
				if checkImplies(l, r) && !yield(ltl.Implies(l, r)) {
					return false
				}
				if checkUntil(l, r) && !yield(ltl.Until(l, r)) {
					return false
				}
				if checkRelease(l, r) && !yield(ltl.Release(l, r)) {
					return false
				}
			}
		}
		return true
	}
}

// collect materializes a subtree's formulae into a slice so a Binary node
// can form the cartesian product of its two children's candidates —
// materialize into a dense slice before the cartesian product, the same
// shape tsp.bbEngine.initPrefetch uses for candidate edges.
func collect(sk *skeleton.Skeleton, atoms Atoms) []*ltl.Formula {
	out := make([]*ltl.Formula, 0)
	generate(sk, atoms, func(f *ltl.Formula) bool {
		out = append(out, f)
		return true
	})
	return out
}
