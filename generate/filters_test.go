package generate

import (
	"testing"

	"github.com/katalvlaran/ltlsynth/ltl"
	"github.com/stretchr/testify/require"
)

// Each test below names, in a comment, the identity that makes the rejected
// candidate redundant, and asserts that the check rejects it; some also
// assert that a plain atom or an ordered pair passes. They do not enumerate
// Formulae to find the surviving equivalent.

func TestCheckNotRejectsDoubleNegation(t *testing.T) {
	a := ltl.Atom(0)
	require.False(t, checkNot(ltl.Not(a))) // ¬¬a ≡ a, smaller survivor
	require.True(t, checkNot(a))
}

func TestCheckNotRejectsNegatedImplies(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkNot(ltl.Implies(a, b))) // ¬(a→b) ≡ a∧¬b
}

func TestCheckNextRejectsNestedNext(t *testing.T) {
	a := ltl.Atom(0)
	require.False(t, checkNext(ltl.Next(a)))
	require.True(t, checkNext(a))
}

func TestCheckGloballyRejectsIdempotenceAndGF(t *testing.T) {
	a := ltl.Atom(0)
	require.False(t, checkGlobally(ltl.Globally(a))) // GGa ≡ Ga
	require.False(t, checkGlobally(ltl.Finally(a)))
	require.True(t, checkGlobally(a))
}

func TestCheckFinallyRejectsIdempotence(t *testing.T) {
	a := ltl.Atom(0)
	require.False(t, checkFinally(ltl.Finally(a))) // FFa ≡ Fa
	require.True(t, checkFinally(a))
}

func TestCheckAndRejectsUnorderedCommutativePair(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.True(t, ltl.Less(a, b))
	require.True(t, checkAnd(a, b))
	require.False(t, checkAnd(b, a)) // b∧a ≡ a∧b, ordered form survives
}

func TestCheckAndRejectsDeMorgan(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkAnd(ltl.Not(a), ltl.Not(b))) // ¬a∧¬b ≡ ¬(a∨b)
}

func TestCheckAndRejectsNestedAnd(t *testing.T) {
	a, b, c := ltl.Atom(0), ltl.Atom(1), ltl.Atom(2)
	r := ltl.Until(c, a)
	require.True(t, ltl.Less(ltl.And(a, b), r))  // ordered, so only the nesting rule applies
	require.False(t, checkAnd(ltl.And(a, b), r)) // (a∧b)∧r ≡ a∧(b∧r)
}

func TestCheckAndRejectsBothNext(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkAnd(ltl.Next(a), ltl.Next(b))) // Xa∧Xb ≡ X(a∧b)
}

func TestCheckAndRejectsAbsorption(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	or := ltl.Or(a, b)
	require.True(t, ltl.Less(a, or))
	require.False(t, checkAnd(a, or)) // a∧(a∨b) ≡ a
}

func TestCheckOrRejectsDeMorgan(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkOr(ltl.Not(a), ltl.Not(b))) // ¬a∨¬b ≡ ¬(a∧b)
}

func TestCheckOrRejectsBothFinally(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkOr(ltl.Finally(a), ltl.Finally(b))) // Fa∨Fb ≡ F(a∨b)
}

func TestCheckOrRejectsAbsorption(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	and := ltl.And(a, b)
	require.True(t, ltl.Less(a, and))
	require.False(t, checkOr(a, and)) // a∨(a∧b) ≡ a
}

func TestCheckImpliesRejectsNotAntecedent(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkImplies(ltl.Not(a), b)) // ¬a→b ≡ a∨b
}

func TestCheckImpliesRejectsTautology(t *testing.T) {
	a := ltl.Atom(0)
	require.False(t, checkImplies(a, a)) // a→a is a tautology
}

func TestCheckUntilRejectsEqualOperands(t *testing.T) {
	a := ltl.Atom(0)
	require.False(t, checkUntil(a, a)) // aUa ≡ a
}

func TestCheckUntilRejectsBothNext(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkUntil(ltl.Next(a), ltl.Next(b))) // XaUXb ≡ X(aUb)
}

func TestCheckUntilRejectsRightNestedWithSameLeft(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkUntil(a, ltl.Until(a, b))) // aU(aUb) ≡ aUb
}

func TestCheckReleaseRejectsEqualOperands(t *testing.T) {
	a := ltl.Atom(0)
	require.False(t, checkRelease(a, a)) // aRa ≡ a
}

func TestCheckReleaseRejectsBothNext(t *testing.T) {
	a, b := ltl.Atom(0), ltl.Atom(1)
	require.False(t, checkRelease(ltl.Next(a), ltl.Next(b))) // XaRXb ≡ X(aRb)
}
