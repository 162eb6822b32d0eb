// Package trace implements LTL satisfaction over finite traces.
//
// A Trace is a non-empty, ordered sequence of fixed-width Boolean
// valuations. Eval/EvalAt are pure, terminating functions of a formula and
// a trace; there is no shared or mutable state, so concurrent evaluation of
// distinct (formula, trace) pairs needs no synchronization.
//
// Finite-trace conventions (locked in by the scenarios in eval_test.go):
//
//   - Next is weak: stepping past the end of the trace is false, not an error.
//   - Globally/Finally scan their window in reverse time, which tends to
//     short-circuit earlier on typical traces.
//   - Until is strong: it fails if its right operand never becomes true
//     within the trace. Release is Until's dual.
package trace
