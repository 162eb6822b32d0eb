// Package ltl defines an immutable Linear Temporal Logic formula tree over
// finite traces.
//
// A Formula is built bottom-up through the constructors (Atom, Not, Next,
// Globally, Finally, And, Or, Implies, Until, Release). Subtrees are shared
// by pointer, never copied, so a population of candidate formulae forms a
// DAG in memory while remaining a tree in meaning — structural equality and
// ordering (Equal, Less) compare shape, not identity.
//
//   - Size counts leaves only: unary operators do not grow it.
//   - Vars() reports one plus the highest atomic index appearing, used by
//     callers to bound how many propositional variables a formula ranges over.
//   - Render produces the canonical, fully-parenthesized surface syntax.
package ltl
