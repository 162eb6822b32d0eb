// Package generate labels skeleton shapes with LTL operators and atoms,
// discarding candidates that are provably equivalent to some other
// candidate the generator has already produced or will produce at the
// same or smaller size.
//
// Formulae returns an iter.Seq[*ltl.Formula]: a lazy, range-over-func
// sequence, so a caller such as package search can stop pulling candidates
// the moment it finds a consistent one without materializing the rest of
// the bucket.
//
// The check* predicates in filters.go are the normal-form filter catalogue:
// each is sound (it never rejects the only representative of an
// equivalence class) but the set as a whole is not claimed to be complete —
// some equivalent candidates still slip through, which only costs search
// time, never correctness.
package generate
