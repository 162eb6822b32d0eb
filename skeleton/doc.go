// Package skeleton enumerates unlabeled LTL syntax-tree shapes.
//
// A Skeleton is a Leaf, a Unary node wrapping one child, or a Binary node
// wrapping two children. Its size counts one per Leaf and one per Unary
// node: a Unary node of size s wraps a child of size s-1, and a Binary
// node's size is the sum of its children's. A formula built on a size-s
// skeleton therefore has a leaf count (ltl Size) of at most s.
// Generate(s) produces every shape of size s with subtrees shared
// by pointer; repeated calls within (or across) a solve reuse a
// process-wide, lock-guarded memo table rather than recomputing smaller
// sizes from scratch.
package skeleton
