package skeleton

import "errors"

// ErrNonPositiveSize indicates Generate was called with size <= 0, a
// contract breach since a skeleton has at least one leaf.
var ErrNonPositiveSize = errors.New("skeleton: size must be positive")

// Shape identifies the structure of a Skeleton node.
type Shape uint8

const (
	// Leaf is a single propositional-variable slot.
	Leaf Shape = iota
	// Unary wraps one child.
	Unary
	// Binary wraps two children.
	Binary
)

// Skeleton is an unlabeled tree shape: a Leaf, a Unary(Left), or a
// Binary(Left, Right). Subtrees are shared by reference across sibling
// skeletons; a Skeleton is never mutated after construction.
type Skeleton struct {
	Shape Shape
	Left  *Skeleton
	Right *Skeleton
}

var leaf = &Skeleton{Shape: Leaf}
