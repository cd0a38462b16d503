// Package lazytree defines the operation bundle and sentinel errors
// for the lazy-propagation segment tree.
package lazytree

import "errors"

// Sentinel errors for lazytree construction.
var (
	// ErrNilOperation indicates Combine, Apply or Compose was nil.
	ErrNilOperation = errors.New("lazytree: Combine, Apply and Compose must be non-nil")
	// ErrBadSize indicates a non-positive element count.
	ErrBadSize = errors.New("lazytree: size must be at least 1")
)

// Ops bundles the caller-supplied operations for a tree instance.
// All members are fixed at construction and must stay referentially
// consistent for the lifetime of the structure.
type Ops[T, U any] struct {
	// Combine is the associative aggregation over stored values.
	// It need not be commutative.
	Combine func(a, b T) T

	// Apply folds one update into an aggregate that covers span positions.
	// span is always a power of two and ≥ 1; updates whose effect grows
	// with range length (e.g. "add v to every element" under a sum
	// aggregate) scale by it, updates that don't simply ignore it.
	Apply func(v T, u U, span int) T

	// Compose merges a newly arriving update into a pending one; next
	// takes effect after prev. Must satisfy
	// Apply(Apply(v, prev, s), next, s) == Apply(v, Compose(prev, next), s).
	Compose func(prev, next U) U

	// Identity is the neutral element of Combine.
	Identity T
}

// valid reports whether the required function members are present.
func (o Ops[T, U]) valid() bool {
	return o.Combine != nil && o.Apply != nil && o.Compose != nil
}
