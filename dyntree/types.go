// Package dyntree defines the operation bundle and sentinel errors
// for the implicit segment tree.
package dyntree

import "errors"

// Sentinel errors for dyntree construction.
var (
	// ErrNilOperation indicates Combine, Apply or Compose was nil.
	ErrNilOperation = errors.New("dyntree: Combine, Apply and Compose must be non-nil")
	// ErrBadBounds indicates lo > hi.
	ErrBadBounds = errors.New("dyntree: lo must not exceed hi")
)

// Ops bundles the caller-supplied operations for a tree instance.
// All members are fixed at construction and must stay referentially
// consistent for the lifetime of the structure.
type Ops[T, U any] struct {
	// Combine is the associative aggregation over stored values.
	// It need not be commutative.
	Combine func(a, b T) T

	// Apply folds one update into an aggregate covering span positions
	// (span ≥ 1; here spans are arbitrary, not powers of two).
	Apply func(v T, u U, span int64) T

	// Compose merges a newly arriving update into a pending one; next
	// takes effect after prev.
	Compose func(prev, next U) U

	// Identity is the neutral element of Combine.
	Identity T
}

// valid reports whether the required function members are present.
func (o Ops[T, U]) valid() bool {
	return o.Combine != nil && o.Apply != nil && o.Compose != nil
}
