// Package segtree defines the operation bundle and sentinel errors
// for the static segment tree.
package segtree

import "errors"

// Sentinel errors for segtree construction.
var (
	// ErrNilOperation indicates Combine or Apply was nil.
	ErrNilOperation = errors.New("segtree: Combine and Apply must be non-nil")
	// ErrBadSize indicates a non-positive element count.
	ErrBadSize = errors.New("segtree: size must be at least 1")
)

// Ops bundles the caller-supplied operations for a tree instance.
// All three members are fixed at construction and must stay referentially
// consistent for the lifetime of the structure.
type Ops[T, U any] struct {
	// Combine is the associative aggregation: Combine(Combine(a,b),c) must
	// equal Combine(a,Combine(b,c)). It need not be commutative.
	Combine func(a, b T) T

	// Apply folds an update into a single stored value. The static tree
	// applies updates at leaves only.
	Apply func(v T, u U) T

	// Identity is the neutral element: Combine(Identity, x) == x and
	// Combine(x, Identity) == x.
	Identity T
}

// valid reports whether the required function members are present.
func (o Ops[T, U]) valid() bool {
	return o.Combine != nil && o.Apply != nil
}
