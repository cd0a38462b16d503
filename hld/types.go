// Package hld defines the operation bundle, options and sentinel errors
// for the heavy-light decomposition overlay.
package hld

import "errors"

// Sentinel errors for hld construction.
var (
	// ErrNilOperation indicates Combine, Apply or Compose was nil.
	ErrNilOperation = errors.New("hld: Combine, Apply and Compose must be non-nil")
	// ErrEmptyTree indicates the adjacency slice describes no nodes.
	ErrEmptyTree = errors.New("hld: adjacency must describe at least node 1")
	// ErrBadNeighbor indicates an adjacency entry outside [1, n].
	ErrBadNeighbor = errors.New("hld: neighbor index out of range")
	// ErrDisconnected indicates not every node is reachable from the root.
	ErrDisconnected = errors.New("hld: tree is not connected from node 1")
	// ErrBadValues indicates Options.Values has the wrong length.
	ErrBadValues = errors.New("hld: Values must hold exactly n+1 entries (index 0 unused)")
)

// Backend selects the range-aggregation core the overlay builds on.
type Backend int

const (
	// BackendLazy backs the overlay with a lazytree core: path updates
	// cost O(log² n). The default.
	BackendLazy Backend = iota
	// BackendStatic backs the overlay with a segtree core: path queries
	// stay O(log² n), path updates touch every path node individually.
	BackendStatic
)

// Ops bundles the caller-supplied operations for an overlay instance.
// Semantics match lazytree.Ops; with BackendStatic the span passed to
// Apply is always 1.
type Ops[T, U any] struct {
	// Combine is the associative aggregation over node values.
	// It need not be commutative.
	Combine func(a, b T) T

	// Apply folds one update into an aggregate covering span nodes.
	Apply func(v T, u U, span int) T

	// Compose merges a newly arriving update into a pending one; next
	// takes effect after prev. Unused by BackendStatic.
	Compose func(prev, next U) U

	// Identity is the neutral element of Combine.
	Identity T
}

// valid reports whether the required function members are present.
func (o Ops[T, U]) valid() bool {
	return o.Combine != nil && o.Apply != nil && o.Compose != nil
}

// Options contains tunable construction parameters.
type Options[T any] struct {
	// Backend chooses the storage core. Zero value is BackendLazy.
	Backend Backend

	// Values optionally seeds per-node initial values, indexed 1..n with
	// Values[0] ignored. nil leaves every node at Identity.
	Values []T
}

// DefaultOptions returns Options with the lazy backend and no seed values.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Backend: BackendLazy}
}
