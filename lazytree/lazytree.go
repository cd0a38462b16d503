package lazytree

import "math/bits"

// Tree — lazy-propagation segment tree.
//
// Description:
//
//	Values live in a complete binary tree of width base (the smallest
//	power of two ≥ the logical size): leaves occupy [base, 2·base),
//	internal node i aggregates children 2i and 2i+1. Each internal node
//	additionally owns one pending mark slot; pending[i] reports whether
//	lazy[i] is meaningful. A node's value always reflects every update
//	applied to the node as a whole; a set pending flag means the
//	children's values are stale until the next push.
//
// Invariant: for every internal node i with pending[i] == false,
// tree[i] == Combine(tree[2i], tree[2i+1]).
type Tree[T, U any] struct {
	size    int // logical number of positions
	base    int // power-of-two leaf row width
	rows    int // levels above the leaf row: base == 1<<rows
	ops     Ops[T, U]
	tree    []T    // 2*base entries
	lazy    []U    // base entries, internal nodes only
	pending []bool // base entries, mirrors lazy
}

// New constructs a tree of the given logical size with every position set
// to ops.Identity. Returns ErrBadSize or ErrNilOperation on invalid input.
// Complexity: O(size).
func New[T, U any](size int, ops Ops[T, U]) (*Tree[T, U], error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	if !ops.valid() {
		return nil, ErrNilOperation
	}
	t := alloc(size, ops)
	for i := range t.tree {
		t.tree[i] = ops.Identity
	}

	return t, nil
}

// From constructs a tree initialized with a copy of values, building all
// internal nodes bottom-up. The input slice is not retained.
// Complexity: O(len(values)).
func From[T, U any](values []T, ops Ops[T, U]) (*Tree[T, U], error) {
	if len(values) == 0 {
		return nil, ErrBadSize
	}
	if !ops.valid() {
		return nil, ErrNilOperation
	}
	t := alloc(len(values), ops)
	for i := t.base + len(values); i < 2*t.base; i++ {
		t.tree[i] = ops.Identity
	}
	copy(t.tree[t.base:], values)
	for i := t.base - 1; i >= 1; i-- {
		t.tree[i] = ops.Combine(t.tree[2*i], t.tree[2*i+1])
	}

	return t, nil
}

// alloc sizes the backing slices for a logical size.
func alloc[T, U any](size int, ops Ops[T, U]) *Tree[T, U] {
	base := 1
	rows := 0
	for base < size {
		base <<= 1
		rows++
	}

	return &Tree[T, U]{
		size:    size,
		base:    base,
		rows:    rows,
		ops:     ops,
		tree:    make([]T, 2*base),
		lazy:    make([]U, base),
		pending: make([]bool, base),
	}
}

// Len returns the number of logical positions. Complexity: O(1).
func (t *Tree[T, U]) Len() int { return t.size }

// Get returns the current value at pos, pushing any stale marks on the
// root-to-leaf path first. Precondition: 0 ≤ pos < Len().
// Complexity: O(log n) amortized.
func (t *Tree[T, U]) Get(pos int) T {
	t.propagate(pos + t.base)

	return t.tree[pos+t.base]
}

// Query folds Combine over the half-open range [left, right) in index
// order; an empty range yields ops.Identity.
// Precondition: 0 ≤ left ≤ right ≤ Len(). Complexity: O(log n) amortized.
func (t *Tree[T, U]) Query(left, right int) T {
	if left >= right {
		return t.ops.Identity
	}
	l, r := left+t.base, right+t.base

	// No stale aggregate may be read: push marks along both boundary paths.
	t.propagate(l)
	t.propagate(r - 1)

	leftRes, rightRes := t.ops.Identity, t.ops.Identity
	for l < r {
		if l&1 == 1 {
			leftRes = t.ops.Combine(leftRes, t.tree[l])
			l++
		}
		if r&1 == 1 {
			r--
			rightRes = t.ops.Combine(t.tree[r], rightRes)
		}
		l >>= 1
		r >>= 1
	}

	return t.ops.Combine(leftRes, rightRes)
}

// Update applies u to every position of the half-open range [left, right).
// The range is covered by O(log n) maximal nodes; each absorbs the update
// into its value and its pending mark, then the boundary ancestors are
// recomputed. Precondition: 0 ≤ left ≤ right ≤ Len().
// Complexity: O(log n) amortized, independent of right-left.
func (t *Tree[T, U]) Update(left, right int, u U) {
	if left >= right {
		return
	}
	lp, rp := left+t.base, right+t.base

	// Push pending marks along both boundary paths so that u composes
	// after anything already deferred above the affected nodes.
	t.propagate(lp)
	t.propagate(rp - 1)

	// Absorb u at every maximal covered node, bottom-up.
	for l, r := lp, rp; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			t.absorb(l, u)
			l++
		}
		if r&1 == 1 {
			r--
			t.absorb(r, u)
		}
	}

	t.rebuild(lp)
	t.rebuild(rp - 1)
}

// absorb applies u to node i as a whole and, for internal nodes, records
// it in the pending mark so descendants receive it on the next push.
func (t *Tree[T, U]) absorb(i int, u U) {
	t.tree[i] = t.ops.Apply(t.tree[i], u, t.span(i))
	if i < t.base {
		if t.pending[i] {
			t.lazy[i] = t.ops.Compose(t.lazy[i], u)
		} else {
			t.lazy[i] = u
			t.pending[i] = true
		}
	}
}

// push moves the pending mark of node i one level down and clears it.
func (t *Tree[T, U]) push(i int) {
	if !t.pending[i] {
		return
	}
	u := t.lazy[i]
	t.absorb(2*i, u)
	t.absorb(2*i+1, u)
	t.pending[i] = false
	var zero U
	t.lazy[i] = zero
}

// propagate pushes every pending mark on the root-to-pos path, top-down.
// pos is an index in the leaf row [base, 2·base).
func (t *Tree[T, U]) propagate(pos int) {
	for s := t.rows; s >= 1; s-- {
		t.push(pos >> s)
	}
}

// rebuild recomputes every strict ancestor of leaf pos from its children,
// folding the ancestor's own still-pending mark back in.
func (t *Tree[T, U]) rebuild(pos int) {
	for i := pos >> 1; i >= 1; i >>= 1 {
		v := t.ops.Combine(t.tree[2*i], t.tree[2*i+1])
		if t.pending[i] {
			v = t.ops.Apply(v, t.lazy[i], t.span(i))
		}
		t.tree[i] = v
	}
}

// span returns the number of leaf positions node i covers.
func (t *Tree[T, U]) span(i int) int {
	return t.base >> (bits.Len(uint(i)) - 1)
}
