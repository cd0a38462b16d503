package dyntree

// Tree — implicit segment tree with lazy propagation.
//
// Description:
//
//	Each node is simultaneously one tree node and the whole subtree
//	rooted there: it covers the inclusive range [lo, hi], owns a value,
//	a pending mark, and at most two children created the first time a
//	call has to look past the node's own boundary. Ownership is strictly
//	tree-shaped: a node only ever descends, never reaches its parent,
//	and no child is shared, so the whole structure is released as soon
//	as the Tree handle is dropped.
//
// Recursive contract per call:
//   - call range disjoint from the node range → Identity / no-op;
//   - node range fully contained in the call range → answer from (or fold
//     into) the node itself, no children needed;
//   - otherwise → materialize children if absent, push the pending mark
//     down, recurse into both, and (on update) recompute from children.
type Tree[T, U any] struct {
	ops   Ops[T, U]
	root  *node[T, U]
	nodes int // materialized node count, root included
}

// node is one materialized subtree. Absent children stand for
// all-Identity subtrees.
type node[T, U any] struct {
	lo, hi  int64
	value   T
	lazy    U
	pending bool
	left    *node[T, U]
	right   *node[T, U]
}

// New constructs a tree covering the inclusive domain [lo, hi] with every
// position implicitly ops.Identity. Returns ErrBadBounds or
// ErrNilOperation on invalid input. Complexity: O(1).
func New[T, U any](lo, hi int64, ops Ops[T, U]) (*Tree[T, U], error) {
	if lo > hi {
		return nil, ErrBadBounds
	}
	if !ops.valid() {
		return nil, ErrNilOperation
	}

	return &Tree[T, U]{
		ops:   ops,
		root:  &node[T, U]{lo: lo, hi: hi, value: ops.Identity},
		nodes: 1,
	}, nil
}

// Bounds returns the inclusive domain limits. Complexity: O(1).
func (t *Tree[T, U]) Bounds() (lo, hi int64) { return t.root.lo, t.root.hi }

// NodeCount returns the number of materialized nodes, root included.
// After k updates it is O(k·log D) regardless of the domain width D.
// Complexity: O(1).
func (t *Tree[T, U]) NodeCount() int { return t.nodes }

// Query folds Combine over the inclusive range [left, right] in index
// order; parts outside the domain contribute ops.Identity.
// Complexity: O(log D).
func (t *Tree[T, U]) Query(left, right int64) T {
	if left > right {
		return t.ops.Identity
	}

	return t.query(t.root, left, right)
}

// Update applies u to every position of the inclusive range [left, right];
// parts outside the domain are ignored. Complexity: O(log D).
func (t *Tree[T, U]) Update(left, right int64, u U) {
	if left > right {
		return
	}
	t.update(t.root, left, right, u)
}

func (t *Tree[T, U]) query(n *node[T, U], l, r int64) T {
	if r < n.lo || n.hi < l {
		return t.ops.Identity
	}
	if l <= n.lo && n.hi <= r {
		return n.value
	}
	t.push(n)

	return t.ops.Combine(t.query(n.left, l, r), t.query(n.right, l, r))
}

func (t *Tree[T, U]) update(n *node[T, U], l, r int64, u U) {
	if r < n.lo || n.hi < l {
		return
	}
	if l <= n.lo && n.hi <= r {
		t.absorb(n, u)

		return
	}
	t.push(n)
	t.update(n.left, l, r, u)
	t.update(n.right, l, r, u)
	n.value = t.ops.Combine(n.left.value, n.right.value)
}

// absorb applies u to the node as a whole and records it in the pending
// mark so descendants (materialized or not) receive it on the next push.
func (t *Tree[T, U]) absorb(n *node[T, U], u U) {
	n.value = t.ops.Apply(n.value, u, n.hi-n.lo+1)
	if n.pending {
		n.lazy = t.ops.Compose(n.lazy, u)
	} else {
		n.lazy = u
		n.pending = true
	}
}

// push materializes the children if absent and moves the pending mark one
// level down. Never called on single-position nodes: a range overlapping
// a one-element node always contains it.
func (t *Tree[T, U]) push(n *node[T, U]) {
	if n.left == nil {
		mid := n.lo + (n.hi-n.lo)/2
		n.left = &node[T, U]{lo: n.lo, hi: mid, value: t.ops.Identity}
		n.right = &node[T, U]{lo: mid + 1, hi: n.hi, value: t.ops.Identity}
		t.nodes += 2
	}
	if !n.pending {
		return
	}
	t.absorb(n.left, n.lazy)
	t.absorb(n.right, n.lazy)
	n.pending = false
	var zero U
	n.lazy = zero
}
