package segtree

// Tree — static segment tree.
//
// Description:
//
//	The tree stores 2·size values in one slice laid out as a complete
//	binary tree: leaves occupy [size, 2·size) and map 1:1 to input
//	positions; internal index i aggregates its children at 2i and 2i+1.
//	Every internal node equals Combine(left child, right child) before
//	and after each public call returns.
//
// Algorithm Outline (Query):
//  1. Shift both cursors to leaf space: l += size, r += size.
//  2. Walk the cursors toward the root. Whenever a cursor is a right
//     sibling it covers a maximal node of the range:
//     - left cursor odd  ⇒ fold into the left partial, step right;
//     - right cursor odd ⇒ step left, fold into the right partial.
//  3. Combine(leftPartial, rightPartial) at the end. Keeping the two
//     partials separate is what preserves operand order for
//     non-commutative Combine.
//
// Time complexity: O(log n) per Query/Update
// Memory usage:    O(n)
type Tree[T, U any] struct {
	size int
	ops  Ops[T, U]
	tree []T // 2*size entries; [size, 2*size) are leaves
}

// New constructs a tree of the given size with every position set to
// ops.Identity. Returns ErrBadSize or ErrNilOperation on invalid input.
// Complexity: O(size).
func New[T, U any](size int, ops Ops[T, U]) (*Tree[T, U], error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	if !ops.valid() {
		return nil, ErrNilOperation
	}
	t := &Tree[T, U]{
		size: size,
		ops:  ops,
		tree: make([]T, 2*size),
	}
	for i := range t.tree {
		t.tree[i] = ops.Identity
	}

	return t, nil
}

// From constructs a tree initialized with a copy of values, building all
// internal nodes bottom-up. The input slice is not retained.
// Returns ErrBadSize for an empty slice, ErrNilOperation for missing ops.
// Complexity: O(len(values)).
func From[T, U any](values []T, ops Ops[T, U]) (*Tree[T, U], error) {
	if len(values) == 0 {
		return nil, ErrBadSize
	}
	if !ops.valid() {
		return nil, ErrNilOperation
	}
	n := len(values)
	t := &Tree[T, U]{
		size: n,
		ops:  ops,
		tree: make([]T, 2*n),
	}
	copy(t.tree[n:], values)
	for i := n - 1; i > 0; i-- {
		t.tree[i] = ops.Combine(t.tree[2*i], t.tree[2*i+1])
	}

	return t, nil
}

// Len returns the number of element positions. Complexity: O(1).
func (t *Tree[T, U]) Len() int { return t.size }

// Get returns the current value at pos. Precondition: 0 ≤ pos < Len().
// Complexity: O(1).
func (t *Tree[T, U]) Get(pos int) T { return t.tree[pos+t.size] }

// Query folds Combine over the half-open range [left, right) in index
// order and returns the result; an empty range yields ops.Identity.
// Precondition: 0 ≤ left ≤ right ≤ Len(). Complexity: O(log n).
func (t *Tree[T, U]) Query(left, right int) T {
	leftRes, rightRes := t.ops.Identity, t.ops.Identity
	l, r := left+t.size, right+t.size

	for l < r {
		if l%2 == 1 {
			leftRes = t.ops.Combine(leftRes, t.tree[l])
			l++
		}
		if r%2 == 1 {
			r--
			rightRes = t.ops.Combine(t.tree[r], rightRes)
		}
		l /= 2
		r /= 2
	}

	return t.ops.Combine(leftRes, rightRes)
}

// Update replaces the leaf at pos with Apply(current, u) and recomputes
// every ancestor on the leaf-to-root path.
// Precondition: 0 ≤ pos < Len(). Complexity: O(log n).
func (t *Tree[T, U]) Update(pos int, u U) {
	i := pos + t.size
	t.tree[i] = t.ops.Apply(t.tree[i], u)
	for i /= 2; i > 0; i /= 2 {
		t.tree[i] = t.ops.Combine(t.tree[2*i], t.tree[2*i+1])
	}
}
