package fenwick

import "errors"

// ErrBadSize indicates a non-positive element count.
var ErrBadSize = errors.New("fenwick: size must be at least 1")

// Numeric constrains the element types the tree can sum. Sums must be
// invertible, which is what restricts this structure to numbers while
// the segment trees stay fully generic.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Tree — Fenwick (binary indexed) tree.
//
// Description:
//
//	data[i] (1-based) stores the sum of the lsb(i) positions ending at i.
//	Prefix sums walk i -= lsb(i); point updates walk i += lsb(i).
//
// Time complexity: O(log n) per Add/Prefix/Query
// Memory usage:    O(n)
type Tree[T Numeric] struct {
	size int
	data []T // 1-based; data[0] unused
}

// New constructs a tree of the given size with all positions zero.
// Returns ErrBadSize for a non-positive size. Complexity: O(size).
func New[T Numeric](size int) (*Tree[T], error) {
	if size < 1 {
		return nil, ErrBadSize
	}

	return &Tree[T]{size: size, data: make([]T, size+1)}, nil
}

// From constructs a tree holding a copy of values, built in one linear
// pass: each block total is pushed straight to the next enclosing block.
// Complexity: O(len(values)).
func From[T Numeric](values []T) (*Tree[T], error) {
	if len(values) == 0 {
		return nil, ErrBadSize
	}
	t := &Tree[T]{size: len(values), data: make([]T, len(values)+1)}
	for i, v := range values {
		idx := i + 1
		t.data[idx] += v
		if next := idx + idx&(-idx); next <= t.size {
			t.data[next] += t.data[idx]
		}
	}

	return t, nil
}

// Len returns the number of element positions. Complexity: O(1).
func (t *Tree[T]) Len() int { return t.size }

// Add adds delta to the value at pos. Precondition: 0 ≤ pos < Len().
// Complexity: O(log n).
func (t *Tree[T]) Add(pos int, delta T) {
	for i := pos + 1; i <= t.size; i += i & (-i) {
		t.data[i] += delta
	}
}

// Prefix returns the sum of positions [0, r).
// Precondition: 0 ≤ r ≤ Len(). Complexity: O(log n).
func (t *Tree[T]) Prefix(r int) T {
	var sum T
	for i := r; i > 0; i -= i & (-i) {
		sum += t.data[i]
	}

	return sum
}

// Query returns the sum of the half-open range [l, r).
// Precondition: 0 ≤ l ≤ r ≤ Len(). Complexity: O(log n).
func (t *Tree[T]) Query(l, r int) T {
	return t.Prefix(r) - t.Prefix(l)
}
