package sparsetable

import (
	"errors"
	"math/bits"
)

// Sentinel errors for sparse-table construction.
var (
	// ErrNilOperation indicates op was nil.
	ErrNilOperation = errors.New("sparsetable: op must be non-nil")
	// ErrBadSize indicates an empty input slice.
	ErrBadSize = errors.New("sparsetable: values must be non-empty")
)

// Table — overlapping-block sparse table.
//
// Description:
//
//	data[k][i] folds values[i : i+2^k]. A query [l, r) picks the largest
//	k with 2^k ≤ r-l and combines the blocks starting at l and ending at
//	r; the two blocks overlap, so op must be idempotent.
//
// Time complexity: O(1) per Query after O(n log n) construction
// Memory usage:    O(n log n)
type Table[T any] struct {
	op   func(a, b T) T
	data [][]T
}

// New precomputes the table for values under the idempotent associative
// op. The input slice is copied. Complexity: O(n log n).
func New[T any](values []T, op func(a, b T) T) (*Table[T], error) {
	if op == nil {
		return nil, ErrNilOperation
	}
	n := len(values)
	if n == 0 {
		return nil, ErrBadSize
	}
	levels := bits.Len(uint(n)) // 2^(levels-1) ≤ n
	data := make([][]T, levels)
	data[0] = make([]T, n)
	copy(data[0], values)
	for k := 1; k < levels; k++ {
		width := 1 << k
		row := make([]T, n-width+1)
		prev := data[k-1]
		for i := range row {
			row[i] = op(prev[i], prev[i+width/2])
		}
		data[k] = row
	}

	return &Table[T]{op: op, data: data}, nil
}

// Len returns the number of element positions. Complexity: O(1).
func (t *Table[T]) Len() int { return len(t.data[0]) }

// Query folds op over the non-empty half-open range [l, r).
// Precondition: 0 ≤ l < r ≤ Len(). Complexity: O(1).
func (t *Table[T]) Query(l, r int) T {
	k := bits.Len(uint(r-l)) - 1

	return t.op(t.data[k][l], t.data[k][r-(1<<k)])
}
