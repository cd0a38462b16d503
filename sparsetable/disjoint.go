package sparsetable

import "math/bits"

// DisjointTable — disjoint sparse table.
//
// Description:
//
//	Layer k splits the index line into blocks of 2^(k+1) positions with
//	a center at each odd multiple of 2^k. Within a block, positions left
//	of the center store the suffix fold down to the center, positions
//	right of it the prefix fold up from the center. Any non-singleton
//	query [l, r) straddles exactly one such center — the one at the
//	highest bit where l and r-1 differ — so it is answered by combining
//	two disjoint, order-adjacent folds. No idempotency required.
//
// Time complexity: O(1) per Query after O(n log n) construction
// Memory usage:    O(n log n)
type DisjointTable[T any] struct {
	op   func(a, b T) T
	data [][]T // data[0] is a plain copy of the input
}

// NewDisjoint precomputes the table for values under any associative op.
// The input slice is copied. Complexity: O(n log n).
func NewDisjoint[T any](values []T, op func(a, b T) T) (*DisjointTable[T], error) {
	if op == nil {
		return nil, ErrNilOperation
	}
	n := len(values)
	if n == 0 {
		return nil, ErrBadSize
	}
	layers := 1
	if n > 1 {
		layers = bits.Len(uint(n - 1))
	}
	data := make([][]T, layers)
	data[0] = make([]T, n)
	copy(data[0], values)

	for k := 1; k < layers; k++ {
		row := make([]T, n)
		half := 1 << k
		for s := 0; s < n; s += 2 * half {
			c := s + half
			// Suffix folds values[i..c-1] for the left half.
			hi := min(c, n)
			row[hi-1] = values[hi-1]
			for i := hi - 2; i >= s; i-- {
				row[i] = op(values[i], row[i+1])
			}
			if c >= n {
				continue
			}
			// Prefix folds values[c..i] for the right half.
			row[c] = values[c]
			for i, end := c+1, min(s+2*half, n); i < end; i++ {
				row[i] = op(row[i-1], values[i])
			}
		}
		data[k] = row
	}

	return &DisjointTable[T]{op: op, data: data}, nil
}

// Len returns the number of element positions. Complexity: O(1).
func (t *DisjointTable[T]) Len() int { return len(t.data[0]) }

// Query folds op over the non-empty half-open range [l, r) in index
// order. Precondition: 0 ≤ l < r ≤ Len(). Complexity: O(1).
func (t *DisjointTable[T]) Query(l, r int) T {
	rr := r - 1
	if l == rr {
		return t.data[0][l]
	}
	k := bits.Len(uint(l^rr)) - 1

	return t.op(t.data[k][l], t.data[k][rr])
}
