// Package segtree implements a static (point-update) segment tree over a
// fixed-size array, generic over the stored type T and the update type U.
//
// What:
//
//   - Tree aggregates a contiguous array under any associative operation.
//   - Query(l, r) folds op over the half-open range [l, r) in O(log n).
//   - Update(pos, u) rewrites one position and every ancestor in O(log n).
//   - Operand order is preserved: op need not be commutative.
//
// Why:
//
//   - Running statistics: sums, minima, maxima over sliding windows.
//   - Non-commutative folds: sequence concatenation, matrix products.
//   - Storage backend for hld path queries (see package hld).
//
// Complexity:
//
//   - New:    O(n) time and memory.
//   - From:   O(n) time and memory.
//   - Query:  O(log n) time, O(1) memory.
//   - Update: O(log n) time, O(1) memory.
//
// Errors:
//
//   - ErrNilOperation: Combine or Apply is nil.
//   - ErrBadSize: requested size is not positive.
//
// Query and Update do not validate their index arguments; out-of-range
// indices or l > r violate the call contract (see package doc of rangekit).
// Not safe for concurrent mutation without external synchronization.
package segtree
