// Package fenwick implements a Fenwick tree (binary indexed tree) for
// prefix sums over numeric element types.
//
// What:
//
//   - Add(pos, delta) adjusts one position in O(log n).
//   - Prefix(r) and Query(l, r) return sums in O(log n) by walking the
//     least-significant-bit chain; no propagation, no internal tree walk.
//   - From builds from an existing slice in a single O(n) pass.
//
// Why:
//
//   - The cheapest structure when the aggregate is an invertible sum and
//     updates are point deltas; a third the memory of a segment tree.
//
// Errors:
//
//   - ErrBadSize: requested size is not positive.
//
// Index preconditions are the caller's contract and are not validated.
// Not safe for concurrent use without external synchronization.
package fenwick
