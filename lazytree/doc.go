// Package lazytree implements a lazy-propagation segment tree: range
// updates and range queries over a fixed-size array, both in O(log n),
// generic over the stored type T and the update type U.
//
// What:
//
//   - Update(l, r, u) applies one update to every position of [l, r)
//     without touching more than O(log n) nodes; the effect on deeper
//     nodes is deferred as a "lazy" mark.
//   - Query(l, r) folds the associative Combine over [l, r) after pushing
//     every mark that could make the read stale one level down.
//   - Marks compose: overlapping updates never overwrite each other.
//
// Why:
//
//   - Bulk mutation: "add v to every element of a window", "assign v to
//     a block", interleaved with aggregate reads.
//   - Storage backend for hld path updates (see package hld).
//
// Propagation protocol:
//
//  1. Before any traversal reads or writes below a node, every ancestor
//     with a pending mark pushes it one level down: the mark is applied
//     to each child's value, composed into each child's own mark, then
//     cleared at the parent.
//  2. Range updates land on the O(log n) maximal nodes covered by the
//     range: the update is applied to the node's value and composed into
//     its mark; no descent below those nodes.
//  3. After an update, every ancestor of the two range boundaries is
//     recomputed as Combine(left, right), folding the ancestor's own
//     still-pending mark back in.
//
// Complexity:
//
//   - New/From: O(n) time and memory (the leaf row is rounded up to a
//     power of two, so memory is at most 4·n values).
//   - Query/Update: O(log n) amortized, independent of range length.
//
// Errors:
//
//   - ErrNilOperation: Combine, Apply or Compose is nil.
//   - ErrBadSize: requested size is not positive.
//
// Index preconditions are the caller's contract and are not validated.
// Not safe for concurrent use without external synchronization.
package lazytree
