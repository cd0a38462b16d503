// Package sparsetable implements immutable precomputed range-query
// tables: O(n log n) construction, O(1) queries, no update path.
//
// What:
//
//   - Table (New) keeps one row per power-of-two block length and answers
//     a query from two overlapping blocks — correct only for idempotent
//     operations (min, max, gcd, bitwise and/or).
//   - DisjointTable (NewDisjoint) keeps suffix/prefix folds around the
//     2^k-aligned centers of each layer and answers from two disjoint
//     halves — correct for any associative operation (sum, product,
//     concatenation), still O(1) per query.
//
// Why:
//
//   - When the data never changes, both tables beat a segment tree on
//     query cost; the disjoint variant lifts the idempotency restriction.
//
// Errors:
//
//   - ErrNilOperation: op is nil.
//   - ErrBadSize: the input slice is empty.
//
// Index preconditions are the caller's contract and are not validated;
// queries require a non-empty range. Safe for concurrent reads (the
// tables are never mutated after construction).
package sparsetable
