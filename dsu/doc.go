// Package dsu implements a disjoint-set union (union-find) structure
// with path compression and union by size.
//
// What:
//
//   - Root(x) finds a set representative, compressing the path behind it.
//   - Union(x, y) merges two sets, attaching the smaller under the larger,
//     and reports whether a merge actually happened.
//   - Connected, SetSize and Count answer the usual connectivity queries.
//
// Why:
//
//   - Incremental connectivity: Kruskal-style edge processing, grouping,
//     equivalence closure — near-constant amortized cost per operation.
//
// Complexity: O(α(n)) amortized per operation (inverse Ackermann).
//
// Errors:
//
//   - ErrBadSize: requested element count is not positive.
//
// Element indices are 0-based; out-of-range arguments violate the call
// contract and are not validated. Not safe for concurrent use without
// external synchronization (even reads compress paths).
package dsu
