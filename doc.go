// Package rangekit is your in-memory toolbox for range aggregation —
// from point-update segment trees to tree-path queries over
// heavy-light decomposition.
//
// 🚀 What is rangekit?
//
//	A generic, single-threaded library that brings together:
//		• segtree/     — static segment tree: point update, range query
//		• lazytree/    — lazy-propagation segment tree: range update, range query
//		• dyntree/     — implicit segment tree over huge (≤ ~1e18) index domains
//		• hld/         — heavy-light decomposition: path queries/updates on trees
//		• fenwick/     — binary indexed tree for prefix sums
//		• sparsetable/ — immutable O(1) range queries (overlapping & disjoint)
//		• dsu/         — disjoint-set union with path compression
//		• lca/         — binary-lifting lowest common ancestor & k-th ancestor
//
// ✨ Why choose rangekit?
//
//   - Generic by construction – every structure is parameterized over the
//     stored type T and the update type U; you supply the associative
//     operation, the library preserves operand order (non-commutative ops
//     are first-class citizens)
//   - Predictable costs – every public call is a plain, bounded computation:
//     O(log n) per range call, O(log² n) per tree path
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    1
//	    │          heavy chains:  1─2─4─5  and  3
//	    2
//	   ┌┴┐
//	   3 4
//	     │
//	     5
//
//	QueryPath(3, 5) folds the values of 3 → 2 → 4 → 5 in exactly that order.
//
// All structures are designed for single-threaded use; wrap them in your own
// synchronization if you must share them across goroutines.
package rangekit
