// Package hld implements heavy-light decomposition: it maps a rooted tree
// onto a linear index space so that any node-to-node path splits into
// O(log n) contiguous intervals, and answers path queries and path updates
// through one owned range-aggregation backend.
//
// What:
//
//   - New(adj, ops, opts) decomposes a 1-indexed tree (node 1 is the root)
//     once, in two passes: a sizing pass that records parent, depth and
//     the heavy (largest) child of every node, and a chaining pass that
//     numbers nodes in heavy-first preorder so every chain is one
//     contiguous interval.
//   - QueryPath(u, v) folds the associative Combine over the node values
//     of the u→v path, in exact path order — non-commutative operations
//     are safe (see below).
//   - UpdatePath(u, v, upd) applies one update to every node on the path.
//   - LCA(u, v) falls out of the chain walk for free.
//
// Why:
//
//   - Path aggregates on trees: weights along routes, bottleneck values,
//     ordered products along ancestral chains.
//   - Reuses the array cores: the decomposition turns every path call
//     into a bounded number of segtree/lazytree range calls.
//
// Operand order:
//
//	The overlay owns exactly one backend instance, built over an internal
//	forward/reverse value pair: each backend position stores the node
//	value as both operand orders, and the wrapped combine is
//	{Combine(a.fwd, b.fwd), Combine(b.rev, a.rev)}. Chain segments walked
//	upward from u read the reverse component, segments descending toward
//	v read the forward one, so QueryPath is element-order exact.
//
// Complexity:
//
//   - New:        O(n) time and memory (plus the backend's O(n)).
//   - QueryPath:  O(log² n) — O(log n) backend calls of O(log n) each.
//   - UpdatePath: O(log² n) with BackendLazy; with BackendStatic it
//     degrades to one point update per path node.
//   - LCA:        O(log n).
//
// Errors:
//
//   - ErrNilOperation, ErrEmptyTree, ErrBadNeighbor, ErrDisconnected,
//     ErrBadValues — see types.go.
//
// Path operations do not validate their node arguments; nodes outside
// [1, n] violate the call contract. The backend is owned exclusively by
// the overlay: no caller touches it directly, so a half-propagated state
// is never observable. Not safe for concurrent use without external
// synchronization.
package hld
