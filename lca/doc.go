// Package lca implements binary-lifting ancestry queries on a rooted
// tree: lowest common ancestor, k-th ancestor and depth.
//
// What:
//
//   - New(adj) preprocesses a 1-indexed tree (node 1 is the root) into a
//     jump table: up[j][v] is the 2^j-th ancestor of v.
//   - LCA(u, v) equalizes depths, then descends the jump table from the
//     highest level — O(log n) per query.
//   - KthAncestor(v, k) climbs by the binary representation of k and
//     returns the distinguished None marker when k exceeds the depth of
//     v, keeping the operation total.
//
// Why:
//
//   - Path lengths, ancestry tests, "middle of a path" lookups — the
//     classic companion of tree-path structures. It is a conceptual
//     sibling of package hld, not a dependency: hld answers LCA through
//     its own chain walk.
//
// Complexity:
//
//   - New: O(n log n) time and memory.
//   - LCA / KthAncestor: O(log n); Depth: O(1).
//
// Errors:
//
//   - ErrEmptyTree, ErrBadNeighbor, ErrDisconnected — see lca.go.
//
// Query arguments outside [1, n] violate the call contract and are not
// validated. Safe for concurrent reads after construction.
package lca
