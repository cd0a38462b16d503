// Package dyntree implements an implicit (dynamic) segment tree with lazy
// propagation over an int64 index domain, generic over the stored type T
// and the update type U.
//
// What:
//
//   - Same range-update / range-query contract as package lazytree, but
//     the index domain may be enormous (up to ~1e18): nodes exist only
//     where a query or update actually had to split.
//   - A call whose range fully contains a node answers at that node
//     without materializing children, so untouched subtrees cost nothing.
//   - Absent children mean "implicitly all Identity".
//
// Why:
//
//   - Coordinate-sized domains: timestamps, genome positions, sparse
//     counters — materializing 1e18 leaves is impossible, touching
//     O(log 1e18) nodes per call is cheap.
//
// Complexity:
//
//   - New:          O(1).
//   - Query/Update: O(log D) time, D = domain width; each call
//     materializes at most O(log D) new nodes, so k updates
//     allocate O(k·log D) nodes total.
//
// Errors:
//
//   - ErrNilOperation: Combine, Apply or Compose is nil.
//   - ErrBadBounds: lo > hi.
//
// Bounds are inclusive ([lo, hi]); an int64 domain ending at 1<<62 stays
// clear of overflow. Query/Update silently ignore the part of a call range
// outside the domain, matching the "no contribution" reading of absence.
// Not safe for concurrent use without external synchronization.
package dyntree
