package dsu

import "errors"

// ErrBadSize indicates a non-positive element count.
var ErrBadSize = errors.New("dsu: size must be at least 1")

// DSU — disjoint-set union.
//
// Description:
//
//	One slice carries both roles: node[x] ≥ 0 is a parent link, while a
//	root stores the negated size of its set. Starting all entries at -1
//	makes every element a singleton root.
type DSU struct {
	node  []int
	count int
}

// New constructs a structure over n singleton elements 0..n-1.
// Returns ErrBadSize for a non-positive n. Complexity: O(n).
func New(n int) (*DSU, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	node := make([]int, n)
	for i := range node {
		node[i] = -1
	}

	return &DSU{node: node, count: n}, nil
}

// Len returns the number of elements. Complexity: O(1).
func (d *DSU) Len() int { return len(d.node) }

// Count returns the current number of disjoint sets. Complexity: O(1).
func (d *DSU) Count() int { return d.count }

// Root returns the representative of x's set, compressing the walked
// path. Precondition: 0 ≤ x < Len(). Complexity: O(α(n)) amortized.
func (d *DSU) Root(x int) int {
	r := x
	for d.node[r] >= 0 {
		r = d.node[r]
	}
	for d.node[x] >= 0 {
		d.node[x], x = r, d.node[x]
	}

	return r
}

// Union merges the sets of x and y, smaller under larger, and reports
// whether they were previously disjoint.
// Precondition: 0 ≤ x, y < Len(). Complexity: O(α(n)) amortized.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Root(x), d.Root(y)
	if rx == ry {
		return false
	}
	// node[r] is a negated size: the more negative root is the bigger set.
	if d.node[rx] > d.node[ry] {
		rx, ry = ry, rx
	}
	d.node[rx] += d.node[ry]
	d.node[ry] = rx
	d.count--

	return true
}

// Connected reports whether x and y share a set.
// Precondition: 0 ≤ x, y < Len(). Complexity: O(α(n)) amortized.
func (d *DSU) Connected(x, y int) bool { return d.Root(x) == d.Root(y) }

// SetSize returns the size of the set containing x.
// Precondition: 0 ≤ x < Len(). Complexity: O(α(n)) amortized.
func (d *DSU) SetSize(x int) int { return -d.node[d.Root(x)] }
