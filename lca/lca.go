package lca

import (
	"errors"
	"math/bits"
)

// Sentinel errors for lca construction.
var (
	// ErrEmptyTree indicates the adjacency slice describes no nodes.
	ErrEmptyTree = errors.New("lca: adjacency must describe at least node 1")
	// ErrBadNeighbor indicates an adjacency entry outside [1, n].
	ErrBadNeighbor = errors.New("lca: neighbor index out of range")
	// ErrDisconnected indicates not every node is reachable from the root.
	ErrDisconnected = errors.New("lca: tree is not connected from node 1")
)

// None is the distinguished "no such node" result of KthAncestor: the
// requested ancestor lies above the root. Node numbering starts at 1, so
// 0 is never a valid node.
const None = 0

// Forest — binary-lifting ancestry table for one rooted tree.
//
// Description:
//
//	up is a flattened levels×(n+1) table: up[j*(n+1)+v] is the 2^j-th
//	ancestor of v, or None past the root. Level 0 is the parent array;
//	level j is level j-1 squared. LCA lifts the deeper node first, then
//	descends both from the top level while their ancestors differ.
type Forest struct {
	n      int
	levels int
	up     []int
	depth  []int
}

// New preprocesses the tree described by adj. adj is 1-indexed:
// len(adj) == n+1, adj[0] unused, node 1 is the root, and adj[v] lists
// the neighbors of v in either or both directions.
//
// Returns ErrEmptyTree, ErrBadNeighbor or ErrDisconnected on invalid
// input. Complexity: O(n log n).
func New(adj [][]int) (*Forest, error) {
	n := len(adj) - 1
	if n < 1 {
		return nil, ErrEmptyTree
	}
	for v := 1; v <= n; v++ {
		for _, w := range adj[v] {
			if w < 1 || w > n {
				return nil, ErrBadNeighbor
			}
		}
	}

	levels := bits.Len(uint(n))
	f := &Forest{
		n:      n,
		levels: levels,
		up:     make([]int, levels*(n+1)),
		depth:  make([]int, n+1),
	}

	// Level 0: parents and depths by an explicit-stack DFS from the root.
	visited := make([]bool, n+1)
	visited[1] = true
	f.up[1] = None
	reached := 1
	stack := []int{1}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range adj[v] {
			if visited[w] {
				continue
			}
			visited[w] = true
			f.up[w] = v
			f.depth[w] = f.depth[v] + 1
			reached++
			stack = append(stack, w)
		}
	}
	if reached != n {
		return nil, ErrDisconnected
	}

	// Level j doubles level j-1.
	for j := 1; j < levels; j++ {
		prev := f.up[(j-1)*(n+1):]
		row := f.up[j*(n+1):]
		for v := 1; v <= n; v++ {
			if mid := prev[v]; mid != None {
				row[v] = prev[mid]
			}
		}
	}

	return f, nil
}

// Len returns the number of tree nodes. Complexity: O(1).
func (f *Forest) Len() int { return f.n }

// Depth returns the edge distance of v from the root.
// Precondition: 1 ≤ v ≤ Len(). Complexity: O(1).
func (f *Forest) Depth(v int) int { return f.depth[v] }

// KthAncestor returns the ancestor k edges above v, or None when k
// exceeds Depth(v). Precondition: 1 ≤ v ≤ Len(), k ≥ 0.
// Complexity: O(log n).
func (f *Forest) KthAncestor(v, k int) int {
	for j := 0; j < f.levels && v != None; j++ {
		if k&(1<<j) != 0 {
			v = f.up[j*(f.n+1)+v]
		}
	}
	if k >= 1<<f.levels {
		return None
	}

	return v
}

// LCA returns the lowest common ancestor of u and v.
// Precondition: 1 ≤ u, v ≤ Len(). Complexity: O(log n).
func (f *Forest) LCA(u, v int) int {
	if f.depth[u] < f.depth[v] {
		u, v = v, u
	}
	u = f.KthAncestor(u, f.depth[u]-f.depth[v])
	if u == v {
		return u
	}
	for j := f.levels - 1; j >= 0; j-- {
		nu, nv := f.up[j*(f.n+1)+u], f.up[j*(f.n+1)+v]
		if nu != nv {
			u, v = nu, nv
		}
	}

	return f.up[u]
}
