package hld_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangekit/hld"
)

// sumOps: integer-sum aggregate with "add u to every node" updates.
func sumOps() hld.Ops[int64, int64] {
	return hld.Ops[int64, int64]{
		Combine: func(a, b int64) int64 { return a + b },
		Apply:   func(v, u int64, span int) int64 { return v + u*int64(span) },
		Compose: func(prev, next int64) int64 { return prev + next },
	}
}

// concatOps: string concatenation with "assign one letter to every node"
// updates. Non-commutative on purpose: QueryPath must fold node values in
// exact u→v order.
func concatOps() hld.Ops[string, string] {
	return hld.Ops[string, string]{
		Combine: func(a, b string) string { return a + b },
		Apply:   func(_, u string, span int) string { return strings.Repeat(u, span) },
		Compose: func(_, next string) string { return next },
	}
}

// chain returns the adjacency of the path tree 1–2–…–n.
func chain(n int) [][]int {
	adj := make([][]int, n+1)
	for v := 1; v < n; v++ {
		adj[v] = append(adj[v], v+1)
		adj[v+1] = append(adj[v+1], v)
	}

	return adj
}

// randomTree attaches each node v ≥ 2 under a uniform parent in [1, v-1].
func randomTree(n int, rng *rand.Rand) ([][]int, []int) {
	adj := make([][]int, n+1)
	parent := make([]int, n+1)
	parent[1] = 1
	for v := 2; v <= n; v++ {
		p := 1 + rng.Intn(v-1)
		parent[v] = p
		adj[p] = append(adj[p], v)
		adj[v] = append(adj[v], p)
	}

	return adj, parent
}

// refPath lists the nodes of the u→v path in order, walking parents of
// the deeper endpoint — the brute-force mirror of the chain walk.
func refPath(u, v int, parent, depth []int) []int {
	var up, down []int
	for depth[u] > depth[v] {
		up = append(up, u)
		u = parent[u]
	}
	for depth[v] > depth[u] {
		down = append(down, v)
		v = parent[v]
	}
	for u != v {
		up = append(up, u)
		down = append(down, v)
		u, v = parent[u], parent[v]
	}
	up = append(up, u)
	for i := len(down) - 1; i >= 0; i-- {
		up = append(up, down[i])
	}

	return up
}

func depths(n int, parent []int) []int {
	depth := make([]int, n+1)
	for v := 2; v <= n; v++ {
		depth[v] = depth[parent[v]] + 1
	}

	return depth
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	disconnected := make([][]int, 4) // nodes 1..3, no edges at all
	badNeighbor := [][]int{nil, {2, 9}, {1}}

	cases := []struct {
		name string
		adj  [][]int
		opts hld.Options[int64]
		want error
	}{
		{"Empty", [][]int{nil}, hld.DefaultOptions[int64](), hld.ErrEmptyTree},
		{"BadNeighbor", badNeighbor, hld.DefaultOptions[int64](), hld.ErrBadNeighbor},
		{"Disconnected", disconnected, hld.DefaultOptions[int64](), hld.ErrDisconnected},
		{"BadValues", chain(3), hld.Options[int64]{Values: []int64{1, 2}}, hld.ErrBadValues},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hld.New(tc.adj, sumOps(), tc.opts)
			if !errors.Is(err, tc.want) {
				t.Errorf("New error = %v; want %v", err, tc.want)
			}
		})
	}

	t.Run("NilOps", func(t *testing.T) {
		ops := sumOps()
		ops.Combine = nil
		_, err := hld.New(chain(3), ops, hld.DefaultOptions[int64]())
		require.ErrorIs(t, err, hld.ErrNilOperation)
	})
}

func TestDecomposition_Attributes(t *testing.T) {
	// Star with a long arm: 1 is root, 2..4 a chain, 5 and 6 leaves of 1.
	//      1
	//    / | \
	//   2  5  6
	//   |
	//   3
	//   |
	//   4
	adj := [][]int{nil, {2, 5, 6}, {1, 3}, {2, 4}, {3}, {1}, {1}}
	h, err := hld.New(adj, sumOps(), hld.DefaultOptions[int64]())
	require.NoError(t, err)

	require.Equal(t, 6, h.Len())
	require.Equal(t, 0, h.Depth(1))
	require.Equal(t, 3, h.Depth(4))
	require.Equal(t, 1, h.Parent(1))
	require.Equal(t, 3, h.Parent(4))

	// The 1-2-3-4 arm is the heavy chain through the root.
	for _, v := range []int{1, 2, 3, 4} {
		require.Equal(t, 1, h.ChainHead(v), "node %d", v)
	}
	require.Equal(t, 5, h.ChainHead(5))
	require.Equal(t, 6, h.ChainHead(6))

	// Preorder is a bijection onto [1, n] and chains are contiguous.
	seen := make(map[int]bool)
	for v := 1; v <= 6; v++ {
		p := h.Pos(v)
		require.GreaterOrEqual(t, p, 1)
		require.LessOrEqual(t, p, 6)
		require.False(t, seen[p], "duplicate preorder %d", p)
		seen[p] = true
	}
	for _, v := range []int{2, 3, 4} {
		require.Equal(t, h.Pos(v-1)+1, h.Pos(v), "heavy chain broken at %d", v)
	}
}

//----------------------------------------------------------------------------//
// Path operations
//----------------------------------------------------------------------------//

// TestChain_Scenario pins the documented chain scenario: 1–2–3–4–5 under
// sum, UpdatePath(1,5,+3), QueryPath(2,4) = 9, then UpdatePath(3,3,+10),
// QueryPath(1,5) = 25.
func TestChain_Scenario(t *testing.T) {
	for _, backend := range []hld.Backend{hld.BackendLazy, hld.BackendStatic} {
		h, err := hld.New(chain(5), sumOps(), hld.Options[int64]{Backend: backend})
		require.NoError(t, err)

		h.UpdatePath(1, 5, 3)
		require.Equal(t, int64(9), h.QueryPath(2, 4), "backend %v", backend)

		h.UpdatePath(3, 3, 10)
		require.Equal(t, int64(25), h.QueryPath(1, 5), "backend %v", backend)
		require.Equal(t, int64(13), h.QueryNode(3), "backend %v", backend)
	}
}

func TestSeedValues(t *testing.T) {
	h, err := hld.New(chain(4), sumOps(), hld.Options[int64]{Values: []int64{0, 10, 20, 30, 40}})
	require.NoError(t, err)

	require.Equal(t, int64(100), h.QueryPath(1, 4))
	require.Equal(t, int64(50), h.QueryPath(2, 3))
	require.Equal(t, int64(30), h.QueryNode(3))

	h.UpdateNode(2, 5)
	require.Equal(t, int64(25), h.QueryNode(2))
}

// TestConcat_PathOrder walks a small fixed tree with a non-commutative
// operation and checks exact u→v element order, both directions.
func TestConcat_PathOrder(t *testing.T) {
	//      1:a
	//     /    \
	//   2:b    3:c
	//   |        \
	//   4:d      5:e
	adj := [][]int{nil, {2, 3}, {1, 4}, {1, 5}, {2}, {3}}
	values := []string{"", "a", "b", "c", "d", "e"}
	for _, backend := range []hld.Backend{hld.BackendLazy, hld.BackendStatic} {
		h, err := hld.New(adj, concatOps(), hld.Options[string]{Backend: backend, Values: values})
		require.NoError(t, err)

		require.Equal(t, "dbace", h.QueryPath(4, 5), "backend %v", backend)
		require.Equal(t, "ecabd", h.QueryPath(5, 4), "backend %v", backend)
		require.Equal(t, "dba", h.QueryPath(4, 1), "backend %v", backend)
		require.Equal(t, "abd", h.QueryPath(1, 4), "backend %v", backend)
		require.Equal(t, "b", h.QueryPath(2, 2), "backend %v", backend)
	}
}

// TestRandom_PathEquivalence compares QueryPath/UpdatePath on random
// trees against a per-node reference model, for a commutative (sum) and
// a non-commutative (concatenation) operation, on both backends.
func TestRandom_PathEquivalence(t *testing.T) {
	backends := []hld.Backend{hld.BackendLazy, hld.BackendStatic}

	t.Run("Sum", func(t *testing.T) {
		for _, backend := range backends {
			const (
				n    = 120
				iter = 600
			)
			rng := rand.New(rand.NewSource(5))
			adj, parent := randomTree(n, rng)
			depth := depths(n, parent)

			ref := make([]int64, n+1)
			h, err := hld.New(adj, sumOps(), hld.Options[int64]{Backend: backend})
			require.NoError(t, err)

			for i := 0; i < iter; i++ {
				u, v := 1+rng.Intn(n), 1+rng.Intn(n)
				if rng.Intn(2) == 0 {
					delta := int64(rng.Intn(9) - 4)
					for _, w := range refPath(u, v, parent, depth) {
						ref[w] += delta
					}
					h.UpdatePath(u, v, delta)
				} else {
					var want int64
					for _, w := range refPath(u, v, parent, depth) {
						want += ref[w]
					}
					require.Equal(t, want, h.QueryPath(u, v), "iter %d path %d→%d", i, u, v)
				}
			}
		}
	})

	t.Run("Concat", func(t *testing.T) {
		for _, backend := range backends {
			const (
				n    = 60
				iter = 400
			)
			rng := rand.New(rand.NewSource(13))
			adj, parent := randomTree(n, rng)
			depth := depths(n, parent)

			ref := make([]string, n+1)
			values := make([]string, n+1)
			for v := 1; v <= n; v++ {
				s := string(rune('a' + v%26))
				ref[v], values[v] = s, s
			}
			h, err := hld.New(adj, concatOps(), hld.Options[string]{Backend: backend, Values: values})
			require.NoError(t, err)

			for i := 0; i < iter; i++ {
				u, v := 1+rng.Intn(n), 1+rng.Intn(n)
				if rng.Intn(4) == 0 {
					s := string(rune('a' + rng.Intn(26)))
					for _, w := range refPath(u, v, parent, depth) {
						ref[w] = s
					}
					h.UpdatePath(u, v, s)
				} else {
					var want strings.Builder
					for _, w := range refPath(u, v, parent, depth) {
						want.WriteString(ref[w])
					}
					require.Equal(t, want.String(), h.QueryPath(u, v), "iter %d path %d→%d", i, u, v)
				}
			}
		}
	})
}

// TestLCA_AgainstReference cross-checks the chain-walk LCA on a random
// tree against a parent-climbing reference.
func TestLCA_AgainstReference(t *testing.T) {
	const (
		n    = 150
		iter = 1000
	)
	rng := rand.New(rand.NewSource(29))
	adj, parent := randomTree(n, rng)
	depth := depths(n, parent)

	h, err := hld.New(adj, sumOps(), hld.DefaultOptions[int64]())
	require.NoError(t, err)

	refLCA := func(u, v int) int {
		for depth[u] > depth[v] {
			u = parent[u]
		}
		for depth[v] > depth[u] {
			v = parent[v]
		}
		for u != v {
			u, v = parent[u], parent[v]
		}

		return u
	}
	for i := 0; i < iter; i++ {
		u, v := 1+rng.Intn(n), 1+rng.Intn(n)
		require.Equal(t, refLCA(u, v), h.LCA(u, v), "iter %d LCA(%d,%d)", i, u, v)
	}
}

// TestDeepChain exercises a 20k-node path tree: construction is
// iterative, so no recursion depth limit applies.
func TestDeepChain(t *testing.T) {
	const n = 20_000
	h, err := hld.New(chain(n), sumOps(), hld.DefaultOptions[int64]())
	require.NoError(t, err)

	h.UpdatePath(1, n, 1)
	require.Equal(t, int64(n), h.QueryPath(1, n))
	require.Equal(t, int64(n/2), h.QueryPath(n/4+1, n/4+n/2))
	require.Equal(t, 1, h.LCA(1, n))
	require.Equal(t, n-1, h.Depth(n))
}
