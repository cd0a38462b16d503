package hld

// HLD — heavy-light decomposition overlay.
//
// Description:
//
//	The decomposition is computed once at construction and never again:
//	the tree topology is immutable for the structure's lifetime, only
//	node values change. Two passes prepare four per-node attributes:
//
//	Pass 1 (sizing, post-order): subtree sizes, parent and depth, and
//	the heavy child — the child with the largest subtree — recorded in
//	an explicit heavy index so the caller's adjacency is never mutated.
//
//	Pass 2 (chaining, pre-order): preorder numbers from a counter
//	starting at 1, visiting the heavy child first so every heavy chain
//	occupies one contiguous preorder interval; chainHead[child] stays
//	chainHead[v] along heavy edges and restarts at the child otherwise.
//
//	A path operation walks chains: while the endpoints sit on different
//	chains, the endpoint whose chain head is deeper jumps to its chain
//	head's parent, emitting one backend range call per jumped segment;
//	one final call covers the shared-chain remainder. Any root-to-node
//	path crosses O(log n) chains, so a path costs O(log n) range calls.
type HLD[T, U any] struct {
	n      int
	parent []int // parent[1] == 1
	depth  []int // depth[1] == 0
	head   []int // shallowest node of the heavy chain containing v
	pos    []int // preorder number, bijection onto [1, n]
	ops    Ops[T, U]
	st     store[T, U]
}

// New decomposes the tree described by adj and attaches one backend core.
// adj is 1-indexed: len(adj) == n+1, adj[0] unused, node 1 is the root,
// and adj[v] lists the neighbors of v (parent links may be present or
// absent; both directions are tolerated).
//
// Returns ErrEmptyTree, ErrBadNeighbor, ErrDisconnected, ErrBadValues or
// ErrNilOperation on invalid input. Complexity: O(n).
func New[T, U any](adj [][]int, ops Ops[T, U], opts Options[T]) (*HLD[T, U], error) {
	if !ops.valid() {
		return nil, ErrNilOperation
	}
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
	if opts.Values != nil && len(opts.Values) != n+1 {
		return nil, ErrBadValues
	}

	h := &HLD[T, U]{
		n:      n,
		parent: make([]int, n+1),
		depth:  make([]int, n+1),
		head:   make([]int, n+1),
		pos:    make([]int, n+1),
		ops:    ops,
	}
	heavy, err := h.sizingPass(adj)
	if err != nil {
		return nil, err
	}
	h.chainingPass(adj, heavy)

	// Seed the backend in preorder: position pos[v] carries node v.
	seed := make([]biValue[T], n+1)
	seed[0] = biValue[T]{fwd: ops.Identity, rev: ops.Identity}
	for v := 1; v <= n; v++ {
		val := ops.Identity
		if opts.Values != nil {
			val = opts.Values[v]
		}
		seed[h.pos[v]] = biValue[T]{fwd: val, rev: val}
	}
	h.st, err = newStore(seed, ops, opts.Backend)
	if err != nil {
		return nil, err
	}

	return h, nil
}

// sizingPass computes parent, depth and the heavy child of every node.
// Iterative on an explicit stack: tree depth may reach n.
func (h *HLD[T, U]) sizingPass(adj [][]int) ([]int, error) {
	order := make([]int, 0, h.n)
	visited := make([]bool, h.n+1)
	h.parent[1] = 1
	visited[1] = true
	stack := []int{1}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		for _, w := range adj[v] {
			if visited[w] {
				continue
			}
			visited[w] = true
			h.parent[w] = v
			h.depth[w] = h.depth[v] + 1
			stack = append(stack, w)
		}
	}
	if len(order) != h.n {
		return nil, ErrDisconnected
	}

	// Children precede parents in reversed visit order, so one reverse
	// sweep finalizes each subtree size before its parent reads it.
	size := make([]int, h.n+1)
	heavy := make([]int, h.n+1) // 0 = no heavy child (leaf)
	for i := h.n - 1; i >= 0; i-- {
		v := order[i]
		size[v]++
		if v == 1 {
			continue
		}
		p := h.parent[v]
		size[p] += size[v]
		if heavy[p] == 0 || size[v] > size[heavy[p]] {
			heavy[p] = v
		}
	}

	return heavy, nil
}

// chainingPass assigns preorder numbers and chain heads, heavy child
// first so chains stay contiguous.
func (h *HLD[T, U]) chainingPass(adj [][]int, heavy []int) {
	counter := 1
	h.head[1] = 1
	stack := []int{1}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h.pos[v] = counter
		counter++
		// Light children go below the heavy child on the stack: the
		// heavy child is visited next, keeping its chain contiguous.
		for _, w := range adj[v] {
			if w == h.parent[v] || w == heavy[v] {
				continue
			}
			h.head[w] = w
			stack = append(stack, w)
		}
		if hc := heavy[v]; hc != 0 {
			h.head[hc] = h.head[v]
			stack = append(stack, hc)
		}
	}
}

// Len returns the number of tree nodes. Complexity: O(1).
func (h *HLD[T, U]) Len() int { return h.n }

// Depth returns the edge distance of v from the root. Complexity: O(1).
func (h *HLD[T, U]) Depth(v int) int { return h.depth[v] }

// Parent returns the parent of v; the root is its own parent.
// Complexity: O(1).
func (h *HLD[T, U]) Parent(v int) int { return h.parent[v] }

// ChainHead returns the shallowest node of the heavy chain containing v.
// Complexity: O(1).
func (h *HLD[T, U]) ChainHead(v int) int { return h.head[v] }

// Pos returns the preorder number of v, a bijection onto [1, n].
// Complexity: O(1).
func (h *HLD[T, U]) Pos(v int) int { return h.pos[v] }

// QueryNode returns the current value of one node.
// Precondition: 1 ≤ v ≤ Len(). Complexity: O(log n).
func (h *HLD[T, U]) QueryNode(v int) T { return h.st.get(h.pos[v]) }

// UpdateNode applies upd to one node.
// Precondition: 1 ≤ v ≤ Len(). Complexity: O(log n).
func (h *HLD[T, U]) UpdateNode(v int, upd U) {
	h.st.update(h.pos[v], h.pos[v], upd)
}

// QueryPath folds Combine over the values of the nodes on the u→v path,
// endpoints included, in exact u→v order.
// Precondition: 1 ≤ u, v ≤ Len(). Complexity: O(log² n).
func (h *HLD[T, U]) QueryPath(u, v int) T {
	// left grows forward from u, right grows backward from v; segments
	// hopped from u's side sit deeper→shallower in path order, hence the
	// reverse-direction reads.
	left, right := h.ops.Identity, h.ops.Identity
	for h.head[u] != h.head[v] {
		if h.depth[h.head[u]] >= h.depth[h.head[v]] {
			left = h.ops.Combine(left, h.st.queryRev(h.pos[h.head[u]], h.pos[u]))
			u = h.parent[h.head[u]]
		} else {
			right = h.ops.Combine(h.st.queryFwd(h.pos[h.head[v]], h.pos[v]), right)
			v = h.parent[h.head[v]]
		}
	}
	// Shared chain: one final interval between the two preorder numbers.
	var mid T
	if h.pos[u] <= h.pos[v] {
		mid = h.st.queryFwd(h.pos[u], h.pos[v])
	} else {
		mid = h.st.queryRev(h.pos[v], h.pos[u])
	}

	return h.ops.Combine(h.ops.Combine(left, mid), right)
}

// UpdatePath applies upd to every node on the u→v path, endpoints
// included. Each node is updated exactly once.
// Precondition: 1 ≤ u, v ≤ Len(). Complexity: O(log² n) with BackendLazy.
func (h *HLD[T, U]) UpdatePath(u, v int, upd U) {
	for h.head[u] != h.head[v] {
		if h.depth[h.head[u]] >= h.depth[h.head[v]] {
			h.st.update(h.pos[h.head[u]], h.pos[u], upd)
			u = h.parent[h.head[u]]
		} else {
			h.st.update(h.pos[h.head[v]], h.pos[v], upd)
			v = h.parent[h.head[v]]
		}
	}
	if h.pos[u] > h.pos[v] {
		u, v = v, u
	}
	h.st.update(h.pos[u], h.pos[v], upd)
}

// LCA returns the lowest common ancestor of u and v, a byproduct of the
// chain walk. Precondition: 1 ≤ u, v ≤ Len(). Complexity: O(log n).
func (h *HLD[T, U]) LCA(u, v int) int {
	for h.head[u] != h.head[v] {
		if h.depth[h.head[u]] >= h.depth[h.head[v]] {
			u = h.parent[h.head[u]]
		} else {
			v = h.parent[h.head[v]]
		}
	}
	if h.depth[u] <= h.depth[v] {
		return u
	}

	return v
}
