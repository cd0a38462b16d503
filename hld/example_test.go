package hld_test

import (
	"fmt"

	"github.com/katalvlaran/rangekit/hld"
)

// ExampleNew decomposes the chain 1–2–3–4–5 and treats every path as one
// contiguous range: a bulk add along 1→5, then aggregates over subpaths.
func ExampleNew() {
	adj := [][]int{nil, {2}, {1, 3}, {2, 4}, {3, 5}, {4}}
	h, _ := hld.New(adj, hld.Ops[int64, int64]{
		Combine: func(a, b int64) int64 { return a + b },
		Apply:   func(v, u int64, span int) int64 { return v + u*int64(span) },
		Compose: func(prev, next int64) int64 { return prev + next },
	}, hld.DefaultOptions[int64]())

	h.UpdatePath(1, 5, 3)
	fmt.Println(h.QueryPath(2, 4))
	h.UpdatePath(3, 3, 10)
	fmt.Println(h.QueryPath(1, 5))
	fmt.Println(h.LCA(2, 5))
	// Output:
	// 9
	// 25
	// 2
}
