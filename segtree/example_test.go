package segtree_test

import (
	"fmt"

	"github.com/katalvlaran/rangekit/segtree"
)

// ExampleFrom demonstrates point updates and range sums.
func ExampleFrom() {
	tr, _ := segtree.From([]int{1, 2, 3, 4}, segtree.Ops[int, int]{
		Combine: func(a, b int) int { return a + b },
		Apply:   func(v, u int) int { return v + u },
	})

	fmt.Println(tr.Query(0, 4))
	tr.Update(1, 5) // position 1: 2 → 7
	fmt.Println(tr.Query(0, 2))
	fmt.Println(tr.Query(1, 4))
	// Output:
	// 10
	// 8
	// 14
}

// ExampleTree_Query shows a non-commutative aggregation: the fold keeps
// left-to-right order, so substrings come out intact.
func ExampleTree_Query() {
	tr, _ := segtree.From([]string{"r", "a", "n", "g", "e"}, segtree.Ops[string, string]{
		Combine: func(a, b string) string { return a + b },
		Apply:   func(_, u string) string { return u },
	})

	fmt.Println(tr.Query(0, 5))
	fmt.Println(tr.Query(1, 4))
	// Output:
	// range
	// ang
}
