package hld

import (
	"github.com/katalvlaran/rangekit/lazytree"
	"github.com/katalvlaran/rangekit/segtree"
)

// biValue stores one aggregate in both operand orders: fwd folds the
// covered positions in ascending preorder, rev in descending preorder.
// For commutative Combine the two components stay equal; the overlay
// pays the duplication to keep QueryPath order-exact in the general case.
type biValue[T any] struct {
	fwd T
	rev T
}

// store is the overlay's private view of its one backend core: inclusive
// preorder intervals, both fold directions, one bulk update.
type store[T, U any] interface {
	// queryFwd folds positions l..r in ascending order.
	queryFwd(l, r int) T
	// queryRev folds positions l..r in descending order.
	queryRev(l, r int) T
	// update applies u to every position of l..r.
	update(l, r int, u U)
	// get returns the value at one position.
	get(pos int) T
}

// newStore builds the backend selected by kind over the preorder-indexed
// seed values (values[0] is the unused slot before preorder 1).
func newStore[T, U any](values []biValue[T], ops Ops[T, U], kind Backend) (store[T, U], error) {
	if kind == BackendStatic {
		tr, err := segtree.From(values, segtree.Ops[biValue[T], U]{
			Combine: pairCombine(ops),
			Apply: func(v biValue[T], u U) biValue[T] {
				return biValue[T]{fwd: ops.Apply(v.fwd, u, 1), rev: ops.Apply(v.rev, u, 1)}
			},
			Identity: biValue[T]{fwd: ops.Identity, rev: ops.Identity},
		})
		if err != nil {
			return nil, err
		}

		return &staticStore[T, U]{tree: tr}, nil
	}

	tr, err := lazytree.From(values, lazytree.Ops[biValue[T], U]{
		Combine: pairCombine(ops),
		Apply: func(v biValue[T], u U, span int) biValue[T] {
			return biValue[T]{fwd: ops.Apply(v.fwd, u, span), rev: ops.Apply(v.rev, u, span)}
		},
		Compose:  ops.Compose,
		Identity: biValue[T]{fwd: ops.Identity, rev: ops.Identity},
	})
	if err != nil {
		return nil, err
	}

	return &lazyStore[T, U]{tree: tr}, nil
}

// pairCombine lifts the caller's Combine onto value pairs. The reverse
// component combines with swapped operands, which is what makes the rev
// fold a true mirror of the fwd fold.
func pairCombine[T, U any](ops Ops[T, U]) func(a, b biValue[T]) biValue[T] {
	return func(a, b biValue[T]) biValue[T] {
		return biValue[T]{
			fwd: ops.Combine(a.fwd, b.fwd),
			rev: ops.Combine(b.rev, a.rev),
		}
	}
}

// lazyStore backs the overlay with a lazytree core: O(log n) bulk updates.
type lazyStore[T, U any] struct {
	tree *lazytree.Tree[biValue[T], U]
}

func (s *lazyStore[T, U]) queryFwd(l, r int) T  { return s.tree.Query(l, r+1).fwd }
func (s *lazyStore[T, U]) queryRev(l, r int) T  { return s.tree.Query(l, r+1).rev }
func (s *lazyStore[T, U]) update(l, r int, u U) { s.tree.Update(l, r+1, u) }
func (s *lazyStore[T, U]) get(pos int) T        { return s.tree.Get(pos).fwd }

// staticStore backs the overlay with a segtree core: bulk updates fall
// back to one point update per position.
type staticStore[T, U any] struct {
	tree *segtree.Tree[biValue[T], U]
}

func (s *staticStore[T, U]) queryFwd(l, r int) T { return s.tree.Query(l, r+1).fwd }
func (s *staticStore[T, U]) queryRev(l, r int) T { return s.tree.Query(l, r+1).rev }

func (s *staticStore[T, U]) update(l, r int, u U) {
	for p := l; p <= r; p++ {
		s.tree.Update(p, u)
	}
}

func (s *staticStore[T, U]) get(pos int) T { return s.tree.Get(pos).fwd }
