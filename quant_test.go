// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestQuantFusion checks that the fused apply-quantify operators agree with
// quantification applied after apply, for every supported operator.
func TestQuantFusion(t *testing.T) {
	bdd, err := New(6)
	require.NoError(t, err)
	defer bdd.Done()

	l := bdd.Or(bdd.And(bdd.Ithvar(0), bdd.Ithvar(2)), bdd.Ithvar(4))
	r := bdd.Xor(bdd.Ithvar(1), bdd.And(bdd.Ithvar(2), bdd.NIthvar(5)))
	sets := []Node{
		bdd.Makeset([]int{0}),
		bdd.Makeset([]int{0, 2}),
		bdd.Makeset([]int{1, 4, 5}),
		bdd.Makeset([]int{0, 1, 2, 3, 4, 5}),
	}
	for _, v := range sets {
		for _, op := range []Operator{OPand, OPxor, OPor, OPnand, OPnor} {
			require.True(t, bdd.Equal(
				bdd.AppEx(l, r, op, v),
				bdd.Exist(bdd.Apply(l, r, op), v)), "appex fusion for %s", op)
			require.True(t, bdd.Equal(
				bdd.AppAll(l, r, op, v),
				bdd.Forall(bdd.Apply(l, r, op), v)), "appall fusion for %s", op)
			require.True(t, bdd.Equal(
				bdd.AppUni(l, r, op, v),
				bdd.Unique(bdd.Apply(l, r, op), v)), "appuni fusion for %s", op)
		}
	}
	require.False(t, bdd.Errored())
}

// TestScenario2 is the relational product example: appex(x0 & x1, x2 | x3,
// and, {x0, x2}) reduces to x1.
func TestScenario2(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	l := bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))
	r := bdd.Or(bdd.Ithvar(2), bdd.Ithvar(3))
	v := bdd.Makeset([]int{0, 2})
	fused := bdd.AppEx(l, r, OPand, v)
	plain := bdd.Exist(bdd.And(l, r), v)
	require.True(t, bdd.Equal(fused, plain))
	require.True(t, bdd.Equal(fused, bdd.Ithvar(1)))
}

func TestQuantBasics(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	f := bdd.Or(bdd.And(bdd.Ithvar(0), bdd.Ithvar(1)), bdd.And(bdd.Ithvar(2), bdd.Ithvar(3)))

	// quantifying over the empty set is the identity
	require.True(t, bdd.Equal(bdd.Exist(f, bdd.True()), f))
	require.True(t, bdd.Equal(bdd.Forall(f, bdd.True()), f))
	require.True(t, bdd.Equal(bdd.Unique(f, bdd.True()), f))

	// duality of the quantifiers
	for _, set := range [][]int{{0}, {1, 2}, {0, 1, 2, 3}} {
		v := bdd.Makeset(set)
		require.True(t, bdd.Equal(
			bdd.Forall(f, v),
			bdd.Not(bdd.Exist(bdd.Not(f), v))), "forall dual for %v", set)
	}

	// existential quantification of x0 in (x0 & x1) gives x1
	require.True(t, bdd.Equal(
		bdd.Exist(bdd.And(bdd.Ithvar(0), bdd.Ithvar(1)), bdd.Makeset([]int{0})),
		bdd.Ithvar(1)))
	// universal quantification of x0 in (x0 | x1) gives x1
	require.True(t, bdd.Equal(
		bdd.Forall(bdd.Or(bdd.Ithvar(0), bdd.Ithvar(1)), bdd.Makeset([]int{0})),
		bdd.Ithvar(1)))
	// unique quantification of x0 in x0 gives 1, and in x1 gives 0
	require.True(t, bdd.Equal(
		bdd.Unique(bdd.Ithvar(0), bdd.Makeset([]int{0})),
		bdd.True()))
	require.True(t, bdd.Equal(
		bdd.Unique(bdd.Ithvar(1), bdd.Makeset([]int{0})),
		bdd.False()))
}

// TestRelprod exercises the specialized relational-product kernel against the
// unfused computation on a small transition system.
func TestRelprod(t *testing.T) {
	bdd, err := New(8, Nodesize(200), Cachesize(64), Cacheratio(25))
	require.NoError(t, err)
	defer bdd.Done()

	// states over x0..x3, primed copies x4..x7; the relation steps a two-bit
	// Gray-code counter encoded in x0,x1 (00 -> 10 -> 11 -> 01 -> 00)
	x := func(i int) Node { return bdd.Ithvar(i) }
	nx := func(i int) Node { return bdd.NIthvar(i) }
	rel := bdd.Or(
		bdd.And(nx(0), nx(1), x(4), nx(5)),
		bdd.And(x(0), nx(1), x(4), x(5)),
		bdd.And(x(0), x(1), nx(4), x(5)),
		bdd.And(nx(0), x(1), nx(4), nx(5)))
	cur := bdd.Makeset([]int{0, 1, 2, 3})

	init := bdd.And(nx(0), nx(1))
	next := bdd.AppEx(init, rel, OPand, cur)
	plain := bdd.Exist(bdd.And(init, rel), cur)
	require.True(t, bdd.Equal(next, plain))
	require.True(t, bdd.Equal(next, bdd.And(x(4), nx(5))))
	require.False(t, bdd.Errored())
}
