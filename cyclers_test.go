// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// cyclers is an example of using BDDs for state space computation, directly
// adapted from the examples in the BuDDy distribution (Milner's scheduler).
// It computes the reachable states of a system composed of n cyclers, for
// which the size of the state space has an analytical formula: n * 2^(4n+1).
// Run with a small initial table, it stress tests garbage collection,
// resizing, Replace and the relational product.
func cyclers(t *testing.T, fast bool, n int, options ...func(*configs)) float64 {
	bdd, err := New(n*6, options...)
	require.NoError(t, err)
	defer bdd.Done()
	c := make([]Node, n)
	cp := make([]Node, n)
	tv := make([]Node, n)
	tp := make([]Node, n)
	h := make([]Node, n)
	hp := make([]Node, n)

	for i := 0; i < n; i++ {
		c[i] = bdd.Ithvar(i * 6)
		cp[i] = bdd.Ithvar(i*6 + 1)
		tv[i] = bdd.Ithvar(i*6 + 2)
		tp[i] = bdd.Ithvar(i*6 + 3)
		h[i] = bdd.Ithvar(i*6 + 4)
		hp[i] = bdd.Ithvar(i*6 + 5)
	}

	nvar := make([]int, n*3)
	pvar := make([]int, n*3)
	for i := 0; i < n*3; i++ {
		nvar[i] = i * 2   // normal variables
		pvar[i] = i*2 + 1 // primed variables
	}
	replacer, err := bdd.NewReplacer(pvar, nvar)
	require.NoError(t, err)

	// the initial state of the cyclers
	initial := bdd.AddRef(bdd.And(c[0], bdd.Not(h[0]), bdd.Not(tv[0])))
	for i := 1; i < n; i++ {
		initial = bdd.AddRef(bdd.And(initial, bdd.Not(c[i]), bdd.Not(h[i]), bdd.Not(tv[i])))
	}

	// all builds a BDD expressing that every variable except the z'th one is
	// unchanged
	all := func(x, y []Node, z int) Node {
		res := bdd.True()
		for i := 0; i < n; i++ {
			if i != z {
				res = bdd.And(res, bdd.Equiv(x[i], y[i]))
			}
		}
		return res
	}

	// the monolithic transition relation
	trans := bdd.False()
	for i := 0; i < n; i++ {
		p1 := bdd.And(c[i], bdd.Not(cp[i]), tp[i], bdd.Not(tv[i]), hp[i], all(c, cp, i), all(tv, tp, i), all(h, hp, i))
		p2 := bdd.And(h[i], bdd.Not(hp[i]), cp[(i+1)%n], all(c, cp, (i+1)%n), all(h, hp, i), all(tv, tp, n))
		e := bdd.And(tv[i], bdd.Not(tp[i]), all(tv, tp, i), all(h, hp, n), all(c, cp, n))
		trans = bdd.AddRef(bdd.Or(trans, p1, bdd.Or(p2, e)))
	}

	// the reachable state space, as a fixed point
	reach := initial
	normvar := bdd.AddRef(bdd.Makeset(nvar))
	for {
		prev := reach
		if fast {
			reach = bdd.AddRef(bdd.Or(bdd.Replace(bdd.AndExist(normvar, reach, trans), replacer), reach))
		} else {
			reach = bdd.AddRef(bdd.Or(bdd.Replace(bdd.Exist(bdd.And(reach, trans), normvar), replacer), reach))
		}
		if bdd.Equal(prev, reach) {
			break
		}
	}
	require.False(t, bdd.Errored(), "error during the fixed point: %s", bdd.Error())
	return bdd.Satcount(reach)
}

func TestCyclers(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		// we choose a small size to stress test garbage collection
		expected := float64(n) * float64(int64(1)<<(4*n+1))
		fastres := cyclers(t, true, n, Nodesize(100), Cachesize(25), Cacheratio(25))
		require.InDelta(t, expected, fastres, 0, "cyclers(%d) with the fused product", n)
		slowres := cyclers(t, false, n, Nodesize(100), Cachesize(25), Cacheratio(25))
		require.InDelta(t, expected, slowres, 0, "cyclers(%d) with the plain product", n)
	}
}

func TestCyclersLarger(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping the larger state space in short mode")
	}
	for _, n := range []int{8, 12} {
		expected := float64(n) * float64(int64(1)<<(4*n+1))
		require.InDelta(t, expected, cyclers(t, true, n, Nodesize(10000), Cachesize(2500), Cacheratio(25)), 0)
	}
}

func BenchmarkNQueens(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bdd, _ := New(8*8, Nodesize(8*8*256), Cachesize(8*8*64), Cacheratio(30))
		queen := bdd.True()
		for r := 0; r < 8; r++ {
			e := bdd.False()
			for j := 0; j < 8; j++ {
				e = bdd.Or(e, bdd.Ithvar(r*8+j))
			}
			queen = bdd.And(queen, e)
		}
		bdd.Satcount(queen)
		bdd.Done()
	}
}
