// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMin3(t *testing.T) {
	var minusTests = []struct {
		p, q, r  int32
		expected int32
	}{
		{3, 2, 3, 2},
		{4, 4, 4, 4},
		{2, 3, 3, 2},
		{3, 2, 2, 2},
		{3, 3, 2, 2},
		{1, 2, 3, 1},
	}
	for _, tt := range minusTests {
		actual := min3(tt.p, tt.q, tt.r)
		if actual != tt.expected {
			t.Errorf("min3(%d, %d, %d): expected %d, actual %d", tt.p, tt.q, tt.r, tt.expected, actual)
		}
	}
}

func TestIte(t *testing.T) {
	bdd, err := New(4, Nodesize(5000), Cachesize(1000))
	require.NoError(t, err)
	defer bdd.Done()
	n1 := bdd.Makeset([]int{0, 2, 3})
	n2 := bdd.Makeset([]int{0, 3})
	actual := bdd.Equiv(bdd.Ite(n1, n2, bdd.Not(n2)), bdd.Or(bdd.And(n1, n2), bdd.And(bdd.Not(n1), bdd.Not(n2))))
	require.True(t, bdd.Equal(actual, bdd.True()), "ite(f,g,h) <=> (f and g) or (-f and h)")
	require.True(t, bdd.Equal(bdd.Ite(n1, bdd.True(), bdd.False()), n1), "ite(f,1,0) = f")
	require.True(t, bdd.Equal(bdd.Ite(n1, bdd.False(), bdd.True()), bdd.Not(n1)), "ite(f,0,1) = !f")
	require.True(t, bdd.Equal(bdd.Ite(n1, n2, n2), n2), "ite(f,g,g) = g")
}

// TestOperations implements the same tests as the bddtest program in the
// BuDDy distribution. It uses function Allsat for checking that all
// assignments are detected.
func TestOperations(t *testing.T) {
	bdd, err := New(4, Nodesize(1000), Cachesize(1000))
	require.NoError(t, err)
	defer bdd.Done()
	varnum := 4

	testCheck := func(x Node) error {
		allsatBDD := x
		allsatSumBDD := bdd.False()
		// Calculate the whole set of assignments and remove each assignment
		// from the original set
		bdd.Allsat(func(varset []int) error {
			x := bdd.True()
			for k, v := range varset {
				switch v {
				case 0:
					x = bdd.And(x, bdd.NIthvar(k))
				case 1:
					x = bdd.And(x, bdd.Ithvar(k))
				}
			}
			// Sum up all assignments
			allsatSumBDD = bdd.Or(allsatSumBDD, x)
			// Remove assignment from initial set
			allsatBDD = bdd.Apply(allsatBDD, x, OPdiff)
			return nil
		}, x)

		// Now the summed set should be equal to the original set and the
		// subtracted set should be empty
		if !bdd.Equal(allsatSumBDD, x) {
			return fmt.Errorf("Allsat sum is not the initial BDD")
		}
		if !bdd.Equal(allsatBDD, bdd.False()) {
			return fmt.Errorf("Allsat remainder is not False")
		}
		return nil
	}

	a := bdd.Ithvar(0)
	b := bdd.Ithvar(1)
	c := bdd.Ithvar(2)
	d := bdd.Ithvar(3)
	na := bdd.NIthvar(0)
	nb := bdd.NIthvar(1)
	nc := bdd.NIthvar(2)
	nd := bdd.NIthvar(3)

	require.NoError(t, testCheck(bdd.True()))
	require.NoError(t, testCheck(bdd.False()))

	// a & b | !a & !b
	require.NoError(t, testCheck(bdd.Or(bdd.And(a, b), bdd.And(na, nb))))

	// a & b | c & d
	require.NoError(t, testCheck(bdd.Or(bdd.And(a, b), bdd.And(c, d))))

	// a & !b | a & !d | a & b & !c
	require.NoError(t, testCheck(bdd.Or(bdd.And(a, nb), bdd.And(a, nd), bdd.And(a, b, nc))))

	for i := 0; i < varnum; i++ {
		require.NoError(t, testCheck(bdd.Ithvar(i)))
		require.NoError(t, testCheck(bdd.NIthvar(i)))
	}

	set := bdd.True()
	for i := 0; i < 50; i++ {
		v := rand.Intn(varnum)
		if rand.Intn(2) == 0 {
			set = bdd.And(set, bdd.Ithvar(v))
		} else {
			set = bdd.And(set, bdd.NIthvar(v))
		}
		require.NoError(t, testCheck(set))
	}
}

// TestApplyLaws checks the usual algebraic identities on a small pool of
// functions.
func TestApplyLaws(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	a := bdd.Ithvar(0)
	b := bdd.Ithvar(1)
	pool := []Node{
		bdd.False(),
		bdd.True(),
		a,
		bdd.Not(b),
		bdd.Or(a, b),
		bdd.And(bdd.Ithvar(2), bdd.Not(bdd.Ithvar(3))),
		bdd.Xor(a, bdd.Ithvar(2)),
	}

	for _, x := range pool {
		require.True(t, bdd.Equal(bdd.Not(bdd.Not(x)), x), "double negation")
		require.True(t, bdd.Equal(bdd.And(x, bdd.Not(x)), bdd.False()), "x & !x = 0")
		require.True(t, bdd.Equal(bdd.Or(x, bdd.Not(x)), bdd.True()), "x | !x = 1")
		for _, y := range pool {
			require.True(t, bdd.Equal(bdd.And(x, y), bdd.And(y, x)), "and commutes")
			require.True(t, bdd.Equal(bdd.Or(x, y), bdd.Or(y, x)), "or commutes")
			require.True(t, bdd.Equal(bdd.Xor(x, y), bdd.Xor(y, x)), "xor commutes")
			require.True(t, bdd.Equal(bdd.Equiv(x, y), bdd.Equiv(y, x)), "biimp commutes")
			require.True(t, bdd.Equal(
				bdd.Not(bdd.And(x, y)),
				bdd.Or(bdd.Not(x), bdd.Not(y))), "De Morgan")
			require.True(t, bdd.Equal(
				bdd.Ite(x, y, bdd.False()),
				bdd.And(x, y)), "ite(x,y,0) = x & y")
			for _, z := range pool {
				require.True(t, bdd.Equal(bdd.And(bdd.And(x, y), z), bdd.And(x, bdd.And(y, z))), "and associates")
				require.True(t, bdd.Equal(bdd.Or(bdd.Or(x, y), z), bdd.Or(x, bdd.Or(y, z))), "or associates")
				require.True(t, bdd.Equal(bdd.Xor(bdd.Xor(x, y), z), bdd.Xor(x, bdd.Xor(y, z))), "xor associates")
				require.True(t, bdd.Equal(
					bdd.Ite(x, y, z),
					bdd.Or(bdd.And(x, y), bdd.And(bdd.Not(x), z))), "ite through apply")
			}
		}
	}
	require.False(t, bdd.Errored())
}

// TestScenario1 builds (x0 & x1) | (!x0 & x2) over three variables and checks
// its counts, support and ite form.
func TestScenario1(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	defer bdd.Done()

	f := bdd.Or(
		bdd.And(bdd.Ithvar(0), bdd.Ithvar(1)),
		bdd.And(bdd.NIthvar(0), bdd.Ithvar(2)))
	require.InDelta(t, 4, bdd.Satcount(f), 0)
	require.Equal(t, 3, bdd.NodeCount(f))
	require.True(t, bdd.Equal(bdd.Support(f), bdd.Makeset([]int{0, 1, 2})))
	require.True(t, bdd.Equal(f, bdd.Ite(bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2))))
	require.Equal(t, []int{1, 1, 1}, bdd.Varprofile(f))
	require.False(t, bdd.Errored())
}

func TestBuildcube(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	// x0 & !x2 & x3
	cube := bdd.Buildcube(0b101, []int{0, 2, 3})
	expected := bdd.And(bdd.Ithvar(0), bdd.NIthvar(2), bdd.Ithvar(3))
	require.True(t, bdd.Equal(cube, expected))
	require.Equal(t, []int{0, 2, 3}, bdd.Scanset(bdd.Support(cube)))
}

func TestApplyBadOperator(t *testing.T) {
	bdd, err := New(2)
	require.NoError(t, err)
	defer bdd.Done()

	res := bdd.Apply(bdd.Ithvar(0), bdd.Ithvar(1), Operator(42))
	require.Nil(t, res)
	require.True(t, bdd.Errored())
	require.Equal(t, ErrOperator, bdd.ErrCode())
	bdd.ClearError()
	require.False(t, bdd.Errored())
	require.True(t, bdd.Equal(bdd.And(bdd.Ithvar(0), bdd.Ithvar(0)), bdd.Ithvar(0)))
}
