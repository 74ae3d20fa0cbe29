// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSatone(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	fs := []Node{
		bdd.Ithvar(0),
		bdd.Or(bdd.And(bdd.Ithvar(0), bdd.Ithvar(1)), bdd.And(bdd.NIthvar(2), bdd.Ithvar(3))),
		bdd.Xor(bdd.Ithvar(1), bdd.Ithvar(3)),
	}
	for _, f := range fs {
		s := bdd.Satone(f)
		require.False(t, bdd.Equal(s, bdd.False()))
		require.True(t, bdd.Equal(bdd.Imp(s, f), bdd.True()), "satone must imply the function")
	}
	require.True(t, bdd.Equal(bdd.Satone(bdd.False()), bdd.False()))
	require.True(t, bdd.Equal(bdd.Satone(bdd.True()), bdd.True()))
}

func TestFullsatone(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	fs := []Node{
		bdd.Ithvar(2),
		bdd.Or(bdd.Ithvar(0), bdd.Ithvar(3)),
		bdd.Xor(bdd.Ithvar(1), bdd.Ithvar(2)),
	}
	for _, f := range fs {
		s := bdd.Fullsatone(f)
		require.True(t, bdd.Equal(bdd.Imp(s, f), bdd.True()))
		// every variable is mentioned, so there is exactly one assignment
		require.InDelta(t, 1, bdd.Satcount(s), 0)
		require.InDelta(t, 1, bdd.Pathcount(s), 0)
	}
}

func TestSatoneset(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	f := bdd.Or(bdd.Ithvar(1), bdd.Ithvar(2))
	v := bdd.Makeset([]int{0, 3})
	for _, pol := range []Node{bdd.False(), bdd.True()} {
		s := bdd.Satoneset(f, v, pol)
		require.True(t, bdd.Equal(bdd.Imp(s, f), bdd.True()))
		// the mentioned variables must include the requested set
		sup := bdd.Scanset(bdd.Support(s))
		require.Subset(t, sup, []int{0, 3})
	}
	// undetermined variables take the requested polarity
	s := bdd.Satoneset(f, v, bdd.True())
	require.True(t, bdd.Equal(bdd.Imp(s, bdd.And(bdd.Ithvar(0), bdd.Ithvar(3))), bdd.True()))
}

func TestSatcountLaws(t *testing.T) {
	bdd, err := New(5)
	require.NoError(t, err)
	defer bdd.Done()

	a := bdd.Or(bdd.And(bdd.Ithvar(0), bdd.Ithvar(2)), bdd.Ithvar(4))
	b := bdd.Xor(bdd.Ithvar(1), bdd.Ithvar(2))

	require.InDelta(t,
		bdd.Satcount(a)+bdd.Satcount(b),
		bdd.Satcount(bdd.Or(a, b))+bdd.Satcount(bdd.And(a, b)), 1e-9,
		"inclusion-exclusion")

	for _, f := range []Node{a, b, bdd.Ithvar(3), bdd.True()} {
		require.InDelta(t, math.Log2(bdd.Satcount(f)), bdd.Satcountln(f), 1e-9,
			"satcountln is the log2 of satcount")
	}
	require.InDelta(t, 0, bdd.Satcount(bdd.False()), 0)
	require.InDelta(t, 32, bdd.Satcount(bdd.True()), 0)
	require.Negative(t, bdd.Satcountln(bdd.False()))
}

func TestSatcountSet(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	// x0 & x1 over the set {x0, x1} has exactly one assignment
	f := bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))
	v := bdd.Makeset([]int{0, 1})
	require.InDelta(t, 1, bdd.Satcountset(f, v), 0)
	require.InDelta(t, 0, bdd.Satcountlnset(f, v), 1e-9)

	// x0 over {x0, x1} leaves x1 free
	require.InDelta(t, 2, bdd.Satcountset(bdd.Ithvar(0), v), 0)
	require.InDelta(t, 1, bdd.Satcountlnset(bdd.Ithvar(0), v), 1e-9)
}

func TestPathcount(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	require.InDelta(t, 0, bdd.Pathcount(bdd.False()), 0)
	require.InDelta(t, 1, bdd.Pathcount(bdd.True()), 0)
	require.InDelta(t, 1, bdd.Pathcount(bdd.Makeset([]int{0, 1, 2})), 0)
	// x0 | x1 has two paths to the one terminal
	require.InDelta(t, 2, bdd.Pathcount(bdd.Or(bdd.Ithvar(0), bdd.Ithvar(1))), 0)
}

// TestScenario6 computes the parity of ten inputs and checks the counts from
// the classic example: half of the 2^10 assignments satisfy it, with two
// nodes per level except at the root.
func TestScenario6(t *testing.T) {
	bdd, err := New(10, Nodesize(10000), Cacheratio(25))
	require.NoError(t, err)
	defer bdd.Done()

	parity := bdd.False()
	for i := 0; i < 10; i++ {
		parity = bdd.Xor(parity, bdd.Ithvar(i))
	}
	require.False(t, bdd.Errored())
	require.InDelta(t, 512, bdd.Satcount(parity), 0)
	require.InDelta(t, 9, bdd.Satcountln(parity), 1e-9)
	require.Equal(t, 19, bdd.NodeCount(parity))
	profile := bdd.Varprofile(parity)
	require.Equal(t, 1, profile[0])
	for i := 1; i < 10; i++ {
		require.Equal(t, 2, profile[i])
	}
}

func TestSupport(t *testing.T) {
	bdd, err := New(5)
	require.NoError(t, err)
	defer bdd.Done()

	f := bdd.Or(bdd.And(bdd.Ithvar(1), bdd.Ithvar(3)), bdd.Ithvar(4))
	require.Equal(t, []int{1, 3, 4}, bdd.Scanset(bdd.Support(f)))
	require.True(t, bdd.Equal(bdd.Support(bdd.True()), bdd.True()))
	require.True(t, bdd.Equal(bdd.Support(bdd.False()), bdd.True()))

	// repeated calls keep working while the change counter advances
	for i := 0; i < 10; i++ {
		require.Equal(t, []int{1, 3, 4}, bdd.Scanset(bdd.Support(f)))
	}
}

func TestNodeCount(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	require.Equal(t, 0, bdd.NodeCount(bdd.True()))
	require.Equal(t, 1, bdd.NodeCount(bdd.Ithvar(2)))
	f := bdd.Or(bdd.Ithvar(0), bdd.Ithvar(1))
	g := bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))
	// both share the x1 literal, so the shared count is smaller than the sum
	require.Equal(t, 2, bdd.NodeCount(f))
	require.Equal(t, 2, bdd.NodeCount(g))
	require.Equal(t, 3, bdd.AnodeCount(f, g))
	require.Equal(t, 2, bdd.AnodeCount(f, f))
}

func TestAllnodes(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	defer bdd.Done()

	f := bdd.Or(bdd.Ithvar(0), bdd.Ithvar(1))
	count := 0
	err = bdd.Allnodes(func(id, level, low, high int) error {
		count++
		return nil
	}, f)
	require.NoError(t, err)
	// both constants plus the two nodes of f
	require.Equal(t, 4, count)
}
