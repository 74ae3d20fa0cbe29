// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestrict(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	defer bdd.Done()

	f := bdd.Or(bdd.And(bdd.Ithvar(0), bdd.Ithvar(1)), bdd.Ithvar(2))

	// restricting with the empty set is the identity
	require.True(t, bdd.Equal(bdd.Restrict(f, bdd.True()), f))

	// x0 <- true
	require.True(t, bdd.Equal(
		bdd.Restrict(f, bdd.Ithvar(0)),
		bdd.Or(bdd.Ithvar(1), bdd.Ithvar(2))))

	// x0 <- false (a negative literal in the set)
	require.True(t, bdd.Equal(
		bdd.Restrict(f, bdd.NIthvar(0)),
		bdd.Ithvar(2)))

	// mixed polarities: x0 <- true, x2 <- false
	set := bdd.And(bdd.Ithvar(0), bdd.NIthvar(2))
	require.True(t, bdd.Equal(bdd.Restrict(f, set), bdd.Ithvar(1)))
	require.False(t, bdd.Errored())
}

// TestConstrain checks the defining law of the generalized cofactor:
// constrain(f, c) & c == f & c.
func TestConstrain(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	fs := []Node{
		bdd.Or(bdd.And(bdd.Ithvar(0), bdd.Ithvar(1)), bdd.Ithvar(3)),
		bdd.Xor(bdd.Ithvar(1), bdd.Ithvar(2)),
		bdd.Ithvar(2),
	}
	cs := []Node{
		bdd.Ithvar(0),
		bdd.And(bdd.Ithvar(0), bdd.NIthvar(2)),
		bdd.Or(bdd.Ithvar(1), bdd.Ithvar(3)),
	}
	for _, f := range fs {
		for _, c := range cs {
			require.True(t, bdd.Equal(
				bdd.And(bdd.Constrain(f, c), c),
				bdd.And(f, c)))
		}
		require.True(t, bdd.Equal(bdd.Constrain(f, bdd.True()), f))
		require.True(t, bdd.Equal(bdd.Constrain(f, f), bdd.True()))
	}
	require.False(t, bdd.Errored())
}

// TestSimplify checks that simplification preserves the function on the
// care set: simplify(f, d) & d == f & d.
func TestSimplify(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	f := bdd.And(bdd.Or(bdd.Ithvar(0), bdd.Ithvar(1)), bdd.Xor(bdd.Ithvar(2), bdd.Ithvar(3)))
	ds := []Node{
		bdd.Ithvar(0),
		bdd.Or(bdd.Ithvar(1), bdd.Ithvar(2)),
		bdd.And(bdd.NIthvar(0), bdd.Ithvar(3)),
	}
	for _, d := range ds {
		s := bdd.Simplify(f, d)
		require.True(t, bdd.Equal(bdd.And(s, d), bdd.And(f, d)))
	}
	require.True(t, bdd.Equal(bdd.Simplify(f, bdd.True()), f))
	require.True(t, bdd.Equal(bdd.Simplify(f, f), bdd.True()))
	require.False(t, bdd.Errored())
}
