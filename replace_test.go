// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenario3 renames {x0, x1} to {x2, x3} in (x0 | x1).
func TestScenario3(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	p, err := bdd.NewReplacer([]int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	defer p.Free()

	f := bdd.Or(bdd.Ithvar(0), bdd.Ithvar(1))
	g := bdd.Replace(f, p)
	require.True(t, bdd.Equal(g, bdd.Or(bdd.Ithvar(2), bdd.Ithvar(3))))
	require.Equal(t, 2, bdd.NodeCount(g))
	require.False(t, bdd.Errored())
}

func TestReplaceIdentity(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	defer bdd.Done()

	p, err := bdd.NewPair()
	require.NoError(t, err)
	defer p.Free()

	f := bdd.Xor(bdd.Ithvar(0), bdd.Ithvar(2))
	require.True(t, bdd.Equal(bdd.Replace(f, p), f), "identity pair is a no-op")

	require.NoError(t, p.Set(0, 1))
	p.Reset()
	require.True(t, bdd.Equal(bdd.Replace(f, p), f), "reset pair is a no-op")
}

func TestReplaceSingle(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	p, err := bdd.NewPair()
	require.NoError(t, err)
	defer p.Free()
	require.NoError(t, p.Set(0, 3))
	require.True(t, bdd.Equal(bdd.Replace(bdd.Ithvar(0), p), bdd.Ithvar(3)),
		"replace(ithvar(v), {v -> w}) = ithvar(w)")
}

// TestReplaceOutOfOrder checks that a substitution capturing a variable of
// the operand is rejected.
func TestReplaceOutOfOrder(t *testing.T) {
	bdd, err := New(2)
	require.NoError(t, err)
	defer bdd.Done()

	p, err := bdd.NewReplacer([]int{1}, []int{0})
	require.NoError(t, err)
	f := bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))
	res := bdd.Replace(f, p)
	require.Nil(t, res)
	require.True(t, bdd.Errored())
	require.Equal(t, ErrReplace, bdd.ErrCode())
}

func TestCompose(t *testing.T) {
	bdd, err := New(5)
	require.NoError(t, err)
	defer bdd.Done()

	g := bdd.Or(bdd.And(bdd.Ithvar(2), bdd.Ithvar(3)), bdd.NIthvar(4))
	require.True(t, bdd.Equal(bdd.Compose(bdd.Ithvar(1), g, 1), g),
		"compose(ithvar(v), g, v) = g")

	// compose against the ite definition: f[g/v] = ite(g, f|v=1, f|v=0)
	f := bdd.Ite(bdd.Ithvar(1), bdd.Ithvar(0), bdd.Xor(bdd.Ithvar(3), bdd.Ithvar(4)))
	expected := bdd.Ite(g,
		bdd.Restrict(f, bdd.Ithvar(1)),
		bdd.Restrict(f, bdd.NIthvar(1)))
	require.True(t, bdd.Equal(bdd.Compose(f, g, 1), expected))
	require.False(t, bdd.Errored())
}

func TestVeccompose(t *testing.T) {
	bdd, err := New(5)
	require.NoError(t, err)
	defer bdd.Done()

	// simultaneous substitution is not repeated substitution:
	// (x1 | x2)[x3/x1, x4/x3] = x3 | x2
	p, err := bdd.NewPair()
	require.NoError(t, err)
	defer p.Free()
	require.NoError(t, p.SetBdd(1, bdd.Ithvar(3)))
	require.NoError(t, p.SetBdd(3, bdd.Ithvar(4)))

	f := bdd.Or(bdd.Ithvar(1), bdd.Ithvar(2))
	require.True(t, bdd.Equal(bdd.Veccompose(f, p), bdd.Or(bdd.Ithvar(3), bdd.Ithvar(2))))

	// a function image depending on the substituted variable
	q, err := bdd.NewPair()
	require.NoError(t, err)
	defer q.Free()
	require.NoError(t, q.SetBdd(0, bdd.And(bdd.Ithvar(0), bdd.Ithvar(2))))
	require.True(t, bdd.Equal(
		bdd.Veccompose(bdd.Ithvar(0), q),
		bdd.And(bdd.Ithvar(0), bdd.Ithvar(2))))

	// a single-entry pair agrees with Compose
	r, err := bdd.NewPair()
	require.NoError(t, err)
	defer r.Free()
	g := bdd.Xor(bdd.Ithvar(3), bdd.Ithvar(4))
	require.NoError(t, r.SetBdd(1, g))
	h := bdd.Ite(bdd.Ithvar(1), bdd.Ithvar(2), bdd.NIthvar(4))
	require.True(t, bdd.Equal(bdd.Veccompose(h, r), bdd.Compose(h, g, 1)))
	require.False(t, bdd.Errored())
}

func TestNewReplacerValidation(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	defer bdd.Done()

	_, err = bdd.NewReplacer([]int{0, 1}, []int{2})
	require.Error(t, err)
	bdd.ClearError()
	_, err = bdd.NewReplacer([]int{0, 0}, []int{2, 3})
	require.Error(t, err)
	bdd.ClearError()
	_, err = bdd.NewReplacer([]int{0}, []int{7})
	require.Error(t, err)
	bdd.ClearError()
}
