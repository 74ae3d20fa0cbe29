// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// nqueens computes solutions for the N-Queen chess problem and returns the
// number of solutions. It builds a BDD with NxN variables corresponding to
// the squares in the chess board like:
//
//	0 4  8 12
//	1 5  9 13
//	2 6 10 14
//	3 7 11 15
//
// One solution is then that 2,4,11,13 should be true, meaning a queen should
// be placed there:
//
//	. X . .
//	. . . X
//	X . . .
//	. . X .
func nqueens(t *testing.T, n int) float64 {
	bdd, err := New(n*n, Nodesize(n*n*256), Cachesize(n*n*64), Cacheratio(30))
	require.NoError(t, err)
	defer bdd.Done()
	queen := bdd.True()
	x := make([][]Node, n)
	for i := range x {
		x[i] = make([]Node, n)
		for j := range x[i] {
			x[i][j] = bdd.Ithvar(i*n + j)
		}
	}
	// place a queen in each column
	for i := 0; i < n; i++ {
		e := bdd.False()
		for j := 0; j < n; j++ {
			e = bdd.Or(e, x[i][j])
		}
		queen = bdd.And(queen, e)
	}

	// build requirements for each variable (field)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// no one in the same column
			a := bdd.True()
			for k := 0; k < n; k++ {
				if k != j {
					a = bdd.And(a, bdd.Imp(x[i][j], bdd.Not(x[i][k])))
				}
			}
			// no one in the same row
			b := bdd.True()
			for k := 0; k < n; k++ {
				if k != i {
					b = bdd.And(b, bdd.Imp(x[i][j], bdd.Not(x[k][j])))
				}
			}
			// no one in the same up-right diagonal
			c := bdd.True()
			for k := 0; k < n; k++ {
				ll := k - i + j
				if ll >= 0 && ll < n {
					if k != i {
						c = bdd.And(c, bdd.Imp(x[i][j], bdd.Not(x[k][ll])))
					}
				}
			}
			// no one in the same down-right diagonal
			d := bdd.True()
			for k := 0; k < n; k++ {
				ll := i + j - k
				if ll >= 0 && ll < n {
					if k != i {
						d = bdd.And(d, bdd.Imp(x[i][j], bdd.Not(x[k][ll])))
					}
				}
			}
			queen = bdd.And(queen, a, b, c, d)
		}
	}
	require.False(t, bdd.Errored())
	return bdd.Satcount(queen)
}

func TestNQueens(t *testing.T) {
	var nqueensTests = []struct {
		n        int
		expected float64
	}{
		{4, 2},
		{5, 10},
		{6, 4},
		{7, 40},
	}
	for _, tt := range nqueensTests {
		actual := nqueens(t, tt.n)
		if actual != tt.expected {
			t.Errorf("error in nqueens(%d), expected %.0f, actual %.0f", tt.n, tt.expected, actual)
		}
	}
}
