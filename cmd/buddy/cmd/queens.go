// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buddy-go/buddy"
)

var (
	queensSave  string
	queensStats bool
)

var queensCmd = &cobra.Command{
	Use:   "queens N",
	Short: "Count the solutions of the N-queens problem",
	Long: `queens builds the BDD of the N-queens placement constraints, one
variable per square of the board, and counts the satisfying assignments.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid board size %q", args[0])
		}
		bdd, err := newEngine(n * n)
		if err != nil {
			return err
		}
		defer bdd.Done()
		queen := queens(bdd, n)
		if bdd.Errored() {
			return fmt.Errorf("computation failed: %s", bdd.Error())
		}
		fmt.Printf("%d-queens has %.0f solutions (%d nodes)\n", n, bdd.Satcount(queen), bdd.NodeCount(queen))
		if queensSave != "" {
			if err := bdd.FnSave(queensSave, queen); err != nil {
				return err
			}
			fmt.Printf("solution BDD saved to %s\n", queensSave)
		}
		if queensStats {
			fmt.Print(bdd.Stats())
		}
		return nil
	},
}

func init() {
	queensCmd.Flags().StringVar(&queensSave, "save", "", "save the solution BDD to this file")
	queensCmd.Flags().BoolVar(&queensStats, "stats", false, "print engine statistics")
	rootCmd.AddCommand(queensCmd)
}

// queens builds the constraint BDD for an n by n board. Variable i*n+j is
// true when a queen sits on row i, column j.
func queens(bdd *buddy.BDD, n int) buddy.Node {
	queen := bdd.True()
	x := make([][]buddy.Node, n)
	for i := range x {
		x[i] = make([]buddy.Node, n)
		for j := range x[i] {
			x[i][j] = bdd.Ithvar(i*n + j)
		}
	}
	// place a queen in each row
	for i := 0; i < n; i++ {
		e := bdd.False()
		for j := 0; j < n; j++ {
			e = bdd.Or(e, x[i][j])
		}
		queen = bdd.And(queen, e)
	}
	// build the placement constraints for each square
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// no one else in the same row
			a := bdd.True()
			for k := 0; k < n; k++ {
				if k != j {
					a = bdd.And(a, bdd.Imp(x[i][j], bdd.Not(x[i][k])))
				}
			}
			// no one else in the same column
			c := bdd.True()
			for k := 0; k < n; k++ {
				if k != i {
					c = bdd.And(c, bdd.Imp(x[i][j], bdd.Not(x[k][j])))
				}
			}
			// no one else in the two diagonals
			d := bdd.True()
			for k := 0; k < n; k++ {
				if ll := k - i + j; ll >= 0 && ll < n && k != i {
					d = bdd.And(d, bdd.Imp(x[i][j], bdd.Not(x[k][ll])))
				}
			}
			e := bdd.True()
			for k := 0; k < n; k++ {
				if ll := i + j - k; ll >= 0 && ll < n && k != i {
					e = bdd.And(e, bdd.Imp(x[i][j], bdd.Not(x[k][ll])))
				}
			}
			queen = bdd.And(queen, a, c, d, e)
		}
	}
	return queen
}
