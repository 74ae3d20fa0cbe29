// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy_test

import (
	"fmt"

	"github.com/buddy-go/buddy"
)

// This example shows the basic usage of the package: create an engine,
// compute some expressions and output the result.
func Example_basic() {
	// Create a new BDD with 6 variables, 10 000 nodes and a cache size of
	// 3 000 entries (initially).
	bdd, _ := buddy.New(6, buddy.Nodesize(10000), buddy.Cachesize(3000))
	defer bdd.Done()
	// n1 is a set comprising the three variables {x2, x3, x5}. It can also
	// be interpreted as the Boolean expression: x2 & x3 & x5
	n1 := bdd.Makeset([]int{2, 3, 5})
	// n2 == x1 | !x3 | x4
	n2 := bdd.Or(bdd.Ithvar(1), bdd.NIthvar(3), bdd.Ithvar(4))
	// n3 == ∃ x2,x3,x5 . (n2 & x3)
	n3 := bdd.AndExist(n1, n2, bdd.Ithvar(3))
	fmt.Printf("Number of sat. assignments is %.0f\n", bdd.Satcount(n3))
	// Output:
	// Number of sat. assignments is 48
}

// The following is an example of a callback handler, used in a call to
// Allsat, that counts the number of satisfying assignments (such that we do
// not count don't cares twice).
func Example_allsat() {
	bdd, _ := buddy.New(5)
	defer bdd.Done()
	// n == ∃ x2,x3 . (x1 | !x3 | x4) & x3
	n := bdd.AndExist(bdd.Makeset([]int{2, 3}),
		bdd.Or(bdd.Ithvar(1), bdd.NIthvar(3), bdd.Ithvar(4)),
		bdd.Ithvar(3))
	acc := new(int)
	bdd.Allsat(func(varset []int) error {
		*acc++
		return nil
	}, n)
	fmt.Printf("Number of sat. assignments (without don't care) is %d", *acc)
	// Output:
	// Number of sat. assignments (without don't care) is 2
}

// The following is an example of a callback handler, used in a call to
// Allnodes, that counts the nodes reachable from an expression, the two
// constant nodes included.
func Example_allnodes() {
	bdd, _ := buddy.New(5)
	defer bdd.Done()
	n := bdd.AndExist(bdd.Makeset([]int{2, 3}),
		bdd.Or(bdd.Ithvar(1), bdd.NIthvar(3), bdd.Ithvar(4)),
		bdd.Ithvar(3))
	acc := new(int)
	count := func(id, level, low, high int) error {
		*acc++
		return nil
	}
	bdd.Allnodes(count, n)
	fmt.Printf("Number of active nodes in the expression is %d", *acc)
	// Output:
	// Number of active nodes in the expression is 4
}
