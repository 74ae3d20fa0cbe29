// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"fmt"
	"math"
)

// Satone finds one satisfying variable assignment for n, as a cube with at
// most one variable at each level. The result implies n and is only false
// when n is false.
func (b *BDD) Satone(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Satone (%d)", inspect(n))
	}
	if *n < 2 {
		return n
	}
	b.disablereorder()
	b.initref()
	res := b.satone(*n)
	b.enablereorder()
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) satone(n int) int {
	if n < 2 {
		return n
	}
	if b.low(n) == 0 {
		res := b.satone(b.high(n))
		return b.pushref(b.makenode(b.level(n), 0, res))
	}
	res := b.satone(b.low(n))
	return b.pushref(b.makenode(b.level(n), res, 0))
}

// Satoneset finds a minterm of n mentioning at least the variables of varset.
// Variables of the set that n does not constrain are fixed to the polarity
// pol: a true constant picks the positive form, a false one the negative
// form.
func (b *BDD) Satoneset(n, varset, pol Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Satoneset (%d)", inspect(n))
	}
	if *n == 0 {
		return n
	}
	if pol == nil || *pol > 1 {
		return b.seterror(ErrIllBdd, "polarity in call to Satoneset must be a constant")
	}
	if b.checkptr(varset) != nil {
		return b.seterror(ErrIllBdd, "wrong varset in call to Satoneset (%d)", inspect(varset))
	}
	b.disablereorder()
	b.initref()
	b.satPolarity = *pol
	res := b.satoneset(*n, *varset)
	b.enablereorder()
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) satoneset(n, varset int) int {
	if n < 2 && varset < 2 {
		return n
	}
	if b.level(n) < b.level(varset) {
		if b.low(n) == 0 {
			res := b.satoneset(b.high(n), varset)
			return b.pushref(b.makenode(b.level(n), 0, res))
		}
		res := b.satoneset(b.low(n), varset)
		return b.pushref(b.makenode(b.level(n), res, 0))
	}
	if b.level(varset) < b.level(n) {
		res := b.satoneset(n, b.high(varset))
		if b.satPolarity == 1 {
			return b.pushref(b.makenode(b.level(varset), 0, res))
		}
		return b.pushref(b.makenode(b.level(varset), res, 0))
	}
	// level(n) == level(varset)
	if b.low(n) == 0 {
		res := b.satoneset(b.high(n), b.high(varset))
		return b.pushref(b.makenode(b.level(n), 0, res))
	}
	res := b.satoneset(b.low(n), b.high(varset))
	return b.pushref(b.makenode(b.level(n), res, 0))
}

// Fullsatone finds one satisfying assignment mentioning every variable: a
// cube with exactly one literal at every level. Undetermined variables are
// fixed to false.
func (b *BDD) Fullsatone(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Fullsatone (%d)", inspect(n))
	}
	if *n == 0 {
		return bddzero
	}
	b.disablereorder()
	b.initref()
	res := b.fullsatone(*n)
	for v := b.level(*n) - 1; v >= 0; v-- {
		res = b.pushref(b.makenode(v, res, 0))
	}
	b.enablereorder()
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) fullsatone(n int) int {
	if n < 2 {
		return n
	}
	if b.low(n) != 0 {
		res := b.fullsatone(b.low(n))
		for v := b.level(b.low(n)) - 1; v > b.level(n); v-- {
			res = b.pushref(b.makenode(v, res, 0))
		}
		return b.pushref(b.makenode(b.level(n), res, 0))
	}
	res := b.fullsatone(b.high(n))
	for v := b.level(b.high(n)) - 1; v > b.level(n); v-- {
		res = b.pushref(b.makenode(v, res, 0))
	}
	return b.pushref(b.makenode(b.level(n), 0, res))
}

// Allsat iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length Varnum to f
// where entry k describes variable k: 0 if it is false, 1 if it is true, and
// -1 if it is a don't care. The enumeration is deterministic for a given n
// and variable order, and it stops with an error if f returns one.
func (b *BDD) Allsat(f func([]int) error, n Node) error {
	if b.checkptr(n) != nil {
		return fmt.Errorf("wrong node in call to Allsat (%d)", inspect(n))
	}
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	// the traversal does not create new nodes, so we do not need to take care
	// of possible resizing
	return b.allsat(*n, prof, f)
}

func (b *BDD) allsat(n int, prof []int, f func([]int) error) error {
	if n == 1 {
		return f(prof)
	}
	if n == 0 {
		return nil
	}

	if low := b.low(n); low != 0 {
		prof[b.level2var[b.level(n)]] = 0
		for v := b.level(low) - 1; v > b.level(n); v-- {
			prof[b.level2var[v]] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}

	if high := b.high(n); high != 0 {
		prof[b.level2var[b.level(n)]] = 1
		for v := b.level(high) - 1; v > b.level(n); v-- {
			prof[b.level2var[v]] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n, over the full set of variables. The result is a
// float64, which can overflow to +Inf for very wide functions; Satcountln is
// the practically overflow-free alternative.
func (b *BDD) Satcount(n Node) float64 {
	if b.checkptr(n) != nil {
		b.seterror(ErrIllBdd, "wrong operand in call to Satcount (%d)", inspect(n))
		return 0
	}
	b.miscid = cacheidSatcou
	return math.Pow(2, float64(b.level(*n))) * b.satcount(*n)
}

func (b *BDD) satcount(n int) float64 {
	if n < 2 {
		return float64(n)
	}
	if res, ok := b.misccache.match(n, b.miscid); ok {
		return res
	}
	size := math.Pow(2, float64(b.level(b.low(n))-b.level(n)-1)) * b.satcount(b.low(n))
	size += math.Pow(2, float64(b.level(b.high(n))-b.level(n)-1)) * b.satcount(b.high(n))
	return b.misccache.set(n, b.miscid, size)
}

// Satcountset is like Satcount restricted to the variables of varset: the
// count of assignments over the set only.
func (b *BDD) Satcountset(n, varset Node) float64 {
	if b.checkptr(n) != nil || b.checkptr(varset) != nil {
		return 0
	}
	if *varset < 2 || *n == 0 {
		return 0
	}
	unused := float64(b.varnum)
	for i := *varset; i > 1; i = b.high(i) {
		unused--
	}
	cnt := b.Satcount(n) / math.Pow(2, unused)
	if cnt < 1 {
		return 1
	}
	return cnt
}

// Satcountln returns the logarithm in base 2 of the number of satisfying
// assignments of n. The combination of the two branch counts goes through
// log1p so that the intermediate powers cannot overflow. The result is
// negative (-1) for the false constant.
func (b *BDD) Satcountln(n Node) float64 {
	if b.checkptr(n) != nil {
		b.seterror(ErrIllBdd, "wrong operand in call to Satcountln (%d)", inspect(n))
		return 0
	}
	b.miscid = cacheidSatcouln
	size := b.satcountln(*n)
	if size >= 0 {
		size += float64(b.level(*n))
	}
	return size
}

// satcountln computes the log2 count with -1 standing in for log(0); the
// caller turns the sentinel back into the conventional value.
func (b *BDD) satcountln(n int) float64 {
	if n == 0 {
		return -1
	}
	if n == 1 {
		return 0
	}
	if res, ok := b.misccache.match(n, b.miscid); ok {
		return res
	}
	s1 := b.satcountln(b.low(n))
	if s1 >= 0 {
		s1 += float64(b.level(b.low(n)) - b.level(n) - 1)
	}
	s2 := b.satcountln(b.high(n))
	if s2 >= 0 {
		s2 += float64(b.level(b.high(n)) - b.level(n) - 1)
	}
	var size float64
	switch {
	case s1 < 0:
		size = s2
	case s2 < 0:
		size = s1
	case s1 < s2:
		size = s2 + math.Log1p(math.Pow(2, s1-s2))/math.Ln2
	default:
		size = s1 + math.Log1p(math.Pow(2, s2-s1))/math.Ln2
	}
	return b.misccache.set(n, b.miscid, size)
}

// Satcountlnset is the log2 variant of Satcountset.
func (b *BDD) Satcountlnset(n, varset Node) float64 {
	if b.checkptr(n) != nil || b.checkptr(varset) != nil {
		return 0
	}
	if *varset < 2 {
		return 0
	}
	unused := float64(b.varnum)
	for i := *varset; i > 1; i = b.high(i) {
		unused--
	}
	cnt := b.Satcountln(n) - unused
	if cnt < 0 {
		return 0
	}
	return cnt
}

// Pathcount counts the number of paths from the root of n to the true
// terminal.
func (b *BDD) Pathcount(n Node) float64 {
	if b.checkptr(n) != nil {
		b.seterror(ErrIllBdd, "wrong operand in call to Pathcount (%d)", inspect(n))
		return 0
	}
	b.miscid = cacheidPathcou
	return b.pathcount(*n)
}

func (b *BDD) pathcount(n int) float64 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	if res, ok := b.misccache.match(n, b.miscid); ok {
		return res
	}
	return b.misccache.set(n, b.miscid, b.pathcount(b.low(n))+b.pathcount(b.high(n)))
}

// Support returns the set of variables that n depends on, as a conjunction
// cube of the variables in their positive form.
func (b *BDD) Support(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Support (%d)", inspect(n))
	}
	// variable sets are conjunctions, so the empty support is True
	if *n < 2 {
		return bddone
	}
	if len(b.supportSet) < int(b.varnum) {
		b.supportSet = make([]int, b.varnum)
		b.supportID = 0
	}
	// instead of zeroing the array on every call we bump a generation
	// counter, and only reset once it recycles
	if b.supportID == _SUPPORTMAX {
		b.supportSet = make([]int, b.varnum)
		b.supportID = 0
	}
	b.supportID++
	b.supportMin = b.level(*n)
	b.supportMax = b.supportMin
	b.supportrec(*n)
	b.unmarkrec(*n)

	b.disablereorder()
	b.initref()
	res := 1
	for lev := b.supportMax; lev >= b.supportMin; lev-- {
		if b.supportSet[lev] == b.supportID {
			res = b.pushref(b.makenode(lev, 0, res))
		}
	}
	b.enablereorder()
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) supportrec(n int) {
	if n < 2 {
		return
	}
	if b.ismarked(n) || b.low(n) == -1 {
		return
	}
	b.supportSet[b.level(n)] = b.supportID
	if b.level(n) > b.supportMax {
		b.supportMax = b.level(n)
	}
	b.marknode(n)
	b.supportrec(b.low(n))
	b.supportrec(b.high(n))
}

// NodeCount returns the number of distinct nodes used for n.
func (b *BDD) NodeCount(n Node) int {
	if b.checkptr(n) != nil {
		b.seterror(ErrIllBdd, "wrong operand in call to NodeCount (%d)", inspect(n))
		return 0
	}
	num := 0
	b.markcount(*n, &num)
	b.unmarkrec(*n)
	return num
}

// AnodeCount returns the number of distinct nodes used in the BDDs of the
// sequence n: shared nodes are counted only once.
func (b *BDD) AnodeCount(n ...Node) int {
	num := 0
	for _, v := range n {
		if b.checkptr(v) != nil {
			b.seterror(ErrIllBdd, "wrong operand in call to AnodeCount (%d)", inspect(v))
			return 0
		}
		b.markcount(*v, &num)
	}
	for _, v := range n {
		b.unmarkrec(*v)
	}
	return num
}

// Varprofile counts the number of times each variable occurs in n. Entry k of
// the result gives the occurrence count of variable k.
func (b *BDD) Varprofile(n Node) []int {
	if b.checkptr(n) != nil {
		b.seterror(ErrIllBdd, "wrong operand in call to Varprofile (%d)", inspect(n))
		return nil
	}
	profile := make([]int, b.varnum)
	b.varprofilerec(*n, profile)
	b.unmarkrec(*n)
	return profile
}

func (b *BDD) varprofilerec(n int, profile []int) {
	if n < 2 || b.ismarked(n) {
		return
	}
	profile[b.level2var[b.level(n)]]++
	b.marknode(n)
	b.varprofilerec(b.low(n), profile)
	b.varprofilerec(b.high(n), profile)
}

// Allnodes applies function f over all the nodes accessible from the nodes in
// the sequence n, or all the active nodes if n is absent. The parameters to
// function f are the id, level, and ids of the low and high successors of
// each node. The two constant nodes (True and False) have always the id 1 and
// 0, respectively, and the level Varnum. Like with Allsat, we stop the
// computation and return an error if f returns an error at some point.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	for _, v := range n {
		if err := b.checkptr(v); err != nil {
			return fmt.Errorf("wrong node in call to Allnodes; %w", err)
		}
	}
	// the traversal does not create new nodes, so we do not need to take care
	// of possible resizing
	if len(n) == 0 {
		return b.allnodes(f)
	}
	return b.allnodesfrom(f, n)
}

func (b *BDD) allnodesfrom(f func(id, level, low, high int) error, n []Node) error {
	for _, v := range n {
		b.markrec(*v)
	}
	if err := f(0, int(b.varnum), 0, 0); err != nil {
		b.unmarkall()
		return err
	}
	if err := f(1, int(b.varnum), 1, 1); err != nil {
		b.unmarkall()
		return err
	}
	for k := range b.nodes {
		if k > 1 && b.ismarked(k) {
			b.unmarknode(k)
			if err := f(k, int(b.level(k)), b.low(k), b.high(k)); err != nil {
				b.unmarkall()
				return err
			}
		}
	}
	return nil
}

func (b *BDD) allnodes(f func(id, level, low, high int) error) error {
	if err := f(0, int(b.varnum), 0, 0); err != nil {
		return err
	}
	if err := f(1, int(b.varnum), 1, 1); err != nil {
		return err
	}
	for k, v := range b.nodes {
		if k > 1 && v.low != -1 {
			if err := f(k, int(b.level(k)), v.low, v.high); err != nil {
				return err
			}
		}
	}
	return nil
}
