// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

// Restrict fixes the variables of varset to constant values in n. A variable
// included in the set in positive form is restricted to true, a variable in
// negative form to false. Because Makeset only builds positive sets, a mixed
// set has to be built as a conjunction of Ithvar and NIthvar literals, for
// instance with Buildcube.
func (b *BDD) Restrict(n, varset Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Restrict (%d)", inspect(n))
	}
	if b.checkptr(varset) != nil {
		return b.seterror(ErrIllBdd, "wrong varset in call to Restrict (%d)", inspect(varset))
	}
	if *varset < 2 { // empty set
		return n
	}
	run := func() int {
		if b.varset2svartable(*varset) != nil {
			return -1
		}
		b.miscid = (*varset << 3) | cacheidRestrict
		return b.restrict(*n)
	}
	b.initref()
	b.pushref(*n)
	b.pushref(*varset)
	res := run()
	if b.aborted() {
		res = b.retry(run)
	}
	b.popref(2)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) restrict(n int) int {
	if n < 0 {
		return -1
	}
	if n < 2 || b.level(n) > b.quantlast {
		return n
	}
	if res := b.rescache.matchrestrict(n, b.miscid); res >= 0 {
		return res
	}
	var res int
	if b.insvarset(b.level(n)) {
		// recurse only into the selected child
		if b.quantset[b.level(n)] > 0 {
			res = b.restrict(b.high(n))
		} else {
			res = b.restrict(b.low(n))
		}
	} else {
		low := b.pushref(b.restrict(b.low(n)))
		high := b.pushref(b.restrict(b.high(n)))
		res = b.makenode(b.level(n), low, high)
		b.popref(2)
	}
	return b.rescache.setrestrict(n, b.miscid, res)
}

// Constrain computes the generalized cofactor of f with respect to c.
func (b *BDD) Constrain(f, c Node) Node {
	if b.checkptr(f) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Constrain (f: %d)", inspect(f))
	}
	if b.checkptr(c) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Constrain (c: %d)", inspect(c))
	}
	run := func() int {
		b.miscid = cacheidConstrain
		return b.constrain(*f, *c)
	}
	b.initref()
	b.pushref(*f)
	b.pushref(*c)
	res := run()
	if b.aborted() {
		res = b.retry(run)
	}
	b.popref(2)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) constrain(f, c int) int {
	switch {
	case c == 1:
		return f
	case f < 2 && f >= 0:
		return f
	case c == f:
		return 1
	case c == 0:
		return 0
	case f < 0 || c < 0:
		return -1
	}
	if res := b.rescache.matchconstrain(f, c, b.miscid); res >= 0 {
		return res
	}
	var res int
	if b.level(f) == b.level(c) {
		if b.low(c) == 0 {
			res = b.constrain(b.high(f), b.high(c))
		} else if b.high(c) == 0 {
			res = b.constrain(b.low(f), b.low(c))
		} else {
			low := b.pushref(b.constrain(b.low(f), b.low(c)))
			high := b.pushref(b.constrain(b.high(f), b.high(c)))
			res = b.makenode(b.level(f), low, high)
			b.popref(2)
		}
	} else if b.level(f) < b.level(c) {
		low := b.pushref(b.constrain(b.low(f), c))
		high := b.pushref(b.constrain(b.high(f), c))
		res = b.makenode(b.level(f), low, high)
		b.popref(2)
	} else {
		if b.low(c) == 0 {
			res = b.constrain(f, b.high(c))
		} else if b.high(c) == 0 {
			res = b.constrain(f, b.low(c))
		} else {
			low := b.pushref(b.constrain(f, b.low(c)))
			high := b.pushref(b.constrain(f, b.high(c)))
			res = b.makenode(b.level(c), low, high)
			b.popref(2)
		}
	}
	return b.rescache.setconstrain(f, c, b.miscid, res)
}

// Simplify tries to shrink f by assuming the domain covered by d (Coudert and
// Madre's restrict). No checks are done to see whether the result is actually
// smaller than the input; this can be checked with NodeCount.
func (b *BDD) Simplify(f, d Node) Node {
	if b.checkptr(f) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Simplify (f: %d)", inspect(f))
	}
	if b.checkptr(d) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Simplify (d: %d)", inspect(d))
	}
	run := func() int {
		return b.simplify(*f, *d)
	}
	b.initref()
	b.pushref(*f)
	b.pushref(*d)
	res := run()
	if b.aborted() {
		res = b.retry(run)
	}
	b.popref(2)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) simplify(f, d int) int {
	switch {
	case d == 1:
		return f
	case f < 2 && f >= 0:
		return f
	case d == f:
		return 1
	case d == 0:
		return 0
	case f < 0 || d < 0:
		return -1
	}
	if res := b.applycache.matchsimplify(f, d); res >= 0 {
		return res
	}
	var res int
	if b.level(f) == b.level(d) {
		if b.low(d) == 0 {
			res = b.simplify(b.high(f), b.high(d))
		} else if b.high(d) == 0 {
			res = b.simplify(b.low(f), b.low(d))
		} else {
			low := b.pushref(b.simplify(b.low(f), b.low(d)))
			high := b.pushref(b.simplify(b.high(f), b.high(d)))
			res = b.makenode(b.level(f), low, high)
			b.popref(2)
		}
	} else if b.level(f) < b.level(d) {
		low := b.pushref(b.simplify(b.low(f), d))
		high := b.pushref(b.simplify(b.high(f), d))
		res = b.makenode(b.level(f), low, high)
		b.popref(2)
	} else {
		// the top variable of d is under the top variable of f: quantify it
		// out by oring the branches of d
		b.pushref(b.orRec(b.low(d), b.high(d)))
		res = b.simplify(f, b.refstack[len(b.refstack)-1])
		b.popref(1)
	}
	return b.applycache.setsimplify(f, d, res)
}
