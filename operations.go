// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

// Scanset returns the set of variables found when following the high branch
// of node n. This is the dual of function Makeset. The result may be nil if
// there is an error and it is an empty slice if the set is empty.
func (b *BDD) Scanset(n Node) []int {
	if b.checkptr(n) != nil {
		return nil
	}
	if *n < 2 {
		return []int{}
	}
	res := []int{}
	for i := *n; i > 1; i = b.high(i) {
		res = append(res, int(b.level2var[b.level(i)]))
	}
	return res
}

// Makeset returns a node corresponding to the conjunction (the cube) of all
// the variables in varset, in their positive form. It is such that
// Scanset(Makeset(a)) == a. It returns False and sets the error condition in
// b if one of the variables is outside the scope of the BDD (see
// documentation for function Ithvar).
func (b *BDD) Makeset(varset []int) Node {
	res := bddone
	for _, v := range varset {
		tmp := b.Apply(res, b.Ithvar(v), OPand)
		if b.error != nil {
			return bddzero
		}
		res = tmp
	}
	return res
}

// Buildcube returns the conjunction of the variables in vars, where variable
// vars[k] appears in positive form when bit k of value is set and in negative
// form otherwise.
func (b *BDD) Buildcube(value int, vars []int) Node {
	res := bddone
	for k, v := range vars {
		var tmp Node
		if value&(1<<uint(k)) != 0 {
			tmp = b.Apply(res, b.Ithvar(v), OPand)
		} else {
			tmp = b.Apply(res, b.NIthvar(v), OPand)
		}
		if b.error != nil {
			return bddzero
		}
		res = tmp
	}
	return res
}

// Not returns the negation of the expression corresponding to node n; it
// computes the result of !n. We negate a BDD by exchanging all references to
// the zero-terminal with references to the one-terminal and vice versa.
func (b *BDD) Not(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Not (%d)", inspect(n))
	}
	b.initref()
	b.pushref(*n)
	res := b.not(*n)
	if b.aborted() {
		res = b.retry(func() int { return b.not(*n) })
	}
	b.popref(1)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) not(n int) int {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return 0
	}
	if n < 0 {
		return -1
	}
	// The hash for a not operation is simply n
	if res := b.applycache.matchnot(n); res >= 0 {
		return res
	}
	low := b.pushref(b.not(b.low(n)))
	high := b.pushref(b.not(b.high(n)))
	res := b.makenode(b.level(n), low, high)
	b.popref(2)
	return b.applycache.setnot(n, res)
}

// Apply performs all of the basic bdd operations with two operands, such as
// AND, OR etc. Operator op must be one of the following:
//
//	Identifier    Description             Truth table
//
//	OPand         logical and              [0,0,0,1]
//	OPxor         logical xor              [0,1,1,0]
//	OPor          logical or               [0,1,1,1]
//	OPnand        logical not-and          [1,1,1,0]
//	OPnor         logical not-or           [1,0,0,0]
//	OPimp         implication              [1,1,0,1]
//	OPbiimp       equivalence              [1,0,0,1]
//	OPdiff        set difference           [0,0,1,0]
//	OPless        less than                [0,1,0,0]
//	OPinvimp      reverse implication      [1,0,1,1]
func (b *BDD) Apply(n1, n2 Node, op Operator) Node {
	if op < OPand || op > OPinvimp {
		return b.seterror(ErrOperator, "unauthorized operation (%s) in call to Apply", op)
	}
	if b.checkptr(n1) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Apply %s(n1: %d, n2: ...)", op, inspect(n1))
	}
	if b.checkptr(n2) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Apply %s(n1: ..., n2: %d)", op, inspect(n2))
	}
	b.initref()
	b.pushref(*n1)
	b.pushref(*n2)
	run := func() int {
		// and gets the iterative kernel so that deep operands cannot blow the
		// goroutine stack; or gets its specialized recursion; the other
		// operators go through the generic apply
		switch op {
		case OPand:
			return b.andItr(*n1, *n2)
		case OPor:
			return b.orRec(*n1, *n2)
		default:
			b.applycache.op = int(op)
			return b.apply(*n1, *n2)
		}
	}
	res := run()
	if b.aborted() {
		res = b.retry(run)
	}
	b.popref(2)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) apply(left int, right int) int {
	switch Operator(b.applycache.op) {
	case OPand:
		if left == right {
			return left
		}
		if (left == 0) || (right == 0) {
			return 0
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return left
		}
	case OPor:
		if left == right {
			return left
		}
		if (left == 1) || (right == 1) {
			return 1
		}
		if left == 0 {
			return right
		}
		if right == 0 {
			return left
		}
	case OPxor:
		if left == right {
			return 0
		}
		if left == 0 {
			return right
		}
		if right == 0 {
			return left
		}
	case OPnand:
		if (left == 0) || (right == 0) {
			return 1
		}
	case OPnor:
		if (left == 1) || (right == 1) {
			return 0
		}
	case OPimp:
		if left == 0 {
			return 1
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return 1
		}
		if left == right {
			return 1
		}
	case OPbiimp:
		if left == right {
			return 1
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return left
		}
	case OPdiff:
		if left == right {
			return 0
		}
		if right == 1 {
			return 0
		}
		if left == 0 {
			return 0
		}
	case OPless:
		if (left == right) || (left == 1) {
			return 0
		}
		if left == 0 {
			return right
		}
	case OPinvimp:
		if right == 0 {
			return 1
		}
		if right == 1 {
			return left
		}
		if left == 1 {
			return 1
		}
		if left == right {
			return 1
		}
	default:
		// unary operations, opnot and opsimplify, should not be used in apply
		b.seterror(ErrOperator, "unauthorized operation (%s) in apply", Operator(b.applycache.op))
		return -1
	}

	// a negative operand means an unwind is in progress
	if left < 0 || right < 0 {
		return -1
	}

	// we deal with the other cases where the two operands are constants
	if (left < 2) && (right < 2) {
		return opres[b.applycache.op][left][right]
	}
	if res := b.applycache.matchapply(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res int
	if leftlvl == rightlvl {
		low := b.pushref(b.apply(b.low(left), b.low(right)))
		high := b.pushref(b.apply(b.high(left), b.high(right)))
		res = b.makenode(leftlvl, low, high)
	} else {
		if leftlvl < rightlvl {
			low := b.pushref(b.apply(b.low(left), right))
			high := b.pushref(b.apply(b.high(left), right))
			res = b.makenode(leftlvl, low, high)
		} else {
			low := b.pushref(b.apply(left, b.low(right)))
			high := b.pushref(b.apply(left, b.high(right)))
			res = b.makenode(rightlvl, low, high)
		}
	}
	b.popref(2)
	return b.applycache.setapply(left, right, res)
}

// andRec is the specialized conjunction, with its own smaller cache keyed by
// the two operands only.
func (b *BDD) andRec(left, right int) int {
	switch {
	case left == right:
		return left
	case left == 0 || right == 0:
		return 0
	case left == 1:
		return right
	case right == 1:
		return left
	case left < 0 || right < 0:
		return -1
	}
	if res := b.andcache.match(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res int
	if leftlvl == rightlvl {
		low := b.pushref(b.andRec(b.low(left), b.low(right)))
		high := b.pushref(b.andRec(b.high(left), b.high(right)))
		res = b.makenode(leftlvl, low, high)
	} else if leftlvl < rightlvl {
		low := b.pushref(b.andRec(b.low(left), right))
		high := b.pushref(b.andRec(b.high(left), right))
		res = b.makenode(leftlvl, low, high)
	} else {
		low := b.pushref(b.andRec(left, b.low(right)))
		high := b.pushref(b.andRec(left, b.high(right)))
		res = b.makenode(rightlvl, low, high)
	}
	b.popref(2)
	return b.andcache.set(left, right, res)
}

// orRec is the specialized disjunction, the dual of andRec.
func (b *BDD) orRec(left, right int) int {
	switch {
	case left == right:
		return left
	case left == 1 || right == 1:
		return 1
	case left == 0:
		return right
	case right == 0:
		return left
	case left < 0 || right < 0:
		return -1
	}
	if res := b.orcache.match(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res int
	if leftlvl == rightlvl {
		low := b.pushref(b.orRec(b.low(left), b.low(right)))
		high := b.pushref(b.orRec(b.high(left), b.high(right)))
		res = b.makenode(leftlvl, low, high)
	} else if leftlvl < rightlvl {
		low := b.pushref(b.orRec(b.low(left), right))
		high := b.pushref(b.orRec(b.high(left), right))
		res = b.makenode(leftlvl, low, high)
	} else {
		low := b.pushref(b.orRec(left, b.low(right)))
		high := b.pushref(b.orRec(left, b.high(right)))
		res = b.makenode(rightlvl, low, high)
	}
	b.popref(2)
	return b.orcache.set(left, right, res)
}

// andItr computes the conjunction with an explicit work stack instead of
// recursion, so that the depth is bounded by the number of levels and not by
// the goroutine stack. Each frame is either an evaluation of a pair of
// operands or the rebuild of a node once both cofactors sit on the reference
// stack.
func (b *BDD) andItr(l0, r0 int) int {
	type frame struct {
		l, r int
		lev  int32
		eval bool
	}
	base := len(b.refstack)
	stack := make([]frame, 0, 2*int(b.varnum)+4)
	stack = append(stack, frame{l: l0, r: r0, eval: true})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f.eval {
			high := b.refstack[len(b.refstack)-1]
			low := b.refstack[len(b.refstack)-2]
			res := b.makenode(f.lev, low, high)
			b.popref(2)
			if res < 0 {
				b.refstack = b.refstack[:base]
				return -1
			}
			b.andcache.set(f.l, f.r, res)
			b.pushref(res)
			continue
		}
		switch {
		case f.l == f.r:
			b.pushref(f.l)
			continue
		case f.l == 0 || f.r == 0:
			b.pushref(0)
			continue
		case f.l == 1:
			b.pushref(f.r)
			continue
		case f.r == 1:
			b.pushref(f.l)
			continue
		case f.l < 0 || f.r < 0:
			b.refstack = b.refstack[:base]
			return -1
		}
		if res := b.andcache.match(f.l, f.r); res >= 0 {
			b.pushref(res)
			continue
		}
		leftlvl := b.level(f.l)
		rightlvl := b.level(f.r)
		var lev int32
		var ll, lh, rl, rh int
		switch {
		case leftlvl == rightlvl:
			lev, ll, lh, rl, rh = leftlvl, b.low(f.l), b.high(f.l), b.low(f.r), b.high(f.r)
		case leftlvl < rightlvl:
			lev, ll, lh, rl, rh = leftlvl, b.low(f.l), b.high(f.l), f.r, f.r
		default:
			lev, ll, lh, rl, rh = rightlvl, f.l, f.l, b.low(f.r), b.high(f.r)
		}
		// the low pair is evaluated first, so it is pushed last
		stack = append(stack, frame{l: f.l, r: f.r, lev: lev})
		stack = append(stack, frame{l: lh, r: rh, eval: true})
		stack = append(stack, frame{l: ll, r: rl, eval: true})
	}
	res := b.refstack[len(b.refstack)-1]
	b.popref(1)
	return res
}

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddone
	}
	return b.Apply(n[0], b.And(n[1:]...), OPand)
}

// Or returns the logical 'or' of a sequence of nodes.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddzero
	}
	return b.Apply(n[0], b.Or(n[1:]...), OPor)
}

// Xor returns the logical 'exclusive or' of two BDDs.
func (b *BDD) Xor(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPxor)
}

// Imp returns the logical 'implication' between two BDDs.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two BDDs.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// Diff returns the difference (n1 \ n2) between two BDDs.
func (b *BDD) Diff(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPdiff)
}

// AndExist returns the "relational composition" of two nodes with respect to
// varset, meaning the result of (∃ varset . n1 & n2).
func (b *BDD) AndExist(varset, n1, n2 Node) Node {
	return b.AppEx(n1, n2, OPand, varset)
}

// Ite (short for if-then-else operator) computes the BDD for the expression
// [(f & g) | (!f & h)] more efficiently than doing the three operations
// separately.
func (b *BDD) Ite(f, g, h Node) Node {
	if b.checkptr(f) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Ite (f: %d)", inspect(f))
	}
	if b.checkptr(g) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Ite (g: %d)", inspect(g))
	}
	if b.checkptr(h) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Ite (h: %d)", inspect(h))
	}
	b.initref()
	b.pushref(*f)
	b.pushref(*g)
	b.pushref(*h)
	res := b.ite(*f, *g, *h)
	if b.aborted() {
		res = b.retry(func() int { return b.ite(*f, *g, *h) })
	}
	b.popref(3)
	b.checkresize()
	return b.retnode(res)
}

// iteLow returns n if its level p is strictly higher than q or r, otherwise it
// returns the low branch of n. This is used in function ite to know which node
// to follow: we always follow the smallest node(s).
func (b *BDD) iteLow(p, q, r int32, n int) int {
	if (p > q) || (p > r) {
		return n
	}
	return b.low(n)
}

func (b *BDD) iteHigh(p, q, r int32, n int) int {
	if (p > q) || (p > r) {
		return n
	}
	return b.high(n)
}

// min3 returns the smallest value between p, q and r. This is used in function
// ite to compute the smallest level.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

func (b *BDD) ite(f, g, h int) int {
	switch {
	case f == 1:
		return g
	case f == 0:
		return h
	case g == h:
		return g
	case (g == 1) && (h == 0):
		return f
	case (g == 0) && (h == 1):
		return b.not(f)
	}
	if f < 0 || g < 0 || h < 0 {
		return -1
	}
	if res := b.itecache.matchite(f, g, h); res >= 0 {
		return res
	}
	p := b.level(f)
	q := b.level(g)
	r := b.level(h)
	low := b.pushref(b.ite(b.iteLow(p, q, r, f), b.iteLow(q, p, r, g), b.iteLow(r, p, q, h)))
	high := b.pushref(b.ite(b.iteHigh(p, q, r, f), b.iteHigh(q, p, r, g), b.iteHigh(r, p, q, h)))
	res := b.makenode(min3(p, q, r), low, high)
	b.popref(2)
	return b.itecache.setite(f, g, h, res)
}
