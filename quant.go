// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import "math"

// The quantifiers eliminate the variables of a set by combining the sibling
// cofactors with or (Exist), and (Forall) or xor (Unique). A variable set is
// a cube, as built by Makeset; before a quantification we translate it into
// the per-level quantset table, tagged by a generation counter so that the
// table does not have to be zeroed between calls.

// varset2vartable loads the (unsigned) quantification table with the levels
// mentioned in the set n. The generation counter recycles at MaxInt32.
func (b *BDD) varset2vartable(n int) error {
	if n < 2 {
		b.seterror(ErrVarset, "illegal variable set (%d)", n)
		return b.error
	}
	b.quantsetID++
	if b.quantsetID == math.MaxInt32 {
		b.quantset = make([]int32, b.varnum)
		b.quantsetID = 1
	}
	for i := n; i > 1; i = b.high(i) {
		b.quantset[b.level(i)] = b.quantsetID
		b.quantlast = b.level(i)
	}
	return nil
}

// varset2svartable loads the signed variant used by Restrict, where a
// variable appearing in negative form gets a negated generation id. The
// counter recycles at MaxInt32/2 so that the negation cannot overflow.
func (b *BDD) varset2svartable(n int) error {
	if n < 2 {
		b.seterror(ErrVarset, "illegal variable set (%d)", n)
		return b.error
	}
	b.quantsetID++
	if b.quantsetID == math.MaxInt32/2 {
		b.quantset = make([]int32, b.varnum)
		b.quantsetID = 1
	}
	for i := n; i > 1; {
		if b.low(i) == 0 {
			// positive literal
			b.quantset[b.level(i)] = b.quantsetID
			b.quantlast = b.level(i)
			i = b.high(i)
		} else {
			b.quantset[b.level(i)] = -b.quantsetID
			b.quantlast = b.level(i)
			i = b.low(i)
		}
	}
	return nil
}

func (b *BDD) invarset(level int32) bool {
	return b.quantset[level] == b.quantsetID
}

func (b *BDD) insvarset(level int32) bool {
	return b.quantset[level] == b.quantsetID || b.quantset[level] == -b.quantsetID
}

// Exist returns the existential quantification of n for the variables in
// varset, where varset is a node built with a method such as Makeset. We
// return nil and set the error condition in b if there is an error.
func (b *BDD) Exist(n, varset Node) Node {
	return b.quantify(n, varset, OPor, cacheidExist, "Exist")
}

// Forall returns the universal quantification of n for the variables in
// varset: sibling branches are combined with a conjunction instead of the
// disjunction of Exist.
func (b *BDD) Forall(n, varset Node) Node {
	return b.quantify(n, varset, OPand, cacheidForall, "Forall")
}

// quantify is the shared entry of Exist and Forall; Unique has its own
// because the recursion differs.
func (b *BDD) quantify(n, varset Node, op Operator, cacheid int, name string) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong node in call to %s (n: %d)", name, inspect(n))
	}
	if b.checkptr(varset) != nil {
		return b.seterror(ErrIllBdd, "wrong varset in call to %s (%d)", name, inspect(varset))
	}
	if *varset < 2 { // empty set
		return n
	}
	run := func() int {
		if b.varset2vartable(*varset) != nil {
			return -1
		}
		b.quantcache.id = (*varset << 3) | cacheid
		b.applycache.op = int(op)
		return b.quant(*n, *varset)
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

func (b *BDD) quant(n, varset int) int {
	if (n < 2) || (b.level(n) > b.quantlast) {
		return n
	}
	if n < 0 {
		return -1
	}
	if res := b.quantcache.matchquant(n, varset); res >= 0 {
		return res
	}
	low := b.pushref(b.quant(b.low(n), varset))
	high := b.pushref(b.quant(b.high(n), varset))
	var res int
	if b.invarset(b.level(n)) {
		res = b.apply(low, high)
	} else {
		res = b.makenode(b.level(n), low, high)
	}
	b.popref(2)
	return b.quantcache.setquant(n, varset, res)
}

// Unique returns the unique quantification of n for the variables in varset,
// combining sibling branches with a xor. A variable of the set that does not
// appear in n makes the result false, since (f xor f) is false.
func (b *BDD) Unique(n, varset Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong node in call to Unique (n: %d)", inspect(n))
	}
	if b.checkptr(varset) != nil {
		return b.seterror(ErrIllBdd, "wrong varset in call to Unique (%d)", inspect(varset))
	}
	if *varset < 2 { // empty set
		return n
	}
	run := func() int {
		b.quantcache.id = (*varset << 3) | cacheidUnique
		b.applycache.op = int(OPxor)
		return b.unique(*n, *varset)
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

func (b *BDD) unique(n, varset int) int {
	if n < 0 || varset < 0 {
		return -1
	}
	if b.level(n) > b.level(varset) {
		// skipped a quantified variable: f xor f is false
		return 0
	}
	if n < 2 || varset < 2 {
		return n
	}
	if res := b.quantcache.matchquant(n, varset); res >= 0 {
		return res
	}
	var res int
	if b.level(n) == b.level(varset) {
		low := b.pushref(b.unique(b.low(n), b.high(varset)))
		high := b.pushref(b.unique(b.high(n), b.high(varset)))
		res = b.apply(low, high)
	} else {
		low := b.pushref(b.unique(b.low(n), varset))
		high := b.pushref(b.unique(b.high(n), varset))
		res = b.makenode(b.level(n), low, high)
	}
	b.popref(2)
	return b.quantcache.setquant(n, varset, res)
}

// AppEx applies the binary operator op on the two operands, n1 and n2, then
// performs an existential quantification over the variables in varset;
// meaning it computes the value of (∃ varset . n1 op n2). This is done in a
// bottom up manner such that both the apply and quantification are done on
// the lower nodes before stepping up to the higher nodes, which makes AppEx
// much more efficient than an apply operation followed by a quantification.
// Note that, when op is a conjunction, this operation returns the relational
// product of the two BDDs, for which a specialized kernel is used.
func (b *BDD) AppEx(n1, n2 Node, op Operator, varset Node) Node {
	return b.appquantify(n1, n2, op, varset, OPor, cacheidAppex, "AppEx")
}

// AppAll applies the binary operator op on the two operands and then performs
// a universal quantification over the variables in varset.
func (b *BDD) AppAll(n1, n2 Node, op Operator, varset Node) Node {
	return b.appquantify(n1, n2, op, varset, OPand, cacheidAppall, "AppAll")
}

// AppUni applies the binary operator op on the two operands and then performs
// a unique quantification over the variables in varset.
func (b *BDD) AppUni(n1, n2 Node, op Operator, varset Node) Node {
	return b.appquantify(n1, n2, op, varset, OPxor, cacheidAppuni, "AppUni")
}

func (b *BDD) appquantify(n1, n2 Node, op Operator, varset Node, quantop Operator, cacheid int, name string) Node {
	if op < OPand || op > OPnor {
		return b.seterror(ErrOperator, "operator %s not supported in call to %s", op, name)
	}
	if b.checkptr(varset) != nil {
		return b.seterror(ErrIllBdd, "wrong varset in call to %s (%d)", name, inspect(varset))
	}
	if *varset < 2 { // empty set
		return b.Apply(n1, n2, op)
	}
	if b.checkptr(n1) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to %s %s(left: %d)", name, op, inspect(n1))
	}
	if b.checkptr(n2) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to %s %s(right: %d)", name, op, inspect(n2))
	}
	run := func() int {
		b.applycache.op = int(quantop)
		b.appexcache.op = int(op)
		// the tag packs the varset, the operator and the kind of quantifier,
		// so a hit for any other parameterization is rejected
		b.appexcache.id = (*varset << 6) | (b.appexcache.op << 3) | cacheid
		b.quantcache.id = (b.appexcache.id << 3) | cacheid
		if cacheid == cacheidAppuni {
			return b.appuni(*n1, *n2, *varset)
		}
		if b.varset2vartable(*varset) != nil {
			return -1
		}
		if quantop == OPor && op == OPand {
			return b.relprodItr(*n1, *n2, *varset)
		}
		return b.appquant(*n1, *n2, *varset)
	}
	b.initref()
	b.pushref(*n1)
	b.pushref(*n2)
	b.pushref(*varset)
	res := run()
	if b.aborted() {
		res = b.retry(run)
	}
	b.popref(3)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) appquant(left, right, varset int) int {
	switch Operator(b.appexcache.op) {
	case OPand:
		if left == 0 || right == 0 {
			return 0
		}
		if left == right {
			return b.quant(left, varset)
		}
		if left == 1 {
			return b.quant(right, varset)
		}
		if right == 1 {
			return b.quant(left, varset)
		}
	case OPor:
		if left == 1 || right == 1 {
			return 1
		}
		if left == right {
			return b.quant(left, varset)
		}
		if left == 0 {
			return b.quant(right, varset)
		}
		if right == 0 {
			return b.quant(left, varset)
		}
	case OPxor:
		if left == right {
			return 0
		}
		if left == 0 {
			return b.quant(right, varset)
		}
		if right == 0 {
			return b.quant(left, varset)
		}
	case OPnand:
		if left == 0 || right == 0 {
			return 1
		}
	case OPnor:
		if left == 1 || right == 1 {
			return 0
		}
	default:
		b.seterror(ErrOperator, "unauthorized operation (%s) in appquant", Operator(b.appexcache.op))
		return -1
	}

	if left < 0 || right < 0 {
		return -1
	}

	// we deal with the other cases when the two operands are constants
	if (left < 2) && (right < 2) {
		return opres[b.appexcache.op][left][right]
	}

	// and the case where we have no more variables to quantify
	if (b.level(left) > b.quantlast) && (b.level(right) > b.quantlast) {
		oldop := b.applycache.op
		b.applycache.op = b.appexcache.op
		res := b.apply(left, right)
		b.applycache.op = oldop
		return res
	}

	// next we check if the operation is already in our cache
	if res := b.appexcache.matchappex(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res int
	if leftlvl == rightlvl {
		low := b.pushref(b.appquant(b.low(left), b.low(right), varset))
		high := b.pushref(b.appquant(b.high(left), b.high(right), varset))
		if b.invarset(leftlvl) {
			res = b.apply(low, high)
		} else {
			res = b.makenode(leftlvl, low, high)
		}
	} else {
		if leftlvl < rightlvl {
			low := b.pushref(b.appquant(b.low(left), right, varset))
			high := b.pushref(b.appquant(b.high(left), right, varset))
			if b.invarset(leftlvl) {
				res = b.apply(low, high)
			} else {
				res = b.makenode(leftlvl, low, high)
			}
		} else {
			low := b.pushref(b.appquant(left, b.low(right), varset))
			high := b.pushref(b.appquant(left, b.high(right), varset))
			if b.invarset(rightlvl) {
				res = b.apply(low, high)
			} else {
				res = b.makenode(rightlvl, low, high)
			}
		}
	}
	b.popref(2)
	return b.appexcache.setappex(left, right, res)
}

func (b *BDD) appuni(left, right, varset int) int {
	if left < 0 || right < 0 || varset < 0 {
		return -1
	}
	if b.level(left) > b.level(varset) && b.level(right) > b.level(varset) {
		// skipped a quantified variable, the answer is false
		return 0
	}

	if (left < 2) && (right < 2) {
		return opres[b.appexcache.op][left][right]
	}

	if varset < 2 {
		oldop := b.applycache.op
		b.applycache.op = b.appexcache.op
		res := b.apply(left, right)
		b.applycache.op = oldop
		return res
	}

	if res := b.appexcache.matchappex(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	lev := int32(-1)
	var low, high int
	if leftlvl == rightlvl {
		next := varset
		if leftlvl != b.level(varset) {
			lev = leftlvl
		} else {
			next = b.high(varset)
		}
		low = b.pushref(b.appuni(b.low(left), b.low(right), next))
		high = b.pushref(b.appuni(b.high(left), b.high(right), next))
	} else if leftlvl < rightlvl {
		next := varset
		if leftlvl != b.level(varset) {
			lev = leftlvl
		} else {
			next = b.high(varset)
		}
		low = b.pushref(b.appuni(b.low(left), right, next))
		high = b.pushref(b.appuni(b.high(left), right, next))
	} else {
		next := varset
		if rightlvl != b.level(varset) {
			lev = rightlvl
		} else {
			next = b.high(varset)
		}
		low = b.pushref(b.appuni(left, b.low(right), next))
		high = b.pushref(b.appuni(left, b.high(right), next))
	}
	var res int
	if lev == -1 {
		res = b.apply(low, high)
	} else {
		res = b.makenode(lev, low, high)
	}
	b.popref(2)
	return b.appexcache.setappex(left, right, res)
}

// relprodItr is the specialized kernel for the relational product, the very
// common case (∃ varset . l & r). Like andItr it runs on an explicit work
// stack so that the recursion depth stays bounded.
func (b *BDD) relprodItr(l0, r0, varset int) int {
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
			var res int
			if b.invarset(f.lev) {
				res = b.orRec(low, high)
			} else {
				res = b.makenode(f.lev, low, high)
			}
			b.popref(2)
			if res < 0 {
				b.refstack = b.refstack[:base]
				return -1
			}
			b.appexcache.setappex(f.l, f.r, res)
			b.pushref(res)
			continue
		}
		var res int
		switch {
		case f.l == 0 || f.r == 0:
			res = 0
		case f.l == f.r || f.r == 1:
			res = b.quant(f.l, varset)
		case f.l == 1:
			res = b.quant(f.r, varset)
		case f.l < 0 || f.r < 0:
			b.refstack = b.refstack[:base]
			return -1
		default:
			if b.level(f.l) > b.quantlast && b.level(f.r) > b.quantlast {
				res = b.andRec(f.l, f.r)
			} else {
				if res := b.appexcache.matchappex(f.l, f.r); res >= 0 {
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
				stack = append(stack, frame{l: f.l, r: f.r, lev: lev})
				stack = append(stack, frame{l: lh, r: rh, eval: true})
				stack = append(stack, frame{l: ll, r: rl, eval: true})
				continue
			}
		}
		if res < 0 {
			b.refstack = b.refstack[:base]
			return -1
		}
		b.pushref(res)
	}
	res := b.refstack[len(b.refstack)-1]
	b.popref(1)
	return res
}
