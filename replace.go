// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import "math"

// Pair is an association list used to substitute variables in a BDD, either
// by other variables (Replace) or by arbitrary functions (Veccompose). A pair
// carries an identity that partitions the replace cache, and it is registered
// with the engine so that its tables follow variable-count changes. A pair
// that is no longer needed should be released with Free.
type Pair struct {
	b      *BDD
	result []int // image handle for each level; identity when untouched
	last   int32 // highest level with a non-identity image
	id     int   // identity used in cache tags
}

// NewPair returns a fresh pair with the identity substitution.
func (b *BDD) NewPair() (*Pair, error) {
	if b.pairsid >= (math.MaxInt32 >> 2) {
		b.seterror(ErrRange, "too many pairs created")
		return nil, b.error
	}
	p := &Pair{b: b, id: b.pairsid, last: -1}
	b.pairsid++
	p.result = make([]int, b.varnum)
	for lev := range p.result {
		p.result[lev] = b.varset[b.level2var[lev]][0]
	}
	b.pairs = append(b.pairs, p)
	return p, nil
}

// NewReplacer returns a Pair substituting variable oldvars[k] with
// newvars[k]. We return an error if the two slices do not have the same
// length or if we find the same index twice in either of them. All values
// must be in [0..Varnum).
func (b *BDD) NewReplacer(oldvars, newvars []int) (*Pair, error) {
	if len(oldvars) != len(newvars) {
		b.seterror(ErrVarnum, "unmatched length of slices in call to NewReplacer")
		return nil, b.error
	}
	p, err := b.NewPair()
	if err != nil {
		return nil, err
	}
	support := make([]bool, b.varnum)
	for k, v := range oldvars {
		if v < 0 || int32(v) >= b.varnum {
			b.seterror(ErrVar, "invalid variable in oldvars (%d)", v)
			return nil, b.error
		}
		if support[v] {
			b.seterror(ErrVar, "duplicate variable (%d) in oldvars", v)
			return nil, b.error
		}
		support[v] = true
		if err := p.Set(v, newvars[k]); err != nil {
			return nil, err
		}
	}
	seen := make([]bool, b.varnum)
	for _, v := range newvars {
		if support[v] {
			b.seterror(ErrReplace, "variable (%d) occurs in both oldvars and newvars", v)
			return nil, b.error
		}
		if seen[v] {
			b.seterror(ErrVar, "duplicate variable (%d) in newvars", v)
			return nil, b.error
		}
		seen[v] = true
	}
	return p, nil
}

// Set maps oldvar to the variable newvar. Each Set bumps the pair identity so
// that stale cache entries cannot be mistaken for results of the new
// substitution.
func (p *Pair) Set(oldvar, newvar int) error {
	b := p.b
	if oldvar < 0 || int32(oldvar) >= b.varnum {
		b.seterror(ErrVar, "unknown variable (%d) in call to Set", oldvar)
		return b.error
	}
	if newvar < 0 || int32(newvar) >= b.varnum {
		b.seterror(ErrVar, "unknown variable (%d) in call to Set", newvar)
		return b.error
	}
	lev := b.var2level[oldvar]
	p.setimage(lev, b.varset[newvar][0])
	return p.bumpid()
}

// SetBdd maps oldvar to the function n. A pair holding function images can
// only be used with Veccompose.
func (p *Pair) SetBdd(oldvar int, n Node) error {
	b := p.b
	if oldvar < 0 || int32(oldvar) >= b.varnum {
		b.seterror(ErrVar, "unknown variable (%d) in call to SetBdd", oldvar)
		return b.error
	}
	if b.checkptr(n) != nil {
		b.seterror(ErrIllBdd, "wrong node in call to SetBdd (%d)", inspect(n))
		return b.error
	}
	lev := b.var2level[oldvar]
	b.addref(*n)
	p.setimage(lev, *n)
	return p.bumpid()
}

// setimage installs an image, releasing the anchor on the one it overwrites.
func (p *Pair) setimage(lev int32, image int) {
	b := p.b
	if old := p.result[lev]; old != b.varset[b.level2var[lev]][0] {
		b.delref(old)
	}
	p.result[lev] = image
	if lev > p.last {
		p.last = lev
	}
}

func (p *Pair) bumpid() error {
	b := p.b
	if b.pairsid >= (math.MaxInt32 >> 2) {
		b.seterror(ErrRange, "too many pair updates")
		return b.error
	}
	p.id = b.pairsid
	b.pairsid++
	return nil
}

// Reset restores the identity substitution.
func (p *Pair) Reset() {
	b := p.b
	for lev := range p.result {
		identity := b.varset[b.level2var[lev]][0]
		if p.result[lev] != identity {
			b.delref(p.result[lev])
		}
		p.result[lev] = identity
	}
	p.last = -1
}

// Free unregisters the pair from the engine and releases its images.
func (p *Pair) Free() {
	p.Reset()
	b := p.b
	for k, q := range b.pairs {
		if q == p {
			b.pairs = append(b.pairs[:k], b.pairs[k+1:]...)
			break
		}
	}
	p.b = nil
}

// pairsresize extends every registered pair with identity images for freshly
// added variables.
func (b *BDD) pairsresize(oldvarnum, varnum int32) {
	for _, p := range b.pairs {
		for lev := oldvarnum; lev < varnum; lev++ {
			p.result = append(p.result, b.varset[b.level2var[lev]][0])
		}
	}
}

// fixuppairs rotates the level-indexed pair tables after DuplicateVar
// inserted newvar at level lev+1. The tables have already been grown by the
// inner SetVarnum. Images that were variable literals are remapped to the
// rebuilt literal handles, since the duplication rewrote some literal nodes
// in place.
func (b *BDD) fixuppairs(lev int32, newvar int32, remap map[int]int) {
	for _, p := range b.pairs {
		for l := b.varnum - 2; l > lev; l-- {
			p.result[l+1] = p.result[l]
		}
		p.result[lev+1] = b.varset[newvar][0]
		if p.last > lev {
			p.last++
		}
		for l := range p.result {
			if nh, ok := remap[p.result[l]]; ok {
				p.result[l] = nh
			}
		}
	}
}

// Replace takes a pair built with Set (variable images only) and computes the
// result of n after replacing old variables with new ones. Replacing can
// reorder subtrees, so the correctify pass re-threads the children under the
// substituted level; substituting a variable that is already present below
// the replacement point fails with the replace error.
func (b *BDD) Replace(n Node, p *Pair) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Replace (%d)", inspect(n))
	}
	run := func() int {
		b.replacepair = p.result
		b.replacelast = p.last
		b.replacecache.id = (p.id << 2) | cacheidReplace
		return b.replace(*n)
	}
	b.initref()
	b.pushref(*n)
	res := run()
	if b.aborted() {
		res = b.retry(run)
	}
	b.popref(1)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) replace(n int) int {
	if n < 0 {
		return -1
	}
	if n < 2 || b.level(n) > b.replacelast {
		return n
	}
	if res := b.replacecache.matchreplace(n); res >= 0 {
		return res
	}
	low := b.pushref(b.replace(b.low(n)))
	high := b.pushref(b.replace(b.high(n)))
	res := b.correctify(b.level(b.replacepair[b.level(n)]), low, high)
	b.popref(2)
	return b.replacecache.setreplace(n, res)
}

// correctify builds the node (level, low, high) by re-threading the two
// subtrees when the new level is out of order with respect to them. Both
// subtrees mentioning the level is an error: the substitution would capture
// the variable.
func (b *BDD) correctify(level int32, low, high int) int {
	if low < 0 || high < 0 {
		return -1
	}
	if (level < b.level(low)) && (level < b.level(high)) {
		return b.makenode(level, low, high)
	}

	if (level == b.level(low)) || (level == b.level(high)) {
		b.seterror(ErrReplace, "replace: level %d would capture a variable of its own image", level)
		return -1
	}

	if b.level(low) == b.level(high) {
		left := b.pushref(b.correctify(level, b.low(low), b.low(high)))
		right := b.pushref(b.correctify(level, b.high(low), b.high(high)))
		res := b.makenode(b.level(low), left, right)
		b.popref(2)
		return res
	}

	if b.level(low) < b.level(high) {
		left := b.pushref(b.correctify(level, b.low(low), high))
		right := b.pushref(b.correctify(level, b.high(low), high))
		res := b.makenode(b.level(low), left, right)
		b.popref(2)
		return res
	}

	left := b.pushref(b.correctify(level, low, b.low(high)))
	right := b.pushref(b.correctify(level, low, b.high(high)))
	res := b.makenode(b.level(high), left, right)
	b.popref(2)
	return res
}

// Compose substitutes the BDD g for the variable v in f, the result of
// f[g/v].
func (b *BDD) Compose(f, g Node, v int) Node {
	if b.checkptr(f) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Compose (f: %d)", inspect(f))
	}
	if b.checkptr(g) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Compose (g: %d)", inspect(g))
	}
	if v < 0 || int32(v) >= b.varnum {
		return b.seterror(ErrVar, "unknown variable (%d) in call to Compose", v)
	}
	run := func() int {
		b.composelevel = b.var2level[v]
		b.replaceid = (int(b.composelevel) << 2) | cacheidCompose
		return b.compose(*f, *g)
	}
	b.initref()
	b.pushref(*f)
	b.pushref(*g)
	res := run()
	if b.aborted() {
		res = b.retry(run)
	}
	b.popref(2)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) compose(f, g int) int {
	if f < 0 || g < 0 {
		return -1
	}
	if b.level(f) > b.composelevel {
		return f
	}
	if res := b.composecache.matchcompose(f, g, b.replaceid); res >= 0 {
		return res
	}
	var res int
	if b.level(f) < b.composelevel {
		if b.level(f) == b.level(g) {
			low := b.pushref(b.compose(b.low(f), b.low(g)))
			high := b.pushref(b.compose(b.high(f), b.high(g)))
			res = b.makenode(b.level(f), low, high)
		} else if b.level(f) < b.level(g) {
			low := b.pushref(b.compose(b.low(f), g))
			high := b.pushref(b.compose(b.high(f), g))
			res = b.makenode(b.level(f), low, high)
		} else {
			low := b.pushref(b.compose(f, b.low(g)))
			high := b.pushref(b.compose(f, b.high(g)))
			res = b.makenode(b.level(g), low, high)
		}
		b.popref(2)
	} else {
		// level(f) == composelevel
		res = b.ite(g, b.high(f), b.low(f))
	}
	return b.composecache.setcompose(f, g, b.replaceid, res)
}

// Veccompose uses the pairs of variables and BDDs in p to make the
// simultaneous substitution f[g1/v1, ..., gn/vn]. In this way one or more
// BDDs may be substituted in one step, and the functions in p may depend on
// the variables they are substituting. Note that simultaneous substitution
// is not necessarily the same as repeated substitution:
//
//	(x1 | x2)[x3/x1, x4/x3]  =  x3 | x2
//	((x1 | x2)[x3/x1])[x4/x3]  =  x4 | x2
func (b *BDD) Veccompose(f Node, p *Pair) Node {
	if b.checkptr(f) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Veccompose (%d)", inspect(f))
	}
	run := func() int {
		b.replacepair = p.result
		b.replaceid = (p.id << 2) | cacheidVeccompose
		b.replacelast = p.last
		b.replacecache.id = b.replaceid
		return b.veccompose(*f)
	}
	b.initref()
	b.pushref(*f)
	res := run()
	if b.aborted() {
		res = b.retry(run)
	}
	b.popref(1)
	b.checkresize()
	return b.retnode(res)
}

func (b *BDD) veccompose(f int) int {
	if f < 0 {
		return -1
	}
	if b.level(f) > b.replacelast {
		return f
	}
	if res := b.replacecache.matchreplace(f); res >= 0 {
		return res
	}
	low := b.pushref(b.veccompose(b.low(f)))
	high := b.pushref(b.veccompose(b.high(f)))
	res := b.ite(b.replacepair[b.level(f)], high, low)
	b.popref(2)
	return b.replacecache.setreplace(f, res)
}
