// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

// SetVarnum sets the number of BDD variables. It may be called more than one
// time, but only to increase the number of variables; the new variables sit
// at the bottom of the current order.
func (b *BDD) SetVarnum(num int) error {
	oldvarnum := b.varnum
	inum := int32(num)
	if (inum < 1) || (inum > _MAXVAR) {
		b.seterror(ErrVar, "bad number of variables (%d) in call to SetVarnum", inum)
		return b.error
	}
	if inum < b.varnum {
		b.seterror(ErrDecvnum, "trying to decrease the number of variables in SetVarnum (from %d to %d)", b.varnum, inum)
		return b.error
	}
	if inum == b.varnum {
		return b.error
	}

	tmpset := b.varset
	b.varset = make([][2]int, inum)
	copy(b.varset, tmpset)
	tmpmap := b.var2level
	b.var2level = make([]int32, inum)
	copy(b.var2level, tmpmap)
	tmpmap = b.level2var
	b.level2var = make([]int32, inum)
	copy(b.level2var, tmpmap)

	// constants always have the highest level
	b.nodes[0].level = inum
	b.nodes[1].level = inum

	b.refstack = make([]int, 0, 2*inum+4)
	b.initref()
	b.disablereorder()
	for ; b.varnum < inum; b.varnum++ {
		v0 := b.makenode(b.varnum, 0, 1)
		if v0 < 0 {
			b.varnum = oldvarnum
			b.enablereorder()
			b.seterror(ErrMemory, "cannot allocate new variable %d in SetVarnum", b.varnum)
			return b.error
		}
		b.pushref(v0)
		v1 := b.makenode(b.varnum, 1, 0)
		if v1 < 0 {
			b.varnum = oldvarnum
			b.enablereorder()
			b.seterror(ErrMemory, "cannot allocate new variable %d in SetVarnum", b.varnum)
			return b.error
		}
		b.popref(1)
		b.nodes[v0].refcou = _MAXREFCOUNT
		b.nodes[v1].refcou = _MAXREFCOUNT
		b.varset[b.varnum] = [2]int{v0, v1}
		b.var2level[b.varnum] = b.varnum
		b.level2var[b.varnum] = b.varnum
	}
	b.enablereorder()

	b.pairsresize(oldvarnum, inum)
	// the per-level scratch tables follow, and the cached counting results
	// are no longer valid
	b.operatorsvarresize()
	b.checkresize()
	if _LOGLEVEL > 0 {
		blog.WithField("varnum", b.varnum).Debug("variable count extended")
	}
	return nil
}

// ExtVarnum extends the current number of allocated BDD variables with num
// extra variables.
func (b *BDD) ExtVarnum(num int) error {
	if (num < 0) || (num > 0x3FFFFFFF) {
		b.seterror(ErrRange, "bad choice of value (%d) when extending varnum in ExtVarnum", num)
		return b.error
	}
	return b.SetVarnum(int(b.varnum) + num)
}

// DuplicateVar inserts a fresh variable immediately below v in the level
// ordering and returns it. Every node over a variable ordered below v moves
// one level down, and every node labeled by v is rewritten into a pair of
// nodes so that the original function is recovered by fixing the new
// variable to false. Reordering is kept disabled for the whole protocol, and
// the registered pairs are fixed up at the end.
func (b *BDD) DuplicateVar(v int) (int, error) {
	if v < 0 || int32(v) >= b.varnum {
		b.seterror(ErrVar, "unknown variable (%d) in call to DuplicateVar", v)
		return -1, b.error
	}
	b.disablereorder()
	defer b.enablereorder()
	newvar := int(b.varnum)
	lev := b.var2level[v]
	if err := b.SetVarnum(int(b.varnum) + 1); err != nil {
		return -1, err
	}
	// the literals just built for the fresh variable live at the old top
	// level, where insertlevel is about to move the nodes ordered below v.
	// They are rebuilt at their final level once the maps are rotated; drop
	// the temporaries now so that the moved nodes cannot duplicate their
	// triples.
	for _, h := range b.varset[newvar] {
		b.unlinknode(h, b.level(h), b.low(h), b.high(h))
		b.nodes[h].refcou = 0
		b.nodes[h].low = -1
		b.nodes[h].next = b.freepos
		b.freepos = h
		b.freenum++
	}
	b.insertlevel(lev)
	if err := b.duplevel(lev); err != nil {
		return -1, err
	}
	// rotate the variable <-> level bijection around the inserted level
	for i := range b.var2level {
		if b.var2level[i] > lev && b.var2level[i] < b.varnum {
			b.var2level[i]++
		}
	}
	b.var2level[newvar] = lev + 1
	for i := b.varnum - 2; i > lev; i-- {
		b.level2var[i+1] = b.level2var[i]
	}
	b.level2var[lev+1] = int32(newvar)
	// rebuild the literal cache of every variable against the new order; the
	// duplicated variable's literals were rewritten in place by duplevel, so
	// the old handles are remembered to patch the pair tables
	oldvarset := make([][2]int, len(b.varset))
	copy(oldvarset, b.varset)
	for k := 0; k < int(b.varnum); k++ {
		v0 := b.pushref(b.makenode(b.var2level[k], 0, 1))
		v1 := b.makenode(b.var2level[k], 1, 0)
		b.popref(1)
		if v0 < 0 || v1 < 0 {
			b.seterror(ErrMemory, "cannot rebuild variable %d in DuplicateVar", k)
			return -1, b.error
		}
		b.nodes[v0].refcou = _MAXREFCOUNT
		b.nodes[v1].refcou = _MAXREFCOUNT
		b.varset[k] = [2]int{v0, v1}
	}
	remap := make(map[int]int, 2*len(oldvarset))
	for v := range oldvarset {
		remap[oldvarset[v][0]] = b.varset[v][0]
		remap[oldvarset[v][1]] = b.varset[v][1]
	}
	b.fixuppairs(lev, int32(newvar), remap)
	// node levels moved, so none of the cached results can be trusted
	b.cachereset()
	return newvar, nil
}

// unlinknode removes n from the hash chain of the bucket for (level, low,
// high); the caller is about to change one of the three.
func (b *BDD) unlinknode(n int, level int32, low, high int) {
	hash := b.nodehash(level, low, high)
	r := b.nodes[hash].hash
	r2 := 0
	for r != n && r != 0 {
		r2 = r
		r = b.nodes[r].next
	}
	if r2 == 0 {
		b.nodes[hash].hash = b.nodes[n].next
	} else {
		b.nodes[r2].next = b.nodes[n].next
	}
}

// linknode inserts n at the head of its current bucket chain.
func (b *BDD) linknode(n int) {
	hash := b.ptrhash(n)
	b.nodes[n].next = b.nodes[hash].hash
	b.nodes[hash].hash = n
}

// insertlevel pushes every node strictly under levToInsert one level down,
// re-threading the hash chains as the levels change. The literal nodes of the
// just-appended variable (at the last level) stay in place; they are rebuilt
// by the caller.
func (b *BDD) insertlevel(levToInsert int32) {
	for n := 2; n < len(b.nodes); n++ {
		if b.low(n) == -1 {
			continue
		}
		lev := b.level(n)
		if lev <= levToInsert || lev == b.varnum-1 {
			continue
		}
		b.unlinknode(n, lev, b.low(n), b.high(n))
		b.nodes[n].level = lev + 1
		b.linknode(n)
	}
}

// duplevel rewrites each node labeled by the level levToInsert, interposing
// the fresh variable at levToInsert+1 on both branches with the polarity that
// keeps the original function when the new variable is false.
func (b *BDD) duplevel(levToInsert int32) error {
	for n := 2; n < len(b.nodes); n++ {
		if b.low(n) == -1 {
			continue
		}
		if b.level(n) != levToInsert || b.level(n) == b.varnum-1 {
			continue
		}
		lo := b.low(n)
		hi := b.high(n)
		// the node must survive a collection triggered by the two makenode
		b.addref(n)
		nlow := b.pushref(b.makenode(levToInsert+1, lo, 0))
		nhigh := b.makenode(levToInsert+1, hi, 0)
		b.popref(1)
		b.delref(n)
		if nlow < 0 || nhigh < 0 {
			b.seterror(ErrMemory, "cannot duplicate level %d", levToInsert)
			return b.error
		}
		b.unlinknode(n, levToInsert, lo, hi)
		b.nodes[n].low = nlow
		b.nodes[n].high = nhigh
		b.linknode(n)
	}
	return nil
}
