// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

// configs is used to store the values of different parameters of the BDD.
type configs struct {
	varnum          int // number of BDD variables
	nodesize        int // initial number of nodes in the table
	cachesize       int // initial cache size (general)
	cacheratio      int // ratio (%) between cache size and node table, 0 if the caches never grow
	maxnodesize     int // maximum total number of nodes (0 if no limit)
	maxnodeincrease int // maximum number of nodes added at each resize (0 if no limit)
	minfreenodes    int // minimum share (%) of free nodes left after GC before triggering a resize
	increasefactor  int // growth factor of the node table, 2 by default
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	c.increasefactor = 2
	// we build enough nodes to include all the variable literals
	c.nodesize = 2*varnum + 2
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial size for the node table. The size of the BDD can
// increase during computation. By default we create a table large enough to
// include the two constants and the "variables" used in the calls to Ithvar
// and NIthvar.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in New
// it sets a limit to the number of nodes in the BDD. An operation trying to
// raise the number of nodes above this limit will generate an error and return
// a nil Node. The default value (0) means that there is no limit. In which
// case allocation can panic if we exhaust all the available memory.
func Maxnodesize(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease is a configuration option (function). Used as a parameter in
// New it sets a limit on the increase in size of the node table. Below this
// limit we typically double the size of the node list each time we need to
// resize it. The default value is about a million nodes. Set the value to zero
// to avoid imposing a limit.
func Maxnodeincrease(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Minfreenodes is a configuration option (function). Used as a parameter in
// New it sets the ratio of free nodes (%) that has to be left after a garbage
// collection event. When there is not enough free nodes in the BDD, we try
// reclaiming unused nodes. With a ratio of, say 25, we resize the table if the
// number of free nodes is less than 25% of the capacity of the table (see
// Maxnodesize and Maxnodeincrease). The default value is 20%.
func Minfreenodes(ratio int) func(*configs) {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the initial number of entries in the operation caches. The default
// value is 10 000. Typical values for nodesize are 10 000 nodes for small test
// examples and up to 1 000 000 nodes for large examples. See also the
// Cacheratio config.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio is a configuration option (function). Used as a parameter in New
// it sets a "cache ratio" (%) so that caches can grow each time we resize the
// node table. With a cache ratio of r, we have r available entries in the
// cache for every 100 slots in the node table. (A typical value for the cache
// ratio is 25% or 20%). The default value (0) means that the cache size never
// grows.
func Cacheratio(ratio int) func(*configs) {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}

// Increasefactor is a configuration option (function). Used as a parameter in
// New it sets the factor by which the node table grows at each resize, within
// the bounds given with Maxnodeincrease and Maxnodesize. The default is to
// double the table.
func Increasefactor(factor int) func(*configs) {
	return func(c *configs) {
		if factor > 1 {
			c.increasefactor = factor
		}
	}
}

// The setters below adjust the same parameters on a running engine.

// SetCacheratio sets the cache ratio (%) between the node table and the
// operation caches, and resizes the caches accordingly. It returns the
// previous ratio, or an error when the argument is not positive.
func (b *BDD) SetCacheratio(r int) (int, error) {
	if r <= 0 {
		b.seterror(ErrRange, "bad ratio (%d) in call to SetCacheratio", r)
		return 0, b.error
	}
	old := b.cacheratio
	b.cacheratio = r
	b.applycache.ratio = r
	b.itecache.ratio = r
	b.quantcache.ratio = r
	b.appexcache.ratio = r
	b.replacecache.ratio = r
	b.composecache.ratio = r
	b.rescache.ratio = r
	b.misccache.ratio = r
	b.andcache.ratio = r
	b.orcache.ratio = r
	b.cacheresize(len(b.nodes))
	return old, nil
}

// SetMaxincrease sets the maximum number of nodes by which the table may grow
// in one resize, returning the previous bound. Zero removes the bound.
func (b *BDD) SetMaxincrease(size int) (int, error) {
	if size < 0 {
		b.seterror(ErrSize, "bad size (%d) in call to SetMaxincrease", size)
		return 0, b.error
	}
	old := b.maxnodeincrease
	b.maxnodeincrease = size
	return old, nil
}

// SetMaxnodenum sets a cap on the total number of nodes, returning the
// previous cap. The cap cannot be set under the current table size; zero
// removes it.
func (b *BDD) SetMaxnodenum(size int) (int, error) {
	if size > 0 && size < len(b.nodes) {
		b.seterror(ErrNodes, "cannot set a maximum (%d) under the current table size (%d)", size, len(b.nodes))
		return 0, b.error
	}
	old := b.maxnodesize
	b.maxnodesize = size
	return old, nil
}

// SetIncreasefactor sets the growth factor of the node table, returning the
// previous factor.
func (b *BDD) SetIncreasefactor(factor int) (int, error) {
	if factor < 2 {
		b.seterror(ErrRange, "bad factor (%d) in call to SetIncreasefactor", factor)
		return 0, b.error
	}
	old := b.increasefactor
	b.increasefactor = factor
	return old, nil
}

// SetAllocNum grows the node table to at least size slots right away,
// returning the previous allocation. The table cannot shrink under the
// current allocation.
func (b *BDD) SetAllocNum(size int) (int, error) {
	old := len(b.nodes)
	if size < old {
		b.seterror(ErrNodes, "cannot allocate fewer nodes (%d) than already allocated (%d)", size, old)
		return old, b.error
	}
	if size > old {
		b.growtable(primeGte(size))
		b.checkresize()
	}
	return old, nil
}

// SetMinfreenodes sets the share of free nodes (%) required after a garbage
// collection, returning the previous share.
func (b *BDD) SetMinfreenodes(mf int) (int, error) {
	if mf < 0 || mf > 100 {
		b.seterror(ErrRange, "bad ratio (%d) in call to SetMinfreenodes", mf)
		return 0, b.error
	}
	old := b.minfreenodes
	b.minfreenodes = mf
	return old, nil
}
