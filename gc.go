// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import "time"

// GCStat describes one garbage collection, as passed to the GC handler and
// kept in the collection history.
type GCStat struct {
	Nodes     int           // Size of the node table at collection time
	Freenodes int           // Number of free slots after the sweep
	Time      time.Duration // Duration of the collection
	Num       int           // Collections so far, this one included
}

// AddRef increases the reference count on node n and returns n so that calls
// can be easily chained together. A call to AddRef can never raise an error,
// even if we access an unused node or a value outside the range of the BDD.
//
// Reference counting is done on externally referenced nodes only; a node with
// a positive count (and everything reachable from it) survives garbage
// collection. The counter saturates: a node that reached the maximal count is
// pinned for the lifetime of the engine.
func (b *BDD) AddRef(n Node) Node {
	if n == nil || *n < 2 {
		return n
	}
	if *n >= len(b.nodes) {
		return n
	}
	if b.nodes[*n].low == -1 {
		return n
	}
	if b.nodes[*n].refcou < _MAXREFCOUNT {
		b.nodes[*n].refcou++
	}
	return n
}

// DelRef decreases the reference count on a node and returns n so that calls
// can be easily chained together. Dropping the count of an unreferenced or
// freed node sets the error condition.
func (b *BDD) DelRef(n Node) Node {
	if n == nil || *n < 2 {
		return n
	}
	if *n >= len(b.nodes) {
		return n
	}
	if b.nodes[*n].low == -1 {
		b.seterror(ErrIllBdd, "DelRef on a freed node (%d)", *n)
		return n
	}
	if b.nodes[*n].refcou <= 0 {
		b.seterror(ErrDeref, "DelRef on an unreferenced node (%d)", *n)
		return n
	}
	if b.nodes[*n].refcou < _MAXREFCOUNT {
		b.nodes[*n].refcou--
	}
	return n
}

// addref and delref are the internal, handle-level variants used to protect
// pair images and other internal anchors.

func (b *BDD) addref(n int) {
	if n >= 2 && b.nodes[n].refcou < _MAXREFCOUNT {
		b.nodes[n].refcou++
	}
}

func (b *BDD) delref(n int) {
	if n >= 2 && b.nodes[n].refcou > 0 && b.nodes[n].refcou < _MAXREFCOUNT {
		b.nodes[n].refcou--
	}
}

// gbc is the garbage collector called for reclaiming memory, inside a call to
// makenode, when there are no free positions available. It is a stop-the-world
// mark and sweep: the roots are the reference stack, which protects the
// intermediate results of the running operator, and every node with a positive
// reference count. Allocated nodes that are not reclaimed do not move. All the
// operation caches are cleared since their entries may point at reclaimed
// nodes.
func (b *BDD) gbc() {
	start := time.Now()
	if b.gchandler != nil {
		b.gchandler(true, GCStat{
			Nodes:     len(b.nodes),
			Freenodes: b.freenum,
			Num:       len(b.gchistory) + 1,
		})
	}
	// We could explicitly ask the Go runtime to run its own collection here,
	// so that handles dropped by the caller get their finalizer called and
	// their count decremented before we mark. This is blocking, and frequent
	// collections are time consuming, so we leave the runtime to its own
	// schedule.
	//
	// runtime.GC()

	// we mark the nodes in the refstack to avoid collecting them
	for _, r := range b.refstack {
		b.markrec(r)
	}
	// we also protect nodes with a positive refcount (and therefore also the
	// ones with a MAXREFCOUNT, such as the variable literals)
	for k := range b.nodes {
		if b.nodes[k].refcou > 0 {
			b.markrec(k)
		}
		b.nodes[k].hash = 0
	}
	b.freepos = 0
	b.freenum = 0
	// we do a pass through the nodes list to update the hash chains and void
	// the unmarked nodes. After finishing this pass, b.freepos points to the
	// first free position in b.nodes, or it is 0 if we found none.
	for n := len(b.nodes) - 1; n > 1; n-- {
		if b.ismarked(n) && (b.nodes[n].low != -1) {
			b.unmarknode(n)
			hash := b.ptrhash(n)
			b.nodes[n].next = b.nodes[hash].hash
			b.nodes[hash].hash = n
		} else {
			b.nodes[n].low = -1
			b.nodes[n].next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}
	// we also invalidate the caches
	b.cachereset()
	stat := GCStat{
		Nodes:     len(b.nodes),
		Freenodes: b.freenum,
		Time:      time.Since(start),
		Num:       len(b.gchistory) + 1,
	}
	b.gchistory = append(b.gchistory, stat)
	if b.gchandler != nil {
		b.gchandler(false, stat)
	}
	if _LOGLEVEL > 0 {
		blog.WithField("free", b.freenum).WithField("nodes", len(b.nodes)).Debug("garbage collection done")
	}
}

// GC explicitly starts a garbage collection of unused nodes.
func (b *BDD) GC() {
	b.gbc()
}

// The functions below manipulate the refstack, which prevents nodes that are
// currently being built (e.g. transient nodes built during an apply) from
// being reclaimed by gbc.

func (b *BDD) initref() {
	b.refstack = b.refstack[:0]
}

func (b *BDD) pushref(n int) int {
	b.refstack = append(b.refstack, n)
	return n
}

func (b *BDD) popref(a int) {
	b.refstack = b.refstack[:len(b.refstack)-a]
}
