// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import "math"

// makenode returns the handle of the unique node (level, low, high), either
// found in the unique table or freshly allocated. When the children are equal
// the node is redundant and low is returned unchanged, so the table never
// contains a non-reduced node.
//
// A negative result means the operation must unwind: either the engine error
// condition has been set (out of memory or node limit), or a variable
// reordering has been requested (b.reorderRequested), in which case the public
// entry point runs the reordering and retries. Recursive operators only have
// to propagate the negative handle; makenode itself refuses negative children
// so that no garbage enters the table on the way out.
func (b *BDD) makenode(level int32, low, high int) int {
	if _DEBUG {
		b.uniqueAccess++
	}
	if low == high {
		return low
	}
	if low < 0 || high < 0 {
		// an unwind is already in progress
		return -1
	}
	// otherwise try to find an existing node using the hash and next fields
	hash := b.nodehash(level, low, high)
	res := b.nodes[hash].hash
	for res != 0 {
		if b.level(res) == level && b.nodes[res].low == low && b.nodes[res].high == high {
			if _DEBUG {
				b.uniqueHit++
			}
			return res
		}
		res = b.nodes[res].next
		if _DEBUG {
			b.uniqueChain++
		}
	}
	if _DEBUG {
		b.uniqueMiss++
	}
	// If no existing node, we build one. If there is no available spot
	// (b.freepos == 0), we try garbage collection and, as a last resort,
	// resizing the node table.
	if b.freepos == 0 {
		if b.error != nil {
			return -1
		}
		// We garbage collect unused nodes to try and find spare space.
		b.gbc()
		// Reordering fires between the collection and the resize, so that an
		// armed reordering sees the smallest possible table.
		if (len(b.nodes)-b.freenum >= b.usednodesNextReorder) && b.reorderReady() {
			b.reorderRequested = true
			return -1
		}
		// We resize if we are under the threshold for free nodes.
		if (b.freenum*100)/len(b.nodes) <= b.minfreenodes {
			if err := b.noderesize(); err != nil {
				b.seterror(ErrNodenum, "unable to resize node table")
				return -1
			}
			hash = b.nodehash(level, low, high)
		}
		// Give up if we still have no free positions after all this.
		if b.freepos == 0 {
			b.seterror(ErrNodenum, "unable to allocate a new node")
			return -1
		}
	}
	// We can now build the new node in the first available spot.
	res = b.freepos
	b.freepos = b.nodes[b.freepos].next
	b.freenum--
	b.produced++
	b.nodes[res].level = level
	b.nodes[res].low = low
	b.nodes[res].high = high
	b.nodes[res].next = b.nodes[hash].hash
	b.nodes[hash].hash = res
	return res
}

// noderesize grows the node table by the configured increase factor (two by
// default), within the limits set with Maxnodeincrease and Maxnodesize. The
// grown capacity is rounded to a prime.
func (b *BDD) noderesize() error {
	oldsize := len(b.nodes)
	nodesize := len(b.nodes)
	if (oldsize >= b.maxnodesize) && (b.maxnodesize > 0) {
		return errMemory
	}
	if oldsize > (math.MaxInt32 / b.increasefactor) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize * b.increasefactor
	}
	if b.maxnodeincrease > 0 && nodesize > (oldsize+b.maxnodeincrease) {
		nodesize = oldsize + b.maxnodeincrease
	}
	if (nodesize > b.maxnodesize) && (b.maxnodesize > 0) {
		nodesize = b.maxnodesize
	}
	nodesize = primeLte(nodesize)
	if nodesize <= oldsize {
		return errMemory
	}
	b.growtable(nodesize)
	return nil
}

// growtable extends the node table to nodesize slots and rehashes every live
// node, rebuilding the free list on the way.
func (b *BDD) growtable(nodesize int) {
	oldsize := len(b.nodes)
	if _LOGLEVEL > 0 {
		blog.WithField("from", oldsize).WithField("to", nodesize).Debug("resizing node table")
	}
	if b.resizehandler != nil {
		b.resizehandler(oldsize, nodesize)
	}

	tmp := b.nodes
	b.nodes = make([]bddnode, nodesize)
	copy(b.nodes, tmp)

	for n := oldsize; n < nodesize; n++ {
		b.nodes[n].refcou = 0
		b.nodes[n].level = 0
		b.nodes[n].low = -1
	}

	// We recompute all the hashes since the bucket count changed, and rebuild
	// the free list while we are at it.
	for n := 0; n < nodesize; n++ {
		b.nodes[n].hash = 0
	}
	b.freepos = 0
	b.freenum = 0
	for n := nodesize - 1; n > 1; n-- {
		if b.nodes[n].low != -1 {
			hash := b.ptrhash(n)
			b.nodes[n].next = b.nodes[hash].hash
			b.nodes[hash].hash = n
		} else {
			b.nodes[n].next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}
	b.resizes++
	// caches follow the table size on the next checkresize
	b.resized = true
}
