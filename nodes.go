// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

// bddnode is a node table entry. The level field doubles as the mark bit used
// during traversals (bit 21, above the _MAXVAR range). A free slot has its low
// field set to -1 and its next field threading the free list.
type bddnode struct {
	refcou int32 // Count the number of external references
	level  int32 // Order of the variable in the BDD, plus the mark bit
	low    int   // Reference to the false branch, -1 when the slot is free
	high   int   // Reference to the true branch
	hash   int   // Head of the chain of nodes hashed to this slot
	next   int   // Next node to check in case of a collision, 0 if last
}

func (b *BDD) ismarked(n int) bool {
	return (b.nodes[n].level & 0x200000) != 0
}

func (b *BDD) marknode(n int) {
	b.nodes[n].level = b.nodes[n].level | 0x200000
}

func (b *BDD) unmarknode(n int) {
	b.nodes[n].level = b.nodes[n].level & _MAXVAR
}

// markrec marks all the nodes reachable from n.
func (b *BDD) markrec(n int) {
	if n < 2 || b.ismarked(n) || (b.nodes[n].low == -1) {
		return
	}
	b.marknode(n)
	b.markrec(b.nodes[n].low)
	b.markrec(b.nodes[n].high)
}

// unmarkrec undoes a markrec from the same root.
func (b *BDD) unmarkrec(n int) {
	if n < 2 || !b.ismarked(n) || (b.nodes[n].low == -1) {
		return
	}
	b.unmarknode(n)
	b.unmarkrec(b.nodes[n].low)
	b.unmarkrec(b.nodes[n].high)
}

// markcount marks the nodes reachable from n and adds their number to *cou.
func (b *BDD) markcount(n int, cou *int) {
	if n < 2 || b.ismarked(n) || (b.nodes[n].low == -1) {
		return
	}
	b.marknode(n)
	*cou++
	b.markcount(b.nodes[n].low, cou)
	b.markcount(b.nodes[n].high, cou)
}

func (b *BDD) unmarkall() {
	for k, v := range b.nodes {
		if k < 2 || !b.ismarked(k) || (v.low == -1) {
			continue
		}
		b.unmarknode(k)
	}
}
