// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

// Dynamic variable reordering is supplied by the caller through
// SetReorderHandler; what lives here is the coordination contract. makenode
// raises a non-local unwind (a negative handle plus the reorderRequested
// flag) when the used-node count crosses the threshold while reordering is
// armed. Every public operator entry catches the unwind, runs the reordering,
// and retries the whole operation exactly once with reordering disabled, so a
// second trigger cannot livelock the engine.

// reorderReady reports whether a reordering may fire right now.
func (b *BDD) reorderReady() bool {
	return b.reorderhandler != nil && b.reorderdisabled == 0 && b.error == nil
}

func (b *BDD) disablereorder() {
	b.reorderdisabled++
}

func (b *BDD) enablereorder() {
	b.reorderdisabled--
}

// aborted reports whether the last recursion unwound on a reorder request.
func (b *BDD) aborted() bool {
	return b.reorderRequested
}

// checkreorder runs the armed reordering and pushes the threshold back so
// that the next trigger waits for the table to grow again. Node levels may
// have changed, so every cache is dropped.
func (b *BDD) checkreorder() {
	b.reorderRequested = false
	if b.reorderhandler != nil {
		b.reorderhandler()
	}
	// do not reorder before twice as many nodes have been used
	b.usednodesNextReorder = 2 * (len(b.nodes) - b.freenum)
	b.cachereset()
}

// retry reruns an operation that unwound on a reorder request. A second
// request is suppressed by disabling reordering for the duration of the
// rerun; if the rerun still fails the error condition is already set and the
// negative handle propagates to the caller.
func (b *BDD) retry(f func() int) int {
	b.checkreorder()
	b.disablereorder()
	res := f()
	b.enablereorder()
	b.reorderRequested = false
	return res
}
