// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

// SetErrorHandler registers a function invoked each time an operation records
// an error condition. The previous handler is returned. The default handler
// logs the condition; install a panicking handler to get the fail-stop
// behavior of the original C library.
func (b *BDD) SetErrorHandler(f func(ErrorCode)) func(ErrorCode) {
	old := b.errhandler
	b.errhandler = f
	return old
}

// SetGCHandler registers a function invoked around each garbage collection,
// once before the mark phase (pre is true) and once after the sweep (pre is
// false, stat filled in). The previous handler is returned.
func (b *BDD) SetGCHandler(f func(pre bool, stat GCStat)) func(bool, GCStat) {
	old := b.gchandler
	b.gchandler = f
	return old
}

// SetResizeHandler registers a function invoked before each growth of the
// node table, with the old and new capacities. The previous handler is
// returned.
func (b *BDD) SetResizeHandler(f func(oldsize, newsize int)) func(int, int) {
	old := b.resizehandler
	b.resizehandler = f
	return old
}

// SetReorderHandler arms dynamic variable reordering: when the used-node
// count crosses the reorder threshold, the operation in flight unwinds, f is
// run, and the operation is retried once. The handler is expected to permute
// variables through the engine primitives only; the engine takes care of
// invalidating the caches. Passing nil disarms reordering. The previous
// handler is returned.
func (b *BDD) SetReorderHandler(f func()) func() {
	old := b.reorderhandler
	b.reorderhandler = f
	return old
}

func defaultErrorHandler(code ErrorCode) {
	blog.WithField("code", int(code)).Debug(code.Error())
}

func defaultGCHandler(pre bool, stat GCStat) {
	if !pre {
		blog.WithField("num", stat.Num).
			WithField("free", stat.Freenodes).
			WithField("nodes", stat.Nodes).
			WithField("took", stat.Time).
			Debug("garbage collection")
	}
}
