// Copyright (c) 2026 The buddy-go authors
//
// MIT License

/*
Package buddy implements Reduced Ordered Binary Decision Diagrams (ROBDD), a
canonical data structure used to efficiently represent Boolean functions over
a fixed, extensible set of variables; or equivalently sets of Boolean vectors
with a fixed size.

# Basics

An engine is created with New, giving the initial number of variables. Each
variable is represented by an integer index in the interval [0..Varnum); its
position in the current ordering is called its level. Most operations return a
Node, a handle on a vertex of the shared node table; the handles 0 and 1 are
reserved for the constant functions False and True. A node records a level and
the handles of its low and high branches, and the table is hash-consed: two
nodes computing the same function are always the same handle, so equality of
functions is equality of handles.

Data structures and algorithms implemented in this package are a direct
adaptation of those found in the BuDDy C library by Jorn Lind-Nielsen: a node
arena doubling as an open-addressing unique table, direct-mapped operation
caches, a mark and sweep garbage collector rooted in the reference counts and
the internal reference stack, and the classic operator set (apply, ite,
quantifications and their fused apply-quantify variants, substitution by
pairs, restriction, satisfiability enumeration and counting).

# Memory management

References held by user code are tracked automatically: every returned Node
carries a finalizer that releases its claim once the Go runtime proves the
handle unreachable. The explicit AddRef and DelRef calls remain available for
code that wants deterministic pinning. Nodes that are neither referenced nor
reachable from a live node are reclaimed by the internal garbage collector
when the table runs full; the table grows when collection does not free
enough.

# Dynamic reordering

The engine does not ship reordering heuristics, but it implements the
coordination they need: a handler registered with SetReorderHandler may fire
in the middle of any operation once the used-node count crosses a threshold;
the operation unwinds, the handler runs, and the operation is retried once.

To get access to statistics about caches and garbage collection, as well as to
unlock logging of some internal events, compile with the build tag `debug`.
*/
package buddy
