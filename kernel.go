// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"runtime"
	"sync/atomic"
)

// _MINFREENODES is the minimal share of nodes (%) that has to be left after a
// garbage collection, otherwise we resize the node table.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of levels in the BDD. We use only the first 21
// bits of a node level for encoding levels (so also the max number of
// variables). We use 11 other bits for markings. Hence we make sure to always
// use int32 to avoid problem when we change architecture.
const _MAXVAR int32 = 0x1FFFFF

// _MAXREFCOUNT is the maximal value of the reference counter (refcou), also
// used to stick nodes (like constants and variables) in the node list. It is
// equal to 1023 (10 bits). A node whose counter reached this value is immortal
// until Done.
const _MAXREFCOUNT int32 = 0x3FF

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize, approx. one million nodes (1 048 576).
const _DEFAULTMAXNODEINC int = 1 << 20

// _SUPPORTMAX is the value at which the support change-counter recycles and
// the support array is zeroed again.
const _SUPPORTMAX int = 0x0FFFFFFF

// The two terminal nodes keep the handles 0 and 1 forever.
var bddzero, bddone Node

func init() {
	z, o := 0, 1
	bddzero, bddone = &z, &o
}

// Node is a reference to an element of a BDD. It represents the atomic unit of
// interactions and computations within a BDD. The constants True and False
// have the respective handles 1 and 0.
type Node *int

// node records live in nodes.go; the engine state below indexes into them.

// running guards the process-wide single-instance invariant: New fails while
// another engine is live.
var running int32

// BDD is an engine for computing with Binary Decision Diagrams. All the state
// of the unique node table, the operator caches and the variable table hangs
// from here; there can be only one live engine per process (see New and Done).
type BDD struct {
	nodes     []bddnode // List of all the BDD nodes. Constants are kept at index 0 and 1
	freepos   int       // First free node
	freenum   int       // Number of free nodes
	produced  int       // Total number of new nodes ever produced
	varnum    int32     // Number of defined variables
	varset    [][2]int  // Handles of the positive and negative literal of each variable
	var2level []int32   // Variable -> level in the current order
	level2var []int32   // Level -> variable, inverse of var2level
	refstack  []int     // Internal references protected from garbage collection
	error     error     // Error condition of the engine, nil when all is well
	errorcode ErrorCode

	// Caches and the per-call operator state they are keyed with; see cache.go.
	applycache   *applycache
	itecache     *itecache
	quantcache   *quantcache
	appexcache   *appexcache
	replacecache *replacecache
	composecache *composecache
	rescache     *rescache
	misccache    *misccache
	andcache     *binopcache
	orcache      *binopcache
	cachesize    int
	cacheratio   int

	quantset   []int32 // Current variable set for quantifications, per level
	quantsetID int32   // Current id used in quantset
	quantlast  int32   // Current last level to be quantified

	replacepair  []int // Current image, per level, during replace/veccompose
	replacelast  int32
	replaceid    int
	composelevel int32
	miscid       int
	satPolarity  int

	supportSet []int // Support array with its change counter
	supportID  int
	supportMin int32
	supportMax int32

	pairs   []*Pair // Registered pairs, fixed up on variable-table changes
	pairsid int

	minfreenodes    int
	maxnodesize     int
	maxnodeincrease int
	increasefactor  int

	nodefinalizer    interface{} // Finalizer used to decrement the ref count of external references
	gchistory        []GCStat
	resizes          int
	uniqueAccess     int // accesses to the unique node table
	uniqueChain      int // iterations through the hash chains in the unique node table
	uniqueHit        int // entries actually found in the the unique node table
	uniqueMiss       int // entries not found in the the unique node table
	setfinalizers    uint64
	calledfinalizers uint64

	errhandler     func(ErrorCode)
	gchandler      func(pre bool, stat GCStat)
	resizehandler  func(oldsize, newsize int)
	reorderhandler func()

	reorderdisabled      int
	usednodesNextReorder int
	reorderRequested     bool
	resized              bool
}

// New returns a new BDD engine with varnum variables. It is possible to set
// optional (configuration) parameters, such as the size of the initial node
// table (Nodesize) or the size for caches (Cachesize), using configs
// functions. The initial number of nodes is not critical since the table will
// be resized whenever there are too few nodes left after a garbage
// collection. But it does have some impact on the efficiency of the
// operations.
//
// There can be only one engine running in a process; New fails while a
// previous engine has not been released with Done.
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	if !atomic.CompareAndSwapInt32(&running, 0, 1) {
		return nil, ErrRunning
	}
	b := &BDD{}
	if (varnum < 1) || (varnum > int(_MAXVAR)) {
		atomic.StoreInt32(&running, 0)
		b.seterror(ErrVar, "bad number of variables (%d)", varnum)
		return nil, b.error
	}
	config := makeconfigs(varnum)
	for _, f := range options {
		f(config)
	}
	b.varnum = int32(varnum)
	b.varset = make([][2]int, varnum)
	b.var2level = make([]int32, varnum)
	b.level2var = make([]int32, varnum)
	for k := 0; k < varnum; k++ {
		b.var2level[k] = int32(k)
		b.level2var[k] = int32(k)
	}
	b.refstack = make([]int, 0, 2*varnum+4)
	b.initref()
	b.minfreenodes = config.minfreenodes
	b.maxnodesize = config.maxnodesize
	b.maxnodeincrease = config.maxnodeincrease
	b.increasefactor = config.increasefactor
	nodesize := primeGte(config.nodesize)
	b.nodes = make([]bddnode, nodesize)
	for k := range b.nodes {
		b.nodes[k] = bddnode{
			refcou: 0,
			level:  0,
			low:    -1,
			high:   0,
			hash:   0,
			next:   k + 1,
		}
	}
	b.nodes[nodesize-1].next = 0
	b.nodes[0].refcou = _MAXREFCOUNT
	b.nodes[1].refcou = _MAXREFCOUNT
	b.nodes[0].low = 0
	b.nodes[0].high = 0
	b.nodes[1].low = 1
	b.nodes[1].high = 1
	b.nodes[0].level = int32(varnum)
	b.nodes[1].level = int32(varnum)
	b.freepos = 2
	b.freenum = nodesize - 2
	b.usednodesNextReorder = nodesize
	b.gchistory = []GCStat{}
	b.gchandler = defaultGCHandler
	b.errhandler = defaultErrorHandler
	b.nodefinalizer = func(n *int) {
		// the engine may have been released before the runtime runs us
		if b.nodes == nil {
			return
		}
		if _DEBUG {
			atomic.AddUint64(&b.calledfinalizers, 1)
			if _LOGLEVEL > 2 {
				blog.Debugf("dec refcou %d", *n)
			}
		}
		b.nodes[*n].refcou--
	}
	for k := 0; k < varnum; k++ {
		v0 := b.makenode(int32(k), 0, 1)
		if v0 < 0 {
			atomic.StoreInt32(&running, 0)
			b.seterror(ErrMemory, "cannot allocate variable %d in New", k)
			return nil, b.error
		}
		b.nodes[v0].refcou = _MAXREFCOUNT
		b.pushref(v0)
		v1 := b.makenode(int32(k), 1, 0)
		if v1 < 0 {
			atomic.StoreInt32(&running, 0)
			b.seterror(ErrMemory, "cannot allocate variable %d in New", k)
			return nil, b.error
		}
		b.nodes[v1].refcou = _MAXREFCOUNT
		b.popref(1)
		b.varset[k] = [2]int{v0, v1}
	}
	b.cacheinit(config)
	b.supportSet = make([]int, varnum)
	return b, nil
}

// Done releases the engine so that a new one can be created. Any Node obtained
// from the engine is invalid afterwards.
func (b *BDD) Done() {
	b.nodes = nil
	b.varset = nil
	b.pairs = nil
	b.supportSet = nil
	b.cachedone()
	atomic.StoreInt32(&running, 0)
}

// IsRunning reports whether an engine is currently live in this process.
func IsRunning() bool {
	return atomic.LoadInt32(&running) == 1
}

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// NodeNum returns the number of nodes currently in use in the node table.
func (b *BDD) NodeNum() int {
	return len(b.nodes) - b.freenum
}

// AllocNum returns the number of slots allocated in the node table, used or
// not.
func (b *BDD) AllocNum() int {
	return len(b.nodes)
}

// True returns the constant true BDD.
func (b *BDD) True() Node {
	return bddone
}

// False returns the constant false BDD.
func (b *BDD) False() Node {
	return bddzero
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return bddone
	}
	return bddzero
}

// Ithvar returns a BDD representing the i'th variable on success. The
// requested variable must be in the range [0..Varnum).
func (b *BDD) Ithvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		return b.seterror(ErrVar, "unknown variable (%d) in call to Ithvar", i)
	}
	// the literals are pinned with a saturated counter, so we do not need to
	// track the reference
	return inode(b.varset[i][0])
}

// NIthvar returns a BDD representing the negation of the i'th variable on
// success. See Ithvar for further info.
func (b *BDD) NIthvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		return b.seterror(ErrVar, "unknown variable (%d) in call to NIthvar", i)
	}
	return inode(b.varset[i][1])
}

// Var returns the variable labeling node n, or -1 with the error condition
// set if n is a constant or invalid node.
func (b *BDD) Var(n Node) int {
	if b.checkptr(n) != nil {
		b.seterror(ErrIllBdd, "wrong operand in call to Var (%d)", inspect(n))
		return -1
	}
	if *n < 2 {
		b.seterror(ErrIllBdd, "constant node in call to Var")
		return -1
	}
	return int(b.level2var[b.level(*n)])
}

// Low returns the false branch of a BDD, or nil if there is an error.
func (b *BDD) Low(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to Low (%d)", inspect(n))
	}
	if *n < 2 {
		return b.seterror(ErrIllBdd, "constant node in call to Low")
	}
	return b.retnode(b.low(*n))
}

// High returns the true branch of a BDD, or nil if there is an error.
func (b *BDD) High(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror(ErrIllBdd, "wrong operand in call to High (%d)", inspect(n))
	}
	if *n < 2 {
		return b.seterror(ErrIllBdd, "constant node in call to High")
	}
	return b.retnode(b.high(*n))
}

// Equal tests equivalence between nodes. Because of canonicity two nodes
// compute the same function exactly when their handles are equal.
func (b *BDD) Equal(n1, n2 Node) bool {
	if n1 == n2 {
		return true
	}
	if n1 == nil || n2 == nil {
		return false
	}
	return *n1 == *n2
}

// level, low and high are the raw accessors used by the recursive operators.

func (b *BDD) level(n int) int32 {
	return b.nodes[n].level & _MAXVAR
}

func (b *BDD) low(n int) int {
	return b.nodes[n].low
}

func (b *BDD) high(n int) int {
	return b.nodes[n].high
}

// checkptr checks that a node is a valid reference into the node table and
// reports the engine error condition otherwise. Operators call it on each of
// their operands, so that a previous error short-circuits every computation
// until ClearError is called.
func (b *BDD) checkptr(n Node) error {
	if b.error != nil {
		return b.error
	}
	if n == nil {
		b.seterror(ErrIllBdd, "nil node")
		return b.error
	}
	if (*n < 0) || (*n >= len(b.nodes)) {
		b.seterror(ErrRange, "node handle (%d) out of range", *n)
		return b.error
	}
	if (*n >= 2) && (b.nodes[*n].low == -1) {
		b.seterror(ErrIllBdd, "node (%d) is not in the node table", *n)
		return b.error
	}
	return nil
}

// inspect gives a printable handle for error messages, also for nil nodes.
func inspect(n Node) int {
	if n == nil {
		return -1
	}
	return *n
}

// inode wraps a pinned handle (a constant or a variable literal) without
// touching its reference count.
func inode(n int) Node {
	if n == 0 {
		return bddzero
	}
	if n == 1 {
		return bddone
	}
	x := n
	return &x
}

// retnode creates a Node for external use and sets a finalizer on it so that
// we can reclaim the resource during garbage collection, once the Go runtime
// can prove that the handle is unreachable.
func (b *BDD) retnode(n int) Node {
	if n < 0 || n >= len(b.nodes) {
		if _DEBUG && n >= len(b.nodes) {
			blog.Panicf("b.retnode(%d) not valid", n)
		}
		return nil
	}
	if n == 0 {
		return bddzero
	}
	if n == 1 {
		return bddone
	}
	x := n
	if b.nodes[n].refcou < _MAXREFCOUNT {
		b.nodes[n].refcou++
		runtime.SetFinalizer(&x, b.nodefinalizer)
		if _DEBUG {
			atomic.AddUint64(&b.setfinalizers, 1)
			if _LOGLEVEL > 2 {
				blog.Debugf("inc refcou %d", n)
			}
		}
	}
	return &x
}
