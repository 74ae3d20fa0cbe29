// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"fmt"
	"unsafe"

	"github.com/c2h5oh/datasize"
)

// The operator caches are direct-mapped memo tables: writes never chain, an
// insert simply overwrites whatever was in the slot. An entry is only a hint;
// a reader validates the full key (and the operation tag for parameterized
// operators) before trusting the result. All caches are cleared on garbage
// collection, and the misc cache additionally on every variable-count change.

// Tag modifiers for the replace/compose/veccompose cache.
const cacheidReplace int = 0x0
const cacheidCompose int = 0x1
const cacheidVeccompose int = 0x2

// Tag modifiers for quantification.
const cacheidExist int = 0x0
const cacheidForall int = 0x1
const cacheidUnique int = 0x2
const cacheidAppex int = 0x3
const cacheidAppall int = 0x4
const cacheidAppuni int = 0x5

// Tag modifiers for the restrict/constrain and misc caches.
const cacheidConstrain int = 0x0
const cacheidRestrict int = 0x1
const cacheidSatcou int = 0x2
const cacheidSatcouln int = 0x3
const cacheidPathcou int = 0x4

// data4n is a cache entry with a three-part key and a node result.
type data4n struct {
	res int
	a   int
	b   int
	c   int
}

type data4ncache struct {
	ratio  int
	opHit  int // entries found in the cache
	opMiss int // entries not found in the cache
	table  []data4n
}

func (bc *data4ncache) init(size, ratio int) {
	size = primeGte(size)
	bc.table = make([]data4n, size)
	bc.ratio = ratio
	bc.reset()
}

func (bc *data4ncache) resize(nodesize int) {
	if bc.ratio > 0 {
		size := primeGte((nodesize * bc.ratio) / 100)
		bc.table = make([]data4n, size)
	}
	bc.reset()
}

func (bc *data4ncache) reset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// data3n is a smaller entry for caches keyed by a pair only.
type data3n struct {
	res int
	a   int
	c   int
}

type data3ncache struct {
	ratio  int
	opHit  int
	opMiss int
	table  []data3n
}

func (bc *data3ncache) init(size, ratio int) {
	size = primeGte(size)
	bc.table = make([]data3n, size)
	bc.ratio = ratio
	bc.reset()
}

func (bc *data3ncache) resize(nodesize int) {
	if bc.ratio > 0 {
		size := primeGte((nodesize * bc.ratio) / 100)
		bc.table = make([]data3n, size)
	}
	bc.reset()
}

func (bc *data3ncache) reset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// data4d is a cache entry with a numeric (float64) payload, used for the
// counting operations. The operation id stored in the key says how to read
// the payload.
type data4d struct {
	dres float64
	a    int
	c    int
}

type data4dcache struct {
	ratio  int
	opHit  int
	opMiss int
	table  []data4d
}

func (bc *data4dcache) init(size, ratio int) {
	size = primeGte(size)
	bc.table = make([]data4d, size)
	bc.ratio = ratio
	bc.reset()
}

func (bc *data4dcache) resize(nodesize int) {
	if bc.ratio > 0 {
		size := primeGte((nodesize * bc.ratio) / 100)
		bc.table = make([]data4d, size)
	}
	bc.reset()
}

func (bc *data4dcache) reset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// Setup and shutdown.

func (b *BDD) cacheinit(c *configs) {
	size := 10000
	if c.cachesize != 0 {
		size = c.cachesize
	}
	b.cachesize = primeGte(size)
	b.cacheratio = c.cacheratio
	b.applycache = &applycache{}
	b.applycache.init(b.cachesize, c.cacheratio)
	b.itecache = &itecache{}
	b.itecache.init(b.cachesize, c.cacheratio)
	b.quantcache = &quantcache{}
	b.quantcache.init(b.cachesize, c.cacheratio)
	b.appexcache = &appexcache{}
	b.appexcache.init(b.cachesize, c.cacheratio)
	b.replacecache = &replacecache{}
	b.replacecache.init(b.cachesize, c.cacheratio)
	b.composecache = &composecache{}
	b.composecache.init(b.cachesize, c.cacheratio)
	b.rescache = &rescache{}
	b.rescache.init(b.cachesize, c.cacheratio)
	b.misccache = &misccache{}
	b.misccache.init(b.cachesize, c.cacheratio)
	b.andcache = &binopcache{}
	b.andcache.init(b.cachesize, c.cacheratio)
	b.orcache = &binopcache{}
	b.orcache.init(b.cachesize, c.cacheratio)
	b.quantset = make([]int32, b.varnum)
	b.quantsetID = 0
}

func (b *BDD) cachereset() {
	b.applycache.reset()
	b.itecache.reset()
	b.quantcache.reset()
	b.appexcache.reset()
	b.replacecache.reset()
	b.composecache.reset()
	b.rescache.reset()
	b.misccache.reset()
	b.andcache.reset()
	b.orcache.reset()
}

func (b *BDD) cacheresize(nodesize int) {
	b.applycache.resize(nodesize)
	b.itecache.resize(nodesize)
	b.quantcache.resize(nodesize)
	b.appexcache.resize(nodesize)
	b.replacecache.resize(nodesize)
	b.composecache.resize(nodesize)
	b.rescache.resize(nodesize)
	b.misccache.resize(nodesize)
	b.andcache.resize(nodesize)
	b.orcache.resize(nodesize)
	if b.cacheratio > 0 {
		b.cachesize = primeGte((nodesize * b.cacheratio) / 100)
	}
}

func (b *BDD) cachedone() {
	b.applycache = nil
	b.itecache = nil
	b.quantcache = nil
	b.appexcache = nil
	b.replacecache = nil
	b.composecache = nil
	b.rescache = nil
	b.misccache = nil
	b.andcache = nil
	b.orcache = nil
}

// checkresize propagates a node-table growth to the caches when a cache ratio
// is set. Called at the end of each public operation, once the dust settled.
func (b *BDD) checkresize() {
	if b.resized {
		b.cacheresize(len(b.nodes))
		b.resized = false
	}
}

// operatorsvarresize adjusts the per-level scratch tables after a
// variable-count change. The counting results cached in the misc cache depend
// on the variable count, so they are dropped.
func (b *BDD) operatorsvarresize() {
	b.quantset = make([]int32, b.varnum)
	b.quantsetID = 0
	b.misccache.reset()
}

// The hash function for Apply is #(left, right, op). The same cache holds the
// not and simplify results under their own operator ids.

type applycache struct {
	data4ncache
	op int // Current operation during an apply
}

func (bc *applycache) matchapply(left, right int) int {
	entry := bc.table[_TRIPLE(left, right, bc.op, len(bc.table))]
	if entry.a == left && entry.b == right && entry.c == bc.op {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *applycache) setapply(left, right, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_TRIPLE(left, right, bc.op, len(bc.table))] = data4n{
		a:   left,
		b:   right,
		c:   bc.op,
		res: res,
	}
	return res
}

// The hash function for operation Not(n) is simply n.

func (bc *applycache) matchnot(n int) int {
	entry := bc.table[n%len(bc.table)]
	if entry.a == n && entry.c == int(opnot) {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *applycache) setnot(n, res int) int {
	if res < 0 {
		return res
	}
	bc.table[n%len(bc.table)] = data4n{
		a:   n,
		c:   int(opnot),
		res: res,
	}
	return res
}

// Simplify entries share the apply cache under the opsimplify id.

func (bc *applycache) matchsimplify(f, d int) int {
	entry := bc.table[_TRIPLE(f, d, int(opsimplify), len(bc.table))]
	if entry.a == f && entry.b == d && entry.c == int(opsimplify) {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *applycache) setsimplify(f, d, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_TRIPLE(f, d, int(opsimplify), len(bc.table))] = data4n{
		a:   f,
		b:   d,
		c:   int(opsimplify),
		res: res,
	}
	return res
}

func (bc applycache) String() string {
	return cachestats("apply", len(bc.table), int(unsafe.Sizeof(data4n{})), bc.opHit, bc.opMiss)
}

// The hash function for ITE is #(f, g, h), so we need to cache four values per
// entry.

type itecache struct {
	data4ncache
}

func (bc *itecache) matchite(f, g, h int) int {
	entry := bc.table[_TRIPLE(f, g, h, len(bc.table))]
	if entry.a == f && entry.b == g && entry.c == h {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *itecache) setite(f, g, h, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_TRIPLE(f, g, h, len(bc.table))] = data4n{
		a:   f,
		b:   g,
		c:   h,
		res: res,
	}
	return res
}

func (bc itecache) String() string {
	return cachestats("ite", len(bc.table), int(unsafe.Sizeof(data4n{})), bc.opHit, bc.opMiss)
}

// The hash function for quantification is #(n, varset); the id tag packs the
// varset handle and the kind of quantifier, so that a hit for a different
// parameterization is rejected.

type quantcache struct {
	data4ncache
	id int // Current cache id for quantifications
}

func (bc *quantcache) matchquant(n, varset int) int {
	entry := bc.table[_PAIR(n, varset, len(bc.table))]
	if entry.a == n && entry.b == varset && entry.c == bc.id {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *quantcache) setquant(n, varset, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_PAIR(n, varset, len(bc.table))] = data4n{
		a:   n,
		b:   varset,
		c:   bc.id,
		res: res,
	}
	return res
}

func (bc quantcache) String() string {
	return cachestats("quant", len(bc.table), int(unsafe.Sizeof(data4n{})), bc.opHit, bc.opMiss)
}

// The appex cache mixes the quant and apply keys: the id packs the varset
// handle and the operator.

type appexcache struct {
	data4ncache
	op int // Current operator for appex
	id int // Current id
}

func (bc *appexcache) matchappex(left, right int) int {
	entry := bc.table[_TRIPLE(left, right, bc.id, len(bc.table))]
	if entry.a == left && entry.b == right && entry.c == bc.id {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *appexcache) setappex(left, right, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_TRIPLE(left, right, bc.id, len(bc.table))] = data4n{
		a:   left,
		b:   right,
		c:   bc.id,
		res: res,
	}
	return res
}

func (bc appexcache) String() string {
	return cachestats("appex", len(bc.table), int(unsafe.Sizeof(data4n{})), bc.opHit, bc.opMiss)
}

// The hash function for operation Replace(n) is simply n; veccompose shares
// the cache, with the sub-operation packed in the pair id.

type replacecache struct {
	data3ncache
	id int // Current cache id for replace
}

func (bc *replacecache) matchreplace(n int) int {
	entry := bc.table[n%len(bc.table)]
	if entry.a == n && entry.c == bc.id {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *replacecache) setreplace(n, res int) int {
	if res < 0 {
		return res
	}
	bc.table[n%len(bc.table)] = data3n{
		a:   n,
		c:   bc.id,
		res: res,
	}
	return res
}

func (bc replacecache) String() string {
	return cachestats("replace", len(bc.table), int(unsafe.Sizeof(data3n{})), bc.opHit, bc.opMiss)
}

// The compose cache is keyed by the two operands; the current replace id
// (packing the composed level) tags the entry.

type composecache struct {
	data4ncache
}

func (bc *composecache) matchcompose(f, g, id int) int {
	entry := bc.table[_PAIR(f, g, len(bc.table))]
	if entry.a == f && entry.b == g && entry.c == id {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *composecache) setcompose(f, g, id, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_PAIR(f, g, len(bc.table))] = data4n{
		a:   f,
		b:   g,
		c:   id,
		res: res,
	}
	return res
}

func (bc composecache) String() string {
	return cachestats("compose", len(bc.table), int(unsafe.Sizeof(data4n{})), bc.opHit, bc.opMiss)
}

// The restrict/constrain cache. Restrict is keyed by the node and the tag
// packing the (signed) variable set; constrain by both operands.

type rescache struct {
	data4ncache
}

func (bc *rescache) matchrestrict(r, id int) int {
	entry := bc.table[_PAIR(r, id, len(bc.table))]
	if entry.a == r && entry.c == id {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *rescache) setrestrict(r, id, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_PAIR(r, id, len(bc.table))] = data4n{
		a:   r,
		c:   id,
		res: res,
	}
	return res
}

func (bc *rescache) matchconstrain(f, c, id int) int {
	entry := bc.table[_PAIR(f, c, len(bc.table))]
	if entry.a == f && entry.b == c && entry.c == id {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *rescache) setconstrain(f, c, id, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_PAIR(f, c, len(bc.table))] = data4n{
		a:   f,
		b:   c,
		c:   id,
		res: res,
	}
	return res
}

func (bc rescache) String() string {
	return cachestats("restrict", len(bc.table), int(unsafe.Sizeof(data4n{})), bc.opHit, bc.opMiss)
}

// The misc cache holds the counting results (satcount, satcountln,
// pathcount). The payload is a float64; the operation id in the key says
// which count it is.

type misccache struct {
	data4dcache
}

func (bc *misccache) match(r, id int) (float64, bool) {
	entry := bc.table[_PAIR(r, id, len(bc.table))]
	if entry.a == r && entry.c == id {
		if _DEBUG {
			bc.opHit++
		}
		return entry.dres, true
	}
	if _DEBUG {
		bc.opMiss++
	}
	return 0, false
}

func (bc *misccache) set(r, id int, dres float64) float64 {
	bc.table[_PAIR(r, id, len(bc.table))] = data4d{
		a:    r,
		c:    id,
		dres: dres,
	}
	return dres
}

func (bc misccache) String() string {
	return cachestats("misc", len(bc.table), int(unsafe.Sizeof(data4d{})), bc.opHit, bc.opMiss)
}

// binopcache is the smaller cache backing the specialized and/or recursions.

type binopcache struct {
	data3ncache
}

func (bc *binopcache) match(l, r int) int {
	entry := bc.table[_PAIR(l, r, len(bc.table))]
	if entry.a == l && entry.c == r {
		if _DEBUG {
			bc.opHit++
		}
		return entry.res
	}
	if _DEBUG {
		bc.opMiss++
	}
	return -1
}

func (bc *binopcache) set(l, r, res int) int {
	if res < 0 {
		return res
	}
	bc.table[_PAIR(l, r, len(bc.table))] = data3n{
		a:   l,
		c:   r,
		res: res,
	}
	return res
}

func (bc binopcache) String() string {
	return cachestats("binop", len(bc.table), int(unsafe.Sizeof(data3n{})), bc.opHit, bc.opMiss)
}

func cachestats(name string, entries, entrysize, hit, miss int) string {
	res := fmt.Sprintf("== %-8s cache %d (%s)\n", name, entries,
		datasize.ByteSize(uint64(entries)*uint64(entrysize)).HR())
	if hit+miss > 0 {
		res += fmt.Sprintf(" Operator Hits: %d (%.1f%%)\n", hit, (float64(hit)*100)/(float64(hit)+float64(miss)))
		res += fmt.Sprintf(" Operator Miss: %d\n", miss)
	}
	return res
}
