// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import "math/big"

// Hash functions for the unique table and the operator caches.

// _PAIR maps (bijectively) a pair of integers (a, b) into a unique integer,
// using the Cantor pairing function, then casts it into a value in the
// interval [0..len) with a modulo operation.
func _PAIR(a, b, len int) int {
	ua := uint64(a)
	ub := uint64(b)
	return int(((((ua + ub) * (ua + ub + 1)) / 2) + (ua)) % uint64(len))
}

// _TRIPLE is the Cantor pairing of c with the pair (a, b). Equal triples hash
// identically, which is all the unique table needs.
func _TRIPLE(a, b, c, len int) int {
	return _PAIR(c, _PAIR(a, b, len), len)
}

// nodehash gives the bucket of a (level, low, high) triple in the current
// table.
func (b *BDD) nodehash(level int32, low, high int) int {
	return _TRIPLE(int(level), low, high, len(b.nodes))
}

// ptrhash gives the bucket of an allocated node.
func (b *BDD) ptrhash(n int) int {
	return _TRIPLE(int(b.level(n)), b.nodes[n].low, b.nodes[n].high, len(b.nodes))
}

// Table and cache sizes are kept prime so that the modulo in _PAIR spreads
// well.

func smallfactor(src int) bool {
	for _, n := range []int{3, 5, 7, 11, 13} {
		if (src != n) && (src%n == 0) {
			return true
		}
	}
	return false
}

// primeGte returns the first prime greater than or equal to src.
func primeGte(src int) int {
	if src%2 == 0 {
		src++
	}
	for {
		// ProbablyPrime is 100% accurate for inputs less than 2⁶⁴.
		if !smallfactor(src) && big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}

// primeLte returns the last prime lesser than or equal to src.
func primeLte(src int) int {
	if src == 0 {
		return 1
	}
	if src%2 == 0 {
		src--
	}
	for {
		if !smallfactor(src) && big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src -= 2
	}
}
