// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

// Operator describes the potential (binary) operations available in a call to
// Apply. Only the first five operators (from OPand to OPnor) can be used in
// AppEx, AppAll and AppUni.
type Operator int

const (
	OPand Operator = iota
	OPxor
	OPor
	OPnand
	OPnor
	OPimp
	OPbiimp
	OPdiff
	OPless
	OPinvimp
	// opnot and opsimplify are the unary operations; they only tag cache
	// entries and should not be used in Apply.
	opnot
	opsimplify
)

var opnames = [12]string{
	OPand:      "and",
	OPxor:      "xor",
	OPor:       "or",
	OPnand:     "nand",
	OPnor:      "nor",
	OPimp:      "imp",
	OPbiimp:    "biimp",
	OPdiff:     "diff",
	OPless:     "less",
	OPinvimp:   "invimp",
	opnot:      "not",
	opsimplify: "simplify",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return "unknown"
	}
	return opnames[op]
}

// opres gives the result of each operator when both operands are constant.
var opres = [12][2][2]int{
	//                      00    01               10    11
	OPand:    {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 0001
	OPxor:    {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 0110
	OPor:     {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 1}}, // 0111
	OPnand:   {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 1110
	OPnor:    {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 0}}, // 1000
	OPimp:    {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 0, 1: 1}}, // 1101
	OPbiimp:  {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 1001
	OPdiff:   {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 1, 1: 0}}, // 0010
	OPless:   {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 0, 1: 0}}, // 0100
	OPinvimp: {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 1, 1: 1}}, // 1011
}
