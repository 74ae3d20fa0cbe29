// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"unsafe"

	"github.com/c2h5oh/datasize"
)

// Stats returns information about the BDD: the size of the node table, the
// garbage collection history, and (in debug builds) the unique table and
// cache access counters.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d  (%s)\n", len(b.nodes),
		datasize.ByteSize(uint64(len(b.nodes))*uint64(unsafe.Sizeof(bddnode{}))).HR())
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	r := (float64(b.freenum) / float64(len(b.nodes))) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", b.freenum, r)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", len(b.nodes)-b.freenum, (100.0 - r))
	res += "==============\n"
	res += fmt.Sprintf("# of GC:    %d\n", len(b.gchistory))
	res += fmt.Sprintf("# of grow:  %d\n", b.resizes)
	if _DEBUG {
		res += fmt.Sprintf("Ext. refs:  %d\n", b.setfinalizers)
		res += fmt.Sprintf("Reclaimed:  %d\n", b.calledfinalizers)
		res += "==============\n"
		res += fmt.Sprintf("Unique Access:  %d\n", b.uniqueAccess)
		res += fmt.Sprintf("Unique Chain:   %d\n", b.uniqueChain)
		res += fmt.Sprintf("Unique Hit:     %d\n", b.uniqueHit)
		res += fmt.Sprintf("Unique Miss:    %d\n", b.uniqueMiss)
		res += "==============\n"
		res += b.applycache.String()
		res += b.itecache.String()
		res += b.quantcache.String()
		res += b.appexcache.String()
		res += b.replacecache.String()
		res += b.composecache.String()
		res += b.rescache.String()
		res += b.misccache.String()
		res += b.andcache.String()
		res += b.orcache.String()
	}
	return res
}

// Print outputs a textual representation of the BDDs with roots in n to the
// standard output. We print all the active nodes if n is absent.
func (b *BDD) Print(n ...Node) {
	b.print(os.Stdout, n...)
}

func (b *BDD) print(w io.Writer, n ...Node) {
	if mesg := b.Error(); mesg != "" {
		fmt.Fprintf(w, "Error: %s\n", mesg)
		return
	}
	if len(n) == 1 && n[0] != nil {
		if *n[0] == 0 {
			fmt.Fprintln(w, "False")
			return
		}
		if *n[0] == 1 {
			fmt.Fprintln(w, "True")
			return
		}
	}
	// we build a slice of nodes sorted by ids
	nodes := make([][4]int, 0)
	err := b.Allnodes(func(id, level, low, high int) error {
		i := sort.Search(len(nodes), func(i int) bool {
			return nodes[i][0] >= id
		})
		nodes = append(nodes, [4]int{})
		copy(nodes[i+1:], nodes[i:])
		nodes[i] = [4]int{id, level, low, high}
		return nil
	}, n...)
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, nd := range nodes {
		if nd[0] > 1 {
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", nd[0], nd[1], nd[2], nd[3])
		}
	}
	tw.Flush()
}

// PrintDot prints a graph-like description of the BDDs with roots in n using
// the DOT format, or the whole node table if n is missing. The output goes to
// the standard output when filename is "-".
func (b *BDD) PrintDot(filename string, n ...Node) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	w := bufio.NewWriter(out)
	defer w.Flush()
	if mesg := b.Error(); mesg != "" {
		return fmt.Errorf("%s", mesg)
	}
	// we write the result by visiting each node but we never draw edges to
	// the False constant
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];")
	err = b.Allnodes(func(id, level, low, high int) error {
		if id > 1 {
			fmt.Fprintf(w, "%d %s\n", id, dotlabel(id, level))
			if low != 0 {
				fmt.Fprintf(w, "%d -> %d [style=dotted];\n", id, low)
			}
			if high != 0 {
				fmt.Fprintf(w, "%d -> %d [style=filled];\n", id, high)
			}
		}
		return nil
	}, n...)
	fmt.Fprintln(w, "}")
	return err
}

func dotlabel(a int, b int) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, b, a)
}

// Save writes the BDD rooted at n on w. The format is textual: a first line
// with the variable count and the root id, then one line "id level low high"
// per reachable internal node, children before parents. The two constants are
// predefined and never listed.
func (b *BDD) Save(w io.Writer, n Node) error {
	if b.checkptr(n) != nil {
		return b.error
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", b.varnum, *n)
	if err := b.savenodes(bw, *n); err != nil {
		return err
	}
	b.unmarkrec(*n)
	return bw.Flush()
}

// savenodes writes reachable internal nodes in post-order, marking as it
// goes, so that a node always appears after its children.
func (b *BDD) savenodes(w io.Writer, n int) error {
	if n < 2 || b.ismarked(n) {
		return nil
	}
	b.marknode(n)
	if err := b.savenodes(w, b.low(n)); err != nil {
		return err
	}
	if err := b.savenodes(w, b.high(n)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d %d %d %d\n", n, b.level(n), b.low(n), b.high(n))
	return err
}

// Load reads back a BDD saved with Save and returns its root. The variable
// count of the engine is extended when the file mentions more variables than
// currently defined. The ids found in the file are remapped through makenode,
// so the loaded BDD is hash-consed against everything already in the table.
func (b *BDD) Load(r io.Reader) (Node, error) {
	if b.error != nil {
		return nil, b.error
	}
	br := bufio.NewReader(r)
	var vnum, root int
	if _, err := fmt.Fscanf(br, "%d %d\n", &vnum, &root); err != nil {
		b.seterror(ErrFormat, "cannot read the header of the BDD file: %s", err)
		return nil, b.error
	}
	if vnum < 1 || int32(vnum) > _MAXVAR {
		b.seterror(ErrFormat, "bad variable count (%d) in BDD file", vnum)
		return nil, b.error
	}
	if int32(vnum) > b.varnum {
		if err := b.SetVarnum(vnum); err != nil {
			return nil, err
		}
	}
	redirect := map[int]int{0: 0, 1: 1}
	b.initref()
	b.disablereorder()
	defer b.enablereorder()
	for {
		var id, level, low, high int
		k, err := fmt.Fscanf(br, "%d %d %d %d\n", &id, &level, &low, &high)
		if err == io.EOF && k == 0 {
			break
		}
		if err != nil {
			b.seterror(ErrFormat, "cannot read a node of the BDD file: %s", err)
			return nil, b.error
		}
		if level < 0 || int32(level) >= b.varnum {
			b.seterror(ErrFormat, "bad level (%d) in BDD file", level)
			return nil, b.error
		}
		lo, oklo := redirect[low]
		hi, okhi := redirect[high]
		if !oklo || !okhi {
			b.seterror(ErrFormat, "node %d references unknown children in BDD file", id)
			return nil, b.error
		}
		if (lo >= 2 && b.level(lo) <= int32(level)) || (hi >= 2 && b.level(hi) <= int32(level)) {
			b.seterror(ErrOrder, "levels of node %d not in ascending order in BDD file", id)
			return nil, b.error
		}
		res := b.makenode(int32(level), lo, hi)
		if res < 0 {
			b.seterror(ErrMemory, "cannot allocate node %d while loading", id)
			return nil, b.error
		}
		b.pushref(res)
		redirect[id] = res
	}
	res, ok := redirect[root]
	if !ok {
		b.seterror(ErrFormat, "root node (%d) missing from BDD file", root)
		return nil, b.error
	}
	b.checkresize()
	return b.retnode(res), nil
}

// FnSave saves the BDD rooted at n in the file at path.
func (b *BDD) FnSave(path string, n Node) error {
	f, err := os.Create(path)
	if err != nil {
		b.seterror(ErrFile, "cannot create BDD file %q: %s", path, err)
		return b.error
	}
	defer f.Close()
	return b.Save(f, n)
}

// FnLoad loads a BDD from the file at path.
func (b *BDD) FnLoad(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		b.seterror(ErrFile, "cannot open BDD file %q: %s", path, err)
		return nil, b.error
	}
	defer f.Close()
	return b.Load(f)
}
