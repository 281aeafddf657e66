package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeBook maps each symbol of a tree to its root-to-leaf path, with a 0
// bit meaning left and a 1 bit meaning right.  Because every code is the
// path to a distinct leaf, the code set is prefix-free.
type CodeBook map[Symbol]Code

// DeriveCodeBook walks tree once, depth first, and records the accumulated
// path at every leaf.  Every symbol in the tree receives exactly one code
// of length >= 1; a single-symbol tree yields the one-entry book
// {symbol: "0"}.  It fails with ErrEmptyTree when tree is nil or rootless.
func DeriveCodeBook(tree *Tree) (CodeBook, error) {
	if tree == nil || tree.root == nil {
		return nil, ErrEmptyTree
	}
	book := make(CodeBook, tree.leaves)
	assignCodes(tree.root, Code{}, book)
	return book, nil
}

func assignCodes(n *Node, prefix Code, book CodeBook) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		book[n.symbol] = prefix
		return
	}
	assert.Assertf(prefix.Size < maxBitsPerCode, "code longer than %d bits", maxBitsPerCode)
	assignCodes(n.left, prefix.extended(0), book)
	assignCodes(n.right, prefix.extended(1), book)
}

// Lookup returns the code for sym and whether sym has one.
func (book CodeBook) Lookup(sym Symbol) (Code, bool) {
	hc, found := book[sym]
	return hc, found
}

// Dump writes a programmer-readable debugging dump of the code book to the
// given writer, ordered by (size, bits) so the output is stable.
func (book CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	type entry struct {
		sym Symbol
		hc  Code
	}
	entries := make([]entry, 0, len(book))
	for sym, hc := range book {
		entries = append(entries, entry{sym, hc})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].hc, entries[j].hc
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.Bits < b.Bits
	})
	for _, e := range entries {
		fmt.Fprintf(&buf, "\tLookup(%q) = %s\n", rune(e.sym), e.hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
