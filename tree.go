package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"
)

// Node is one node of a Huffman tree.  A leaf holds a Symbol and its
// frequency; an internal node holds InvalidSymbol, its children, and the
// sum of their frequencies.  Nodes are immutable once BuildTree returns and
// expose a read-only surface, so an external renderer can lay the tree out
// without being able to mutate it.
type Node struct {
	symbol Symbol
	freq   uint32
	left   *Node
	right  *Node
}

// IsLeaf reports whether n holds a symbol rather than children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Symbol returns the leaf's symbol, or InvalidSymbol for internal nodes.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Freq returns the occurrence count this node represents.
func (n *Node) Freq() uint32 {
	return n.freq
}

// Left returns the child reached by a 0 bit, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a 1 bit, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Walk visits n and its descendants in pre-order, calling visit with each
// node and its depth below n.  Returning false stops the walk.
func (n *Node) Walk(visit func(n *Node, depth int) bool) {
	n.walk(0, visit)
}

func (n *Node) walk(depth int, visit func(*Node, int) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n, depth) {
		return false
	}
	if !n.left.walk(depth+1, visit) {
		return false
	}
	return n.right.walk(depth+1, visit)
}

// MergeStep records one merge performed while building a tree: Left and
// Right were extracted from the queue in that order and replaced by an
// internal node of frequency Freq.
type MergeStep struct {
	Left  *Node
	Right *Node
	Freq  uint32
}

// Tree is an immutable Huffman tree plus the trace of merges that built it.
type Tree struct {
	root   *Node
	leaves int
	steps  []MergeStep
}

// BuildTree builds the Huffman tree for freq.  It seeds a min-queue with
// one leaf per distinct symbol, in first-occurrence order, then repeatedly
// extracts the two lowest nodes and merges them under a new internal node
// until one node remains.  The first-extracted node becomes the left child.
//
// The queue orders by frequency ascending, then by insertion sequence
// ascending, so equal-frequency extractions always happen in insertion
// order and the tree shape is reproducible.
//
// A single-symbol alphabet builds a root internal node whose only (left)
// child is the leaf, so the symbol still receives a one-bit code.
//
// It fails with ErrEmptyFrequencyTable when freq is nil or has no entries.
func BuildTree(freq *FrequencyTable) (*Tree, error) {
	if freq == nil || freq.Len() == 0 {
		return nil, ErrEmptyFrequencyTable
	}

	numLeaves := freq.Len()
	h := nodeHeap{list: make([]seqNode, 0, numLeaves)}
	for _, sym := range freq.Symbols() {
		h.list = append(h.list, seqNode{
			node: &Node{symbol: sym, freq: freq.Count(sym)},
			seq:  h.next,
		})
		h.next++
	}
	h.Init()

	if numLeaves == 1 {
		leaf := h.list[0].node
		root := &Node{symbol: InvalidSymbol, freq: leaf.freq, left: leaf}
		return &Tree{root: root, leaves: 1}, nil
	}

	steps := make([]MergeStep, 0, numLeaves-1)
	for h.Len() > 1 {
		a := heap.Pop(&h).(seqNode).node
		b := heap.Pop(&h).(seqNode).node

		// Compute the merged frequency using saturating addition.
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint32
		}

		parent := &Node{symbol: InvalidSymbol, freq: freqSum, left: a, right: b}
		steps = append(steps, MergeStep{Left: a, Right: b, Freq: freqSum})
		heap.Push(&h, seqNode{node: parent, seq: h.next})
		h.next++
	}

	root := heap.Pop(&h).(seqNode).node
	return &Tree{root: root, leaves: numLeaves, steps: steps}, nil
}

// Root returns the root of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// MergeSteps returns the merges performed during the build, in order.  A
// single-symbol tree performs no merges.
func (t *Tree) MergeSteps() []MergeStep {
	out := make([]MergeStep, len(t.steps))
	copy(out, t.steps)
	return out
}

// Dump writes a programmer-readable debugging dump of the tree's structure
// to the given writer, one node per line, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.leaves)
	t.root.Walk(func(n *Node, depth int) bool {
		indent := strings.Repeat("\t", depth+1)
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "%sLeaf{%q, %d}\n", indent, rune(n.symbol), n.freq)
		} else {
			fmt.Fprintf(&buf, "%sInternal{%d}\n", indent, n.freq)
		}
		return true
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type seqNode + type nodeHeap {{{

type seqNode struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []seqNode
	next uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(seqNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
