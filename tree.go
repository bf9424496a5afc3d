package grin

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree: either a leaf holding a Symbol, or an
// internal node holding exactly two children.  Nodes are immutable.
type Node struct {
	first  *Node
	second *Node
	weight uint64
	symbol Symbol
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.first == nil
}

// Symbol returns the symbol of a leaf, or InvalidSymbol for an internal node.
func (n *Node) Symbol() Symbol {
	if !n.IsLeaf() {
		return InvalidSymbol
	}
	return n.symbol
}

// Weight returns the cumulative frequency below this node.  Trees read from
// a header carry zero weights.
func (n *Node) Weight() uint64 {
	return n.weight
}

// First returns the child selected by a 0 bit.
func (n *Node) First() *Node {
	return n.first
}

// Second returns the child selected by a 1 bit.
func (n *Node) Second() *Node {
	return n.second
}

// Child returns the child selected by the given bit.
func (n *Node) Child(bit bool) *Node {
	if bit {
		return n.second
	}
	return n.first
}

func newLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{symbol: symbol, weight: weight}
}

func newInternal(first, second *Node) *Node {
	// saturating addition
	weight := first.weight + second.weight
	if weight < first.weight {
		weight = math.MaxUint64
	}
	return &Node{first: first, second: second, weight: weight, symbol: InvalidSymbol}
}

// Tree is a Huffman tree over the 257-symbol alphabet.
type Tree struct {
	root *Node
}

// NewTree builds the optimal Huffman tree for freqs.  EOF is always added
// with a weight of 1, replacing any count freqs holds for it, and symbols
// with a count of 0 are left out.
//
// Construction repeatedly merges the two lowest-ranked trees, the first one
// popped becoming the first child.  Trees are ranked by weight, then by a
// tie-breaker: a leaf's tie-breaker is its symbol, and an internal node's is
// NumSymbols plus the number of internal nodes created before it.  Equal
// frequency maps therefore always produce identical trees.
func NewTree(freqs FrequencyMap) *Tree {
	h := nodeHeap{list: make([]rankedNode, 0, len(freqs)+1)}
	for _, symbol := range freqs.Symbols() {
		assert.Assertf(symbol.IsValid(), "symbol %d > EOF %d", uint16(symbol), uint16(EOF))
		if symbol == EOF {
			continue
		}
		if weight := freqs[symbol]; weight != 0 {
			h.list = append(h.list, rankedNode{newLeaf(symbol, weight), uint32(symbol)})
		}
	}
	h.list = append(h.list, rankedNode{newLeaf(EOF, 1), uint32(EOF)})
	h.Init()

	nextRank := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(rankedNode)
		b := heap.Pop(&h).(rankedNode)
		heap.Push(&h, rankedNode{newInternal(a.node, b.node), nextRank})
		nextRank++
	}

	root := heap.Pop(&h).(rankedNode)
	return &Tree{root: root.node}
}

// Root returns the root node of this tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Leaves returns the leaves of this tree in pre-order.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	t.walk(func(n *Node, _ Code) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// Has returns true iff this tree has a leaf for symbol.
func (t *Tree) Has(symbol Symbol) bool {
	for _, leaf := range t.Leaves() {
		if leaf.symbol == symbol {
			return true
		}
	}
	return false
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	return depthOf(t.root)
}

func depthOf(n *Node) int {
	if n.IsLeaf() {
		return 0
	}
	a, b := depthOf(n.first), depthOf(n.second)
	if a < b {
		a = b
	}
	return a + 1
}

// WeightedPathLength returns the sum of weight times depth over all leaves,
// i.e. the number of payload bits this tree spends on the frequencies it was
// built from.
func (t *Tree) WeightedPathLength() uint64 {
	var sum uint64
	var visit func(n *Node, depth uint64)
	visit = func(n *Node, depth uint64) {
		if n.IsLeaf() {
			sum += n.weight * depth
			return
		}
		visit(n.first, depth+1)
		visit(n.second, depth+1)
	}
	visit(t.root, 0)
	return sum
}

// Equal returns true iff both trees have the same shape and the same symbols
// at the same leaves.  Weights are ignored.
func (t *Tree) Equal(other *Tree) bool {
	return nodesEqual(t.root, other.root)
}

func nodesEqual(a, b *Node) bool {
	if a.IsLeaf() || b.IsLeaf() {
		return a.IsLeaf() && b.IsLeaf() && a.symbol == b.symbol
	}
	return nodesEqual(a.first, b.first) && nodesEqual(a.second, b.second)
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.  Each leaf is listed in pre-order with its path from the root.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tDepth() = %d\n", t.Depth())
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.root.weight)
	t.walk(func(n *Node, path Code) {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\t%s = %s (%d)\n", path, n.symbol, n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in pre-order along with its path.  Paths longer
// than MaxCodeSize are truncated to their last MaxCodeSize bits.
func (t *Tree) walk(fn func(n *Node, path Code)) {
	var visit func(n *Node, path Code)
	visit = func(n *Node, path Code) {
		fn(n, path)
		if n.IsLeaf() {
			return
		}
		next := path
		if next.Size == MaxCodeSize {
			next.Size--
		}
		visit(n.first, next.Append(0))
		visit(n.second, next.Append(1))
	}
	visit(t.root, Code{})
}

// type rankedNode + type nodeHeap {{{

type rankedNode struct {
	node *Node
	rank uint32
}

type nodeHeap struct {
	list []rankedNode
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
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.rank < b.rank
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(rankedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = rankedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
