package grin

// maxHeaderDepth bounds the nesting of internal nodes in a header.  A tree
// with at most NumSymbols distinct leaves is never deeper than this.
const maxHeaderDepth = NumSymbols - 1

const (
	tagLeaf     = false
	tagInternal = true
)

// Serialize writes this tree to w as a header: a pre-order walk where each
// leaf is the bit 0 followed by its symbol in SymbolBits bits, and each
// internal node is the bit 1 followed by both of its children.
func (t *Tree) Serialize(w BitWriter) error {
	return serializeNode(w, t.root)
}

func serializeNode(w BitWriter, n *Node) error {
	if n.IsLeaf() {
		if err := w.WriteBool(tagLeaf); err != nil {
			return newError(IoFailure, err, "writing header")
		}
		if err := w.WriteBits(uint64(n.symbol), SymbolBits); err != nil {
			return newError(IoFailure, err, "writing header")
		}
		return nil
	}
	if err := w.WriteBool(tagInternal); err != nil {
		return newError(IoFailure, err, "writing header")
	}
	if err := serializeNode(w, n.first); err != nil {
		return err
	}
	return serializeNode(w, n.second)
}

// HeaderSize returns the length of this tree's header in bits.
func (t *Tree) HeaderSize() int {
	var size int
	t.walk(func(n *Node, _ Code) {
		size++
		if n.IsLeaf() {
			size += SymbolBits
		}
	})
	return size
}

// ReadTree reads a header written by Tree.Serialize and rebuilds the tree it
// describes.  Weights are not part of the header and are left at zero.
//
// Besides following the tag-bit grammar, a header must describe a tree that
// can terminate a payload: EOF must appear exactly once, no symbol may appear
// twice, and a tree consisting of a single leaf must be that EOF leaf.
func ReadTree(r BitReader) (*Tree, error) {
	p := headerParser{r: r}
	root, err := p.parse(0)
	if err != nil {
		return nil, err
	}
	if !p.seen[EOF] {
		return nil, newError(MalformedHeader, nil, "no %s leaf", EOF)
	}
	return &Tree{root: root}, nil
}

type headerParser struct {
	r    BitReader
	seen [NumSymbols]bool
}

func (p *headerParser) parse(depth int) (*Node, error) {
	tag, err := p.r.ReadBool()
	if err != nil {
		return nil, p.readError(err, "tag bit")
	}

	if tag == tagLeaf {
		u, err := p.r.ReadBits(SymbolBits)
		if err != nil {
			return nil, p.readError(err, "leaf symbol")
		}
		symbol := Symbol(u)
		if !symbol.IsValid() {
			return nil, newError(MalformedHeader, nil, "leaf symbol %d out of range", u)
		}
		if p.seen[symbol] {
			return nil, newError(MalformedHeader, nil, "duplicate leaf %s", symbol)
		}
		if depth == 0 && symbol != EOF {
			return nil, newError(MalformedHeader, nil, "single leaf %s cannot terminate a payload", symbol)
		}
		p.seen[symbol] = true
		return newLeaf(symbol, 0), nil
	}

	if depth >= maxHeaderDepth {
		return nil, newError(MalformedHeader, nil, "tree deeper than %d", maxHeaderDepth)
	}
	first, err := p.parse(depth + 1)
	if err != nil {
		return nil, err
	}
	second, err := p.parse(depth + 1)
	if err != nil {
		return nil, err
	}
	return &Node{first: first, second: second, symbol: InvalidSymbol}, nil
}

func (p *headerParser) readError(err error, what string) error {
	if isEndOfInput(err) {
		return newError(MalformedHeader, nil, "premature end of input reading %s", what)
	}
	return newError(IoFailure, err, "reading %s", what)
}
