package grin

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps each Symbol of a Tree to its code.  The table is derived once
// from the tree's root-to-leaf paths.
type Encoder struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	minSize byte
	maxSize byte
}

// NewEncoder derives the code table of t.  A leaf deeper than MaxCodeSize
// cannot be encoded and is reported as UnencodableSymbol.
func NewEncoder(t *Tree) (*Encoder, error) {
	e := &Encoder{}
	if err := e.Init(t); err != nil {
		return nil, err
	}
	return e, nil
}

// Init initializes this Encoder from the paths of t.
func (e *Encoder) Init(t *Tree) error {
	*e = Encoder{}

	var hasMinMax bool
	var visit func(n *Node, path Code) error
	visit = func(n *Node, path Code) error {
		if n.IsLeaf() {
			assert.Assertf(!e.present[n.symbol], "symbol %s appears twice in tree", n.symbol)
			e.codes[n.symbol] = path
			e.present[n.symbol] = true

			size := path.Size
			if !hasMinMax {
				hasMinMax = true
				e.minSize = size
				e.maxSize = size
			} else if e.minSize > size {
				e.minSize = size
			} else if e.maxSize < size {
				e.maxSize = size
			}
			return nil
		}

		if path.Size >= MaxCodeSize {
			return newError(UnencodableSymbol, nil, "%s has a code longer than %d bits", firstLeaf(n).symbol, MaxCodeSize)
		}
		if err := visit(n.first, path.Append(0)); err != nil {
			return err
		}
		return visit(n.second, path.Append(1))
	}
	return visit(t.root, Code{})
}

func firstLeaf(n *Node) *Node {
	for !n.IsLeaf() {
		n = n.first
	}
	return n
}

// Encode encodes a Symbol into a Huffman-coded bit string.  Symbols missing
// from the tree yield the empty Code.
func (e *Encoder) Encode(symbol Symbol) Code {
	if !symbol.IsValid() {
		return Code{}
	}
	return e.codes[symbol]
}

// Lookup returns the code of symbol and whether the tree has a leaf for it.
func (e *Encoder) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || !e.present[symbol] {
		return Code{}, false
	}
	return e.codes[symbol], true
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.  Symbols absent from the tree have a length of 0, as does EOF
// in a tree holding nothing else.
func (e *Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := Symbol(0); symbol <= EOF; symbol++ {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Only symbols present in the tree are listed.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := Symbol(0); symbol <= EOF; symbol++ {
		if e.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, e.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
