package grin

import (
	"io"

	"github.com/pkg/errors"
)

type readerState byte

const (
	stateReadingTree readerState = iota
	stateWalking
	stateDone
)

// Reader is the decode walk.  It first reads the header from its BitReader,
// then follows one bit per edge from the root, emitting the byte of every
// leaf it reaches and returning to the root, until it reaches the EOF leaf.
// The tree in the header is the only information used to decode.
type Reader struct {
	r     BitReader
	tree  *Tree
	state readerState
	err   error
}

var _ io.Reader = (*Reader)(nil)

// NewReader returns a Reader decoding the stream in r.  Nothing is read
// until the first call to Read or Tree.
func NewReader(r BitReader) *Reader {
	return &Reader{r: r}
}

// Tree returns the tree described by the header, reading it if needed.
func (cr *Reader) Tree() (*Tree, error) {
	if cr.state == stateReadingTree && cr.err == nil {
		cr.readTree()
	}
	return cr.tree, cr.err
}

func (cr *Reader) readTree() {
	tree, err := ReadTree(cr.r)
	if err != nil {
		cr.err = err
		return
	}
	cr.tree = tree
	cr.state = stateWalking
}

// Read decodes bytes into p.  It returns io.EOF once the EOF leaf has been
// reached.  Running out of bits before that is a TruncatedPayload error.
// Errors are sticky.
func (cr *Reader) Read(p []byte) (int, error) {
	if cr.state == stateReadingTree && cr.err == nil {
		cr.readTree()
	}
	if cr.err != nil {
		return 0, cr.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(p) && cr.state == stateWalking {
		symbol, err := cr.next()
		if err != nil {
			cr.err = err
			return n, err
		}
		if !symbol.IsByte() {
			cr.state = stateDone
			break
		}
		p[n] = byte(symbol)
		n++
	}

	if n == 0 && cr.state == stateDone {
		return 0, io.EOF
	}
	return n, nil
}

// next walks from the root to a leaf and returns its symbol.
func (cr *Reader) next() (Symbol, error) {
	node := cr.tree.root
	for !node.IsLeaf() {
		bit, err := cr.r.ReadBool()
		if err != nil {
			if isEndOfInput(err) {
				return InvalidSymbol, newError(TruncatedPayload, nil, "bit stream ended before %s", EOF)
			}
			return InvalidSymbol, newError(IoFailure, err, "reading payload")
		}
		node = node.Child(bit)
	}
	return node.symbol, nil
}

// Decode runs the whole decode walk over r, writing the decoded bytes to dst.
// It returns the number of bytes written.
func Decode(r BitReader, dst io.Writer) (int64, error) {
	n, err := io.Copy(dst, NewReader(r))
	if err != nil {
		var e *Error
		if !errors.As(err, &e) {
			err = newError(IoFailure, err, "writing output")
		}
	}
	return n, err
}
