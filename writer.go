package grin

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Writer is the encode walk: it writes the header of a tree, then the code
// of every byte written to it, then the code of EOF when closed.
type Writer struct {
	w      BitWriter
	enc    *Encoder
	n      int64
	err    error
	closed bool
}

var _ io.WriteCloser = (*Writer)(nil)

// NewWriter writes the header of t to w and returns a Writer that encodes
// bytes with t.  It is the caller's responsibility to call Close, and then to
// flush or close w itself.
func NewWriter(w BitWriter, t *Tree) (*Writer, error) {
	enc, err := NewEncoder(t)
	if err != nil {
		return nil, err
	}
	if err := t.Serialize(w); err != nil {
		return nil, err
	}
	return &Writer{w: w, enc: enc}, nil
}

// Write encodes every byte of p.  A byte without a leaf in the tree stops the
// walk with an UnencodableSymbol error; nothing is written for it.
func (cw *Writer) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	if cw.closed {
		return 0, errors.New("grin: write to closed Writer")
	}
	for i, b := range p {
		hc, ok := cw.enc.Lookup(Symbol(b))
		if !ok {
			cw.err = newError(UnencodableSymbol, nil, "byte %s has no leaf in the tree", Symbol(b))
			return i, cw.err
		}
		if err := cw.emit(hc); err != nil {
			return i, err
		}
		cw.n++
	}
	return len(p), nil
}

// Close writes the code of EOF.  It does not close the underlying BitWriter.
// Calling Close more than once has no further effect.
func (cw *Writer) Close() error {
	if cw.err != nil || cw.closed {
		return cw.err
	}
	cw.closed = true
	hc, ok := cw.enc.Lookup(EOF)
	if !ok {
		cw.err = newError(UnencodableSymbol, nil, "%s has no leaf in the tree", EOF)
		return cw.err
	}
	return cw.emit(hc)
}

// Count returns the number of bytes encoded so far.
func (cw *Writer) Count() int64 {
	return cw.n
}

func (cw *Writer) emit(hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	if err := cw.w.WriteBits(hc.Bits, hc.Size); err != nil {
		cw.err = newError(IoFailure, err, "writing payload")
		return cw.err
	}
	return nil
}

// Encode runs the whole encode walk: the header of t, the code of every byte
// of src, and the code of EOF.
func Encode(src io.Reader, w BitWriter, t *Tree) error {
	cw, err := NewWriter(w, t)
	if err != nil {
		return err
	}

	br, ok := src.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(src)
	}
	var one [1]byte
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return newError(IoFailure, err, "reading input")
		}
		one[0] = b
		if _, err := cw.Write(one[:]); err != nil {
			return err
		}
	}
	return cw.Close()
}
