package grin

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitReader is the sequential bit source consumed by ReadTree and Reader.
// Bits are delivered most significant first.  The end of input is reported
// as io.EOF (or io.ErrUnexpectedEOF part-way through a multi-bit read),
// never as a bit pattern.
type BitReader interface {
	// ReadBits reads n bits and returns them in the low bits of u.
	ReadBits(n uint8) (u uint64, err error)

	// ReadBool reads a single bit.
	ReadBool() (b bool, err error)
}

// BitWriter is the sequential bit sink consumed by Tree.Serialize and
// Writer.  Zero-padding of a trailing partial byte is the BitWriter's
// concern, typically performed when it is closed.
type BitWriter interface {
	// WriteBits writes the n low bits of r, most significant first.
	WriteBits(r uint64, n uint8) (err error)

	// WriteBool writes a single bit.
	WriteBool(b bool) (err error)
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
