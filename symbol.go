package grin

import (
	"fmt"
	"strconv"
)

// Symbol represents a symbol in the 257-symbol alphabet.  Values 0 through
// 255 are literal bytes; EOF is the end-of-stream sentinel.
type Symbol uint16

const (
	// EOF is the end-of-stream sentinel.  It is never emitted as output.
	EOF = Symbol(256)

	// NumSymbols is the size of the alphabet.
	NumSymbols = 257

	// SymbolBits is the width of a symbol inside the tree header.  Eight
	// bits cannot hold EOF.
	SymbolBits = 9
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(0xffff)

// IsByte returns true iff this Symbol stands for a literal byte.
func (s Symbol) IsByte() bool {
	return s < EOF
}

// IsValid returns true iff this Symbol belongs to the alphabet.
func (s Symbol) IsValid() bool {
	return s <= EOF
}

// String returns a programmer-readable representation of this Symbol.
func (s Symbol) String() string {
	switch {
	case s == EOF:
		return "EOF"
	case s > EOF:
		return "Symbol(" + strconv.FormatUint(uint64(s), 10) + ")"
	case s >= 0x20 && s < 0x7f:
		return strconv.QuoteRune(rune(s))
	default:
		return fmt.Sprintf("0x%02x", uint16(s))
	}
}

var _ fmt.Stringer = Symbol(0)
