package grin

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the failures reported by this package.
type Kind uint8

const (
	// IoFailure means the underlying byte source or sink failed.
	IoFailure Kind = iota + 1

	// MalformedHeader means the tree header does not follow the tag-bit
	// grammar or does not describe a usable tree.
	MalformedHeader

	// TruncatedPayload means the bit stream ended before the EOF code.
	TruncatedPayload

	// UnencodableSymbol means a symbol has no usable code in the tree.
	UnencodableSymbol
)

var kindNames = [...]string{
	IoFailure:         "I/O failure",
	MalformedHeader:   "malformed header",
	TruncatedPayload:  "truncated payload",
	UnencodableSymbol: "unencodable symbol",
}

// String returns the human-readable name of this Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Error is the error type returned by this package.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Sentinels for use with errors.Is.  Any *Error matches the sentinel of the
// same Kind.
var (
	ErrIoFailure         error = &Error{Kind: IoFailure}
	ErrMalformedHeader   error = &Error{Kind: MalformedHeader}
	ErrTruncatedPayload  error = &Error{Kind: TruncatedPayload}
	ErrUnencodableSymbol error = &Error{Kind: UnencodableSymbol}
)

func (e *Error) Error() string {
	s := "grin: " + e.Kind.String()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// newError builds an *Error and attaches a stack trace to it.
func newError(kind Kind, err error, format string, args ...interface{}) error {
	msg := format
	if len(args) != 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return errors.WithStack(&Error{Kind: kind, Msg: msg, Err: err})
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
