package grin

import (
	"bytes"

	"github.com/icza/bitio"
)

// EncodeBytes compresses data in memory.
func EncodeBytes(data []byte) ([]byte, error) {
	tree := NewTree(CountBytes(data))

	buf := &bytes.Buffer{}
	w := bitio.NewWriter(buf)
	if err := Encode(bytes.NewReader(data), w, tree); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, newError(IoFailure, err, "flushing bit stream")
	}

	return buf.Bytes(), nil
}

// DecodeBytes decompresses data in memory.
func DecodeBytes(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	if _, err := Decode(bitio.NewReader(bytes.NewReader(data)), buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
