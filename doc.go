// Package grin implements a lossless byte-stream compressor based on Huffman
// coding over a closed alphabet of 257 symbols: the 256 byte values plus an
// end-of-stream sentinel, EOF.
//
// A compressed stream is laid out as follows, bit-packed from the most
// significant bit of byte 0 with no alignment gaps:
//
//	header   pre-order walk of the Huffman tree; each leaf is the bit 0
//	         followed by its 9-bit symbol, each internal node is the bit 1
//	         followed by its first child and then its second child
//	payload  the code of every input byte, in order
//	trailer  the code of EOF, then zero bits up to the next byte boundary
//
// A code is the root-to-leaf path of a symbol, with 0 selecting the first
// child and 1 selecting the second.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package grin
