package grin

import (
	"bufio"
	"io"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/pkg/errors"
)

// FrequencyMap maps each Symbol to its number of occurrences.  Maps produced
// by CountFrequencies only hold byte symbols, each with a count of at least
// 1; NewTree adds EOF itself.
type FrequencyMap map[Symbol]uint64

// CountFrequencies scans r to its end and counts every byte.  Scanning stops
// only when r reports io.EOF.  An empty input yields an empty map.
func CountFrequencies(r io.Reader) (FrequencyMap, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	freqs := make(FrequencyMap)
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return freqs, nil
		}
		if err != nil {
			return nil, newError(IoFailure, err, "counting symbol frequencies")
		}
		freqs.Add(b)
	}
}

// CountBytes counts every byte of data.
func CountBytes(data []byte) FrequencyMap {
	freqs := make(FrequencyMap)
	for _, b := range data {
		freqs.Add(b)
	}
	return freqs
}

// Add records one occurrence of b.
func (freqs FrequencyMap) Add(b byte) {
	freqs[Symbol(b)]++
}

// Total returns the sum of all counts.
func (freqs FrequencyMap) Total() uint64 {
	var sum uint64
	for _, count := range freqs {
		sum += count
	}
	return sum
}

// Symbols returns the symbols present in this map in ascending order.
func (freqs FrequencyMap) Symbols() []Symbol {
	keys := maputil.Keys(freqs)
	slice.Sort(keys)
	return keys
}
