package grin

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	tree := NewTree(FrequencyMap{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45})
	e, err := NewEncoder(tree)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 5\n",
		"\tEncode(0x00) = \"11001\"\n",
		"\tEncode(0x01) = \"1101\"\n",
		"\tEncode(0x02) = \"100\"\n",
		"\tEncode(0x03) = \"101\"\n",
		"\tEncode(0x04) = \"111\"\n",
		"\tEncode(0x05) = \"0\"\n",
		"\tEncode(EOF) = \"11000\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()
	expectSizes := make([]byte, NumSymbols)
	copy(expectSizes, []byte{5, 4, 3, 3, 3, 1})
	expectSizes[EOF] = 5
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestEncoder_Lookup(t *testing.T) {
	e, err := NewEncoder(NewTree(CountBytes([]byte("I oo   "))))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	type testRow struct {
		sym  Symbol
		code string
		ok   bool
	}

	testData := [...]testRow{
		{sym: ' ', code: "\"0\"", ok: true},
		{sym: 'o', code: "\"10\"", ok: true},
		{sym: 'I', code: "\"110\"", ok: true},
		{sym: EOF, code: "\"111\"", ok: true},
		{sym: 'x', code: "\"\"", ok: false},
		{sym: InvalidSymbol, code: "\"\"", ok: false},
	}
	for _, row := range testData {
		t.Run(row.sym.String(), func(t *testing.T) {
			hc, ok := e.Lookup(row.sym)
			if ok != row.ok {
				t.Errorf("expected ok %v, got %v", row.ok, ok)
			}
			if hc.String() != row.code {
				t.Errorf("expected code %s, got %s", row.code, hc)
			}
			if hc != e.Encode(row.sym) {
				t.Errorf("Encode and Lookup disagree: %s vs %s", e.Encode(row.sym), hc)
			}
		})
	}
}

func TestEncoder_EmptyTree(t *testing.T) {
	e, err := NewEncoder(NewTree(nil))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	hc, ok := e.Lookup(EOF)
	if !ok || hc.Size != 0 {
		t.Errorf("expected empty code for EOF, got %s (ok=%v)", hc, ok)
	}
	if e.MinSize() != 0 || e.MaxSize() != 0 {
		t.Errorf("expected sizes 0..0, got %d..%d", e.MinSize(), e.MaxSize())
	}
}

func TestEncoder_TooDeep(t *testing.T) {
	// Fibonacci weights (after EOF's weight of 1) produce a tree with one
	// extra level per symbol.
	freqs := make(FrequencyMap)
	a, b := uint64(1), uint64(2)
	for symbol := Symbol(0); symbol < 70; symbol++ {
		freqs[symbol] = a
		a, b = b, a+b
	}
	tree := NewTree(freqs)
	if tree.Depth() <= MaxCodeSize {
		t.Fatalf("expected depth > %d, got %d", MaxCodeSize, tree.Depth())
	}
	if _, err := NewEncoder(tree); KindOf(err) != UnencodableSymbol {
		t.Errorf("expected %v, got %v", ErrUnencodableSymbol, err)
	}
}
