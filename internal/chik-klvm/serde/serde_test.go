package serde

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/arena"
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/node"
)

func newNode(t testing.TB) node.Node {
	t.Helper()
	a := arena.NewIndexArena()
	return node.New(a, a.Null())
}

// sameTree reports structural equality: same atom bytes, same pair
// shape.
func sameTree(a, b node.Node) bool {
	av, aok := a.Atom()
	bv, bok := b.Atom()
	if aok != bok {
		return false
	}
	if aok {
		return bytes.Equal(av, bv)
	}
	al, ar, _ := a.Pair()
	bl, br, _ := b.Pair()
	return sameTree(al, bl) && sameTree(ar, br)
}

// TestWriteAtomClasses tests the leading-byte classes of atom encoding
func TestWriteAtomClasses(t *testing.T) {
	tests := []struct {
		name      string
		atom      []byte
		prefix    []byte
		prefixLen int // total encoded length is prefixLen + content bytes
	}{
		{"empty", nil, []byte{0x80}, 1},
		{"single low byte", []byte{0x00}, []byte{0x00}, 0},
		{"single byte 0x7f", []byte{0x7f}, []byte{0x7f}, 0},
		{"single high byte", []byte{0x80}, []byte{0x81, 0x80}, 1},
		{"two bytes", []byte{1, 2}, []byte{0x82}, 1},
		{"63 bytes", make([]byte, 63), []byte{0xBF}, 1},
		{"64 bytes", make([]byte, 64), []byte{0xC0, 0x40}, 2},
		{"0x1fff bytes", make([]byte, 0x1fff), []byte{0xDF, 0xFF}, 2},
		{"0x2000 bytes", make([]byte, 0x2000), []byte{0xE0, 0x20, 0x00}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			WriteAtom(&buf, tt.atom)
			got := buf.Bytes()
			if !bytes.HasPrefix(got, tt.prefix) {
				t.Errorf("Expected prefix %x, got %x", tt.prefix, got)
			}
			wantLen := tt.prefixLen + len(tt.atom)
			if tt.prefixLen == 0 {
				wantLen = 1 // bare single byte
			}
			if len(got) != wantLen {
				t.Errorf("Expected %d encoded bytes, got %d", wantLen, len(got))
			}
		})
	}
}

// TestRoundTrip tests decode(encode(T)) == T for representative trees
func TestRoundTrip(t *testing.T) {
	n := newNode(t)

	trees := map[string]node.Node{
		"nil":         n.Null(),
		"one":         n.One(),
		"pair":        n.NewAtom([]byte{1}).Cons(n.NewAtom([]byte{2})),
		"nested":      n.NewAtom([]byte{1}).Cons(n.NewAtom([]byte{2}).Cons(n.NewAtom([]byte{3}).Cons(n.Null()))),
		"deep":        n.Null().Cons(n.Null().Cons(n.Null().Cons(n.One()))),
		"long atom":   n.NewAtom(bytes.Repeat([]byte{0xAB}, 100)),
		"huge atom":   n.NewAtom(bytes.Repeat([]byte{0xCD}, 0x2345)),
		"boundary 63": n.NewAtom(make([]byte, 63)),
		"boundary 64": n.NewAtom(make([]byte, 64)),
		"mixed":       n.NewAtom([]byte{0xFF}).Cons(n.NewAtom(bytes.Repeat([]byte{7}, 70)).Cons(n.Null())),
	}

	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			enc := Encode(tree)

			a2 := arena.NewIndexArena()
			h, err := Decode(a2, enc)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			decoded := node.New(a2, h)
			if !sameTree(tree, decoded) {
				t.Error("Decoded tree differs structurally from the original")
			}

			// Re-encoding reproduces the bytes exactly.
			if !bytes.Equal(Encode(decoded), enc) {
				t.Error("Re-encoding a decoded tree changed the bytes")
			}
		})
	}
}

// TestRoundTripSingleBytes tests all 256 single-byte atoms
func TestRoundTripSingleBytes(t *testing.T) {
	n := newNode(t)

	for i := 0; i < 256; i++ {
		atom := n.NewAtom([]byte{byte(i)})
		enc := Encode(atom)

		a2 := arena.NewIndexArena()
		h, err := Decode(a2, enc)
		if err != nil {
			t.Fatalf("Decode of single byte %d failed: %v", i, err)
		}
		v, ok := node.New(a2, h).Atom()
		if !ok || len(v) != 1 || v[0] != byte(i) {
			t.Errorf("Round trip of byte %d produced %v", i, v)
		}

		if i < 0x80 && len(enc) != 1 {
			t.Errorf("Byte %d should encode as itself, got %x", i, enc)
		}
		if i >= 0x80 && !bytes.Equal(enc, []byte{0x81, byte(i)}) {
			t.Errorf("Byte %d should encode as 81 %02x, got %x", i, i, enc)
		}
	}
}

// TestDecodeErrors tests malformed-input reporting
func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty input", nil},
		{"truncated pair", []byte{0xFF, 0x01}},
		{"truncated atom content", []byte{0x85, 1, 2}},
		{"truncated length prefix", []byte{0xC0}},
		{"length exceeds input", []byte{0xC1, 0x00, 1, 2}},
		{"invalid leading byte 0xFC", []byte{0xFC}},
		{"invalid leading byte 0xFE", []byte{0xFE}},
		{"trailing bytes", []byte{0x01, 0x02}},
		{"non-minimal single byte", []byte{0x81, 0x01}},
		{"non-minimal length prefix", []byte{0xC0, 0x05, 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := arena.NewIndexArena()
			_, err := Decode(a, tt.input)
			if err == nil {
				t.Fatal("Decode should fail")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("Expected *FormatError, got %T", err)
			}
		})
	}
}

// TestDecodeConsumesWholeBuffer tests the self-delimiting property
func TestDecodeConsumesWholeBuffer(t *testing.T) {
	n := newNode(t)
	tree := n.NewAtom([]byte{1}).Cons(n.NewAtom(bytes.Repeat([]byte{9}, 80)).Cons(n.Null()))
	enc := Encode(tree)

	// Exactly one value: fine.
	a := arena.NewIndexArena()
	if _, err := Decode(a, enc); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// One extra byte: trailing-bytes error.
	if _, err := Decode(arena.NewIndexArena(), append(append([]byte(nil), enc...), 0x80)); err == nil {
		t.Error("Decode should reject trailing bytes")
	}

	// One byte short: truncation error.
	if _, err := Decode(arena.NewIndexArena(), enc[:len(enc)-1]); err == nil {
		t.Error("Decode should reject a truncated buffer")
	}
}

// TestAtomFromInt tests minimal two's-complement canonicalization
func TestAtomFromInt(t *testing.T) {
	tests := []struct {
		name string
		x    int64
		want []byte
	}{
		{"zero", 0, nil},
		{"one", 1, []byte{0x01}},
		{"127", 127, []byte{0x7F}},
		{"128 needs pad", 128, []byte{0x00, 0x80}},
		{"255 needs pad", 255, []byte{0x00, 0xFF}},
		{"256", 256, []byte{0x01, 0x00}},
		{"minus one", -1, []byte{0xFF}},
		{"minus 128", -128, []byte{0x80}},
		{"minus 129", -129, []byte{0xFF, 0x7F}},
		{"minus 256", -256, []byte{0xFF, 0x00}},
		{"int32 max", 0x7FFFFFFF, []byte{0x7F, 0xFF, 0xFF, 0xFF}},
		{"2^31", 0x80000000, []byte{0x00, 0x80, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AtomFromInt64(tt.x)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("AtomFromInt64(%d) = %x, want %x", tt.x, got, tt.want)
			}

			back := IntFromAtom(got)
			if back.Cmp(big.NewInt(tt.x)) != 0 {
				t.Errorf("IntFromAtom(%x) = %v, want %d", got, back, tt.x)
			}
		})
	}
}

// TestAtomFromUint64 tests the unsigned entry point
func TestAtomFromUint64(t *testing.T) {
	got := AtomFromUint64(0xFFFFFFFFFFFFFFFF)
	want := []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("AtomFromUint64(max) = %x, want %x", got, want)
	}
}

// BenchmarkEncode benchmarks tree encoding
func BenchmarkEncode(b *testing.B) {
	n := newNode(b)
	tree := n.Null()
	for i := 0; i < 50; i++ {
		tree = n.NewAtom([]byte{byte(i), byte(i + 1)}).Cons(tree)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(tree)
	}
}

// BenchmarkDecode benchmarks tree decoding
func BenchmarkDecode(b *testing.B) {
	n := newNode(b)
	tree := n.Null()
	for i := 0; i < 50; i++ {
		tree = n.NewAtom([]byte{byte(i), byte(i + 1)}).Cons(tree)
	}
	enc := Encode(tree)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := arena.NewIndexArena()
		if _, err := Decode(a, enc); err != nil {
			b.Fatal(err)
		}
	}
}
