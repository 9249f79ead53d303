// Package serde implements the canonical KLVM binary format.
//
// The encoding is self-delimiting: every value can be decoded without
// an external length, and a buffer holding exactly one value is
// consumed completely. Encoding a given tree is unique, which makes the
// bytes (and their hash) usable as consensus data.
//
// Leading-byte classes:
//
//	0xFF       pair; followed by the encodings of left then right
//	0x80       the empty atom
//	0x00-0x7F  a single-byte atom whose value is the leading byte
//	0x81-0xBF  atom of length (b & 0x3F), up to 0x3F content bytes
//	0xC0-0xDF  atom with a 13-bit length, one extra length byte
//	0xE0-0xEF  atom with a 20-bit length, two extra length bytes
//	0xF0-0xF7  atom with a 27-bit length, three extra length bytes
//	0xF8-0xFB  atom with a 34-bit length, four extra length bytes
//	0xFC-0xFE  invalid
package serde

import (
	"bytes"
	"fmt"

	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/arena"
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/node"
)

const (
	consToken = 0xFF
	nilToken  = 0x80
)

// FormatError reports malformed input during decoding: a truncated
// length prefix, a declared length past the end of the buffer, an
// invalid leading byte, or trailing bytes after the value.
type FormatError struct {
	Offset int
	Reason string
}

// Error returns the error message
func (e *FormatError) Error() string {
	return fmt.Sprintf("klvm format error at offset %d: %s", e.Offset, e.Reason)
}

// WriteAtom appends the canonical encoding of the atom v to buf.
// Encoding cannot fail: the length classes cover every slice length
// representable in memory.
func WriteAtom(buf *bytes.Buffer, v []byte) {
	size := uint64(len(v))
	switch {
	case size == 0:
		buf.WriteByte(nilToken)
		return
	case size == 1 && v[0] < 0x80:
		buf.WriteByte(v[0])
		return
	case size < 0x40:
		buf.WriteByte(0x80 | byte(size))
	case size < 0x2000:
		buf.WriteByte(0xC0 | byte(size>>8))
		buf.WriteByte(byte(size))
	case size < 0x100000:
		buf.WriteByte(0xE0 | byte(size>>16))
		buf.WriteByte(byte(size >> 8))
		buf.WriteByte(byte(size))
	case size < 0x8000000:
		buf.WriteByte(0xF0 | byte(size>>24))
		buf.WriteByte(byte(size >> 16))
		buf.WriteByte(byte(size >> 8))
		buf.WriteByte(byte(size))
	default:
		buf.WriteByte(0xF8 | byte(size>>32))
		buf.WriteByte(byte(size >> 24))
		buf.WriteByte(byte(size >> 16))
		buf.WriteByte(byte(size >> 8))
		buf.WriteByte(byte(size))
	}
	buf.Write(v)
}

// Encode returns the canonical encoding of the tree rooted at n. It
// cannot fail for a well-formed tree and its output is unique per tree.
func Encode(n node.Node) []byte {
	var buf bytes.Buffer
	stack := []node.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v, ok := cur.Atom(); ok {
			WriteAtom(&buf, v)
			continue
		}
		left, right, _ := cur.Pair()
		buf.WriteByte(consToken)
		// Right is pushed first so left is encoded first.
		stack = append(stack, right, left)
	}
	return buf.Bytes()
}

// Decode parses exactly one canonically encoded value from b into a,
// returning the handle of the root. Trailing bytes after the value are
// a FormatError, as is any truncation or invalid leading byte.
func Decode(a arena.Arena, b []byte) (arena.Handle, error) {
	h, rest, err := decodeOne(a, b, 0)
	if err != nil {
		return 0, err
	}
	if rest != len(b) {
		return 0, &FormatError{Offset: rest, Reason: "trailing bytes after value"}
	}
	return h, nil
}

// decodeOne parses one value starting at offset off, returning its
// handle and the offset one past its last byte.
func decodeOne(a arena.Arena, b []byte, off int) (arena.Handle, int, error) {
	if off >= len(b) {
		return 0, 0, &FormatError{Offset: off, Reason: "unexpected end of input"}
	}
	lead := b[off]

	switch {
	case lead == consToken:
		left, next, err := decodeOne(a, b, off+1)
		if err != nil {
			return 0, 0, err
		}
		right, next, err := decodeOne(a, b, next)
		if err != nil {
			return 0, 0, err
		}
		return a.NewPair(left, right), next, nil

	case lead == nilToken:
		return a.NewAtom(nil), off + 1, nil

	case lead < 0x80:
		return a.NewAtom([]byte{lead}), off + 1, nil
	}

	size, next, err := decodeSize(b, off)
	if err != nil {
		return 0, 0, err
	}
	end := next + size
	if end < next || end > len(b) {
		return 0, 0, &FormatError{Offset: off, Reason: "atom length exceeds input"}
	}
	if size == 1 && b[next] < 0x80 {
		return 0, 0, &FormatError{Offset: off, Reason: "non-canonical encoding of single-byte atom"}
	}
	return a.NewAtom(b[next:end]), end, nil
}

// minSizeClass returns the smallest number of extra length bytes able
// to represent size.
func minSizeClass(size uint64) int {
	switch {
	case size < 0x40:
		return 0
	case size < 0x2000:
		return 1
	case size < 0x100000:
		return 2
	case size < 0x8000000:
		return 3
	default:
		return 4
	}
}

// decodeSize parses a multi-byte atom length prefix starting at off and
// returns the content length and the offset of the first content byte.
func decodeSize(b []byte, off int) (int, int, error) {
	lead := b[off]

	var extra int
	var size uint64
	switch {
	case lead < 0xC0:
		extra, size = 0, uint64(lead&0x3F)
	case lead < 0xE0:
		extra, size = 1, uint64(lead&0x1F)
	case lead < 0xF0:
		extra, size = 2, uint64(lead&0x0F)
	case lead < 0xF8:
		extra, size = 3, uint64(lead&0x07)
	case lead < 0xFC:
		extra, size = 4, uint64(lead&0x03)
	default:
		return 0, 0, &FormatError{Offset: off, Reason: fmt.Sprintf("invalid leading byte 0x%02x", lead)}
	}

	if off+1+extra > len(b) {
		return 0, 0, &FormatError{Offset: off, Reason: "truncated length prefix"}
	}
	for i := 0; i < extra; i++ {
		size = size<<8 | uint64(b[off+1+i])
	}
	if extra > 0 && (size == 0 || minSizeClass(size) < extra) {
		return 0, 0, &FormatError{Offset: off, Reason: "non-minimal length prefix"}
	}
	return int(size), off + 1 + extra, nil
}
