package serde

import "math/big"

// AtomFromInt returns the minimal big-endian two's-complement byte
// string for x: no redundant leading 0x00 except the one that keeps a
// non-negative value's sign bit clear, and no redundant leading 0xFF
// for negatives. Zero is the empty atom.
func AtomFromInt(x *big.Int) []byte {
	sign := x.Sign()
	if sign == 0 {
		return nil
	}

	if sign > 0 {
		v := x.Bytes()
		if v[0]&0x80 != 0 {
			// Pad so the value does not read as negative.
			return append([]byte{0}, v...)
		}
		return v
	}

	// Negative: two's complement over the minimal byte width. The
	// width is driven by the bit length of ^x (= -x-1), plus the sign
	// bit, so -128 stays a single 0x80 byte.
	not := new(big.Int).Not(x)
	width := (not.BitLen() + 1 + 7) / 8
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	tc := new(big.Int).Add(mod, x)
	v := tc.Bytes()
	if len(v) < width {
		padded := make([]byte, width)
		copy(padded[width-len(v):], v)
		v = padded
	}
	return v
}

// AtomFromInt64 returns the minimal two's-complement atom for x.
func AtomFromInt64(x int64) []byte {
	return AtomFromInt(big.NewInt(x))
}

// AtomFromUint64 returns the minimal two's-complement atom for x,
// treated as non-negative.
func AtomFromUint64(x uint64) []byte {
	return AtomFromInt(new(big.Int).SetUint64(x))
}

// IntFromAtom interprets v as a big-endian signed two's-complement
// integer, the inverse of AtomFromInt for minimal encodings. The empty
// atom is zero.
func IntFromAtom(v []byte) *big.Int {
	x := new(big.Int).SetBytes(v)
	if len(v) > 0 && v[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(v)*8))
		x.Sub(x, mod)
	}
	return x
}
