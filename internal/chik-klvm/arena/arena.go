// Package arena provides node storage for KLVM S-expression trees.
//
// An Arena owns every node allocated through it for its whole lifetime.
// Handles are only meaningful to the arena that issued them; there is no
// per-node destruction, the arena is dropped as a unit at the end of a
// construction or fuzzing session.
package arena

// Handle is an opaque reference to a node inside one arena. A Handle is
// valid only against the arena that issued it. Mixing handles from two
// arenas in NewPair is a caller contract violation and is not checked.
type Handle int32

// Kind discriminates the two node shapes.
type Kind int

const (
	// KindAtom is an immutable byte-string leaf.
	KindAtom Kind = iota

	// KindPair is an ordered pair of two child handles.
	KindPair
)

// SExp is the classification of a node: an atom carrying bytes, or a
// pair carrying its two children.
type SExp struct {
	Kind  Kind
	atom  []byte
	left  Handle
	right Handle
}

// Atom returns the atom bytes. The second result is false for a pair.
// The returned slice aliases arena storage and must not be modified.
func (s SExp) Atom() ([]byte, bool) {
	if s.Kind != KindAtom {
		return nil, false
	}
	return s.atom, true
}

// Pair returns the left and right child handles. The third result is
// false for an atom.
func (s SExp) Pair() (Handle, Handle, bool) {
	if s.Kind != KindPair {
		return 0, 0, false
	}
	return s.left, s.right, true
}

// MakeAtom builds an atom classification. Used by Arena implementations.
func MakeAtom(v []byte) SExp {
	return SExp{Kind: KindAtom, atom: v}
}

// MakePair builds a pair classification. Used by Arena implementations.
func MakePair(left, right Handle) SExp {
	return SExp{Kind: KindPair, left: left, right: right}
}

// Arena is the storage capability contract for S-expression nodes.
//
// All operations are total: storage exhaustion is a fatal abort, not a
// recoverable error. Implementations are not safe for concurrent use;
// callers share an arena across goroutines at their own risk.
type Arena interface {
	// NewAtom stores a copy of v as an immutable atom and returns its
	// handle.
	NewAtom(v []byte) Handle

	// NewPair stores an ordered pair of two handles issued by this
	// arena. Passing a handle from another arena is undefined.
	NewPair(left, right Handle) Handle

	// SExp classifies a node. The result is deterministic and
	// referentially transparent for the arena's lifetime.
	SExp(h Handle) SExp

	// Clone returns a handle with identical classification and content.
	// Whether the handle is physically distinct is arena-defined.
	Clone(h Handle) Handle

	// Null returns the canonical zero-length atom (falsy / nil / list
	// terminator).
	Null() Handle

	// One returns the canonical single-byte atom [1] (boolean truth,
	// integer one).
	One() Handle
}
