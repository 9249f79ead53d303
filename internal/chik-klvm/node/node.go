// Package node provides a lightweight tree view over an arena.
//
// A Node is a (arena, handle) pair: cheap to copy, never owning storage,
// and never outliving its arena. It gives structural access to an
// S-expression without committing to a storage layout.
package node

import (
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/arena"
)

// Node is a non-owning view of one S-expression node inside an arena.
type Node struct {
	Arena  arena.Arena
	Handle arena.Handle
}

// New creates a view of h inside a.
func New(a arena.Arena, h arena.Handle) Node {
	return Node{Arena: a, Handle: h}
}

// WithHandle returns a view of h in the same arena as n.
func (n Node) WithHandle(h arena.Handle) Node {
	return Node{Arena: n.Arena, Handle: h}
}

// NewAtom allocates v as an atom in n's arena and returns its view.
func (n Node) NewAtom(v []byte) Node {
	return n.WithHandle(n.Arena.NewAtom(v))
}

// Cons builds a new pair with n as the left child and right as the
// right child. Both views must reference the same arena; passing a view
// of another arena is undefined.
func (n Node) Cons(right Node) Node {
	return n.WithHandle(n.Arena.NewPair(n.Handle, right.Handle))
}

// SExp classifies the node.
func (n Node) SExp() arena.SExp {
	return n.Arena.SExp(n.Handle)
}

// Atom returns the atom bytes. The second result is false for a pair.
func (n Node) Atom() ([]byte, bool) {
	return n.SExp().Atom()
}

// Pair returns the two child views. The third result is false for an
// atom. Both children share n's arena.
func (n Node) Pair() (Node, Node, bool) {
	l, r, ok := n.SExp().Pair()
	if !ok {
		return Node{}, Node{}, false
	}
	return n.WithHandle(l), n.WithHandle(r), true
}

// Clone returns a view with identical classification and content.
func (n Node) Clone() Node {
	return n.WithHandle(n.Arena.Clone(n.Handle))
}

// Nullp reports whether n is the empty atom.
func (n Node) Nullp() bool {
	v, ok := n.Atom()
	return ok && len(v) == 0
}

// AsBool reports the truthiness of n: the empty atom is false, every
// other atom and every pair is true.
func (n Node) AsBool() bool {
	v, ok := n.Atom()
	if ok {
		return len(v) != 0
	}
	return true
}

// FromBool returns the arena's canonical truth atom for b: One for
// true, Null for false.
func (n Node) FromBool(b bool) Node {
	if b {
		return n.One()
	}
	return n.Null()
}

// Null returns a view of the arena's canonical empty atom.
func (n Node) Null() Node {
	return n.WithHandle(n.Arena.Null())
}

// One returns a view of the arena's canonical atom [1].
func (n Node) One() Node {
	return n.WithHandle(n.Arena.One())
}

// ArgCountIs walks successive right children and reports whether the
// list spine has exactly count elements. It is true iff after exactly
// count pair steps the remaining node is the empty atom; a non-pair
// terminator reached early, or a pair remaining after count steps,
// makes it false.
func (n Node) ArgCountIs(count int) bool {
	cur := n.Clone()
	for {
		if count == 0 {
			return cur.Nullp()
		}
		_, rest, ok := cur.Pair()
		if !ok {
			return false
		}
		cur = rest
		count--
	}
}

// Iter returns a fresh list-spine cursor positioned at n.
func (n Node) Iter() *ListIter {
	return &ListIter{cur: n.Clone()}
}

// ListIter is an explicit, non-restartable cursor over a list spine. It
// advances through right children and stops the instant the current
// node is not a pair. It does not require the terminal value to be the
// empty atom: iterating the dotted structure (1 2 . 3) yields 1 and 2
// and leaves 3 unconsumed.
type ListIter struct {
	cur Node
}

// Peek returns the head of the current pair without advancing. The
// second result is false when the cursor is exhausted.
func (it *ListIter) Peek() (Node, bool) {
	first, _, ok := it.cur.Pair()
	if !ok {
		return Node{}, false
	}
	return first, true
}

// Next returns the head of the current pair and advances the cursor to
// the right child. The second result is false when the cursor is
// exhausted.
func (it *ListIter) Next() (Node, bool) {
	first, rest, ok := it.cur.Pair()
	if !ok {
		return Node{}, false
	}
	it.cur = rest
	return first, true
}

// Rest returns the unconsumed remainder of the spine, including a
// dotted terminator that Next refused to yield.
func (it *ListIter) Rest() Node {
	return it.cur
}
