package arena

// node is one slot of an IndexArena. Exactly one of the atom/pair
// interpretations is live, selected by kind.
type node struct {
	kind  Kind
	atom  []byte
	left  Handle
	right Handle
}

// IndexArena is the reference Arena implementation: an append-only slice
// of nodes addressed by index. Allocation never frees; the whole arena
// is released by dropping it.
//
// Clone returns the same handle it was given. Nodes are immutable once
// stored, so a shared handle is indistinguishable from a physical copy
// under traversal.
type IndexArena struct {
	nodes []node
	null  Handle
	one   Handle
}

// NewIndexArena creates an arena with the canonical null and one atoms
// pre-allocated.
func NewIndexArena() *IndexArena {
	a := &IndexArena{nodes: make([]node, 0, 64)}
	a.null = a.NewAtom(nil)
	a.one = a.NewAtom([]byte{1})
	return a
}

// NewAtom stores a copy of v and returns its handle.
func (a *IndexArena) NewAtom(v []byte) Handle {
	h := Handle(len(a.nodes))
	stored := make([]byte, len(v))
	copy(stored, v)
	a.nodes = append(a.nodes, node{kind: KindAtom, atom: stored})
	return h
}

// NewPair stores an ordered pair of two handles from this arena.
func (a *IndexArena) NewPair(left, right Handle) Handle {
	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, node{kind: KindPair, left: left, right: right})
	return h
}

// SExp classifies the node behind h.
func (a *IndexArena) SExp(h Handle) SExp {
	n := &a.nodes[h]
	if n.kind == KindAtom {
		return MakeAtom(n.atom)
	}
	return MakePair(n.left, n.right)
}

// Clone returns h unchanged: nodes are immutable, so sharing the handle
// satisfies the traversal-idempotence contract.
func (a *IndexArena) Clone(h Handle) Handle {
	return h
}

// Null returns the pre-allocated zero-length atom.
func (a *IndexArena) Null() Handle {
	return a.null
}

// One returns the pre-allocated atom [1].
func (a *IndexArena) One() Handle {
	return a.one
}

// NodeCount returns the number of nodes allocated so far.
func (a *IndexArena) NodeCount() int {
	return len(a.nodes)
}
