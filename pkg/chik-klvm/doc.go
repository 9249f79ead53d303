// Package chikklvm provides the data-model and canonical-serialization
// core of the KLVM, the deterministic Lisp-like program representation
// used by the Chik blockchain runtime.
//
// Every program and every piece of on-chain data is an S-expression:
// an atom (an immutable byte string, readable as a big-endian signed
// integer) or a pair of two S-expressions. The canonical binary
// encoding maps each tree to exactly one byte sequence, so the bytes
// and their hash are usable as consensus data across independent
// implementations.
//
// # Features
//
// - Storage-agnostic arena contract with an index-based reference arena
// - Lightweight tree views with list-spine iteration
// - Canonical, self-delimiting binary codec (the wire and file format)
// - Typed operator catalog covering the full operator set with overloads
// - Seeded, type-directed program generator for reproducible fuzzing
// - Content-addressed, self-deduplicating fuzz corpus output
//
// # Quick Start
//
// Building and encoding a tree:
//
//	a := chikklvm.NewIndexArena()
//	n := chikklvm.NewNode(a, a.Null())
//	tree := n.NewAtom([]byte{1}).Cons(n.NewAtom([]byte{2}))
//	buf := chikklvm.Encode(tree)
//
// Decoding canonical bytes:
//
//	h, err := chikklvm.Decode(a, buf)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tree = chikklvm.NewNode(a, h)
//
// Generating a fuzz corpus:
//
//	cfg := chikklvm.DefaultConfig().WithSeed(0x1337)
//	if err := chikklvm.GenerateCorpus(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// - pkg/chik-klvm/: public API (this package)
// - internal/chik-klvm/arena: node storage behind the arena contract
// - internal/chik-klvm/node: structural views over an arena
// - internal/chik-klvm/serde: the canonical codec
// - internal/chik-klvm/gen: operator catalog and typed generator
//
// Implementation details in internal/ can be refactored without
// breaking the public API. Any storage backend satisfying the Arena
// interface is a valid substitute for the index arena.
//
// This package produces and validates canonical buffers; it does not
// evaluate them. Opcode reduction, cost metering and the cryptographic
// operator implementations live in the reducer that consumes these
// buffers.
package chikklvm
