package chikklvm

import (
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/arena"
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/gen"
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/node"
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/serde"
)

// Arena is the storage capability contract for S-expression nodes.
// Any implementation may be substituted for the index arena.
type Arena = arena.Arena

// Handle is an opaque node reference, valid only against the arena
// that issued it.
type Handle = arena.Handle

// SExp is the Atom/Pair classification of a node.
type SExp = arena.SExp

// IndexArena is the reference arena backed by an append-only slice.
type IndexArena = arena.IndexArena

// Node is a non-owning (arena, handle) view of an S-expression.
type Node = node.Node

// ListIter is a non-restartable cursor over a list spine.
type ListIter = node.ListIter

// FormatError reports malformed canonical input during decoding.
type FormatError = serde.FormatError

// Type classifies generated values; see the gen package for the closed
// set of composite and atom kinds.
type Type = gen.Type

// OperatorInfo is one typed operator signature of the catalog.
type OperatorInfo = gen.OperatorInfo

// Config holds the tunable corpus generation parameters.
type Config = gen.Config

// Generator emits canonically encoded, type-correct sample values.
type Generator = gen.Generator
