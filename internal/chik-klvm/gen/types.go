// Package gen produces canonically encoded, type-correct sample
// programs for fuzzing the KLVM reducer and its operator dispatch.
//
// The operator catalog encodes the typed signatures of the operator
// set; the generator walks it recursively, emitting canonical bytes for
// each operand either as a nested well-typed call or as a quoted
// literal. Same seed and catalog order means byte-identical output.
package gen

import "fmt"

// Type classifies the values a generated expression can produce.
// Program, Tree, List and PointPair are composite kinds; the rest are
// atom kinds.
type Type uint8

const (
	// Program is a well-typed operator call expression.
	Program Type = iota

	// Tree is an arbitrary cons structure of atoms.
	Tree

	// List is a right-nested, null-terminated chain of atoms.
	List

	// PointPair is a (Bytes48 . Bytes96) pair, the argument shape of
	// the BLS pairing operators.
	PointPair

	// Bool is the empty atom or the atom [1].
	Bool

	// Int64 is an 8-byte big-endian integer atom.
	Int64

	// Int32 is a 4-byte big-endian integer atom.
	Int32

	// Zero is the empty atom, standing for the integer 0.
	Zero

	// Cost is a large Int64 used as a cost budget.
	Cost

	// Bytes32 is a 32-byte atom (sha256 digests, coin IDs).
	Bytes32

	// Bytes48 is a 48-byte atom (BLS G1 points).
	Bytes48

	// Bytes96 is a 96-byte atom (BLS G2 points).
	Bytes96

	// AnyAtom accepts every concrete atom kind.
	AnyAtom
)

// AtomTypes lists the concrete atom kinds, in catalog order. The
// generator draws uniformly from this slice.
var AtomTypes = [8]Type{Bool, Int64, Int32, Zero, Cost, Bytes32, Bytes48, Bytes96}

// String returns the name of the type
func (t Type) String() string {
	switch t {
	case Program:
		return "Program"
	case Tree:
		return "Tree"
	case List:
		return "List"
	case PointPair:
		return "PointPair"
	case Bool:
		return "Bool"
	case Int64:
		return "Int64"
	case Int32:
		return "Int32"
	case Zero:
		return "Zero"
	case Cost:
		return "Cost"
	case Bytes32:
		return "Bytes32"
	case Bytes48:
		return "Bytes48"
	case Bytes96:
		return "Bytes96"
	case AnyAtom:
		return "AnyAtom"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// isAtomType reports whether t is one of the concrete atom kinds.
func isAtomType(t Type) bool {
	for _, a := range AtomTypes {
		if t == a {
			return true
		}
	}
	return false
}

// Convertible reports whether a value of type from may be substituted
// where type to is required. The relation is reflexive and widens only:
// AnyAtom accepts every concrete atom kind, Tree accepts List, Zero
// accepts Int32, and Cost accepts Int64.
func Convertible(from, to Type) bool {
	return from == to ||
		(to == AnyAtom && isAtomType(from)) ||
		(to == Tree && from == List) ||
		(to == Zero && from == Int32) ||
		(to == Cost && from == Int64)
}
