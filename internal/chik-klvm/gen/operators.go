package gen

// OperatorInfo is one typed signature of a KLVM operator: its opcode,
// the ordered operand types it accepts, and the type it produces.
// Variadic operators appear as multiple rows sharing an opcode, one per
// accepted arity.
type OperatorInfo struct {
	Opcode   byte
	Operands []Type
	Result   Type
}

func op(opcode byte, operands []Type, result Type) OperatorInfo {
	return OperatorInfo{Opcode: opcode, Operands: operands, Result: result}
}

// Operators is the operator type catalog: a fixed, read-only table
// initialized once at process start and never mutated. Row order is
// part of the generator's determinism contract.
var Operators = []OperatorInfo{
	// apply
	op(2, []Type{Program, Tree}, AnyAtom),
	// if
	op(3, []Type{Bool, Program, Program}, Program),
	// cons
	op(4, []Type{AnyAtom, List}, List),
	op(4, []Type{Bytes48, Bytes96}, PointPair),
	// first
	op(5, []Type{List}, AnyAtom),
	// rest
	op(6, []Type{List}, List),
	// listp
	op(7, []Type{List}, Bool),
	// raise
	op(8, []Type{AnyAtom}, AnyAtom),
	// equal
	op(9, []Type{AnyAtom, AnyAtom}, Bool),
	// greater-bytes
	op(10, []Type{AnyAtom, AnyAtom}, Bool),
	// sha256
	op(11, []Type{AnyAtom, AnyAtom, AnyAtom}, Bytes32),
	// substr
	op(12, []Type{AnyAtom, Int32}, AnyAtom),
	op(12, []Type{AnyAtom, Int32, Int32}, AnyAtom),
	// strlen
	op(13, []Type{AnyAtom}, Int32),
	// concat
	op(14, []Type{AnyAtom, AnyAtom}, AnyAtom),
	op(14, []Type{AnyAtom, AnyAtom, AnyAtom}, AnyAtom),
	// add
	op(16, []Type{}, Int64),
	op(16, []Type{Int64}, Int64),
	op(16, []Type{Int64, Int64}, Int64),
	op(16, []Type{Int64, Int64, Int64}, Int64),
	// subtract
	op(17, []Type{}, Int64),
	op(17, []Type{Int64}, Int64),
	op(17, []Type{Int64, Int64}, Int64),
	op(17, []Type{Int64, Int64, Int64}, Int64),
	// multiply
	op(18, []Type{Int64, Int64}, Int64),
	// div
	op(19, []Type{Int64, Int64}, Int64),
	// divmod
	op(20, []Type{Int64, Int64}, List),
	// gr
	op(21, []Type{Int64, Int64}, Bool),
	// ash
	op(22, []Type{Int64, Int32}, Int64),
	// lsh
	op(23, []Type{Int64, Int32}, Int64),
	// logand
	op(24, []Type{}, AnyAtom),
	op(24, []Type{AnyAtom}, AnyAtom),
	op(24, []Type{AnyAtom, AnyAtom}, AnyAtom),
	op(24, []Type{AnyAtom, AnyAtom, AnyAtom}, AnyAtom),
	// logior
	op(25, []Type{}, AnyAtom),
	op(25, []Type{AnyAtom}, AnyAtom),
	op(25, []Type{AnyAtom, AnyAtom}, AnyAtom),
	op(25, []Type{AnyAtom, AnyAtom, AnyAtom}, AnyAtom),
	// logxor
	op(26, []Type{}, AnyAtom),
	op(26, []Type{AnyAtom}, AnyAtom),
	op(26, []Type{AnyAtom, AnyAtom}, AnyAtom),
	op(26, []Type{AnyAtom, AnyAtom, AnyAtom}, AnyAtom),
	// lognot
	op(27, []Type{AnyAtom}, AnyAtom),
	// point_add
	op(29, []Type{}, Bytes48),
	op(29, []Type{Bytes48}, Bytes48),
	op(29, []Type{Bytes48, Bytes48}, Bytes48),
	op(29, []Type{Bytes48, Bytes48, Bytes48}, Bytes48),
	// pubkey_for_exp
	op(30, []Type{AnyAtom}, Bytes48),
	// not
	op(32, []Type{AnyAtom}, Bool),
	// any
	op(33, []Type{AnyAtom, AnyAtom}, Bool),
	// all
	op(34, []Type{AnyAtom, AnyAtom}, Bool),
	// softfork
	op(36, []Type{Cost, Zero, Program, Tree}, Bool),
	// coinid
	op(48, []Type{Bytes32, Bytes32, Int64}, Bytes32),
	// bls_g1_subtract
	op(49, []Type{Bytes48, Bytes48}, Bytes48),
	// bls_g1_multiply
	op(50, []Type{Bytes48, Int64}, Bytes48),
	// bls_g1_negate
	op(51, []Type{Bytes48}, Bytes48),
	// bls_g2_add
	op(52, []Type{Bytes96, Bytes96}, Bytes96),
	// bls_g2_subtract
	op(53, []Type{Bytes96, Bytes96}, Bytes96),
	// bls_g2_multiply
	op(54, []Type{Bytes96, Int64}, Bytes96),
	op(54, []Type{Bytes96, Bytes32}, Bytes96),
	op(54, []Type{Bytes96, Bytes48}, Bytes96),
	op(54, []Type{Bytes96, Bytes96}, Bytes96),
	// bls_g2_negate
	op(55, []Type{Bytes96}, Bytes96),
	// bls_map_to_g1
	op(56, []Type{AnyAtom, AnyAtom}, Bytes48),
	// bls_map_to_g2
	op(57, []Type{AnyAtom, AnyAtom}, Bytes96),
	op(57, []Type{AnyAtom}, Bytes96),
	// bls_pairing_identity
	op(58, []Type{PointPair}, Bool),
	op(58, []Type{PointPair, PointPair}, Bool),
	op(58, []Type{PointPair, PointPair, PointPair}, Bool),
	op(58, []Type{PointPair, PointPair, PointPair, PointPair}, Bool),
	op(58, []Type{PointPair, PointPair, PointPair, PointPair, PointPair}, Bool),
	// bls_verify
	op(59, []Type{Bytes96}, Bool),
	op(59, []Type{Bytes96, PointPair}, Bool),
	op(59, []Type{Bytes96, PointPair, PointPair}, Bool),
	op(59, []Type{Bytes96, PointPair, PointPair, PointPair}, Bool),
	op(59, []Type{Bytes96, PointPair, PointPair, PointPair, PointPair}, Bool),
}
