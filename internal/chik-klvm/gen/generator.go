package gen

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/serde"
)

const (
	consToken  = 0xFF
	nilToken   = 0x80
	quoteToken = 0x01
)

// Interesting integer values for the Int32 and Int64 atom kinds:
// boundary and sign-flip cases that historically shake out arithmetic
// bugs.
var interestingU32 = [9]uint32{
	0, 1, 5, 0xff, 0xffff, 0x100, 0xffffffff, 0x7fffffff, 0x800000,
}

var interestingU64 = [8]uint64{
	0,
	1,
	5,
	0xff,
	0xffffffffffffffff,
	0x100,
	0x8000000000000000,
	0x7fffffffffffffff,
}

var zeros [96]byte

// ErrNoProducer reports a catalog-authoring defect: an operand type
// that no catalog signature can produce. The affected sample is skipped
// rather than aborting the run.
type ErrNoProducer struct {
	Want Type
}

// Error returns the error message
func (e *ErrNoProducer) Error() string {
	return fmt.Sprintf("no operator in the catalog returns %s", e.Want)
}

// Generator emits canonically encoded, type-correct values driven by a
// seeded pseudorandom source. It is not safe for concurrent use; the
// reference corpus is produced sequentially from a single stream.
type Generator struct {
	rng *rand.Rand
	cfg *Config
}

// NewGenerator creates a generator seeded from cfg.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(cfg.Seed)),
		cfg: cfg,
	}
}

// chance draws a biased coin.
func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

// randAtomType picks a concrete atom kind uniformly.
func (g *Generator) randAtomType() Type {
	return AtomTypes[g.rng.Intn(len(AtomTypes))]
}

// Generate appends a canonically encoded value of type t to buf.
// Nested Program operands respect the call depth bound; all other
// recursion is bounded by the continuation probabilities.
func (g *Generator) Generate(t Type, buf *bytes.Buffer) error {
	return g.generate(t, buf, 0)
}

func (g *Generator) generate(t Type, buf *bytes.Buffer, depth int) error {
	switch t {
	case Tree:
		buf.WriteByte(consToken)
		left := g.randAtomType()
		if g.chance(g.cfg.TreeGrowProb) {
			left = Tree
		}
		right := g.randAtomType()
		if g.chance(g.cfg.TreeGrowProb) {
			right = Tree
		}
		if err := g.generate(left, buf, depth); err != nil {
			return err
		}
		return g.generate(right, buf, depth)

	case List:
		n := g.rng.Intn(g.cfg.MaxListLen)
		for i := 0; i < n; i++ {
			buf.WriteByte(consToken)
			if err := g.generate(g.randAtomType(), buf, depth); err != nil {
				return err
			}
		}
		buf.WriteByte(nilToken)
		return nil

	case PointPair:
		buf.WriteByte(consToken)
		if err := g.generate(Bytes48, buf, depth); err != nil {
			return err
		}
		return g.generate(Bytes96, buf, depth)

	case Program:
		if depth >= g.cfg.MaxCallDepth {
			// At the nesting bound, settle for a zero-operand call so
			// generation terminates unconditionally.
			return g.generateCall(g.pickLeafSignature(), buf, depth)
		}
		sig := &Operators[g.rng.Intn(len(Operators))]
		return g.generateCall(sig, buf, depth)

	case Bool:
		if g.chance(0.5) {
			buf.WriteByte(nilToken)
		} else {
			buf.WriteByte(quoteToken)
		}
		return nil

	case Int64:
		var be [8]byte
		binary.BigEndian.PutUint64(be[:], interestingU64[g.rng.Intn(len(interestingU64))])
		serde.WriteAtom(buf, be[:])
		return nil

	case Int32:
		var be [4]byte
		binary.BigEndian.PutUint32(be[:], interestingU32[g.rng.Intn(len(interestingU32))])
		serde.WriteAtom(buf, be[:])
		return nil

	case Zero:
		buf.WriteByte(nilToken)
		return nil

	case Cost:
		var be [8]byte
		binary.BigEndian.PutUint64(be[:], 8000000000)
		serde.WriteAtom(buf, be[:])
		return nil

	case Bytes32:
		serde.WriteAtom(buf, zeros[:32])
		return nil

	case Bytes48:
		serde.WriteAtom(buf, zeros[:48])
		return nil

	case Bytes96:
		serde.WriteAtom(buf, zeros[:96])
		return nil

	case AnyAtom:
		return g.generate(g.randAtomType(), buf, depth)

	default:
		return fmt.Errorf("cannot generate value of type %s", t)
	}
}

// GenerateCall appends a well-typed call to sig: the pair-encoded list
// (opcode operand1 ... operandN). Each operand is a nested call with
// probability CallProb, otherwise a quoted literal. It returns
// *ErrNoProducer when some operand type has no convertible producer in
// the catalog; the caller logs and skips that sample.
func (g *Generator) GenerateCall(sig *OperatorInfo, buf *bytes.Buffer) error {
	return g.generateCall(sig, buf, 0)
}

func (g *Generator) generateCall(sig *OperatorInfo, buf *bytes.Buffer, depth int) error {
	buf.WriteByte(consToken)
	buf.WriteByte(sig.Opcode)
	for _, want := range sig.Operands {
		buf.WriteByte(consToken)

		if depth < g.cfg.MaxCallDepth && g.chance(g.cfg.CallProb) {
			sub, err := g.pickProducer(want)
			if err != nil {
				return err
			}
			if err := g.generateCall(sub, buf, depth+1); err != nil {
				return err
			}
			continue
		}

		// Quoted literal: (q . value)
		buf.WriteByte(consToken)
		buf.WriteByte(quoteToken)
		if err := g.generate(want, buf, depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte(nilToken)
	return nil
}

// GenerateArgs appends a bare argument list for sig, with every operand
// a quoted literal. Used to fuzz single-operator dispatch directly.
func (g *Generator) GenerateArgs(sig *OperatorInfo, buf *bytes.Buffer) error {
	for _, want := range sig.Operands {
		buf.WriteByte(consToken)
		buf.WriteByte(consToken)
		buf.WriteByte(quoteToken)
		if err := g.generate(want, buf, 0); err != nil {
			return err
		}
	}
	buf.WriteByte(nilToken)
	return nil
}

// pickLeafSignature chooses uniformly among the zero-operand catalog
// signatures.
func (g *Generator) pickLeafSignature() *OperatorInfo {
	leaves := make([]*OperatorInfo, 0, 8)
	for i := range Operators {
		if len(Operators[i].Operands) == 0 {
			leaves = append(leaves, &Operators[i])
		}
	}
	return leaves[g.rng.Intn(len(leaves))]
}

// pickProducer chooses uniformly among catalog signatures whose result
// type converts to want.
func (g *Generator) pickProducer(want Type) (*OperatorInfo, error) {
	candidates := make([]*OperatorInfo, 0, len(Operators))
	for i := range Operators {
		if Convertible(Operators[i].Result, want) {
			candidates = append(candidates, &Operators[i])
		}
	}
	if len(candidates) == 0 {
		return nil, &ErrNoProducer{Want: want}
	}
	return candidates[g.rng.Intn(len(candidates))], nil
}
