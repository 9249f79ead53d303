package chikklvm

import (
	"errors"

	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/arena"
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/gen"
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/node"
	"github.com/Chik-Network/chik-klvm-go/internal/chik-klvm/serde"
)

// NewIndexArena creates the reference arena with the canonical null
// and one atoms pre-allocated.
func NewIndexArena() *IndexArena {
	return arena.NewIndexArena()
}

// NewNode creates a view of h inside a.
func NewNode(a Arena, h Handle) Node {
	return node.New(a, h)
}

// Encode returns the canonical encoding of the tree rooted at n.
func Encode(n Node) []byte {
	return serde.Encode(n)
}

// Decode parses exactly one canonically encoded value from buf into a.
// Malformed input is reported as ErrFormat wrapping the codec's
// FormatError.
func Decode(a Arena, buf []byte) (Handle, error) {
	h, err := serde.Decode(a, buf)
	if err != nil {
		return 0, &KLVMError{Code: ErrFormat, Message: "invalid canonical encoding", Cause: err}
	}
	return h, nil
}

// Operators returns the operator type catalog. The table is read-only;
// callers must not modify the returned slice.
func Operators() []OperatorInfo {
	return gen.Operators
}

// Convertible reports whether a value of type from may substitute for
// type to.
func Convertible(from, to Type) bool {
	return gen.Convertible(from, to)
}

// DefaultConfig returns the reference generation parameters.
func DefaultConfig() *Config {
	return gen.DefaultConfig()
}

// NewGenerator creates a generator seeded from cfg.
func NewGenerator(cfg *Config) *Generator {
	return gen.NewGenerator(cfg)
}

// GenerateCorpus produces the program and operator-argument corpora
// described by cfg. Errors carry a KLVMError code: ErrInvalidConfig
// for bad parameters, ErrCorpusIO for filesystem failures.
func GenerateCorpus(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return &KLVMError{Code: ErrInvalidConfig, Message: "invalid generation config", Cause: err}
	}
	if err := gen.Run(cfg); err != nil {
		var noProducer *gen.ErrNoProducer
		if errors.As(err, &noProducer) {
			return &KLVMError{Code: ErrNoProducer, Message: "catalog defect", Cause: err}
		}
		return &KLVMError{Code: ErrCorpusIO, Message: "corpus generation failed", Cause: err}
	}
	return nil
}
