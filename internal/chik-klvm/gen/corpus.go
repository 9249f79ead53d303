package gen

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/crypto/sha3"
)

// CorpusWriter persists generated samples into a directory, one file
// per sample, named by the SHA3-256 digest of the content. Two
// structurally identical buffers collapse to one file, so the corpus is
// naturally deduplicating.
type CorpusWriter struct {
	Dir string
}

// NewCorpusWriter creates the directory (and parents) and returns a
// writer for it.
func NewCorpusWriter(dir string) (*CorpusWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create corpus directory %s: %w", dir, err)
	}
	return &CorpusWriter{Dir: dir}, nil
}

// Add writes buf under its content digest and returns the file name.
// Filesystem failure is fatal for the run; the caller aborts after
// reporting which sample failed.
func (w *CorpusWriter) Add(buf []byte) (string, error) {
	digest := sha3.Sum256(buf)
	name := hex.EncodeToString(digest[:])
	if err := os.WriteFile(filepath.Join(w.Dir, name), buf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write corpus sample %s: %w", name, err)
	}
	return name, nil
}

// Run produces the two corpora: full program expressions for the
// run-program entry point, then bare argument lists for direct operator
// dispatch. One generator drives both, so the pseudorandom stream and
// the resulting corpora are reproducible from the seed. Samples hitting
// a catalog defect (no producer for an operand type) are logged and
// skipped.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	programs, err := NewCorpusWriter(cfg.ProgramDir)
	if err != nil {
		return err
	}
	args, err := NewCorpusWriter(cfg.ArgsDir)
	if err != nil {
		return err
	}

	g := NewGenerator(cfg)
	var buf bytes.Buffer

	for i := 0; i < cfg.ProgramSamples; i++ {
		buf.Reset()
		sig := &Operators[i%len(Operators)]
		if err := g.GenerateCall(sig, &buf); err != nil {
			if _, ok := err.(*ErrNoProducer); ok {
				log.Printf("skipping program sample %d (opcode %d): %v", i, sig.Opcode, err)
				continue
			}
			return err
		}
		if _, err := programs.Add(buf.Bytes()); err != nil {
			return fmt.Errorf("program sample %d: %w", i, err)
		}
	}

	for i := 0; i < cfg.ArgSamples; i++ {
		buf.Reset()
		sig := &Operators[i%len(Operators)]
		if err := g.GenerateArgs(sig, &buf); err != nil {
			if _, ok := err.(*ErrNoProducer); ok {
				log.Printf("skipping argument sample %d (opcode %d): %v", i, sig.Opcode, err)
				continue
			}
			return err
		}
		if _, err := args.Add(buf.Bytes()); err != nil {
			return fmt.Errorf("argument sample %d: %w", i, err)
		}
	}

	return nil
}
