// Command klvm-corpus-gen produces the KLVM fuzzing corpora: one
// directory of full program expressions for the run-program entry
// point, and one of bare operator argument lists for direct dispatch.
// Samples are canonically encoded and content-addressed, so repeated
// runs with the same seed reproduce the same corpus byte for byte.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	chikklvm "github.com/Chik-Network/chik-klvm-go/pkg/chik-klvm"
)

func main() {
	seed := flag.Int64("seed", 0x1337, "pseudorandom seed; same seed means the same corpus")
	programs := flag.Int("programs", 20000, "number of program samples to generate")
	args := flag.Int("args", 20000, "number of operator argument list samples to generate")
	out := flag.String("out", "fuzz/corpus", "corpus root directory")
	flag.Parse()

	cfg := chikklvm.DefaultConfig().
		WithSeed(*seed).
		WithSamples(*programs, *args).
		WithOutputDirs(
			filepath.Join(*out, "fuzz_run_program"),
			filepath.Join(*out, "operators"),
		)

	logStderr(fmt.Sprintf("generating %d program and %d argument samples into %s", *programs, *args, *out))

	if err := chikklvm.GenerateCorpus(cfg); err != nil {
		fatal(err.Error())
	}

	logStderr("corpus complete")
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "klvm-corpus-gen:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
