package gen

import "fmt"

// Config holds the tunable parameters of corpus generation. The
// defaults reproduce the reference corpus; the probabilities are
// configuration, not hard constants.
type Config struct {
	// Seed for the pseudorandom stream. Same seed, same catalog order,
	// same config means a byte-identical corpus.
	Seed int64

	// TreeGrowProb is the probability that a Tree child keeps growing
	// as a subtree instead of terminating in an atom.
	TreeGrowProb float64

	// CallProb is the probability that an operand is generated as a
	// nested well-typed call instead of a quoted literal.
	CallProb float64

	// MaxListLen is the exclusive upper bound on generated list
	// lengths.
	MaxListLen int

	// MaxCallDepth bounds call nesting. At the limit the generator
	// stops nesting and quotes literals, so termination does not rely
	// on probability alone.
	MaxCallDepth int

	// ProgramSamples is the number of full program expressions to
	// generate.
	ProgramSamples int

	// ArgSamples is the number of bare operator argument lists to
	// generate.
	ArgSamples int

	// ProgramDir and ArgsDir are the corpus output directories.
	ProgramDir string
	ArgsDir    string
}

// DefaultConfig returns the reference generation parameters.
func DefaultConfig() *Config {
	return &Config{
		Seed:           0x1337,
		TreeGrowProb:   0.1,
		CallProb:       0.3,
		MaxListLen:     10,
		MaxCallDepth:   50,
		ProgramSamples: 20000,
		ArgSamples:     20000,
		ProgramDir:     "fuzz/corpus/fuzz_run_program",
		ArgsDir:        "fuzz/corpus/operators",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.TreeGrowProb < 0 || c.TreeGrowProb >= 1 {
		return fmt.Errorf("tree grow probability must be in [0, 1), got %v", c.TreeGrowProb)
	}
	if c.CallProb < 0 || c.CallProb >= 1 {
		return fmt.Errorf("call probability must be in [0, 1), got %v", c.CallProb)
	}
	if c.MaxListLen <= 0 {
		return fmt.Errorf("max list length must be positive, got %d", c.MaxListLen)
	}
	if c.MaxCallDepth <= 0 {
		return fmt.Errorf("max call depth must be positive, got %d", c.MaxCallDepth)
	}
	if c.ProgramSamples < 0 || c.ArgSamples < 0 {
		return fmt.Errorf("sample counts must be non-negative")
	}
	if c.ProgramDir == "" || c.ArgsDir == "" {
		return fmt.Errorf("corpus directories must be set")
	}
	return nil
}

// WithSeed sets the pseudorandom seed
func (c *Config) WithSeed(seed int64) *Config {
	c.Seed = seed
	return c
}

// WithTreeGrowProb sets the tree continuation probability
func (c *Config) WithTreeGrowProb(p float64) *Config {
	c.TreeGrowProb = p
	return c
}

// WithCallProb sets the nested call probability
func (c *Config) WithCallProb(p float64) *Config {
	c.CallProb = p
	return c
}

// WithMaxListLen sets the exclusive list length bound
func (c *Config) WithMaxListLen(n int) *Config {
	c.MaxListLen = n
	return c
}

// WithMaxCallDepth sets the call nesting bound
func (c *Config) WithMaxCallDepth(n int) *Config {
	c.MaxCallDepth = n
	return c
}

// WithSamples sets both sample counts
func (c *Config) WithSamples(programs, args int) *Config {
	c.ProgramSamples = programs
	c.ArgSamples = args
	return c
}

// WithOutputDirs sets the corpus directories
func (c *Config) WithOutputDirs(programDir, argsDir string) *Config {
	c.ProgramDir = programDir
	c.ArgsDir = argsDir
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	dup := *c
	return &dup
}
