package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestCorpusWriterDedup tests content-addressed deduplication
func TestCorpusWriterDedup(t *testing.T) {
	dir := t.TempDir()
	w, err := NewCorpusWriter(dir)
	if err != nil {
		t.Fatalf("NewCorpusWriter failed: %v", err)
	}

	sample := []byte{0xFF, 0x10, 0x80}
	name1, err := w.Add(sample)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	name2, err := w.Add(sample)
	if err != nil {
		t.Fatalf("Second Add failed: %v", err)
	}
	if name1 != name2 {
		t.Errorf("Identical samples got different names: %s vs %s", name1, name2)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 corpus file after duplicate Add, got %d", len(entries))
	}

	got, err := os.ReadFile(filepath.Join(dir, name1))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, sample) {
		t.Errorf("Corpus file content %x differs from sample %x", got, sample)
	}
}

// TestCorpusWriterName tests the digest file naming
func TestCorpusWriterName(t *testing.T) {
	w, err := NewCorpusWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	name, err := w.Add([]byte{0x80})
	if err != nil {
		t.Fatal(err)
	}
	// SHA3-256 hex digest.
	if len(name) != 64 {
		t.Errorf("Expected a 64-character digest name, got %q", name)
	}

	other, err := w.Add([]byte{0x01})
	if err != nil {
		t.Fatal(err)
	}
	if name == other {
		t.Error("Different samples should get different names")
	}
}

// TestRunProducesCorpora tests the end-to-end corpus driver
func TestRunProducesCorpora(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultConfig().
		WithSamples(150, 150).
		WithOutputDirs(filepath.Join(root, "programs"), filepath.Join(root, "operators"))

	if err := Run(cfg); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	programs, err := os.ReadDir(cfg.ProgramDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(programs) == 0 {
		t.Error("Program corpus is empty")
	}
	if len(programs) > 150 {
		t.Errorf("Program corpus has %d files for 150 samples", len(programs))
	}

	args, err := os.ReadDir(cfg.ArgsDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(args) == 0 {
		t.Error("Argument corpus is empty")
	}
}

// TestRunDeterminism tests that two runs with the same seed produce
// identical corpora
func TestRunDeterminism(t *testing.T) {
	corpus := func(root string) map[string][]byte {
		cfg := DefaultConfig().
			WithSamples(100, 100).
			WithOutputDirs(filepath.Join(root, "programs"), filepath.Join(root, "operators"))
		if err := Run(cfg); err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		files := map[string][]byte{}
		for _, dir := range []string{cfg.ProgramDir, cfg.ArgsDir} {
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range entries {
				data, err := os.ReadFile(filepath.Join(dir, e.Name()))
				if err != nil {
					t.Fatal(err)
				}
				files[filepath.Base(dir)+"/"+e.Name()] = data
			}
		}
		return files
	}

	first := corpus(t.TempDir())
	second := corpus(t.TempDir())

	if len(first) != len(second) {
		t.Fatalf("Corpora differ in size: %d vs %d", len(first), len(second))
	}
	for name, data := range first {
		other, ok := second[name]
		if !ok {
			t.Errorf("Sample %s missing from second corpus", name)
			continue
		}
		if !bytes.Equal(data, other) {
			t.Errorf("Sample %s differs between runs", name)
		}
	}
}

// TestRunInvalidConfig tests that Run validates its configuration
func TestRunInvalidConfig(t *testing.T) {
	cfg := DefaultConfig().WithCallProb(1.5)
	if err := Run(cfg); err == nil {
		t.Error("Run should reject an invalid configuration")
	}
}

// TestConfigValidate tests configuration validation
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"negative tree prob", func(c *Config) { c.TreeGrowProb = -0.1 }, true},
		{"tree prob one", func(c *Config) { c.TreeGrowProb = 1.0 }, true},
		{"call prob too high", func(c *Config) { c.CallProb = 1.0 }, true},
		{"zero list bound", func(c *Config) { c.MaxListLen = 0 }, true},
		{"zero depth bound", func(c *Config) { c.MaxCallDepth = 0 }, true},
		{"negative samples", func(c *Config) { c.ProgramSamples = -1 }, true},
		{"missing dir", func(c *Config) { c.ArgsDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfigClone tests that Clone is independent of the original
func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	dup := cfg.Clone()
	dup.Seed = 42
	dup.ProgramDir = "elsewhere"

	if cfg.Seed == 42 || cfg.ProgramDir == "elsewhere" {
		t.Error("Mutating the clone changed the original")
	}
}
