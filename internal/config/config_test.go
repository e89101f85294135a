package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DefaultStandard != "harvard" || c.MaxUploadMB != 25 || c.BatchWorkers != 4 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Seed != 0 || c.LogLevel != "info" || c.LogFormat != "console" || c.OutputFormat != "text" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.MaxUploadBytes() != 25<<20 {
		t.Fatalf("max bytes = %d", c.MaxUploadBytes())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		DefaultStandard: "mit",
		Seed:            42,
		OutputFormat:    "markdown",
		MaxUploadMB:     5,
		BatchWorkers:    2,
		PaceMs:          100,
		LogLevel:        "debug",
		LogFormat:       "json",
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(&Global{DefaultStandard: "oxford", Seed: 1}, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	t.Setenv("CONVERTSEARCH_SEED", "9")
	t.Setenv("CONVERTSEARCH_DEFAULT_STANDARD", "mit")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Seed != 9 || c.DefaultStandard != "mit" {
		t.Fatalf("env not applied: %+v", c)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("seed: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	if len(keys) != 8 || keys[0] != "batch_workers" || keys[len(keys)-1] != "seed" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestDefaultMatchesLoad(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *Default() != *c {
		t.Fatalf("Default() = %+v, Load = %+v", Default(), c)
	}
}
