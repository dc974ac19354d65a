package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NumKeys != Default().NumKeys {
		t.Errorf("NumKeys = %d, want %d", cfg.NumKeys, Default().NumKeys)
	}
}

func TestLoadOverlaysJSONC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.jsonc")
	content := `{
		// only tune the key count
		"num_keys": 500,
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NumKeys != 500 {
		t.Errorf("NumKeys = %d, want 500", cfg.NumKeys)
	}
	if cfg.MinKeyLen != Default().MinKeyLen {
		t.Errorf("MinKeyLen = %d, want default %d", cfg.MinKeyLen, Default().MinKeyLen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
