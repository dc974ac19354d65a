// Package config loads the JSONC configuration file consumed by the
// fcdict-bench harness, following the same hujson-standardize-then-
// json.Unmarshal idiom used for tk's project config.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Config holds the tunable parameters of a benchmark run.
type Config struct {
	BucketSizes []int  `json:"bucket_sizes,omitempty"`
	NumKeys     int    `json:"num_keys,omitempty"`
	MinKeyLen   int    `json:"min_key_len,omitempty"`
	MaxKeyLen   int    `json:"max_key_len,omitempty"`
	KeyFile     string `json:"key_file,omitempty"`
}

// Default returns the benchmark harness's built-in configuration.
func Default() Config {
	return Config{
		BucketSizes: []int{1, 2, 4, 8, 16, 32, 64, 128},
		NumKeys:     100000,
		MinKeyLen:   4,
		MaxKeyLen:   16,
	}
}

// Load reads and parses a JSONC config file at path, overlaying it onto
// Default(). A path of "" returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s is not valid JSONC: %w", path, err)
	}

	var overlay Config
	if err := json.Unmarshal(standardized, &overlay); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	if len(overlay.BucketSizes) > 0 {
		cfg.BucketSizes = overlay.BucketSizes
	}
	if overlay.NumKeys > 0 {
		cfg.NumKeys = overlay.NumKeys
	}
	if overlay.MinKeyLen > 0 {
		cfg.MinKeyLen = overlay.MinKeyLen
	}
	if overlay.MaxKeyLen > 0 {
		cfg.MaxKeyLen = overlay.MaxKeyLen
	}
	if overlay.KeyFile != "" {
		cfg.KeyFile = overlay.KeyFile
	}

	return cfg, nil
}
