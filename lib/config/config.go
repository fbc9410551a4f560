// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for pixelveil.
//
// Configuration is loaded from a single YAML file specified by:
//   - the PIXELVEIL_CONFIG environment variable, or
//   - the --config flag passed to a command
//
// There is no discovery chain and no home-directory fallback — when
// neither source names a file, the built-in defaults apply. This
// keeps behavior deterministic: a command's options come from its
// flags, then the one named config file, then [Default].
package config

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at the config file.
const EnvVar = "PIXELVEIL_CONFIG"

// Config holds the default options applied to pixelveil commands.
// Flags given on the command line always override these values.
type Config struct {
	// Compress enables the compression frame by default on embed.
	Compress bool `yaml:"compress"`

	// Workers bounds the embedding worker pool. Zero means
	// automatic (sequential for small payloads, one goroutine per
	// CPU for large ones).
	Workers int `yaml:"workers"`

	// OutputDir is prepended to relative output paths when set.
	OutputDir string `yaml:"output_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Compress:  false,
		Workers:   0,
		OutputDir: "",
	}
}

// Load resolves the configuration. An explicit path (from --config)
// wins over PIXELVEIL_CONFIG; when neither is set, Default() is
// returned. A named file that is missing or malformed is an error,
// never a silent fallback.
func Load(explicitPath string) (Config, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and parses the config file at path.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Workers > 64*runtime.NumCPU() {
		return fmt.Errorf("workers %d is implausibly large", c.Workers)
	}
	return nil
}
