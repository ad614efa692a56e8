// Package config loads primectl configuration from YAML files, with
// built-in defaults and environment overrides.
//
// Sources in precedence order, highest to lowest:
//  1. Command-line flags (applied by the caller)
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eulertools/primetab"
	"gopkg.in/yaml.v3"
)

// Config holds primectl settings.
type Config struct {
	// SnapshotPath is where the prime table snapshot lives.
	SnapshotPath string `yaml:"snapshot_path"`

	// InitialFrontier bounds the sieve when building a fresh table.
	InitialFrontier uint64 `yaml:"initial_frontier"`

	// Compress writes zstd-framed snapshots.
	Compress bool `yaml:"compress"`

	// Mmap serves uncompressed snapshots through a read-only mapping.
	Mmap bool `yaml:"mmap"`

	// MemoryLimitMB caps the table's backing allocation; 0 disables.
	MemoryLimitMB int64 `yaml:"memory_limit_mb"`
}

// Default returns the built-in configuration: a snapshot under
// ~/.primetab and a sieve bound at the full 32-bit ceiling.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		SnapshotPath:    filepath.Join(home, ".primetab", "p32.snap"),
		InitialFrontier: primetab.MaxFrontier,
	}
}

// Load reads configuration, starting from defaults. If path is non-empty
// that file must load; otherwise the first of .primectl.yaml (current
// directory) and ~/.primetab/config.yaml is used when present. The
// PRIMETAB_SNAPSHOT environment variable overrides the snapshot path.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		home, _ := os.UserHomeDir()
		defaultPaths := []string{
			".primectl.yaml",
			filepath.Join(home, ".primetab", "config.yaml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				if err := loadFile(p, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", p, err)
				}
				break
			}
		}
	}

	if env := os.Getenv("PRIMETAB_SNAPSHOT"); env != "" {
		cfg.SnapshotPath = env
	}
	if cfg.InitialFrontier == 0 || cfg.InitialFrontier > primetab.MaxFrontier {
		cfg.InitialFrontier = primetab.MaxFrontier
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Options translates the configuration into table options.
func (c *Config) Options() []primetab.Option {
	opts := []primetab.Option{
		primetab.WithSnapshotPath(c.SnapshotPath),
		primetab.WithInitialFrontier(c.InitialFrontier),
	}
	if c.Compress {
		opts = append(opts, primetab.WithCompression())
	}
	if c.Mmap {
		opts = append(opts, primetab.WithMmap())
	}
	if c.MemoryLimitMB > 0 {
		opts = append(opts, primetab.WithMemoryLimit(c.MemoryLimitMB*1024*1024))
	}
	return opts
}
