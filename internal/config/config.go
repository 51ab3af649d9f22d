package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CurrentVersion is written into freshly created config files.
const CurrentVersion = "1.0"

// Config represents the flat hb configuration.
type Config struct {
	Version      string `json:"version"`
	DatabasePath string `json:"database_path,omitempty"` // overrides <dir>/hb.db
	NoColor      bool   `json:"no_color,omitempty"`      // disable ANSI colors in motd output
}

// DefaultDir returns the hb data directory (~/.hb).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".hb"), nil
}

// Load reads config.json from the specified data directory.
// Returns error if no config found - caller should handle accordingly.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes config.json to the data directory, creating it if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DatabasePath resolves the database location for a data directory:
// the config override if one is set, otherwise <dir>/hb.db.
// A missing config file is not an error - defaults apply.
func DatabasePath(dir string) string {
	cfg, err := Load(dir)
	if err == nil && cfg.DatabasePath != "" {
		return cfg.DatabasePath
	}
	return filepath.Join(dir, "hb.db")
}
