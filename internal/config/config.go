// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Backend names a persistence implementation.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config is the environment-driven runtime configuration.
type Config struct {
	// DataDir holds the snapshot file or database. Defaults to
	// ~/.taskdeck when unset.
	DataDir string `env:"TASKDECK_DATA_DIR"`

	// Backend selects the persistence adapter: json or sqlite.
	Backend string `env:"TASKDECK_BACKEND" envDefault:"json"`

	// NoColor disables lipgloss styling in table output.
	NoColor bool `env:"TASKDECK_NO_COLOR"`
}

// Load parses the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".taskdeck")
	}

	switch cfg.Backend {
	case "":
		cfg.Backend = BackendJSON
	case BackendJSON, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unknown backend %q: use json or sqlite", cfg.Backend)
	}
	return cfg, nil
}

// SnapshotPath is the JSON snapshot file location.
func (c Config) SnapshotPath() string {
	return filepath.Join(c.DataDir, "tasks.json")
}

// DatabasePath is the SQLite database location.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "tasks.db")
}
