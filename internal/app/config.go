package app

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Storage backends selectable via config or flags.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

const configFile = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string // data directory, e.g. $HOME/.abook
	Passphrase string // optional; encrypts the JSON snapshot at rest
	Backend    string // BackendJSON (default) or BackendSQLite
	Path       string // storage file; defaults to a file under Home

	Logger *zap.Logger // optional; defaults to a nop logger
}

// fileConfig is the subset settable from config.yaml in the home directory.
type fileConfig struct {
	Storage struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	} `yaml:"storage"`
}

// LoadConfig fills cfg's zero fields from config.yaml under cfg.Home, if the
// file exists, then applies defaults. Explicitly set fields win over file
// values; file values win over defaults.
func LoadConfig(cfg Config) (Config, error) {
	if cfg.Home == "" {
		return Config{}, fmt.Errorf("config: home directory not set")
	}

	b, err := os.ReadFile(filepath.Join(cfg.Home, configFile))
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", configFile, err)
		}
		if cfg.Backend == "" {
			cfg.Backend = fc.Storage.Backend
		}
		if cfg.Path == "" {
			cfg.Path = fc.Storage.Path
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: read %s: %w", configFile, err)
	}

	if cfg.Backend == "" {
		cfg.Backend = BackendJSON
	}
	if cfg.Path == "" {
		switch cfg.Backend {
		case BackendSQLite:
			cfg.Path = filepath.Join(cfg.Home, "addressbook.db")
		default:
			cfg.Path = filepath.Join(cfg.Home, "addressbook.json")
		}
	}
	switch cfg.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("config: unknown storage backend %q", cfg.Backend)
	}
	return cfg, nil
}
