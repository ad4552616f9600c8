// Package file loads nbcheck configuration from a TOML file.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the nbcheck configuration, stored as TOML.
type Config struct {
	// Kernel is the execution kernel identifier passed to the engine.
	Kernel string `toml:"kernel"`

	// TimeoutSeconds bounds one notebook execution.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Dictionary is the base dictionary file for spell checking.
	Dictionary string `toml:"dictionary"`

	// WordList is the supplementary word list of domain terms.
	WordList string `toml:"word_list"`

	// Notebooks is the fixed list of notebook files to evaluate when
	// the check command is given no arguments.
	Notebooks []string `toml:"notebooks"`

	// History enables run-history persistence.
	History bool `toml:"history"`

	// Links configures the reachability probe.
	Links LinksConfig `toml:"links"`
}

// LinksConfig configures the hyperlink probe.
type LinksConfig struct {
	// TimeoutSeconds bounds one remote probe.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RatePerSecond limits outbound probes.
	RatePerSecond float64 `toml:"rate_per_second"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Kernel:         "python3",
		TimeoutSeconds: 600,
		Dictionary:     "/usr/share/dict/words",
		History:        true,
		Links: LinksConfig{
			TimeoutSeconds: 10,
			RatePerSecond:  4,
		},
	}
}

// DefaultPath returns ~/.nbcheck/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nbcheck", "config.toml"), nil
}

// Load reads configuration from path, filling unset fields with
// defaults. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
