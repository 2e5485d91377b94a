// Package config loads the client configuration from the teller
// directory. Everything has a default; a missing config file is not an
// error.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harborbank/teller/internal/api"
	"github.com/harborbank/teller/internal/errors"
)

// FileName is the config file inside the teller directory.
const FileName = "config.yaml"

// Config holds the client settings.
type Config struct {
	// APIBaseURL is the bank backend address.
	APIBaseURL string `yaml:"api_base_url"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBaseURL: api.DefaultBaseURL,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// DefaultDir returns the teller directory, honoring TELLER_DIR for tests
// and unusual setups.
func DefaultDir() string {
	if dir := os.Getenv("TELLER_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teller"
	}
	return filepath.Join(home, ".teller")
}

// Load reads the config file under dir, applying defaults for anything
// unset. A missing file yields the defaults; a malformed file is an
// error, since silently ignoring it would hide a typo.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeConfigNotFound, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.NewConfigUnmarshalError(path, err)
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = api.DefaultBaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return cfg, nil
}

// Save writes the config file under dir, creating the directory if
// needed.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "failed to create teller directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "failed to encode config", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "failed to write config file", err)
	}
	return nil
}
