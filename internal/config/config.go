// Package config loads folio's configuration: defaults, then an optional YAML
// file, then FOLIO_* environment overrides.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"folio/internal/prefs"
	"folio/internal/theme"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/natefinch/atomic"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides: FOLIO_RELAY_SERVICE_ID -> relay.service_id.
const EnvPrefix = "FOLIO_"

// LogFileName is the log file inside the state directory.
const LogFileName = "folio.log"

// DefaultPath returns ~/.config/folio/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "folio", "config.yaml"), nil
}

// Load reads configuration from the given YAML file, if it exists, then
// overlays environment variable overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps FOLIO_SECTION_SOME_KEY to section.some_key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// YAML renders the configuration as it would be saved.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"off":   true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Relay.Timeout < 0 {
		return fmt.Errorf("relay.timeout must be non-negative")
	}
	if c.Relay.RatePerMinute < 0 {
		return fmt.Errorf("relay.rate_per_minute must be non-negative")
	}
	if c.UI.Breakpoint <= 0 {
		return fmt.Errorf("ui.breakpoint must be positive")
	}
	if c.UI.DefaultTheme != "" {
		if _, ok := theme.Parse(c.UI.DefaultTheme); !ok {
			return fmt.Errorf("invalid ui.default_theme %q: must be light or dark", c.UI.DefaultTheme)
		}
	}
	if c.Log.Level != "" && !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error, off", c.Log.Level)
	}
	return nil
}

// StateDir returns the configured state directory or the prefs default.
func (c *Config) StateDir() (string, error) {
	if c.State.Dir != "" {
		return c.State.Dir, nil
	}
	return prefs.DefaultDir()
}

// LogPath returns where the file logger writes.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := c.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}
