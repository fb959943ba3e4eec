package config

import "time"

// Config is the top-level folio configuration, corresponding to config.yaml.
type Config struct {
	Relay     RelayConfig     `yaml:"relay" koanf:"relay"`
	UI        UIConfig        `yaml:"ui" koanf:"ui"`
	State     StateConfig     `yaml:"state" koanf:"state"`
	Log       LogConfig       `yaml:"log" koanf:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry" koanf:"telemetry"`
}

// RelayConfig holds the mail relay credentials. Credentials are deliberately
// not checked here; a missing one fails at send time like any relay error.
type RelayConfig struct {
	Endpoint      string        `yaml:"endpoint" koanf:"endpoint"`
	ServiceID     string        `yaml:"service_id" koanf:"service_id"`
	TemplateID    string        `yaml:"template_id" koanf:"template_id"`
	PublicKey     string        `yaml:"public_key" koanf:"public_key"`
	Timeout       time.Duration `yaml:"timeout" koanf:"timeout"`
	RatePerMinute float64       `yaml:"rate_per_minute" koanf:"rate_per_minute"`
}

// UIConfig controls presentation.
type UIConfig struct {
	// Breakpoint is the width in columns at which the top bar replaces the bottom bar.
	Breakpoint int `yaml:"breakpoint" koanf:"breakpoint"`
	// DefaultTheme is used when no preference is stored. Empty means detect
	// from the terminal background.
	DefaultTheme string `yaml:"default_theme" koanf:"default_theme"`
	Mouse        bool   `yaml:"mouse" koanf:"mouse"`
}

// StateConfig locates client-local state.
type StateConfig struct {
	// Dir holds prefs.yaml and the log file. Empty means FOLIO_STATE_DIR or ~/.folio.
	Dir string `yaml:"dir" koanf:"dir"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	File  string `yaml:"file" koanf:"file"`   // empty: <state dir>/folio.log
	Level string `yaml:"level" koanf:"level"` // debug, info, warn, error or off
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" koanf:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name" koanf:"service_name"`
}
