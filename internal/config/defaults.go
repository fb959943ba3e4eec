package config

import (
	"time"

	"folio/internal/nav"
	"folio/internal/relay"
)

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Relay: RelayConfig{
			Endpoint:      relay.DefaultEndpoint,
			Timeout:       15 * time.Second,
			RatePerMinute: relay.DefaultRatePerMinute,
		},
		UI: UIConfig{
			Breakpoint: nav.DefaultBreakpoint,
			Mouse:      true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "folio",
		},
	}
}
