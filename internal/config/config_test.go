package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"folio/internal/nav"
	"folio/internal/relay"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Relay.Endpoint != relay.DefaultEndpoint {
		t.Errorf("endpoint: got %q, want %q", cfg.Relay.Endpoint, relay.DefaultEndpoint)
	}
	if cfg.UI.Breakpoint != nav.DefaultBreakpoint {
		t.Errorf("breakpoint: got %d, want %d", cfg.UI.Breakpoint, nav.DefaultBreakpoint)
	}
	if !cfg.UI.Mouse {
		t.Error("mouse should default on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	original := DefaultConfig()
	original.Relay.ServiceID = "service_abc"
	original.Relay.TemplateID = "template_xyz"
	original.Relay.Timeout = 5 * time.Second
	original.UI.Breakpoint = 120
	original.UI.DefaultTheme = "light"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Relay != original.Relay {
		t.Errorf("relay: got %+v, want %+v", loaded.Relay, original.Relay)
	}
	if loaded.UI != original.UI {
		t.Errorf("ui: got %+v, want %+v", loaded.UI, original.UI)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("missing file should load defaults, got error: %v", err)
	}
	if cfg.UI.Breakpoint != nav.DefaultBreakpoint {
		t.Errorf("expected default breakpoint, got %d", cfg.UI.Breakpoint)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("relay:\n  public_key: pk_123\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Relay.PublicKey != "pk_123" {
		t.Errorf("public_key: got %q", cfg.Relay.PublicKey)
	}
	if cfg.Relay.Endpoint != relay.DefaultEndpoint {
		t.Errorf("endpoint should keep its default, got %q", cfg.Relay.Endpoint)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("relay: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_RELAY_SERVICE_ID", "from-env")
	t.Setenv("FOLIO_UI_BREAKPOINT", "80")
	t.Setenv("FOLIO_UI_DEFAULT_THEME", "dark")
	t.Setenv("FOLIO_STATE_DIR", "/tmp/folio-state")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Relay.ServiceID != "from-env" {
		t.Errorf("service_id: got %q", cfg.Relay.ServiceID)
	}
	if cfg.UI.Breakpoint != 80 {
		t.Errorf("breakpoint: got %d", cfg.UI.Breakpoint)
	}
	if cfg.UI.DefaultTheme != "dark" {
		t.Errorf("default_theme: got %q", cfg.UI.DefaultTheme)
	}
	if dir, _ := cfg.StateDir(); dir != "/tmp/folio-state" {
		t.Errorf("state dir: got %q", dir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty credentials are allowed", mutate: func(c *Config) { c.Relay.ServiceID = "" }},
		{name: "negative timeout", mutate: func(c *Config) { c.Relay.Timeout = -time.Second }, wantErr: true},
		{name: "negative rate", mutate: func(c *Config) { c.Relay.RatePerMinute = -1 }, wantErr: true},
		{name: "zero breakpoint", mutate: func(c *Config) { c.UI.Breakpoint = 0 }, wantErr: true},
		{name: "unknown theme", mutate: func(c *Config) { c.UI.DefaultTheme = "solarized" }, wantErr: true},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "logging off", mutate: func(c *Config) { c.Log.Level = "off" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.State.Dir = "/var/lib/folio"
	got, err := cfg.LogPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/var/lib/folio", LogFileName); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	cfg.Log.File = "/tmp/x.log"
	if got, _ := cfg.LogPath(); got != "/tmp/x.log" {
		t.Errorf("explicit file ignored: %q", got)
	}
}
