package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points config lookup at empty dirs and clears overrides.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{
		"PATHFINDER_API_URL", "PATHFINDER_API_BASE_URL", "PATHFINDER_API_TIMEOUT",
		"PATHFINDER_DB", "PATHFINDER_HISTORY_DB", "PATHFINDER_LOG_LEVEL",
		"PATHFINDER_SESSION_DEFAULT_WEEKLY_HOURS", "PATHFINDER_HISTORY_ENABLED", "PATHFINDER_LOG_FILE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg.API != want.API || cfg.Session != want.Session || cfg.History != want.History || cfg.Log != want.Log {
		t.Errorf("cfg = %+v, want %+v", *cfg, want)
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want empty", cfg.File)
	}
}

func TestLoad_File(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "pathfinder.yaml")
	data := []byte(`api:
  base_url: https://paths.example.com
  timeout: 45s
session:
  default_weekly_hours: 6
history:
  enabled: false
log:
  level: DEBUG
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://paths.example.com" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 45*time.Second {
		t.Errorf("Timeout = %s", cfg.API.Timeout)
	}
	if cfg.Session.DefaultWeeklyHours != 6 {
		t.Errorf("DefaultWeeklyHours = %d", cfg.Session.DefaultWeeklyHours)
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled = true, want false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.File != path {
		t.Errorf("File = %q, want %q", cfg.File, path)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "pathfinder.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: https://file.example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATHFINDER_API_URL", "http://127.0.0.1:9000")
	t.Setenv("PATHFINDER_DB", "/tmp/pf-test.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:9000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.History.DB != "/tmp/pf-test.db" {
		t.Errorf("History.DB = %q", cfg.History.DB)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"relative url", func(c *Config) { c.API.BaseURL = "/learn" }, false},
		{"ftp url", func(c *Config) { c.API.BaseURL = "ftp://host" }, false},
		{"empty url", func(c *Config) { c.API.BaseURL = "" }, false},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, false},
		{"zero hours", func(c *Config) { c.Session.DefaultWeeklyHours = 0 }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"warn level", func(c *Config) { c.Log.Level = "warn" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}
