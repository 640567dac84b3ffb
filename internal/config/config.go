// Package config loads pathfinder settings from an optional YAML file and
// PATHFINDER_ environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	DefaultWeeklyHours int `mapstructure:"default_weekly_hours"`
}

type HistoryConfig struct {
	// DB is the sqlite path. Empty means the default data path.
	DB      string `mapstructure:"db"`
	Enabled bool   `mapstructure:"enabled"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`

	// File is the log file path. Empty means the default state path.
	File string `mapstructure:"file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 30 * time.Second,
		},
		Session: SessionConfig{DefaultWeeklyHours: 10},
		History: HistoryConfig{Enabled: true},
		Log:     LogConfig{Level: "info"},
	}
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: api.base_url must be an absolute http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("config: api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Session.DefaultWeeklyHours <= 0 {
		return fmt.Errorf("config: session.default_weekly_hours must be positive, got %d", c.Session.DefaultWeeklyHours)
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	return nil
}

// Load reads configuration. With an explicit path the file must exist;
// otherwise pathfinder.yaml is looked up in the config dir and the working
// directory and may be absent. Environment variables override the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("api.base_url", def.API.BaseURL)
	v.SetDefault("api.timeout", def.API.Timeout)
	v.SetDefault("session.default_weekly_hours", def.Session.DefaultWeeklyHours)
	v.SetDefault("history.db", def.History.DB)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pathfinder")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PATHFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("api.base_url", "PATHFINDER_API_URL", "PATHFINDER_API_BASE_URL")
	_ = v.BindEnv("api.timeout", "PATHFINDER_API_TIMEOUT")
	_ = v.BindEnv("history.db", "PATHFINDER_DB", "PATHFINDER_HISTORY_DB")
	_ = v.BindEnv("log.level", "PATHFINDER_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pathfinder"), nil
}
