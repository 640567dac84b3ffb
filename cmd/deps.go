package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/config"
	"github.com/abhisek/pathfinder/internal/logging"
	"github.com/abhisek/pathfinder/internal/planclient"
	"github.com/abhisek/pathfinder/internal/store"
)

// deps are the collaborators shared by every command.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	repo   store.EventRepo
	client planclient.Client
}

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if api, _ := cmd.Flags().GetString("api"); api != "" {
		cfg.API.BaseURL = api
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.History.DB = db
	}
	if off, _ := cmd.Flags().GetBool("no-history"); off {
		cfg.History.Enabled = false
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDBPath returns the configured history path, then PATHFINDER_DB,
// then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.History.DB != "" {
		return cfg.History.DB, store.EnsureDir(cfg.History.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database regardless of history.enabled, for
// commands that only read it.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildDeps wires config, logging, history and the plan client. The TUI
// passes a nil console; command-line runs log to stderr only with --verbose.
func buildDeps(cmd *cobra.Command, console io.Writer) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		console = nil
	}
	logger, err := logging.New(cfg.Log, console)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging unavailable:", err)
		logger = zap.NewNop()
	}

	d := &deps{cfg: cfg, logger: logger}

	if cfg.History.Enabled {
		s, err := openStore(cfg)
		if err != nil {
			logger.Sync()
			return nil, err
		}
		d.store = s
		d.repo = s.EventRepo()
	}

	httpClient, err := planclient.NewHTTPClient(planclient.HTTPConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})
	if err != nil {
		d.Close()
		return nil, err
	}
	d.client = planclient.WithLogging(httpClient, d.repo, logger)

	logger.Debug("dependencies ready",
		zap.String("api", cfg.API.BaseURL),
		zap.Bool("history", cfg.History.Enabled),
		zap.String("config_file", cfg.File),
	)
	return d, nil
}

func (d *deps) Close() {
	if d.store != nil {
		d.store.Close()
	}
	_ = d.logger.Sync()
}
