package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		logPath := cfg.Log.File
		if logPath == "" {
			if logPath, err = logging.DefaultLogPath(); err != nil {
				return err
			}
		}
		file := cfg.File
		if file == "" {
			file = "(none)"
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Config file:   %s\n", file)
		fmt.Fprintf(w, "API:           %s\n", cfg.API.BaseURL)
		fmt.Fprintf(w, "Timeout:       %s\n", cfg.API.Timeout)
		fmt.Fprintf(w, "Weekly hours:  %d\n", cfg.Session.DefaultWeeklyHours)
		fmt.Fprintf(w, "History:       %v (%s)\n", cfg.History.Enabled, dbPath)
		fmt.Fprintf(w, "Log:           %s (%s)\n", cfg.Log.Level, logPath)
		return nil
	},
}
