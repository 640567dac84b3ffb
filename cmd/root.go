package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Adaptive learning paths toward a target role",
	Long: "Pathfinder builds a prioritised learning plan toward a target role from your " +
		"self-assessed skill scores, and adapts it as those scores change.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/pathfinder/pathfinder.yaml)")
	flags.String("api", "", "Plan generator base URL (overrides PATHFINDER_API_URL)")
	flags.String("db", "", "Path to SQLite history database (overrides PATHFINDER_DB env var)")
	flags.Bool("no-history", false, "Do not record calls in the history database")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
