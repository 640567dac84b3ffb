package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a learning plan without the TUI",
	Example: `  pathfinder generate --role "Backend Engineer" --hours 8 \
    --score "DSA=60:medium" --score "System Design=30:hard"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		hours, _ := cmd.Flags().GetInt("hours")
		rawScores, _ := cmd.Flags().GetStringArray("score")

		scores, err := parseScores(rawScores)
		if err != nil {
			return err
		}
		if _, err := outputFormat(cmd); err != nil {
			return err
		}

		d, err := buildDeps(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer d.Close()

		if hours == 0 {
			hours = d.cfg.Session.DefaultWeeklyHours
		}

		sess := pathsession.New(d.client, d.logger)
		for _, e := range scores {
			sess.SetScore(e.Domain, e.Score, e.Difficulty)
		}

		retries, _ := cmd.Flags().GetInt("retries")
		plan, err := withRetries(cmd.Context(), sess, d.logger, retries, func(ctx context.Context) (*learnpath.Plan, error) {
			return sess.Generate(ctx, role, hours)
		})
		if err != nil {
			return err
		}
		return writePlan(cmd, cmd.OutOrStdout(), plan)
	},
}

func init() {
	generateCmd.Flags().String("role", "", "Target role (required)")
	generateCmd.Flags().Int("hours", 0, "Weekly study hours (default from config)")
	generateCmd.Flags().StringArray("score", nil, `Self-assessed score as "DOMAIN=SCORE[:DIFFICULTY]" (repeatable)`)
	generateCmd.Flags().Int("retries", 0, "Retry a failed request up to this many times")
	generateCmd.MarkFlagRequired("role")
	addOutputFlags(generateCmd)
}
