package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/planclient"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Adapt the latest plan to a new score",
	Long: "Adapt sends the latest plan from history (or the plan in --plan) together with one " +
		"new score to the generator and prints the replacement plan.",
	Example: `  pathfinder adapt --domain "System Design" --score 55 --difficulty hard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		score, _ := cmd.Flags().GetInt("score")
		rawDiff, _ := cmd.Flags().GetString("difficulty")
		planFile, _ := cmd.Flags().GetString("plan")

		difficulty, err := parseDifficulty(rawDiff)
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

		current, err := loadCurrentPlan(cmd.Context(), d, planFile)
		if err != nil {
			return err
		}

		sess := pathsession.New(d.client, d.logger)
		if err := sess.Resume(current); err != nil {
			return err
		}
		entry := sess.SetScore(learnpath.Domain(domain), score, difficulty)

		retries, _ := cmd.Flags().GetInt("retries")
		plan, err := withRetries(cmd.Context(), sess, d.logger, retries, func(ctx context.Context) (*learnpath.Plan, error) {
			return sess.Adapt(ctx, entry.Domain)
		})
		if err != nil {
			return err
		}
		return writePlan(cmd, cmd.OutOrStdout(), plan)
	},
}

func init() {
	adaptCmd.Flags().String("domain", "", "Domain whose score changed (required)")
	adaptCmd.Flags().Int("score", 0, "New score, 0-100 (required)")
	adaptCmd.Flags().String("difficulty", string(learnpath.DefaultDifficulty), "Difficulty of the new assessment: easy, medium or hard")
	adaptCmd.Flags().String("plan", "", "Adapt the plan in this JSON file instead of the latest from history")
	adaptCmd.Flags().Int("retries", 0, "Retry a failed request up to this many times")
	adaptCmd.MarkFlagRequired("domain")
	adaptCmd.MarkFlagRequired("score")
	addOutputFlags(adaptCmd)
}

// loadCurrentPlan reads the plan to adapt from file, or the newest plan in
// history when file is empty.
func loadCurrentPlan(ctx context.Context, d *deps, file string) (*learnpath.Plan, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read plan: %w", err)
		}
		plan, err := learnpath.DecodePlan(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return plan, nil
	}

	if d.repo == nil {
		return nil, fmt.Errorf("history is disabled; pass --plan with a plan file")
	}
	plan, event, err := planclient.LatestPlan(ctx, d.repo)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("no plan in history yet; run pathfinder generate first")
	}
	d.logger.Debug("adapting recorded plan", zap.Int("event_id", event.ID))
	return plan, nil
}
