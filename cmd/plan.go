package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/app"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/planclient"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Open the interactive planner",
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, _ := cmd.Flags().GetBool("resume")
		return runTUI(cmd, resume)
	},
}

func init() {
	planCmd.Flags().Bool("resume", false, "Start from the latest plan in history")
}

// runTUI builds dependencies and launches the TUI, optionally seeded with
// the newest recorded plan.
func runTUI(cmd *cobra.Command, resume bool) error {
	d, err := buildDeps(cmd, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	sess := pathsession.New(d.client, d.logger)

	if resume {
		if d.repo == nil {
			return fmt.Errorf("--resume needs history; remove --no-history")
		}
		plan, event, err := planclient.LatestPlan(cmd.Context(), d.repo)
		if err != nil {
			return err
		}
		if plan == nil {
			return fmt.Errorf("no plan in history yet; run without --resume to create one")
		}
		if err := sess.Resume(plan); err != nil {
			return fmt.Errorf("resume plan: %w", err)
		}
		d.logger.Info("resumed plan", zap.Int("event_id", event.ID), zap.String("target_role", plan.TargetRole))
	}

	return app.Run(app.Options{
		Session:            sess,
		DefaultWeeklyHours: d.cfg.Session.DefaultWeeklyHours,
		Logger:             d.logger,
	})
}
