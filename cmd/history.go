package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/planclient"
	"github.com/abhisek/pathfinder/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded plan generator calls",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		op, _ := cmd.Flags().GetString("op")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit, Op: op}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryPlanEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(w, "No calls recorded.")
			return nil
		}

		fmt.Fprintf(w, "%-5s  %-19s  %-9s  %-6s  %-9s  %-7s  %s\n",
			"ID", "Timestamp", "Op", "Status", "Readiness", "Ms", "OK")
		fmt.Fprintln(w, strings.Repeat("─", 72))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			readiness := "-"
			if e.Readiness >= 0 {
				readiness = fmt.Sprintf("%d%%", e.Readiness)
			}
			status := "-"
			if e.Status > 0 {
				status = strconv.Itoa(e.Status)
			}
			fmt.Fprintf(w, "%-5d  %-19s  %-9s  %-6s  %-9s  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Op,
				status,
				readiness,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full request and response of a call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEventID(args[0])
		if err != nil {
			return err
		}

		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetPlanEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		w := cmd.OutOrStdout()
		sep := strings.Repeat("─", 60)

		fmt.Fprintf(w, "ID:        %d\n", e.ID)
		fmt.Fprintf(w, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Op:        %s\n", e.Op)
		fmt.Fprintf(w, "Request:   %s\n", e.RequestID)
		if e.SessionID != "" {
			fmt.Fprintf(w, "Session:   %s\n", e.SessionID)
		}
		fmt.Fprintf(w, "Status:    %d\n", e.Status)
		fmt.Fprintf(w, "Latency:   %dms\n", e.LatencyMs)
		fmt.Fprintf(w, "Success:   %v\n", e.Success)
		if e.Readiness >= 0 {
			fmt.Fprintf(w, "Readiness: %d%%\n", e.Readiness)
		}
		if e.ErrorMessage != "" {
			fmt.Fprintf(w, "Error:     %s\n", e.ErrorMessage)
		}

		for _, section := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Fprintln(w)
			fmt.Fprintln(w, sep)
			fmt.Fprintln(w, section.title)
			fmt.Fprintln(w, sep)
			if section.body != "" {
				fmt.Fprintln(w, section.body)
			} else {
				fmt.Fprintln(w, "(not captured)")
			}
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Render a recorded plan (default: the latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := outputFormat(cmd); err != nil {
			return err
		}

		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.EventRepo()
		if len(args) == 0 {
			plan, _, err := planclient.LatestPlan(cmd.Context(), repo)
			if err != nil {
				return err
			}
			if plan == nil {
				return fmt.Errorf("no plan recorded yet")
			}
			return writePlan(cmd, cmd.OutOrStdout(), plan)
		}

		id, err := parseEventID(args[0])
		if err != nil {
			return err
		}
		e, err := repo.GetPlanEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		plan, err := planclient.PlanFromEvent(e)
		if err != nil {
			return err
		}
		return writePlan(cmd, cmd.OutOrStdout(), plan)
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show call counts, failures and latency per operation",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().StatsByOp(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(w, "No calls recorded yet.")
			return nil
		}

		fmt.Fprintln(w, strings.Repeat("─", 52))
		fmt.Fprintf(w, "%-12s  %6s  %8s  %8s  %8s\n", "Op", "Calls", "Failed", "Fail %", "Avg Ms")
		fmt.Fprintln(w, strings.Repeat("─", 52))

		var totalCalls, totalFailures int
		for _, st := range stats {
			fmt.Fprintf(w, "%-12s  %6d  %8d  %7.1f%%  %8d\n",
				st.Op, st.Calls, st.Failures, failureRate(st.Failures, st.Calls), st.AvgLatencyMs)
			totalCalls += st.Calls
			totalFailures += st.Failures
		}

		fmt.Fprintln(w, strings.Repeat("─", 52))
		fmt.Fprintf(w, "%-12s  %6d  %8d  %7.1f%%\n",
			"TOTAL", totalCalls, totalFailures, failureRate(totalFailures, totalCalls))
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	historyListCmd.Flags().String("op", "", "Filter by operation: generate, adapt or resources")
	historyListCmd.Flags().Duration("since", 0, "Only show calls newer than this (e.g. 24h)")
	addOutputFlags(historyShowCmd)

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyStatsCmd)
}

// openHistory opens the history database for reading.
func openHistory(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openStore(cfg)
}

func parseEventID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}

func failureRate(failures, calls int) float64 {
	if calls == 0 {
		return 0
	}
	return float64(failures) * 100 / float64(calls)
}
