package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathview"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"

	markdownWrap = 100
)

// addOutputFlags registers --format and its --json shorthand.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", formatText, "Output format: text, json or markdown")
	cmd.Flags().Bool("json", false, "Shorthand for --format json")
	cmd.Flags().Bool("brief", false, "Omit module details in text output")
}

func outputFormat(cmd *cobra.Command) (string, error) {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return formatJSON, nil
	}
	f, _ := cmd.Flags().GetString("format")
	switch f = strings.ToLower(f); f {
	case formatText, formatJSON, formatMarkdown:
		return f, nil
	case "md":
		return formatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or markdown)", f)
}

// writePlan prints plan in the requested format.
func writePlan(cmd *cobra.Command, w io.Writer, plan *learnpath.Plan) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	tree := pathview.Project(plan, pathview.NoneExpanded())
	if format == formatMarkdown {
		return renderMarkdown(w, pathview.RenderMarkdown(tree))
	}
	brief, _ := cmd.Flags().GetBool("brief")
	return pathview.RenderText(w, tree, brief)
}

func renderMarkdown(w io.Writer, doc string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// parseScore parses "DOMAIN=SCORE[:DIFFICULTY]". Domains may contain spaces
// and slashes, so the last '=' separates the score.
func parseScore(s string) (learnpath.ScoreEntry, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 {
		return learnpath.ScoreEntry{}, fmt.Errorf("invalid score %q: want DOMAIN=SCORE[:DIFFICULTY]", s)
	}
	domain := strings.TrimSpace(s[:i])
	if domain == "" {
		return learnpath.ScoreEntry{}, fmt.Errorf("invalid score %q: empty domain", s)
	}

	value, diff, _ := strings.Cut(s[i+1:], ":")
	score, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return learnpath.ScoreEntry{}, fmt.Errorf("invalid score %q: %w", s, err)
	}
	d, err := parseDifficulty(diff)
	if err != nil {
		return learnpath.ScoreEntry{}, fmt.Errorf("invalid score %q: %w", s, err)
	}
	return learnpath.ScoreEntry{
		Domain:     learnpath.Domain(domain),
		Score:      learnpath.ClampScore(score),
		Difficulty: d,
	}, nil
}

func parseDifficulty(raw string) (learnpath.Difficulty, error) {
	d := learnpath.NormalizeDifficulty(learnpath.Difficulty(raw))
	switch d {
	case learnpath.DifficultyEasy, learnpath.DifficultyMedium, learnpath.DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", raw)
}

func parseScores(raw []string) ([]learnpath.ScoreEntry, error) {
	out := make([]learnpath.ScoreEntry, 0, len(raw))
	for _, s := range raw {
		e, err := parseScore(s)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
