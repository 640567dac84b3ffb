package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathview"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources <topic>",
	Short: "Ask the generator for learning resources on a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")

		req, err := learnpath.BuildResourceRequest(strings.Join(args, " "), level, count)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer d.Close()

		res, err := d.client.Resources(cmd.Context(), req)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		if len(res) == 0 {
			fmt.Fprintf(w, "No resources found for %q.\n", req.Topic)
			return nil
		}
		for i, r := range pathview.ProjectResources(res) {
			fmt.Fprintf(w, "%d. %s %-9s %s", i+1, r.Icon, r.TypeTag, r.Title)
			if r.Duration != "" {
				fmt.Fprintf(w, " (%s)", r.Duration)
			}
			fmt.Fprintln(w)
			if r.Why != "" {
				fmt.Fprintf(w, "   %s\n", r.Why)
			}
			if r.Navigable {
				fmt.Fprintf(w, "   %s\n", r.Href)
			}
		}
		return nil
	},
}

func init() {
	resourcesCmd.Flags().String("level", learnpath.DefaultResourceLevel, "Learner level: beginner, intermediate or advanced")
	resourcesCmd.Flags().Int("count", learnpath.DefaultResourceCount, "Number of resources to request")
	resourcesCmd.Flags().Bool("json", false, "Print raw JSON")
}
