package pathview

import (
	"fmt"
	"io"
	"strings"
)

const textBarWidth = 20

// RenderText writes a plain-text rendition of the tree, used by the
// non-interactive commands. Every module is printed with its resources
// unless collapsed is set, in which case only expanded modules are.
func RenderText(w io.Writer, tree DisplayTree, collapsed bool) error {
	var b strings.Builder
	if tree.Empty {
		b.WriteString("No plan.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	h := tree.Header
	fmt.Fprintf(&b, "%s  %s  %d%% ready\n", h.TargetRole, textBar(h.RingFill*100), h.Readiness)
	fmt.Fprintf(&b, "%d weeks", h.TotalWeeks)
	if h.Adapted {
		b.WriteString("  (adapted)")
	}
	b.WriteString("\n")
	if h.NextAction != "" {
		fmt.Fprintf(&b, "Next: %s\n", h.NextAction)
	}

	for _, m := range tree.Modules {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d. [%s] %s (%s)\n", m.Index+1, m.PriorityLabel, m.Title, m.Domain)
		fmt.Fprintf(&b, "   %s %s  ~%dw\n", textBar(m.ScoreBarWidth), m.ScoreLabel, m.EstimatedWeeks)
		if collapsed && !m.Expanded {
			continue
		}
		if m.WhyThisNow != "" {
			fmt.Fprintf(&b, "   Why now: %s\n", m.WhyThisNow)
		}
		if m.Milestone != "" {
			fmt.Fprintf(&b, "   Milestone: %s\n", m.Milestone)
		}
		for _, r := range m.Resources {
			fmt.Fprintf(&b, "   %s %s  %s", r.Icon, r.TypeTag, r.Title)
			if r.Duration != "" {
				fmt.Fprintf(&b, " (%s)", r.Duration)
			}
			b.WriteString("\n")
			if r.Navigable {
				fmt.Fprintf(&b, "      %s\n", r.Href)
			}
		}
	}

	if tree.Motivation != "" {
		fmt.Fprintf(&b, "\n%s\n", tree.Motivation)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func textBar(percent float64) string {
	filled := int(percent / 100 * textBarWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > textBarWidth {
		filled = textBarWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", textBarWidth-filled) + "]"
}
