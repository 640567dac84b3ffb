package pathview

import (
	"fmt"
	"strings"
)

// RenderMarkdown returns the tree as a Markdown document. Resource links
// are emitted only for navigable URLs; everything else stays plain text.
func RenderMarkdown(tree DisplayTree) string {
	if tree.Empty {
		return "_No plan._\n"
	}

	var b strings.Builder
	h := tree.Header
	fmt.Fprintf(&b, "# %s\n\n", mdEscape(h.TargetRole))
	fmt.Fprintf(&b, "**%d%% ready** · %d weeks", h.Readiness, h.TotalWeeks)
	if h.Adapted {
		b.WriteString(" · _adapted_")
	}
	b.WriteString("\n\n")
	if h.NextAction != "" {
		fmt.Fprintf(&b, "> **Next:** %s\n\n", mdEscape(h.NextAction))
	}

	for _, m := range tree.Modules {
		fmt.Fprintf(&b, "## %d. %s\n\n", m.Index+1, mdEscape(m.Title))
		fmt.Fprintf(&b, "`%s` · %s · %s · ~%d weeks\n\n", m.PriorityLabel, mdEscape(string(m.Domain)), m.ScoreLabel, m.EstimatedWeeks)
		if m.WhyThisNow != "" {
			fmt.Fprintf(&b, "%s\n\n", mdEscape(m.WhyThisNow))
		}
		if m.Milestone != "" {
			fmt.Fprintf(&b, "**Milestone:** %s\n\n", mdEscape(m.Milestone))
		}
		for _, r := range m.Resources {
			b.WriteString("- " + r.Icon + " ")
			if r.Navigable {
				fmt.Fprintf(&b, "[%s](<%s>)", mdEscape(r.Title), mdHref(r.Href))
			} else {
				b.WriteString(mdEscape(r.Title))
			}
			fmt.Fprintf(&b, " `%s`", r.TypeTag)
			if r.Duration != "" {
				fmt.Fprintf(&b, " (%s)", mdEscape(r.Duration))
			}
			b.WriteString("\n")
		}
		if len(m.Resources) > 0 {
			b.WriteString("\n")
		}
	}

	if tree.Motivation != "" {
		fmt.Fprintf(&b, "---\n\n_%s_\n", mdEscape(tree.Motivation))
	}
	return b.String()
}

var mdReplacer = strings.NewReplacer(
	`\`, `\\`,
	"[", `\[`,
	"]", `\]`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

func mdEscape(s string) string {
	return mdReplacer.Replace(s)
}

// Characters that could end or break an angle-bracket link destination.
var hrefReplacer = strings.NewReplacer(
	`\`, "%5C",
	"<", "%3C",
	">", "%3E",
	" ", "%20",
	"\n", "%0A",
	"\r", "%0D",
)

func mdHref(href string) string {
	return hrefReplacer.Replace(href)
}
