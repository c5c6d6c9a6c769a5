// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides an ASCII overview of contacts by priority and category
package viz

import (
	"fmt"
	"strings"

	"github.com/harperreed/rolodex/analytics"
)

const barBlocks = 10

func RenderDashboard(summary analytics.Summary) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  ROLODEX DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("BY PRIORITY\n")
	renderBars(&out, summary.ByPriority)
	out.WriteString("\n")

	out.WriteString("BY CATEGORY\n")
	if len(summary.ByCategory) == 0 {
		out.WriteString("  (no categories)\n")
	}
	renderBars(&out, summary.ByCategory)
	out.WriteString("\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  📇 %d contacts  🗂  %d categories\n",
		summary.TotalContacts, summary.TotalCategories))

	if summary.Uncategorized > 0 {
		out.WriteString("\nNEEDS ATTENTION\n")
		out.WriteString(fmt.Sprintf("  ⚠️  %d contacts - not in any category\n", summary.Uncategorized))
	}

	return out.String()
}

func renderBars(out *strings.Builder, counts []analytics.Count) {
	maxCount := analytics.Max(counts)
	if maxCount == 0 {
		maxCount = 1
	}

	for _, c := range counts {
		// Calculate bar length (0-10 blocks)
		barLength := (c.Value * barBlocks) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", barBlocks-barLength)

		out.WriteString(fmt.Sprintf("  %-13s %s  %2d\n", truncate(c.Name, 13), bar, c.Value))
	}
}
