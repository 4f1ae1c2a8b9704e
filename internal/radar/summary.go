package radar

import (
	"fmt"
	"strings"
)

// maxSummaryGaps bounds the knowledge-gap list in the rendered summary.
const maxSummaryGaps = 5

// Summary renders a human-readable overview of one snapshot.
func Summary(state *ProjectState) string {
	var b strings.Builder

	b.WriteString("📡 **Project Radar**\n\n")
	fmt.Fprintf(&b, "*Scanned: %s*\n\n", state.ScannedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "**Plugins (%d):** %d actions, %d services\n",
		len(state.Plugins), state.TotalActions, state.TotalServices)
	for _, p := range state.Plugins {
		marker := "🟡"
		if p.HealthScore >= 80 {
			marker = "🟢"
		}
		fmt.Fprintf(&b, "%s %s: %d actions, %d services\n",
			marker, p.Name, p.ActionCount, p.ServiceCount)
	}
	b.WriteString("\n")

	b.WriteString("**Progress:**\n")
	fmt.Fprintf(&b, "• ✅ %d completed\n", len(state.Completed))
	fmt.Fprintf(&b, "• 🔄 %d in progress\n", len(state.InProgress))
	fmt.Fprintf(&b, "• 🚫 %d blocked\n", len(state.Blocked))
	b.WriteString("\n")

	if len(state.NorthStarDeliverables) > 0 {
		b.WriteString("**North Star Deliverables:**\n")
		byStatus := map[string][]string{}
		for _, d := range state.NorthStarDeliverables {
			byStatus[d.Status] = append(byStatus[d.Status], d.Name)
		}
		if names := byStatus[DeliverableActive]; len(names) > 0 {
			fmt.Fprintf(&b, "• 🟢 Active: %s\n", strings.Join(names, ", "))
		}
		if names := byStatus[DeliverableStale]; len(names) > 0 {
			fmt.Fprintf(&b, "• 🟡 Stale: %s\n", strings.Join(names, ", "))
		}
		if names := byStatus[DeliverableMissing]; len(names) > 0 {
			fmt.Fprintf(&b, "• 🔴 Missing: %s\n", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}

	if len(state.KnowledgeGaps) > 0 {
		b.WriteString("**Knowledge Gaps:**\n")
		gaps := state.KnowledgeGaps
		if len(gaps) > maxSummaryGaps {
			gaps = gaps[:maxSummaryGaps]
		}
		for _, gap := range gaps {
			fmt.Fprintf(&b, "• %s\n", gap)
		}
		b.WriteString("\n")
	}

	if len(state.CriticalBlockers) > 0 {
		b.WriteString("**Blockers:**\n")
		for _, blocker := range state.CriticalBlockers {
			fmt.Fprintf(&b, "• %s\n", blocker)
		}
		b.WriteString("\n")
	}

	if len(state.RecentChanges) > 0 {
		fmt.Fprintf(&b, "**Recent Changes (%d):**\n", len(state.RecentChanges))
		today, thisWeek := 0, 0
		for _, c := range state.RecentChanges {
			if c.DaysAgo == 0 {
				today++
			} else {
				thisWeek++
			}
		}
		if today > 0 {
			fmt.Fprintf(&b, "• Today: %d files\n", today)
		}
		if thisWeek > 0 {
			fmt.Fprintf(&b, "• This week: %d files\n", thisWeek)
		}
	}

	return b.String()
}
