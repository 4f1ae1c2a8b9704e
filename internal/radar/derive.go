package radar

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fyrsmithlabs/radard/internal/extraction"
	"github.com/fyrsmithlabs/radard/internal/impact"
)

// derivedBy marks synthesized work items in the suggestion trail.
const derivedBy = "radar"

// DeriveWorkItems synthesizes scoreable work items from snapshot signals:
// blockers become fixes, stale or missing deliverables become content work,
// untested plugins become infra work, and high-priority todos carry over
// directly.
func DeriveWorkItems(state *ProjectState, now time.Time) []impact.WorkItem {
	var items []impact.WorkItem
	add := func(category impact.Category, title, description, pluginName string) {
		items = append(items, impact.WorkItem{
			ID:          uuid.New().String(),
			Title:       title,
			Description: description,
			Category:    category,
			Plugin:      pluginName,
			SuggestedBy: derivedBy,
			CreatedAt:   now,
		})
	}

	for _, blocker := range state.CriticalBlockers {
		add(impact.CategoryFix,
			fmt.Sprintf("Unblock: %s", blocker),
			"Critical blocker surfaced by project scan", "")
	}
	for _, item := range state.Blocked {
		add(impact.CategoryFix,
			fmt.Sprintf("Unblock %s: %s", item.Plugin, item.Title),
			"Blocked progress ledger item", item.Plugin)
	}

	for _, d := range state.NorthStarDeliverables {
		switch d.Status {
		case DeliverableStale:
			add(impact.CategoryContent,
				fmt.Sprintf("Refresh stale deliverable: %s", d.Name),
				fmt.Sprintf("No new output in %s since %s", d.Dir, d.LastOutput), "")
		case DeliverableMissing:
			add(impact.CategoryContent,
				fmt.Sprintf("Produce missing deliverable: %s", d.Name),
				fmt.Sprintf("No output found in %s", d.Dir), "")
		}
	}

	for _, p := range state.Plugins {
		if !p.HasTests {
			add(impact.CategoryInfra,
				fmt.Sprintf("Add tests for %s", p.Name),
				"Plugin has no test coverage", p.Name)
		}
	}

	for _, todo := range state.AllTodos {
		if todo.Priority == extraction.PriorityHigh {
			add(impact.CategoryFeature, todo.Text,
				fmt.Sprintf("High-priority todo from %s", todo.Source), "")
		}
	}

	return items
}
