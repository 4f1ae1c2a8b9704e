package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/radard/internal/impact"
	"github.com/fyrsmithlabs/radard/internal/radar"
)

var (
	scoreDescription string
	scoreCategory    string
	rankLimit        int
)

var scoreCmd = &cobra.Command{
	Use:   "score <title>",
	Short: "Score one work item",
	Long: `Score evaluates a single work item against the impact heuristic and
prints the score breakdown.

Examples:
  radard score "urgent blocker: fix production ingest"
  radard score "dashboard polish" --description "tighten spacing" --category feature`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreDescription, "description", "", "work item description")
	scoreCmd.Flags().StringVar(&scoreCategory, "category", string(impact.CategoryFeature), "work item category")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 10, "maximum items to print")
}

func runScore(cmd *cobra.Command, args []string) error {
	item := impact.WorkItem{
		ID:          uuid.New().String(),
		Title:       args[0],
		Description: scoreDescription,
		Category:    impact.Category(scoreCategory),
		SuggestedBy: "user",
		CreatedAt:   time.Now(),
	}
	score := impact.Score(item, time.Now())
	fmt.Fprintln(cmd.OutOrStdout(), impact.FormatScore(score))
	return nil
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank work items derived from the last scan",
	Long: `Rank derives candidate work items from the project state (blockers,
stale deliverables, untested plugins, high-priority todos), scores them,
and prints them in descending impact order. With no cached snapshot it
runs a scan first.`,
	RunE: runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	state, err := a.radar.LastState(ctx)
	if err != nil {
		return err
	}
	if state == nil {
		state, err = a.radar.Scan(ctx)
		if err != nil {
			return err
		}
	}

	now := time.Now()
	ranked := impact.Rank(radar.DeriveWorkItems(state, now), now)
	if len(ranked) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No candidate work items.")
		return nil
	}
	if rankLimit > 0 && len(ranked) > rankLimit {
		ranked = ranked[:rankLimit]
	}

	out := cmd.OutOrStdout()
	for i, r := range ranked {
		fmt.Fprintf(out, "%d. %s [%s]\n", i+1, r.Item.Title, r.Item.Category)
		fmt.Fprintln(out, impact.FormatScore(r.Score))
		fmt.Fprintln(out)
	}
	return nil
}
