package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/radard/internal/history"
)

var (
	recordCategory string
	recordOutcome  string
	outcomeNotes   string
)

var recordCmd = &cobra.Command{
	Use:   "record <suggestion>",
	Short: "Record a suggestion in the history log",
	Long: `Record appends a suggestion to the history log, outcome pending unless
given.

Examples:
  radard record "ship the scanner" --category feature
  radard record "refresh essays" --category content --outcome accepted`,
	Args: cobra.ExactArgs(1),
	RunE: runRecord,
}

var outcomeCmd = &cobra.Command{
	Use:   "outcome <suggestion>",
	Short: "Update the outcome of a recorded suggestion",
	Long: `Outcome finds the most recent history entry matching the suggestion
text and sets its outcome.

Examples:
  radard outcome "ship the scanner" --outcome accepted
  radard outcome "refresh essays" --outcome rejected --notes "already covered"`,
	Args: cobra.ExactArgs(1),
	RunE: runOutcome,
}

var learningsCmd = &cobra.Command{
	Use:   "learnings",
	Short: "Print learnings from suggestion history",
	RunE:  runLearnings,
}

func init() {
	recordCmd.Flags().StringVar(&recordCategory, "category", "feature", "suggestion category")
	recordCmd.Flags().StringVar(&recordOutcome, "outcome", string(history.OutcomePending), "initial outcome")
	outcomeCmd.Flags().StringVar(&recordOutcome, "outcome", string(history.OutcomeAccepted), "new outcome")
	outcomeCmd.Flags().StringVar(&outcomeNotes, "notes", "", "outcome notes")
}

func runRecord(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	entry, err := a.history.Record(ctx, args[0], recordCategory, history.Outcome(recordOutcome))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s (%s)\n", entry.ID, entry.Outcome)
	return nil
}

func runOutcome(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	matched, err := a.history.UpdateOutcome(ctx, args[0], history.Outcome(recordOutcome), outcomeNotes)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("no recorded suggestion matches %q", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Outcome updated.")
	return nil
}

func runLearnings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	learnings, err := a.history.Learnings(ctx)
	if err != nil {
		return err
	}
	if len(learnings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No learnings yet.")
		return nil
	}
	for _, l := range learnings {
		fmt.Fprintln(cmd.OutOrStdout(), l)
	}
	return nil
}
