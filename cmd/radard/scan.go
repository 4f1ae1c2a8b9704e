package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/radard/internal/radar"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the repository and print a project summary",
	Long: `Scan walks the configured repository, assembles a fresh project-state
snapshot, persists it to the cache, and prints a human-readable summary.

Examples:
  radard scan
  radard scan --config radard.yaml`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	state, err := a.radar.Scan(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), radar.Summary(state))
	return nil
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the summary of the last persisted scan",
	Long: `Summary prints the cached project state without rescanning. With no
cached snapshot it runs a scan first.`,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
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
	fmt.Fprint(cmd.OutOrStdout(), radar.Summary(state))
	return nil
}
