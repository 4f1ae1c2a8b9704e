package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/radard/internal/radar"
	"github.com/fyrsmithlabs/radard/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rescan whenever the repository changes",
	Long: `Watch runs an initial scan, then watches the configured repository
trees and rescans after each settled burst of changes. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "settle time before rescanning")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	roots := []string{
		a.cfg.RepoPath(a.cfg.Repo.PluginsDir),
		a.cfg.RepoPath(a.cfg.Repo.KnowledgeDir),
		a.cfg.RepoPath(a.cfg.Repo.DocsDir),
		a.cfg.RepoPath(a.cfg.Repo.TasksDir),
		a.cfg.RepoPath(a.cfg.Repo.DeliverablesDir),
	}
	w, err := watch.New(roots, watchDebounce, a.logger)
	if err != nil {
		return err
	}
	defer w.Stop()
	w.Start(ctx)

	a.logger.Info("watching for changes", zap.Strings("roots", roots))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Triggers():
			state, err := a.radar.Scan(ctx)
			if err != nil {
				a.logger.Warn("rescan failed", zap.Error(err))
				continue
			}
			fmt.Fprint(cmd.OutOrStdout(), radar.Summary(state))
		}
	}
}
