// Package main implements the radard CLI: project scanning, impact scoring,
// and the suggestion feedback loop.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/radard/internal/config"
	"github.com/fyrsmithlabs/radard/internal/history"
	"github.com/fyrsmithlabs/radard/internal/logging"
	"github.com/fyrsmithlabs/radard/internal/radar"
	"github.com/fyrsmithlabs/radard/internal/store"
	"github.com/fyrsmithlabs/radard/internal/telemetry"
)

var (
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "radard",
	Short:   "Project-state radar and impact ranking",
	Long:    `radard scans a repository's plugin and documentation trees, assembles a project-state snapshot, and ranks candidate work by impact with a feedback loop over past suggestions.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (YAML)")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(outcomeCmd)
	rootCmd.AddCommand(learningsCmd)
	rootCmd.AddCommand(watchCmd)
}

// app wires the services a command needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	tel     *telemetry.Telemetry
	radar   radar.Service
	history history.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	tel, err := telemetry.New(ctx, cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	radarSvc, err := radar.NewService(cfg,
		store.NewFileStore(cfg.SnapshotPath()),
		store.NewLock(cfg.LockPath()),
		logger)
	if err != nil {
		return nil, err
	}

	historySvc, err := history.NewService(store.NewFileStore(cfg.HistoryPath()), logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		tel:     tel,
		radar:   radarSvc,
		history: historySvc,
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.tel.Shutdown(ctx); err != nil {
		a.logger.Warn("telemetry shutdown failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}
