package main

import (
	"context"
	"errors"

	"github.com/limbo/lifeos/internal/app"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/cleanup"
	"github.com/limbo/lifeos/pkg/config"
	"github.com/limbo/lifeos/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func withTracker(cmd *cobra.Command, fn func(ctx context.Context, ts *service.TrackerService) error) error {
	return withTrackerLogger(cmd, func(ctx context.Context, ts *service.TrackerService, _ *zap.Logger) error {
		return fn(ctx, ts)
	})
}

// withTrackerLogger wires config, logging, the store and the coach, then runs fn.
// Everything registered for cleanup is released when fn returns.
func withTrackerLogger(cmd *cobra.Command, fn func(ctx context.Context, ts *service.TrackerService, l *zap.Logger) error) error {
	cfg := config.New()
	l, err := logger.New(cfg.GetString("LOG_LEVEL"), cfg.GetString("LIFEOS_ENV"))
	if err != nil {
		return errors.New("building logger error: " + err.Error())
	}
	defer l.Sync()
	defer cleanup.CleanUp(l)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ts, err := app.NewTracker(ctx, cfg, app.Options{Backend: backend, StateDir: stateDir}, l)
	if err != nil {
		return err
	}
	return fn(ctx, ts, l)
}

func requireOnboarded(ts *service.TrackerService) error {
	if !ts.Onboarded() {
		return errors.New("no profile yet, run `lifeos onboard` first")
	}
	return nil
}
