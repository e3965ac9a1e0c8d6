package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/lifeos/internal/api"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local JSON API and metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		address := serveAddress
		if address == "" {
			address = cfg.GetString("API_ADDRESS")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		cmd.SetContext(ctx)
		return withTrackerLogger(cmd, func(ctx context.Context, ts *service.TrackerService, l *zap.Logger) error {
			srv := api.New(&api.ServicesList{Tracker: ts, Logger: l, AITimeout: cfg.GetDuration("AI_TIMEOUT")})
			return srv.Run(ctx, address)
		})
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "addr", "", "Listen address (default from API_ADDRESS)")
	rootCmd.AddCommand(serveCmd)
}
