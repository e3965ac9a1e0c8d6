// @title LifeOS API
// @description Local API for the LifeOS self-tracking core
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/lifeos/internal/api"
	"github.com/limbo/lifeos/internal/app"
	"github.com/limbo/lifeos/pkg/cleanup"
	"github.com/limbo/lifeos/pkg/config"
	"github.com/limbo/lifeos/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.New()
	l, err := logger.New(cfg.GetString("LOG_LEVEL"), cfg.GetString("LIFEOS_ENV"))
	if err != nil {
		log.Fatal("building logger error: " + err.Error())
	}
	defer l.Sync()
	defer cleanup.CleanUp(l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker, err := app.NewTracker(ctx, cfg, app.Options{}, l)
	if err != nil {
		l.Error("starting tracker error", zap.Error(err))
		return
	}
	serv := api.New(&api.ServicesList{
		Tracker:   tracker,
		Logger:    l,
		AITimeout: cfg.GetDuration("AI_TIMEOUT"),
	})
	err = serv.Run(ctx, cfg.GetString("API_ADDRESS"))
	if err != nil {
		l.Error("server error", zap.Error(err))
	}
}
