package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/lifeos/internal/coach"
	"github.com/limbo/lifeos/internal/metrics"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	mx           *chi.Mux
	tracker      service.TrackerServiceI
	logger       *zap.Logger
	coachTimeout time.Duration
}

type ServicesList struct {
	Tracker service.TrackerServiceI
	Logger  *zap.Logger
	// Limit of a single generation, also used as the tracker's queue wait.
	// Zero means coach.DefaultTimeout.
	AITimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:           chi.NewMux(),
		tracker:      servicesOptions.Tracker,
		logger:       logger.OrNop(servicesOptions.Logger),
		coachTimeout: CoachTimeout(servicesOptions.AITimeout),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Handle("/metrics", metrics.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.GetState)
		r.Delete("/state", s.ResetState)
		r.Get("/status", s.GetStatus)
		r.Post("/onboarding", s.CompleteOnboarding)
		r.Patch("/profile", s.UpdateProfile)
		r.Post("/goals", s.AddGoal)
		r.Delete("/goals/{id}", s.DeleteGoal)
		r.Post("/goals/{id}/deactivate", s.DeactivateGoal)
		r.Post("/logs", s.CommitLog)
		r.Post("/briefing", s.MorningBriefing)
		r.Post("/patterns", s.AnalyzePatterns)
	})
}

// CoachTimeout is the budget of a request that calls the generator: the queue
// wait, then its own generation, then the save.
func CoachTimeout(aiTimeout time.Duration) time.Duration {
	if aiTimeout <= 0 {
		aiTimeout = coach.DefaultTimeout
	}
	return 2*aiTimeout + storeTimeout
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", zap.String("address", address))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	s.logger.Info("api stopped")
	return nil
}
