package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/limbo/lifeos/pkg/httputil"
	"go.uber.org/zap"
)

const storeTimeout = 10 * time.Second

type StateResponse struct {
	Onboarded bool           `json:"onboarded"`
	Profile   entity.Profile `json:"profile"`
	Data      entity.AppData `json:"data"`
}

type AddGoalRequest struct {
	Title string `json:"title"`
}

type TextResponse struct {
	Text string `json:"text"`
}

func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	profile, data := s.tracker.Snapshot()
	httputil.WriteJSONResponse(w, http.StatusOK, StateResponse{
		Onboarded: strings.TrimSpace(profile.Name) != "",
		Profile:   profile,
		Data:      data,
	})
}

func (s *Server) GetStatus(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.tracker.Status())
}

func (s *Server) ResetState(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	if err := s.tracker.Reset(ctx); err != nil {
		writeServiceError(w, logger, "reset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("state reset")
}

func (s *Server) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.OnboardingRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("onboarding error: invalid body", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	profile, err := s.tracker.CompleteOnboarding(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "onboarding", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, profile)
	logger.Info("successful onboarding")
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.ProfileUpdate
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("update profile error: invalid body", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	profile, err := s.tracker.UpdateProfile(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "update profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) AddGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AddGoalRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("add goal error: invalid body", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.coachTimeout)
	defer cancel()
	goal, err := s.tracker.AddGoal(ctx, req.Title)
	if err != nil {
		writeServiceError(w, logger, "add goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal added", zap.Stringer("goal_id", goal.ID))
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("delete goal error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	if err = s.tracker.DeleteGoal(ctx, id); err != nil {
		writeServiceError(w, logger, "delete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeactivateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("deactivate goal error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	goal, err := s.tracker.DeactivateGoal(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "deactivate goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

func (s *Server) CommitLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var draft service.LogDraft
	if err := httputil.ReadJSON(r, &draft); err != nil {
		logger.Error("commit log error: invalid body", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.coachTimeout)
	defer cancel()
	entry, err := s.tracker.CommitLog(ctx, &draft)
	if err != nil {
		writeServiceError(w, logger, "commit log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("log committed", zap.Stringer("log_id", entry.ID))
}

func (s *Server) MorningBriefing(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.coachTimeout)
	defer cancel()
	briefing, err := s.tracker.MorningBriefing(ctx)
	if err != nil {
		writeServiceError(w, logger, "briefing", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, briefing)
}

func (s *Server) AnalyzePatterns(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.coachTimeout)
	defer cancel()
	text, err := s.tracker.AnalyzePatterns(ctx)
	if err != nil {
		writeServiceError(w, logger, "patterns", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TextResponse{Text: text})
}

func writeServiceError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidProfile),
		errors.Is(err, errorvalues.ErrEmptyGoalTitle),
		errors.Is(err, errorvalues.ErrEmptyLog),
		errors.Is(err, errorvalues.ErrInvalidFocus),
		errors.Is(err, errorvalues.ErrInvalidWastedTime):
		logger.Warn(op+" error: invalid input", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrGoalNotFound):
		logger.Warn(op + " error: goal not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrNotOnboarded):
		logger.Warn(op + " error: not onboarded")
		httputil.WriteErrorResponse(w, http.StatusConflict, "complete onboarding first", nil)
	case errors.Is(err, errorvalues.ErrCallInFlight):
		logger.Warn(op+" error: already in progress", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusConflict, "request already in progress", nil)
	case errors.Is(err, errorvalues.ErrStateReset):
		logger.Warn(op + " error: state was reset")
		httputil.WriteErrorResponse(w, http.StatusConflict, "state was reset, request dropped", nil)
	default:
		logger.Error(op+" error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}
