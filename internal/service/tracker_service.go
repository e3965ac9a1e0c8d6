package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/coach"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/metrics"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/limbo/lifeos/pkg/logger"
	"go.uber.org/zap"
)

type Option func(*TrackerService)

func WithGuard(g *coach.Guard) Option {
	return func(ts *TrackerService) {
		if g != nil {
			ts.guard = g
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(ts *TrackerService) {
		ts.logger = logger.OrNop(l)
	}
}

func WithClock(now func() time.Time) Option {
	return func(ts *TrackerService) {
		if now != nil {
			ts.now = now
		}
	}
}

// TrackerService owns the profile and app data. Every mutation is computed on a
// copy, saved as a whole and only then made current.
type TrackerService struct {
	repo   repository.StateRepositoryI
	ai     Generator
	guard  *coach.Guard
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	profile entity.Profile
	data    entity.AppData
	// bumped by Reset; results generated against an older epoch are dropped
	epoch uint64
}

// NewTrackerService loads the saved state once. Missing or corrupt state starts
// a fresh onboarding instead of failing.
func NewTrackerService(ctx context.Context, repo repository.StateRepositoryI, ai Generator, opts ...Option) (*TrackerService, error) {
	if repo == nil {
		log.Fatal("provided nil state repo")
	}
	InitValidator()
	ts := &TrackerService{
		repo:   repo,
		ai:     ai,
		guard:  coach.NewGuard(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}
	if ts.ai == nil {
		ts.ai = coach.NewClient(nil, 0, ts.logger)
	}
	ts.profile = entity.NewProfile(ts.now())
	ts.data = entity.NewAppData()

	st, err := repo.Load(ctx)
	switch {
	case err == nil:
		ts.profile, ts.data = st.Profile, st.Data
		ts.data.LifeScore = ComputeLifeScore(ts.data.Logs, ts.data.Goals, ts.data.Streak)
		loggedIn := ts.now()
		ts.data.LastLogin = &loggedIn
	case errors.Is(err, errorvalues.ErrNoState):
		ts.logger.Info("no saved state, starting onboarding")
	case errors.Is(err, errorvalues.ErrCorruptState):
		ts.logger.Warn("saved state is corrupt, starting onboarding", zap.Error(err))
	default:
		return nil, errors.New("state repository error: " + err.Error())
	}
	metrics.SetProgress(ts.data.LifeScore, ts.data.Streak)
	return ts, nil
}

func (ts *TrackerService) Snapshot() (entity.Profile, entity.AppData) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.profile, ts.data.Clone()
}

func (ts *TrackerService) Onboarded() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return onboarded(ts.profile)
}

func (ts *TrackerService) Status() StatusReport {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	active := 0
	for _, g := range ts.data.Goals {
		if g.Active {
			active++
		}
	}
	return StatusReport{
		Onboarded:   onboarded(ts.profile),
		Name:        ts.profile.Name,
		LifeScore:   ts.data.LifeScore,
		Band:        ScoreBand(ts.data.LifeScore),
		Streak:      ts.data.Streak,
		Logs:        len(ts.data.Logs),
		Goals:       len(ts.data.Goals),
		ActiveGoals: active,
		Calls:       ts.guard.States(),
	}
}

// Guard exposes call site states to presentation code.
func (ts *TrackerService) Guard() *coach.Guard {
	return ts.guard
}

func (ts *TrackerService) CompleteOnboarding(ctx context.Context, req *OnboardingRequest) (*entity.Profile, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidProfile
	}
	if err := validateProfile(req); err != nil {
		return nil, err
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()

	next := ts.profile
	next.Name = strings.TrimSpace(req.Name)
	next.AgeRange = req.AgeRange
	next.FocusArea = req.FocusArea
	next.Struggle = req.Struggle
	next.FeedbackStyle = req.FeedbackStyle
	if next.FeedbackStyle == "" {
		next.FeedbackStyle = entity.StyleHonest
	}
	if err := ts.commitLocked(ctx, next, ts.data.Clone()); err != nil {
		return nil, err
	}
	ts.logger.Info("onboarding completed", zap.String("name", next.Name))
	return &next, nil
}

func (ts *TrackerService) UpdateProfile(ctx context.Context, patch *ProfileUpdate) (*entity.Profile, error) {
	if patch == nil {
		return nil, errorvalues.ErrInvalidProfile
	}
	if err := validateProfile(patch); err != nil {
		return nil, err
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if !onboarded(ts.profile) {
		return nil, errorvalues.ErrNotOnboarded
	}

	next := ts.profile
	if patch.Name != nil {
		next.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.FeedbackStyle != nil {
		next.FeedbackStyle = *patch.FeedbackStyle
	}
	if err := ts.commitLocked(ctx, next, ts.data.Clone()); err != nil {
		return nil, err
	}
	return &next, nil
}

func (ts *TrackerService) Reset(ctx context.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if err := ts.repo.Reset(ctx); err != nil {
		return errors.New("state repository error: " + err.Error())
	}
	ts.profile = entity.NewProfile(ts.now())
	ts.data = entity.NewAppData()
	ts.epoch++
	metrics.SetProgress(ts.data.LifeScore, ts.data.Streak)
	ts.logger.Info("state reset to defaults")
	return nil
}

// AddGoal asks for a system behind the objective and prepends the goal.
// A failed generation still adds the goal with the failure text as its plan.
func (ts *TrackerService) AddGoal(ctx context.Context, title string) (*entity.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errorvalues.ErrEmptyGoalTitle
	}
	release, err := ts.guard.Acquire(ctx, coach.SiteGoal)
	if err != nil {
		return nil, err
	}
	defer release()

	ts.mu.Lock()
	epoch := ts.epoch
	ts.mu.Unlock()
	plan := ts.ai.Generate(ctx, title, coach.DecompositionContext(title))
	daily := coach.ParseDailyProtocol(plan)
	if len(daily) == 0 {
		daily = []string{entity.PlaceholderAction}
	}
	goal := entity.Goal{
		ID:        newID(),
		Title:     title,
		SystemStr: plan,
		Active:    true,
		Created:   ts.now(),
		System:    entity.GoalSystem{Daily: daily},
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.epoch != epoch {
		ts.logger.Info("dropping goal generated before reset", zap.String("title", title))
		return nil, errorvalues.ErrStateReset
	}
	next := ts.data.Clone()
	next.Goals = append([]entity.Goal{goal}, next.Goals...)
	if err := ts.commitLocked(ctx, ts.profile, next); err != nil {
		return nil, err
	}
	ts.logger.Debug("goal added", zap.Stringer("id", goal.ID), zap.Int("actions", len(daily)))
	out := goal.Clone()
	return &out, nil
}

func (ts *TrackerService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	idx := ts.data.GoalIndex(id)
	if idx < 0 {
		return nil
	}
	next := ts.data.Clone()
	next.Goals = append(next.Goals[:idx], next.Goals[idx+1:]...)
	return ts.commitLocked(ctx, ts.profile, next)
}

// DeactivateGoal keeps the goal but counts it as abandoned in the life score.
func (ts *TrackerService) DeactivateGoal(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	idx := ts.data.GoalIndex(id)
	if idx < 0 {
		return nil, errorvalues.ErrGoalNotFound
	}
	if !ts.data.Goals[idx].Active {
		out := ts.data.Goals[idx].Clone()
		return &out, nil
	}
	next := ts.data.Clone()
	next.Goals[idx].Active = false
	if err := ts.commitLocked(ctx, ts.profile, next); err != nil {
		return nil, err
	}
	out := next.Goals[idx].Clone()
	return &out, nil
}

// CommitLog gets feedback on the day, appends the entry and moves the streak.
func (ts *TrackerService) CommitLog(ctx context.Context, draft *LogDraft) (*entity.LogEntry, error) {
	if draft != nil && strings.TrimSpace(draft.WastedTime) == "" {
		d := *draft
		d.WastedTime = entity.WastedTimes[0]
		draft = &d
	}
	if err := validateLogDraft(draft); err != nil {
		return nil, err
	}
	release, err := ts.guard.Acquire(ctx, coach.SiteLog)
	if err != nil {
		return nil, err
	}
	defer release()

	entry := entity.LogEntry{
		Focus:      entity.Focus(draft.Focus),
		WastedTime: entity.WastedTime(draft.WastedTime),
		Wins:       strings.TrimSpace(draft.Wins),
		Failures:   strings.TrimSpace(draft.Failures),
		Mood:       strings.TrimSpace(draft.Mood),
	}
	if entry.Mood == "" {
		entry.Mood = entity.DefaultMood
	}
	ts.mu.Lock()
	profile, epoch := ts.profile, ts.epoch
	ts.mu.Unlock()
	entry.Feedback = ts.ai.Generate(ctx, coach.AnalysisPrompt, coach.AnalysisContext(profile, entry))
	entry.ID = newID()
	entry.Date = ts.now()

	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.epoch != epoch {
		ts.logger.Info("dropping log analyzed before reset")
		return nil, errorvalues.ErrStateReset
	}
	next := ts.data.Clone()
	next.Logs = append(next.Logs, entry)
	next.Streak = NextStreak(next.Streak, entry.Focus)
	if err := ts.commitLocked(ctx, ts.profile, next); err != nil {
		return nil, err
	}
	return &entry, nil
}

// commitLocked resyncs the life score, saves both records and swaps them in.
// Nothing is written until the profile has a name.
func (ts *TrackerService) commitLocked(ctx context.Context, profile entity.Profile, next entity.AppData) error {
	next.LifeScore = ComputeLifeScore(next.Logs, next.Goals, next.Streak)
	if onboarded(profile) {
		err := ts.repo.Save(ctx, &profile, &next)
		metrics.RecordStoreWrite(err)
		if err != nil {
			ts.logger.Error("saving state failed", zap.Error(err))
			return errors.New("state repository error: " + err.Error())
		}
	}
	ts.profile, ts.data = profile, next
	metrics.SetProgress(next.LifeScore, next.Streak)
	return nil
}

func onboarded(p entity.Profile) bool {
	return strings.TrimSpace(p.Name) != ""
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
