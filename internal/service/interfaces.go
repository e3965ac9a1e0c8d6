package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/coach"
	"github.com/limbo/lifeos/pkg/entity"
)

// Generator produces coaching text. Failures come back as displayable text, never as errors.
type Generator interface {
	Generate(ctx context.Context, prompt, systemContext string) string
}

type OnboardingRequest struct {
	Name          string               `json:"name" validate:"not_blank,max=100"`
	AgeRange      string               `json:"age" validate:"omitempty,age_range"`
	FocusArea     string               `json:"focus" validate:"omitempty,focus_area"`
	Struggle      string               `json:"struggle" validate:"omitempty,struggle"`
	FeedbackStyle entity.FeedbackStyle `json:"style" validate:"omitempty,feedback_style"`
}

// ProfileUpdate changes only the fields that are set.
type ProfileUpdate struct {
	Name          *string               `json:"name" validate:"omitnil,not_blank,max=100"`
	FeedbackStyle *entity.FeedbackStyle `json:"style" validate:"omitnil,feedback_style"`
}

type LogDraft struct {
	Focus      int    `json:"focus" validate:"min=1,max=10"`
	WastedTime string `json:"wastedTime" validate:"wasted_time"`
	Wins       string `json:"wins"`
	Failures   string `json:"failures"`
	Mood       string `json:"mood"`
}

type Briefing struct {
	Greeting string `json:"greeting"`
	Text     string `json:"text"`
}

type StatusReport struct {
	Onboarded   bool                               `json:"onboarded"`
	Name        string                             `json:"name"`
	LifeScore   int                                `json:"lifeScore"`
	Band        string                             `json:"band"`
	Streak      int                                `json:"streak"`
	Logs        int                                `json:"logs"`
	Goals       int                                `json:"goals"`
	ActiveGoals int                                `json:"activeGoals"`
	Calls       map[coach.CallSite]coach.CallState `json:"calls"`
}

type TrackerServiceI interface {
	// Deep copies of the current profile and data
	Snapshot() (entity.Profile, entity.AppData)
	Status() StatusReport
	CompleteOnboarding(ctx context.Context, req *OnboardingRequest) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, patch *ProfileUpdate) (*entity.Profile, error)
	// Clears both records and reverts to defaults
	Reset(ctx context.Context) error
	AddGoal(ctx context.Context, title string) (*entity.Goal, error)
	// No-op if the goal doesn't exist
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	DeactivateGoal(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	CommitLog(ctx context.Context, draft *LogDraft) (*entity.LogEntry, error)
	MorningBriefing(ctx context.Context) (*Briefing, error)
	AnalyzePatterns(ctx context.Context) (string, error)
}
