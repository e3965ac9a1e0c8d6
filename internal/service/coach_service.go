package service

import (
	"context"

	"github.com/limbo/lifeos/internal/coach"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
)

// MorningBriefing builds the day's protocol around the first active goal.
func (ts *TrackerService) MorningBriefing(ctx context.Context) (*Briefing, error) {
	ts.mu.Lock()
	profile := ts.profile
	score := ts.data.LifeScore
	mainGoal := ""
	if g, ok := ts.data.FirstActiveGoal(); ok {
		mainGoal = g.Title
	}
	ts.mu.Unlock()
	if !onboarded(profile) {
		return nil, errorvalues.ErrNotOnboarded
	}

	release, err := ts.guard.Acquire(ctx, coach.SiteBriefing)
	if err != nil {
		return nil, err
	}
	defer release()
	text := ts.ai.Generate(ctx, coach.BriefingPrompt, coach.BriefingContext(profile, mainGoal, score))
	return &Briefing{
		Greeting: coach.Greeting(ts.now()),
		Text:     text,
	}, nil
}

// AnalyzePatterns looks across the whole log history. With fewer than three
// logs it answers locally without calling the generator.
func (ts *TrackerService) AnalyzePatterns(ctx context.Context) (string, error) {
	ts.mu.Lock()
	data := ts.data.Clone()
	ts.mu.Unlock()
	if len(data.Logs) < coach.MinPatternLogs {
		return coach.NotEnoughData, nil
	}

	release, err := ts.guard.Acquire(ctx, coach.SitePatterns)
	if err != nil {
		return "", err
	}
	defer release()
	return ts.ai.Generate(ctx, coach.PatternsPrompt, coach.PatternsContext(data.Logs)), nil
}
