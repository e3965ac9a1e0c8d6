package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/coach"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

type memStore struct {
	mu      sync.Mutex
	state   *entity.State
	loadErr error
	saveErr error
	saves   int
	resets  int
}

func (m *memStore) Load(ctx context.Context) (*entity.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.state == nil {
		return nil, errorvalues.ErrNoState
	}
	return &entity.State{Profile: m.state.Profile, Data: m.state.Data.Clone()}, nil
}

func (m *memStore) Save(ctx context.Context, profile *entity.Profile, data *entity.AppData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.state = &entity.State{Profile: *profile, Data: data.Clone()}
	return nil
}

func (m *memStore) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
	m.state = nil
	return nil
}

func (m *memStore) saved() (*entity.State, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.saves
}

type genCall struct {
	prompt string
	system string
}

type fakeGenerator struct {
	mu    sync.Mutex
	calls []genCall
	reply func(prompt, system string) string
	block chan struct{}
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt, system string) string {
	g.mu.Lock()
	g.calls = append(g.calls, genCall{prompt: prompt, system: system})
	reply, block := g.reply, g.block
	g.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return coach.ConnectionError
		}
	}
	if reply != nil {
		return reply(prompt, system)
	}
	return "Stay consistent."
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *fakeGenerator) lastCall() genCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[len(g.calls)-1]
}

func newTracker(t *testing.T, store *memStore, gen *fakeGenerator) *service.TrackerService {
	t.Helper()
	ts, err := service.NewTrackerService(context.Background(), store, gen,
		service.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return ts
}

func onboardedProfile() entity.Profile {
	return entity.Profile{
		Name:          "Ada",
		AgeRange:      "20-30",
		FocusArea:     "Career & Business",
		Struggle:      "Procrastination",
		FeedbackStyle: entity.StyleBrutal,
		JoinedDate:    testNow.AddDate(0, -1, 0),
	}
}

func seededStore(streak int, focus ...int) *memStore {
	data := entity.NewAppData()
	data.Streak = streak
	for i, f := range focus {
		data.Logs = append(data.Logs, entity.LogEntry{
			ID:         uuid.New(),
			Date:       testNow.AddDate(0, 0, i-len(focus)),
			Focus:      entity.Focus(f),
			WastedTime: "1",
			Wins:       "shipped",
			Mood:       entity.DefaultMood,
		})
	}
	data.LifeScore = service.ComputeLifeScore(data.Logs, data.Goals, data.Streak)
	return &memStore{state: &entity.State{Profile: onboardedProfile(), Data: data}}
}
