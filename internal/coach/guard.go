package coach

import (
	"context"
	"errors"
	"sync"
	"time"

	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/metrics"
	"golang.org/x/sync/semaphore"
)

type CallSite string

const (
	SiteBriefing CallSite = "briefing"
	SiteGoal     CallSite = "goal"
	SiteLog      CallSite = "log"
	SitePatterns CallSite = "patterns"
)

type CallState string

const (
	StateIdle     CallState = "idle"
	StatePending  CallState = "pending"
	StateResolved CallState = "resolved"
)

// Policy decides what happens to a request while the site is pending.
type Policy int

const (
	Reject Policy = iota
	Queue
)

// Listener observes state transitions. It runs on the caller's goroutine.
type Listener func(site CallSite, state CallState)

type slot struct {
	sem    *semaphore.Weighted
	policy Policy
	state  CallState
}

// Guard allows at most one in-flight generation per call site.
type Guard struct {
	mu        sync.Mutex
	slots     map[CallSite]*slot
	listeners []Listener
	queueWait time.Duration
}

type GuardOption func(*Guard)

// WithQueueWait bounds how long a queued request waits for its slot.
// Zero leaves the wait to the caller's ctx.
func WithQueueWait(d time.Duration) GuardOption {
	return func(g *Guard) {
		if d > 0 {
			g.queueWait = d
		}
	}
}

func NewGuard(opts ...GuardOption) *Guard {
	return NewGuardWithPolicies(map[CallSite]Policy{
		SiteBriefing: Reject,
		SitePatterns: Reject,
		SiteGoal:     Queue,
		SiteLog:      Queue,
	}, opts...)
}

func NewGuardWithPolicies(policies map[CallSite]Policy, opts ...GuardOption) *Guard {
	g := &Guard{slots: make(map[CallSite]*slot, len(policies))}
	for site, p := range policies {
		g.slots[site] = &slot{
			sem:    semaphore.NewWeighted(1),
			policy: p,
			state:  StateIdle,
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// QueueWait reports the bound set by WithQueueWait.
func (g *Guard) QueueWait() time.Duration {
	return g.queueWait
}

func (g *Guard) Subscribe(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
}

// Acquire moves site to Pending. The returned release moves it to Resolved
// and must be called exactly once.
func (g *Guard) Acquire(ctx context.Context, site CallSite) (func(), error) {
	g.mu.Lock()
	s, ok := g.slots[site]
	g.mu.Unlock()
	if !ok {
		return nil, errors.Join(errorvalues.ErrUnknownSite, errors.New(string(site)))
	}
	switch s.policy {
	case Queue:
		waitCtx := ctx
		if g.queueWait > 0 {
			var cancel context.CancelFunc
			waitCtx, cancel = context.WithTimeout(ctx, g.queueWait)
			defer cancel()
		}
		if err := s.sem.Acquire(waitCtx, 1); err != nil {
			metrics.RecordRejected(string(site))
			return nil, errors.Join(errorvalues.ErrCallInFlight, err)
		}
	default:
		if !s.sem.TryAcquire(1) {
			metrics.RecordRejected(string(site))
			return nil, errorvalues.ErrCallInFlight
		}
	}
	g.transition(site, s, StatePending)
	var once sync.Once
	return func() {
		once.Do(func() {
			g.transition(site, s, StateResolved)
			s.sem.Release(1)
		})
	}, nil
}

func (g *Guard) State(site CallSite) CallState {
	g.mu.Lock()
	defer g.mu.Unlock()
	if s, ok := g.slots[site]; ok {
		return s.state
	}
	return StateIdle
}

func (g *Guard) States() map[CallSite]CallState {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[CallSite]CallState, len(g.slots))
	for site, s := range g.slots {
		out[site] = s.state
	}
	return out
}

func (g *Guard) transition(site CallSite, s *slot, state CallState) {
	g.mu.Lock()
	s.state = state
	listeners := make([]Listener, len(g.listeners))
	copy(listeners, g.listeners)
	g.mu.Unlock()
	for _, l := range listeners {
		l(site, state)
	}
}
