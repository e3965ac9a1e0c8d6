package service_test

import (
	"testing"

	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func logsWithFocus(focus ...int) []entity.LogEntry {
	logs := make([]entity.LogEntry, 0, len(focus))
	for _, f := range focus {
		logs = append(logs, entity.LogEntry{Focus: entity.Focus(f)})
	}
	return logs
}

func goalsWithInactive(active, inactive int) []entity.Goal {
	var goals []entity.Goal
	for range active {
		goals = append(goals, entity.Goal{Active: true})
	}
	for range inactive {
		goals = append(goals, entity.Goal{Active: false})
	}
	return goals
}

func TestComputeLifeScore(t *testing.T) {
	t.Run("no logs is neutral", func(t *testing.T) {
		assert.Equal(t, 50, service.ComputeLifeScore(nil, nil, 0))
		assert.Equal(t, 50, service.ComputeLifeScore([]entity.LogEntry{}, goalsWithInactive(0, 10), 30))
	})

	t.Run("formula", func(t *testing.T) {
		// 30 + 10 + 5/10*40
		assert.Equal(t, 60, service.ComputeLifeScore(logsWithFocus(5), nil, 2))
		// 30 + 0 + 8.5/10*40
		assert.Equal(t, 64, service.ComputeLifeScore(logsWithFocus(8, 9), nil, 0))
	})

	t.Run("consistency is capped at 30", func(t *testing.T) {
		logs := logsWithFocus(5)
		assert.Equal(t, 75, service.ComputeLifeScore(logs, nil, 5))
		for _, streak := range []int{6, 7, 20, 100} {
			assert.Equal(t, 80, service.ComputeLifeScore(logs, nil, streak))
		}
	})

	t.Run("each inactive goal costs two points", func(t *testing.T) {
		logs := logsWithFocus(5)
		prev := service.ComputeLifeScore(logs, goalsWithInactive(3, 0), 2)
		for inactive := 1; inactive <= 5; inactive++ {
			score := service.ComputeLifeScore(logs, goalsWithInactive(3, inactive), 2)
			assert.Equal(t, prev-2, score)
			prev = score
		}
	})

	t.Run("only the last seven logs count", func(t *testing.T) {
		logs := logsWithFocus(10, 5, 5, 5, 5, 5, 5, 5)
		assert.Equal(t, 50, service.ComputeLifeScore(logs, nil, 0))
	})

	t.Run("rounds to nearest", func(t *testing.T) {
		// 30 + 2/3/10*40 = 32.67
		assert.Equal(t, 33, service.ComputeLifeScore(logsWithFocus(1, 1, 0), nil, 0))
		// 31.33
		assert.Equal(t, 31, service.ComputeLifeScore(logsWithFocus(1, 0, 0), nil, 0))
	})

	t.Run("always within bounds", func(t *testing.T) {
		assert.Equal(t, 100, service.ComputeLifeScore(logsWithFocus(1000), nil, 100))
		assert.Equal(t, 0, service.ComputeLifeScore(logsWithFocus(-100), nil, 0))
		assert.Equal(t, 0, service.ComputeLifeScore(logsWithFocus(0), goalsWithInactive(0, 50), 0))
		for _, f := range []int{-5, 0, 1, 5, 10, 11, 99} {
			score := service.ComputeLifeScore(logsWithFocus(f, f, f), goalsWithInactive(1, 3), 4)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	})

	t.Run("non-numeric focus counts as zero", func(t *testing.T) {
		logs := []entity.LogEntry{{Focus: entity.ParseFocus("great")}}
		assert.Equal(t, 30, service.ComputeLifeScore(logs, nil, 0))
	})
}

func TestScoreBand(t *testing.T) {
	assert.Equal(t, "DRIFTING", service.ScoreBand(50))
	assert.Equal(t, "DRIFTING", service.ScoreBand(70))
	assert.Equal(t, "OPTIMAL", service.ScoreBand(71))
}

func TestNextStreak(t *testing.T) {
	assert.Equal(t, 5, service.NextStreak(4, 6))
	assert.Equal(t, 0, service.NextStreak(4, 5))
	assert.Equal(t, 1, service.NextStreak(0, 10))
	assert.Equal(t, 0, service.NextStreak(12, 1))
}
