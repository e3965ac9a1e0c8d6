package service

import (
	"math"

	"github.com/limbo/lifeos/pkg/entity"
)

const (
	scoreWindow      = 7
	baseScore        = 30
	maxConsistency   = 30
	pointsPerDay     = 5
	maxFocusPoints   = 40
	inactivePenalty  = 2
	optimalThreshold = 70
)

// ComputeLifeScore derives the 0-100 life score from the last seven logs,
// the streak and the number of abandoned goals. No logs means 50.
func ComputeLifeScore(logs []entity.LogEntry, goals []entity.Goal, streak int) int {
	if len(logs) == 0 {
		return entity.DefaultLifeScore
	}
	window := logs
	if len(window) > scoreWindow {
		window = window[len(window)-scoreWindow:]
	}
	var sum float64
	for _, l := range window {
		sum += float64(l.Focus)
	}
	avgFocus := sum / float64(len(window))

	consistency := min(streak*pointsPerDay, maxConsistency)
	focusScore := avgFocus / 10 * maxFocusPoints
	penalty := 0
	for _, g := range goals {
		if !g.Active {
			penalty += inactivePenalty
		}
	}

	raw := baseScore + float64(consistency) + focusScore - float64(penalty)
	// half-up, so 62.5 gives 63 and -0.5 gives 0
	rounded := math.Floor(raw + 0.5)
	return int(math.Max(0, math.Min(100, rounded)))
}

func ScoreBand(score int) string {
	if score > optimalThreshold {
		return "OPTIMAL"
	}
	return "DRIFTING"
}
