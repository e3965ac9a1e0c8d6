package service

import "github.com/limbo/lifeos/pkg/entity"

const streakFocusThreshold = 5

// NextStreak depends on the latest log only: one focus of 5 or less resets any run.
func NextStreak(prev int, focus entity.Focus) int {
	if int(focus) > streakFocusThreshold {
		return prev + 1
	}
	return 0
}
