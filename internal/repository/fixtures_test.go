package repository_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/pkg/entity"
)

var (
	joined  = time.Date(2026, time.March, 2, 8, 30, 0, 0, time.UTC)
	lastLog = time.Date(2026, time.March, 9, 7, 0, 0, 0, time.UTC)
)

func testState() (*entity.Profile, *entity.AppData) {
	profile := entity.Profile{
		Name:          "Dana",
		AgeRange:      "20-30",
		FocusArea:     "Study & Academics",
		Struggle:      "Procrastination",
		FeedbackStyle: entity.StyleBrutal,
		JoinedDate:    joined,
	}
	data := entity.AppData{
		Logs: []entity.LogEntry{
			{
				ID:         uuid.MustParse("0195f1a2-0000-7000-8000-000000000001"),
				Date:       joined.Add(24 * time.Hour),
				Focus:      7,
				WastedTime: "5+",
				Wins:       "finished chapter 3",
				Failures:   "scrolled for an hour",
				Mood:       entity.DefaultMood,
				Feedback:   "Stop scrolling.",
			},
		},
		Goals: []entity.Goal{
			{
				ID:        uuid.MustParse("0195f1a2-0000-7000-8000-000000000002"),
				Title:     "Pass the exam",
				SystemStr: "**Daily Protocol**:\n1. Read 20 pages",
				Active:    true,
				Created:   joined,
				System:    entity.GoalSystem{Daily: []string{"Read 20 pages"}},
			},
		},
		LifeScore: 63,
		Streak:    1,
		LastLogin: &lastLog,
	}
	return &profile, &data
}
