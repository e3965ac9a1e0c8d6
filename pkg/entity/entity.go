package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackStyle string

const (
	StyleSoft   FeedbackStyle = "Soft"
	StyleHonest FeedbackStyle = "Honest"
	StyleBrutal FeedbackStyle = "Brutal"
)

const (
	DefaultLifeScore = 50
	DefaultMood      = "Neutral"
	// Stored in Goal.System.Daily until a plan yields structured actions
	PlaceholderAction = "Loading actions..."
)

var (
	AgeRanges      = []string{"Under 20", "20-30", "30+"}
	FocusAreas     = []string{"Career & Business", "Study & Academics", "Fitness & Health", "Discipline & Mindset"}
	Struggles      = []string{"Procrastination", "Lack of Clarity", "Inconsistency", "Digital Distraction", "Overwhelm"}
	FeedbackStyles = []string{string(StyleSoft), string(StyleHonest), string(StyleBrutal)}
	WastedTimes    = []string{"0", "1", "2", "3", "4", "5+"}
)

type Profile struct {
	Name          string        `json:"name"`
	AgeRange      string        `json:"age"`
	FocusArea     string        `json:"focus"`
	Struggle      string        `json:"struggle"`
	FeedbackStyle FeedbackStyle `json:"style"`
	JoinedDate    time.Time     `json:"joinedDate"`
}

type AppData struct {
	Logs      []LogEntry `json:"logs"`
	Goals     []Goal     `json:"goals"`
	LifeScore int        `json:"lifeScore"`
	Streak    int        `json:"streak"`
	LastLogin *time.Time `json:"lastLogin"`
}

type LogEntry struct {
	ID         uuid.UUID  `json:"id"`
	Date       time.Time  `json:"date"`
	Focus      Focus      `json:"focus"`
	WastedTime WastedTime `json:"wastedTime"`
	Wins       string     `json:"wins"`
	Failures   string     `json:"failures"`
	Mood       string     `json:"mood"`
	Feedback   string     `json:"feedback"`
}

type Goal struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	SystemStr string     `json:"systemStr"`
	Active    bool       `json:"active"`
	Created   time.Time  `json:"created"`
	System    GoalSystem `json:"system"`
}

type GoalSystem struct {
	Daily []string `json:"daily"`
}

// State is the pair of records kept by a state repository
type State struct {
	Profile Profile
	Data    AppData
}

func NewProfile(now time.Time) Profile {
	return Profile{
		FeedbackStyle: StyleHonest,
		JoinedDate:    now,
	}
}

func NewAppData() AppData {
	return AppData{
		Logs:      []LogEntry{},
		Goals:     []Goal{},
		LifeScore: DefaultLifeScore,
	}
}

// Clone returns a copy that shares no slices with d.
func (d AppData) Clone() AppData {
	out := d
	out.Logs = make([]LogEntry, len(d.Logs))
	copy(out.Logs, d.Logs)
	out.Goals = make([]Goal, len(d.Goals))
	for i, g := range d.Goals {
		out.Goals[i] = g.Clone()
	}
	if d.LastLogin != nil {
		t := *d.LastLogin
		out.LastLogin = &t
	}
	return out
}

func (g Goal) Clone() Goal {
	out := g
	if g.System.Daily != nil {
		out.System.Daily = make([]string, len(g.System.Daily))
		copy(out.System.Daily, g.System.Daily)
	}
	return out
}

// FirstActiveGoal returns the newest goal that is still active.
func (d AppData) FirstActiveGoal() (Goal, bool) {
	for _, g := range d.Goals {
		if g.Active {
			return g, true
		}
	}
	return Goal{}, false
}

func (d AppData) GoalIndex(id uuid.UUID) int {
	for i, g := range d.Goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
