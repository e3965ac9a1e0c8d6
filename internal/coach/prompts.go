package coach

import (
	"fmt"
	"strings"
	"time"

	"github.com/limbo/lifeos/pkg/entity"
)

const (
	BriefingPrompt  = "Generate Morning Protocol"
	AnalysisPrompt  = "Analyze my day."
	PatternsPrompt  = "Analyze Patterns"
	DefaultMainGoal = "General Self-Improvement"
	MinPatternLogs  = 3
)

// Tone picks the coach persona for the user's feedback style.
func Tone(style entity.FeedbackStyle) string {
	switch style {
	case entity.StyleBrutal:
		return "You are a brutal, ruthless performance coach. No empathy. Just facts."
	case entity.StyleSoft:
		return "You are a calm, supportive mentor. Encourage progress and stay gentle, but stay truthful."
	default:
		return "You are a stoic, honest mentor."
	}
}

func BriefingContext(p entity.Profile, mainGoal string, lifeScore int) string {
	if strings.TrimSpace(mainGoal) == "" {
		mainGoal = DefaultMainGoal
	}
	return fmt.Sprintf(`Act as a high-performance coach. User: %s.
Current Focus: %s.
Main Goal: %s.
Recent Life Score: %d/100.
Tone: %s.

Generate a concise "Morning Protocol" for today consisting of:
1. THE MISSION: One single absolute priority for today.
2. THE ENEMY: One specific distraction to watch out for based on their struggle (%s).
3. THE MINDSET: A short, punchy thought to hold.

Format with bold headers. Keep it short.`,
		p.Name, p.FocusArea, mainGoal, lifeScore, p.FeedbackStyle, p.Struggle)
}

func DecompositionContext(objective string) string {
	return fmt.Sprintf(`You are LifeOS. The user wants to achieve: %q.
Break this down into a SYSTEM, not a goal.
Format your response exactly like this:

**Core Philosophy**: One sentence principle.
**Daily Protocol**: 3 specific, small actionable items.
**Non-Negotiables**: 1 rule they must never break.
**Reality Check**: A brutal but helpful sentence about why they might fail.

Keep it short, matte, minimal. No fluff.`, objective)
}

func AnalysisContext(p entity.Profile, e entity.LogEntry) string {
	return fmt.Sprintf(`%s
User Profile: %s, Focus: %s, Struggle: %s.

The user just logged their day:
Focus Level: %d/10
Hours Wasted: %s
Wins: %s
Failures: %s

Analyze this.
1. Detect if they are making excuses based on their "Struggle".
2. If Focus is low, call them out.
3. If they did well, give a brief nod of approval but tell them to stay consistent.

Keep response under 100 words.`,
		Tone(p.FeedbackStyle), p.Name, p.FocusArea, p.Struggle,
		e.Focus, e.WastedTime, e.Wins, e.Failures)
}

func PatternsContext(logs []entity.LogEntry) string {
	var b strings.Builder
	b.WriteString(`Analyze these user logs for hidden patterns.
Look for correlations between days, moods, and failures.
Point out ONE specific recurring issue and ONE strength.
Be highly analytical, like a data scientist.
Logs:
`)
	for i, l := range logs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Date: %s, Focus: %d, Mood: %s, Wins: %s, Failures: %s",
			l.Date.Format("Mon Jan 02 2006"), l.Focus, l.Mood, l.Wins, l.Failures)
	}
	return b.String()
}

// Greeting names the briefing after the time of day.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Morning Protocol"
	case h < 18:
		return "Afternoon Update"
	default:
		return "Evening Review"
	}
}
