// Package report aggregates a window of mood entries into the weekly
// wellness summary consumed by report renderers.
package report

import (
	"sort"
	"time"
)

// defaultScore stands in for entries missing a mood score.
const defaultScore = 5

// plantLevels orders growth stages from newest to most established.
var plantLevels = []string{"seed", "sprout", "leaf", "flower", "tree"}

// Entry is one recorded mood check-in.
type Entry struct {
	MoodLabel string    `json:"moodLabel"`
	MoodScore int       `json:"moodScore"`
	CreatedAt time.Time `json:"createdAt"`
}

// Completed is a finished wellness activity.
type Completed struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
}

// Streak carries check-in streak state through to the summary.
type Streak struct {
	Current    int    `json:"current"`
	PlantLevel string `json:"plantLevel"`
}

// Summary is the aggregate a renderer turns into the weekly report.
type Summary struct {
	EntryCount     int                `json:"entryCount"`
	AverageScore   float64            `json:"averageScore"`
	Distribution   map[string]float64 `json:"distribution"`
	DominantMood   string             `json:"dominantMood"`
	BestDay        string             `json:"bestDay,omitempty"`
	WorstDay       string             `json:"worstDay,omitempty"`
	CompletedCount int                `json:"completedCount"`
	Insight        string             `json:"insight"`
	StreakInsight  string             `json:"streakInsight"`
	Streak         Streak             `json:"streak"`
	GrowthPercent  int                `json:"growthPercent"`
}

// Summarize aggregates mood entries and completed activities for a report
// window. An empty window yields a zero-count summary with the default
// insight text.
func Summarize(entries []Entry, completed []Completed, streak Streak) Summary {
	s := Summary{
		EntryCount:     len(entries),
		Distribution:   map[string]float64{},
		CompletedCount: len(completed),
		Streak:         streak,
		GrowthPercent:  growthPercent(streak.PlantLevel),
		StreakInsight:  streakInsight(streak.Current),
	}

	if len(entries) == 0 {
		s.Insight = "Your emotions show normal fluctuations throughout the week. Remember that ups and downs are a natural part of the human experience."
		return s
	}

	counts := map[string]int{}
	total := 0
	for _, e := range entries {
		score := e.MoodScore
		if score == 0 {
			score = defaultScore
		}
		total += score

		label := e.MoodLabel
		if label == "" {
			label = "neutral"
		}
		counts[label]++
	}
	s.AverageScore = float64(total) / float64(len(entries))

	for label, count := range counts {
		s.Distribution[label] = float64(count) / float64(len(entries)) * 100
	}
	s.DominantMood = dominantMood(counts)
	s.Insight = insightFor(s.DominantMood)
	s.BestDay, s.WorstDay = extremeDays(entries)

	return s
}

// dominantMood picks the most frequent label, breaking count ties
// alphabetically so the result is stable.
func dominantMood(counts map[string]int) string {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := ""
	bestCount := 0
	for _, label := range labels {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// extremeDays returns the dates of the highest and lowest scoring entries.
func extremeDays(entries []Entry) (best, worst string) {
	bestScore, worstScore := -1, 11
	for _, e := range entries {
		score := e.MoodScore
		if score == 0 {
			score = defaultScore
		}
		day := e.CreatedAt.Format("2006-01-02")
		if score > bestScore {
			bestScore = score
			best = day
		}
		if score < worstScore {
			worstScore = score
			worst = day
		}
	}
	return best, worst
}

func insightFor(mood string) string {
	switch mood {
	case "joyful", "happy":
		return "You've had a predominantly positive week! Continue practices that bring you joy."
	case "anxious", "stressed":
		return "You've experienced heightened stress this week. Consider adding more relaxation practices to your routine."
	case "sad", "depressed":
		return "You've faced some challenging emotions this week. Remember to be gentle with yourself and reach out for support if needed."
	default:
		return "Your emotions show normal fluctuations throughout the week. Remember that ups and downs are a natural part of the human experience."
	}
}

func streakInsight(current int) string {
	switch {
	case current > 7:
		return "Impressive streak! Your consistency shows your commitment to mental wellness."
	case current < 3:
		return "Getting started is often the hardest part. Small, consistent steps lead to meaningful change."
	default:
		return "Regular check-ins help build self-awareness and emotional intelligence."
	}
}

// growthPercent converts a plant level into completion of the growth track.
func growthPercent(level string) int {
	for i, l := range plantLevels {
		if l == level {
			return (i + 1) * 100 / len(plantLevels)
		}
	}
	return 0
}
