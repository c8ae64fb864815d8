// Package analytics derives streaks and completion rates from a habit's
// ledger. Everything here is pure: no I/O, inputs are never modified.
package analytics

import (
	"math"
	"slices"
	"time"

	"github.com/limbo/habitual/pkg/entity"
)

// Compute builds statistics for one habit as of today.
//
// The current streak walks backward from today: a completion extends it,
// a skip or an empty day ends it. So a habit not yet completed today has
// a current streak of 0.
func Compute(completions []entity.Completion, skips []entity.Skip, today time.Time) entity.HabitStats {
	stats := entity.HabitStats{
		TotalCompletions: len(completions),
		TotalSkips:       len(skips),
	}
	if len(completions) > 0 {
		stats.ID = completions[0].HabitID
	} else if len(skips) > 0 {
		stats.ID = skips[0].HabitID
	}

	completed := make(map[time.Time]struct{}, len(completions))
	for _, c := range completions {
		if c.Duration != nil {
			stats.TotalTime += *c.Duration
		}
		completed[Day(c.Date)] = struct{}{}
	}

	stats.CompletionRate = CompletionRate(stats.TotalCompletions, stats.TotalSkips)
	stats.CurrentStreak = currentStreak(completed, Day(today))

	days := make([]time.Time, 0, len(completed))
	for d := range completed {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	stats.LongestStreak = longestStreak(days)
	if len(days) > 0 {
		last := days[len(days)-1]
		stats.LastCompletion = &last
	}
	return stats
}

// CompletionRate is completions / (completions + skips) in percent,
// rounded to 2 decimals. 0 when nothing was tracked.
func CompletionRate(completions, skips int) float64 {
	total := completions + skips
	if total == 0 {
		return 0
	}
	return round2(float64(completions) / float64(total) * 100)
}

// A skipped day and an untracked day both end the walk. If legacy data
// holds a completion and a skip for the same day, the completion counts.
func currentStreak(completed map[time.Time]struct{}, today time.Time) int {
	streak := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		if _, ok := completed[day]; !ok {
			return streak
		}
		streak++
	}
}

// days must be sorted ascending and free of duplicates.
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// Aggregate sums per-habit statistics into user-level ones. Habits with
// neither completions nor skips don't take part in the average rate.
func Aggregate(stats []entity.HabitStats) entity.UserStats {
	res := entity.UserStats{
		TotalHabits: len(stats),
		Habits:      stats,
	}
	var rateSum float64
	rated := 0
	for _, s := range stats {
		res.TotalCompletions += s.TotalCompletions
		res.TotalSkips += s.TotalSkips
		res.TotalTime += s.TotalTime
		res.BestCurrentStreak = max(res.BestCurrentStreak, s.CurrentStreak)
		res.BestLongestStreak = max(res.BestLongestStreak, s.LongestStreak)
		if s.TotalCompletions+s.TotalSkips > 0 {
			rateSum += s.CompletionRate
			rated++
		}
	}
	if rated > 0 {
		res.AverageCompletionRate = round2(rateSum / float64(rated))
	}
	if res.Habits == nil {
		res.Habits = []entity.HabitStats{}
	}
	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
