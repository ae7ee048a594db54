// Package challenge implements the daily challenge: a one-step difficulty
// ratchet and a per-day attempt counter, both driven from a single
// attempt-completed event but kept as separate reducers.
package challenge

import (
	"time"

	"github.com/kids-planet/backend/internal/models"
)

// DateLayout is the calendar-date string format used in dailyStats.
const DateLayout = "Mon Jan 02 2006"

// CompletedThreshold is how many attempts in one day mark the challenge
// done for that day. Independent of the difficulty ratchet, which moves on
// every attempt.
const CompletedThreshold = 2

// Star bonuses and the badge attempted on a win.
const (
	WinStars   = 20
	LossStars  = 5
	WinBadgeID = "science_whiz"
)

// Clock supplies "today" as a calendar-date string. It must be stable
// within one attempt-completion computation.
type Clock interface {
	Today() string
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Today() string {
	return time.Now().Format(DateLayout)
}

// NextDifficulty applies the one-step ratchet: success moves up one tier
// to the hard ceiling, failure moves down one tier to the easy floor. The
// tier never moves more than one step per attempt.
func NextDifficulty(d models.Difficulty, success bool) models.Difficulty {
	if success {
		switch d {
		case models.DifficultyEasy:
			return models.DifficultyMedium
		case models.DifficultyMedium:
			return models.DifficultyHard
		}
		return d
	}
	switch d {
	case models.DifficultyHard:
		return models.DifficultyMedium
	case models.DifficultyMedium:
		return models.DifficultyEasy
	}
	return d
}

// ApplyAttempt updates the daily stats for one completed attempt,
// regardless of outcome: a new day resets the counter to 1, a same-day
// attempt increments it. LastPlayedDate is always rewritten to today.
func ApplyAttempt(stats models.DailyStats, today string) models.DailyStats {
	if stats.LastPlayedDate != today {
		return models.DailyStats{LastPlayedDate: today, QuestionsAnswered: 1}
	}
	return models.DailyStats{LastPlayedDate: today, QuestionsAnswered: stats.QuestionsAnswered + 1}
}

// CompletedToday reports whether the challenge is done for the day.
func CompletedToday(stats models.DailyStats, today string) bool {
	return stats.LastPlayedDate == today && stats.QuestionsAnswered >= CompletedThreshold
}
