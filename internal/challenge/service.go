package challenge

import (
	"context"
	"log"

	"github.com/kids-planet/backend/internal/generator"
	"github.com/kids-planet/backend/internal/models"
	"github.com/kids-planet/backend/internal/progress"
)

type Service struct {
	store  *progress.Store
	gen    *generator.Generator
	clock  Clock
	notify progress.Notifier
}

func NewService(store *progress.Store, gen *generator.Generator, clock Clock, notify progress.Notifier) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	if notify == nil {
		notify = progress.LogNotifier
	}
	return &Service{store: store, gen: gen, clock: clock, notify: notify}
}

// Question fetches a question for the user's current difficulty. It never
// fails; the content provider substitutes a canned question on any error.
func (s *Service) Question(ctx context.Context, userID int64) models.DailyQuestion {
	p := s.store.Load(userID)
	return s.gen.DailyQuestion(ctx, p.Difficulty)
}

// CompleteAttempt applies the full effect of one challenge attempt once
// the outcome is known: difficulty ratchet, daily stats update, and the
// star/badge reward coupling. "Today" is read once so the computation is
// stable across a midnight boundary.
func (s *Service) CompleteAttempt(userID int64, success bool) models.ChallengeCompleteResponse {
	p := s.store.Load(userID)
	today := s.clock.Today()

	p.Difficulty = NextDifficulty(p.Difficulty, success)
	p.DailyStats = ApplyAttempt(p.DailyStats, today)

	starsAwarded := LossStars
	badgeUnlocked := false
	if success {
		starsAwarded = WinStars
		p = progress.GrantStars(p, WinStars)
		p, badgeUnlocked = progress.UnlockBadge(p, WinBadgeID)
	} else {
		p = progress.GrantStars(p, LossStars)
	}

	s.persist(userID, p)

	if success {
		s.notify(userID, "challenge_win", string(p.Difficulty))
	}

	return models.ChallengeCompleteResponse{
		Progress:       p,
		StarsAwarded:   starsAwarded,
		BadgeUnlocked:  badgeUnlocked,
		CompletedToday: CompletedToday(p.DailyStats, today),
	}
}

// Status reports the day's challenge state for the navigation indicator.
func (s *Service) Status(userID int64) models.ChallengeStatusResponse {
	p := s.store.Load(userID)
	today := s.clock.Today()

	answered := p.DailyStats.QuestionsAnswered
	if p.DailyStats.LastPlayedDate != today {
		// Stale date — the counter is semantically zero.
		answered = 0
	}

	return models.ChallengeStatusResponse{
		Difficulty:        p.Difficulty,
		QuestionsAnswered: answered,
		CompletedToday:    CompletedToday(p.DailyStats, today),
	}
}

// persist saves after a mutation; failures are logged, never surfaced.
func (s *Service) persist(userID int64, p models.UserProgress) {
	if err := s.store.Save(userID, p); err != nil {
		log.Printf("[challenge] save failed for user %d: %v", userID, err)
	}
}
