package progress

import (
	"log"

	"github.com/kids-planet/backend/internal/models"
)

// Notifier is the celebration sink: it is invoked fire-and-forget whenever
// the UI should show a reward overlay (first badge unlock, avatar save,
// challenge win).
type Notifier func(userID int64, event string, detail string)

// LogNotifier is the default sink.
func LogNotifier(userID int64, event string, detail string) {
	log.Printf("[progress] reward for user %d: %s %s", userID, event, detail)
}

// Service is the single writer for UserProgress: every mutation goes
// through here and is persisted before returning.
type Service struct {
	store  *Store
	notify Notifier
}

func NewService(store *Store, notify Notifier) *Service {
	if notify == nil {
		notify = LogNotifier
	}
	return &Service{store: store, notify: notify}
}

func (s *Service) Get(userID int64) models.UserProgress {
	return s.store.Load(userID)
}

func (s *Service) CompleteTask(userID int64, taskID string, stars int) models.UserProgress {
	p := CompleteTask(s.store.Load(userID), taskID, stars)
	s.persist(userID, p)
	return p
}

func (s *Service) UnlockBadge(userID int64, badgeID string) (models.UserProgress, bool) {
	p, unlocked := UnlockBadge(s.store.Load(userID), badgeID)
	if unlocked {
		s.persist(userID, p)
		s.notify(userID, "badge", badgeID)
	}
	return p, unlocked
}

func (s *Service) SelectAvatar(userID int64, avatarID int) (models.UserProgress, bool, string) {
	p, ok, reason := SelectAvatar(s.store.Load(userID), avatarID)
	if ok {
		s.persist(userID, p)
		s.notify(userID, "avatar", "")
	}
	return p, ok, reason
}

func (s *Service) SelectTheme(userID int64, themeID string) (models.UserProgress, bool, string) {
	p, ok, reason := SelectTheme(s.store.Load(userID), themeID)
	if ok {
		s.persist(userID, p)
	}
	return p, ok, reason
}

func (s *Service) ToggleFavorite(userID int64, story models.Story) models.UserProgress {
	p := ToggleFavorite(s.store.Load(userID), story)
	s.persist(userID, p)
	return p
}

func (s *Service) Reset(userID int64) models.UserProgress {
	if err := s.store.Reset(userID); err != nil {
		log.Printf("[progress] reset failed for user %d: %v", userID, err)
	}
	return Default()
}

// persist saves after a mutation. Persistence failures are logged and
// swallowed — a save must never crash the caller.
func (s *Service) persist(userID int64, p models.UserProgress) {
	if err := s.store.Save(userID, p); err != nil {
		log.Printf("[progress] save failed for user %d: %v", userID, err)
	}
}
