package progress

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/kids-planet/backend/internal/catalog"
	"github.com/kids-planet/backend/internal/models"
)

// Store persists one UserProgress snapshot per user as a single JSON blob.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Default returns the first-run progress state.
func Default() models.UserProgress {
	return models.UserProgress{
		Stars:          0,
		CompletedTasks: []string{},
		Level:          1,
		AvatarID:       0,
		ThemeID:        catalog.DefaultThemeID,
		Badges:         []string{},
		Favorites:      []models.Story{},
		Difficulty:     models.DifficultyEasy,
		DailyStats:     models.DailyStats{LastPlayedDate: "", QuestionsAnswered: 0},
	}
}

// Load reads the persisted snapshot for a user. Absent or unreadable rows
// yield the defaults — Load never returns an error to the caller and never
// applies a corrupt value partially.
func (s *Store) Load(userID int64) models.UserProgress {
	var raw string
	err := s.db.QueryRow(
		`SELECT data FROM user_progress WHERE user_id = $1`,
		userID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return Default()
	}
	if err != nil {
		log.Printf("[progress] load failed for user %d: %v", userID, err)
		return Default()
	}
	return Merge(raw)
}

// Merge decodes a stored snapshot on top of the defaults: stored fields
// override field-by-field, dailyStats merges one level deeper so a
// partially-shaped stored value keeps default sub-fields, and an empty
// themeId falls back to the default theme (snapshots saved before themes
// existed). A snapshot that fails to parse is discarded wholesale.
func Merge(raw string) models.UserProgress {
	p := Default()
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("[progress] discarding corrupt snapshot: %v", err)
		return Default()
	}
	if p.ThemeID == "" {
		p.ThemeID = catalog.DefaultThemeID
	}
	return p
}

// Save upserts the full snapshot.
func (s *Store) Save(userID int64, p models.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO user_progress (user_id, data, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = NOW()`,
		userID, string(data),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Reset deletes the snapshot; the next Load starts from the defaults.
func (s *Store) Reset(userID int64) error {
	_, err := s.db.Exec(`DELETE FROM user_progress WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
