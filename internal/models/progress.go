package models

// ── Difficulty ───────────────────────────────────────────

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// ── Core Progress Structs ────────────────────────────────

// DailyStats tracks challenge activity within a single calendar day.
// QuestionsAnswered is only meaningful while LastPlayedDate is today;
// a stale date makes the counter semantically zero.
type DailyStats struct {
	LastPlayedDate    string `json:"lastPlayedDate"`
	QuestionsAnswered int    `json:"questionsAnswered"`
}

type Story struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Moral       string `json:"moral"`
	IsGenerated bool   `json:"isGenerated,omitempty"`
}

// UserProgress is the persisted per-user snapshot. Field names match the
// stored JSON blob; Level is always derived from Stars and never written
// independently.
type UserProgress struct {
	Stars          int        `json:"stars"`
	CompletedTasks []string   `json:"completedTasks"`
	Level          int        `json:"level"`
	AvatarID       int        `json:"avatarId"`
	ThemeID        string     `json:"themeId"`
	Badges         []string   `json:"badges"`
	Favorites      []Story    `json:"favorites"`
	Difficulty     Difficulty `json:"difficulty"`
	DailyStats     DailyStats `json:"dailyStats"`
}

// ── Request Types ────────────────────────────────────────

type CompleteTaskRequest struct {
	TaskID string `json:"task_id"`
	Stars  int    `json:"stars"`
}

type UnlockBadgeRequest struct {
	BadgeID string `json:"badge_id"`
}

type SelectAvatarRequest struct {
	AvatarID int `json:"avatar_id"`
}

type SelectThemeRequest struct {
	ThemeID string `json:"theme_id"`
}

type ToggleFavoriteRequest struct {
	Story Story `json:"story"`
}

type ChallengeCompleteRequest struct {
	Success bool `json:"success"`
}

type StoryRequest struct {
	Topic string `json:"topic"`
}

type RhymeRequest struct {
	Topic string `json:"topic"`
}

type ExplainRequest struct {
	Query string `json:"query"`
}

// ── Response Types ───────────────────────────────────────

type ProgressResponse struct {
	Progress UserProgress `json:"progress"`
	Reward   bool         `json:"reward,omitempty"`
}

type BadgeUnlockResponse struct {
	Progress UserProgress `json:"progress"`
	Unlocked bool         `json:"unlocked"`
}

// SelectionResponse reports an avatar/theme selection attempt. A rejected
// selection is advisory feedback, not an error: Selected=false with a
// Reason of "locked" or "unknown".
type SelectionResponse struct {
	Progress UserProgress `json:"progress"`
	Selected bool         `json:"selected"`
	Reason   string       `json:"reason,omitempty"`
}

type ChallengeCompleteResponse struct {
	Progress       UserProgress `json:"progress"`
	StarsAwarded   int          `json:"stars_awarded"`
	BadgeUnlocked  bool         `json:"badge_unlocked"`
	CompletedToday bool         `json:"completed_today"`
}

type ChallengeStatusResponse struct {
	Difficulty        Difficulty `json:"difficulty"`
	QuestionsAnswered int        `json:"questions_answered"`
	CompletedToday    bool       `json:"completed_today"`
}

// ── Generated Content Shapes ─────────────────────────────

// DailyQuestion is the well-formed shape the content provider always
// returns: exactly four options, Answer equal to one of them.
type DailyQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

type PlanetDetails struct {
	Fact        string `json:"fact"`
	Description string `json:"description"`
}

type RhymeResponse struct {
	Rhyme string `json:"rhyme"`
}

type ExplainResponse struct {
	Explanation string `json:"explanation"`
}
