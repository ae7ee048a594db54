package challenge

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kids-planet/backend/internal/models"
	"github.com/kids-planet/backend/internal/progress"
)

type fixedClock string

func (c fixedClock) Today() string { return string(c) }

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock, *[]string) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var events []string
	notify := func(userID int64, event, detail string) {
		events = append(events, event)
	}

	svc := NewService(progress.NewStore(db), nil, fixedClock("Mon Jan 01 2024"), notify)
	return svc, mock, &events
}

func TestCompleteAttemptWin(t *testing.T) {
	svc, mock, events := newTestService(t)

	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO user_progress").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp := svc.CompleteAttempt(1, true)

	if resp.StarsAwarded != WinStars {
		t.Errorf("starsAwarded = %d, want %d", resp.StarsAwarded, WinStars)
	}
	if resp.Progress.Stars != WinStars {
		t.Errorf("stars = %d, want %d", resp.Progress.Stars, WinStars)
	}
	if resp.Progress.Difficulty != models.DifficultyMedium {
		t.Errorf("difficulty = %s, want medium after a win from easy", resp.Progress.Difficulty)
	}
	if !resp.BadgeUnlocked {
		t.Error("first win should unlock the badge")
	}
	if len(resp.Progress.Badges) != 1 || resp.Progress.Badges[0] != WinBadgeID {
		t.Errorf("badges = %v, want [%s]", resp.Progress.Badges, WinBadgeID)
	}
	if resp.CompletedToday {
		t.Error("one attempt should not complete the day")
	}
	if resp.Progress.DailyStats.QuestionsAnswered != 1 {
		t.Errorf("questionsAnswered = %d, want 1", resp.Progress.DailyStats.QuestionsAnswered)
	}
	if len(*events) != 1 || (*events)[0] != "challenge_win" {
		t.Errorf("events = %v, want [challenge_win]", *events)
	}
}

func TestCompleteAttemptLoss(t *testing.T) {
	svc, mock, events := newTestService(t)

	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO user_progress").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp := svc.CompleteAttempt(1, false)

	if resp.StarsAwarded != LossStars {
		t.Errorf("starsAwarded = %d, want %d", resp.StarsAwarded, LossStars)
	}
	if resp.Progress.Difficulty != models.DifficultyEasy {
		t.Errorf("difficulty = %s, want easy (floor)", resp.Progress.Difficulty)
	}
	if resp.BadgeUnlocked {
		t.Error("a loss should not unlock the badge")
	}
	if len(*events) != 0 {
		t.Errorf("events = %v, want none on a loss", *events)
	}
}

func TestCompleteAttemptSecondOfDay(t *testing.T) {
	svc, mock, _ := newTestService(t)

	raw := `{"stars":20,"difficulty":"medium","badges":["science_whiz"],"dailyStats":{"lastPlayedDate":"Mon Jan 01 2024","questionsAnswered":1}}`
	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))
	mock.ExpectExec("INSERT INTO user_progress").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp := svc.CompleteAttempt(1, true)

	if !resp.CompletedToday {
		t.Error("second attempt of the day should complete the challenge")
	}
	if resp.Progress.Difficulty != models.DifficultyHard {
		t.Errorf("difficulty = %s, want hard after a win from medium", resp.Progress.Difficulty)
	}
	// Badge already held: no re-unlock
	if resp.BadgeUnlocked {
		t.Error("badge should not re-unlock")
	}
	if len(resp.Progress.Badges) != 1 {
		t.Errorf("badges = %v, want one entry", resp.Progress.Badges)
	}
}

func TestCompleteAttemptNewDayResetsCounter(t *testing.T) {
	svc, mock, _ := newTestService(t)

	raw := `{"dailyStats":{"lastPlayedDate":"Sun Dec 31 2023","questionsAnswered":4}}`
	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))
	mock.ExpectExec("INSERT INTO user_progress").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp := svc.CompleteAttempt(1, false)

	if resp.Progress.DailyStats.QuestionsAnswered != 1 {
		t.Errorf("questionsAnswered = %d, want reset to 1", resp.Progress.DailyStats.QuestionsAnswered)
	}
	if resp.Progress.DailyStats.LastPlayedDate != "Mon Jan 01 2024" {
		t.Errorf("lastPlayedDate = %q", resp.Progress.DailyStats.LastPlayedDate)
	}
}

func TestStatusStaleDate(t *testing.T) {
	svc, mock, _ := newTestService(t)

	raw := `{"difficulty":"hard","dailyStats":{"lastPlayedDate":"Sun Dec 31 2023","questionsAnswered":3}}`
	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))

	status := svc.Status(1)

	if status.QuestionsAnswered != 0 {
		t.Errorf("questionsAnswered = %d, want 0 for a stale date", status.QuestionsAnswered)
	}
	if status.CompletedToday {
		t.Error("stale date should not count as completed")
	}
	if status.Difficulty != models.DifficultyHard {
		t.Errorf("difficulty = %s, want hard", status.Difficulty)
	}
}

func TestStatusSameDay(t *testing.T) {
	svc, mock, _ := newTestService(t)

	raw := `{"dailyStats":{"lastPlayedDate":"Mon Jan 01 2024","questionsAnswered":2}}`
	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))

	status := svc.Status(1)

	if status.QuestionsAnswered != 2 {
		t.Errorf("questionsAnswered = %d, want 2", status.QuestionsAnswered)
	}
	if !status.CompletedToday {
		t.Error("threshold reached today should report completed")
	}
}
