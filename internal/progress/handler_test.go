package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kids-planet/backend/internal/models"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewHandler(NewService(NewStore(db), func(int64, string, string) {})), mock
}

func authedRequest(method, path, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	return r.WithContext(context.WithValue(r.Context(), "user_id", int64(1)))
}

func TestHandlerGetUnauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest("GET", "/api/v1/progress", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestHandlerGetReturnsDefaults(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnError(sql.ErrNoRows)

	w := httptest.NewRecorder()
	h.Get(w, authedRequest("GET", "/api/v1/progress", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.ProgressResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Progress.Level != 1 || resp.Progress.ThemeID != "default" {
		t.Errorf("progress = %+v, want defaults", resp.Progress)
	}
}

func TestHandlerCompleteTaskValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing task id", `{"stars":10}`},
		{"zero stars", `{"task_id":"quiz-1","stars":0}`},
		{"too many stars", `{"task_id":"quiz-1","stars":500}`},
		{"bad json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.CompleteTask(w, authedRequest("POST", "/api/v1/progress/tasks", tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestHandlerCompleteTaskAwardsStars(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO user_progress").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	h.CompleteTask(w, authedRequest("POST", "/api/v1/progress/tasks", `{"task_id":"quiz-1","stars":15}`))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.ProgressResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Progress.Stars != 15 {
		t.Errorf("stars = %d, want 15", resp.Progress.Stars)
	}
	if !resp.Reward {
		t.Error("task completion should flag a reward")
	}
}

func TestHandlerAvatarsAnnotatesUnlockState(t *testing.T) {
	h, mock := newTestHandler(t)

	// Level-2 user
	mock.ExpectQuery("SELECT data FROM user_progress").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(`{"stars":120,"level":2}`))

	w := httptest.NewRecorder()
	h.Avatars(w, authedRequest("GET", "/api/v1/catalog/avatars", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Avatars []struct {
			ID       int  `json:"id"`
			Level    int  `json:"level"`
			Unlocked bool `json:"unlocked"`
		} `json:"avatars"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Avatars) == 0 {
		t.Fatal("no avatars returned")
	}
	for _, a := range resp.Avatars {
		want := a.Level <= 2
		if a.Unlocked != want {
			t.Errorf("avatar %d (level %d): unlocked = %v, want %v", a.ID, a.Level, a.Unlocked, want)
		}
	}
}
