package progress

import (
	"encoding/json"
	"net/http"

	"github.com/kids-planet/backend/internal/catalog"
	"github.com/kids-planet/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// ── Progress ────────────────────────────────────────────

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	writeJSON(w, http.StatusOK, models.ProgressResponse{Progress: h.service.Get(userID)})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	writeJSON(w, http.StatusOK, models.ProgressResponse{Progress: h.service.Reset(userID)})
}

func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.TaskID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "task_id is required"})
		return
	}
	if req.Stars <= 0 || req.Stars > 100 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "stars must be between 1 and 100"})
		return
	}

	p := h.service.CompleteTask(userID, req.TaskID, req.Stars)
	writeJSON(w, http.StatusOK, models.ProgressResponse{Progress: p, Reward: true})
}

func (h *Handler) UnlockBadge(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.UnlockBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.BadgeID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "badge_id is required"})
		return
	}

	p, unlocked := h.service.UnlockBadge(userID, req.BadgeID)
	writeJSON(w, http.StatusOK, models.BadgeUnlockResponse{Progress: p, Unlocked: unlocked})
}

func (h *Handler) SelectAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SelectAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	p, selected, reason := h.service.SelectAvatar(userID, req.AvatarID)
	writeJSON(w, http.StatusOK, models.SelectionResponse{Progress: p, Selected: selected, Reason: reason})
}

func (h *Handler) SelectTheme(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SelectThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	p, selected, reason := h.service.SelectTheme(userID, req.ThemeID)
	writeJSON(w, http.StatusOK, models.SelectionResponse{Progress: p, Selected: selected, Reason: reason})
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Story.Title == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "story title is required"})
		return
	}

	p := h.service.ToggleFavorite(userID, req.Story)
	writeJSON(w, http.StatusOK, models.ProgressResponse{Progress: p})
}

// ── Catalogs ────────────────────────────────────────────

func (h *Handler) Badges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"badges": catalog.Badges})
}

type avatarEntry struct {
	catalog.Avatar
	Unlocked bool `json:"unlocked"`
}

// Avatars lists the avatar catalog annotated with the caller's unlock
// state so a picker can grey out locked entries.
func (h *Handler) Avatars(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	level := h.service.Get(userID).Level
	entries := make([]avatarEntry, len(catalog.Avatars))
	for i, a := range catalog.Avatars {
		entries[i] = avatarEntry{Avatar: a, Unlocked: IsAvatarUnlocked(level, a)}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"avatars": entries})
}

func (h *Handler) Themes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"themes": catalog.Themes})
}

// ── Helpers ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
