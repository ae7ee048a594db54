// Package content exposes the generated-text endpoints: stories, rhymes,
// topic explanations, and planet facts. The generator absorbs provider
// failures, so these handlers always return well-formed content.
package content

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/kids-planet/backend/internal/generator"
	"github.com/kids-planet/backend/internal/models"
)

type Handler struct {
	gen *generator.Generator
}

func NewHandler(gen *generator.Generator) *Handler {
	return &Handler{gen: gen}
}

func (h *Handler) Story(w http.ResponseWriter, r *http.Request) {
	var req models.StoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic is required"})
		return
	}

	writeJSON(w, http.StatusOK, h.gen.KidStory(r.Context(), req.Topic))
}

func (h *Handler) Rhyme(w http.ResponseWriter, r *http.Request) {
	var req models.RhymeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "topic is required"})
		return
	}

	writeJSON(w, http.StatusOK, models.RhymeResponse{Rhyme: h.gen.Rhyme(r.Context(), req.Topic)})
}

func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	var req models.ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "query is required"})
		return
	}

	writeJSON(w, http.StatusOK, models.ExplainResponse{Explanation: h.gen.ExplainTopic(r.Context(), req.Query)})
}

func (h *Handler) Planet(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(mux.Vars(r)["name"])
	if name == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "planet name is required"})
		return
	}

	writeJSON(w, http.StatusOK, h.gen.PlanetDetails(r.Context(), name))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
