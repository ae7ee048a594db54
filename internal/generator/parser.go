package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kids-planet/backend/internal/models"
)

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseQuestion decodes and validates a generated question: exactly four
// options with the answer present among them.
func ParseQuestion(responseBody string) (*models.DailyQuestion, error) {
	cleaned := stripCodeFences(responseBody)

	var q models.DailyQuestion
	if err := json.Unmarshal([]byte(cleaned), &q); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	var errs []string
	if q.Question == "" {
		errs = append(errs, "empty question")
	}
	if len(q.Options) != 4 {
		errs = append(errs, fmt.Sprintf("expected 4 options, got %d", len(q.Options)))
	}
	answerFound := false
	for _, opt := range q.Options {
		if opt == q.Answer {
			answerFound = true
			break
		}
	}
	if !answerFound {
		errs = append(errs, fmt.Sprintf("answer %q is not one of the options", q.Answer))
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &q, nil
}

// ParseStory decodes and validates a generated story.
func ParseStory(responseBody string) (*models.Story, error) {
	cleaned := stripCodeFences(responseBody)

	var s models.Story
	if err := json.Unmarshal([]byte(cleaned), &s); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	var errs []string
	if s.Title == "" {
		errs = append(errs, "empty title")
	}
	if s.Content == "" {
		errs = append(errs, "empty content")
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &s, nil
}

// ParsePlanetDetails decodes a planet fact/description pair.
func ParsePlanetDetails(responseBody string) (*models.PlanetDetails, error) {
	cleaned := stripCodeFences(responseBody)

	var d models.PlanetDetails
	if err := json.Unmarshal([]byte(cleaned), &d); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if d.Fact == "" || d.Description == "" {
		return nil, &ValidationError{Errors: []string{"missing fact or description"}}
	}

	return &d, nil
}

// stripCodeFences removes markdown code fences the model sometimes wraps
// JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
