package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kids-planet/backend/internal/models"
)

// failingClient always errors, to exercise the fallback path.
type failingClient struct{}

func (failingClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*LLMResponse, error) {
	return nil, errors.New("api unavailable")
}

// staticClient returns a fixed payload regardless of prompt.
type staticClient struct {
	content string
}

func (c staticClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{Content: c.content}, nil
}

func TestDailyQuestionFallback(t *testing.T) {
	gen := NewGeneratorWithClient(failingClient{}, "test")

	q := gen.DailyQuestion(context.Background(), models.DifficultyEasy)

	// The fallback must be a well-formed question
	if q.Question == "" {
		t.Error("fallback question is empty")
	}
	if len(q.Options) != 4 {
		t.Errorf("fallback has %d options, want 4", len(q.Options))
	}
	found := false
	for _, opt := range q.Options {
		if opt == q.Answer {
			found = true
		}
	}
	if !found {
		t.Errorf("fallback answer %q not among options %v", q.Answer, q.Options)
	}
}

func TestDailyQuestionMalformedResponseFallsBack(t *testing.T) {
	gen := NewGeneratorWithClient(staticClient{content: "not json at all"}, "test")

	q := gen.DailyQuestion(context.Background(), models.DifficultyHard)
	if q.Question == "" || len(q.Options) != 4 {
		t.Errorf("expected canned question on parse failure, got %+v", q)
	}
}

func TestKidStoryFallbackKeepsTopic(t *testing.T) {
	gen := NewGeneratorWithClient(failingClient{}, "test")

	s := gen.KidStory(context.Background(), "Dinosaurs")

	if s.Title == "" || s.Content == "" {
		t.Error("fallback story missing title or content")
	}
	if !strings.Contains(s.Title, "Dinosaurs") {
		t.Errorf("fallback title %q should mention the requested topic", s.Title)
	}
	if !strings.HasPrefix(s.ID, "fallback-") {
		t.Errorf("fallback story id = %q, want fallback- prefix", s.ID)
	}
	if s.IsGenerated {
		t.Error("fallback story should not be marked generated")
	}
}

func TestKidStoryGenerated(t *testing.T) {
	payload := `{"title":"The Kind Robot","content":"A robot helped everyone in town.","moral":"Helping feels good."}`
	gen := NewGeneratorWithClient(staticClient{content: payload}, "test")

	s := gen.KidStory(context.Background(), "Robots")

	if s.Title != "The Kind Robot" {
		t.Errorf("title = %q", s.Title)
	}
	if !s.IsGenerated {
		t.Error("generated story should be marked generated")
	}
	if s.ID == "" || strings.HasPrefix(s.ID, "fallback-") {
		t.Errorf("generated story should get a fresh id, got %q", s.ID)
	}
}

func TestRhymeFallback(t *testing.T) {
	gen := NewGeneratorWithClient(failingClient{}, "test")

	rhyme := gen.Rhyme(context.Background(), "Stars")
	if rhyme != FallbackRhyme {
		t.Errorf("rhyme = %q, want fallback", rhyme)
	}
}

func TestExplainTopicEmptyResponse(t *testing.T) {
	gen := NewGeneratorWithClient(staticClient{content: ""}, "test")

	answer := gen.ExplainTopic(context.Background(), "Why is the sky blue?")
	if answer != EmptyExplanationAnswer {
		t.Errorf("answer = %q, want the empty-response message", answer)
	}
}

func TestPlanetDetailsFallbackMentionsPlanet(t *testing.T) {
	gen := NewGeneratorWithClient(failingClient{}, "test")

	d := gen.PlanetDetails(context.Background(), "Saturn")
	if !strings.Contains(d.Fact, "Saturn") {
		t.Errorf("fallback fact %q should mention the planet", d.Fact)
	}
	if d.Description == "" {
		t.Error("fallback description is empty")
	}
}

func TestMockClientShapesParse(t *testing.T) {
	mock := NewMockClient()
	ctx := context.Background()

	resp, err := mock.Generate(ctx, KidContentSystemPrompt(), BuildQuestionPrompt("Animals", models.DifficultyEasy))
	if err != nil {
		t.Fatalf("mock question: %v", err)
	}
	if _, err := ParseQuestion(resp.Content); err != nil {
		t.Errorf("mock question does not parse: %v", err)
	}

	resp, err = mock.Generate(ctx, KidContentSystemPrompt(), BuildStoryPrompt("Sharing"))
	if err != nil {
		t.Fatalf("mock story: %v", err)
	}
	if _, err := ParseStory(resp.Content); err != nil {
		t.Errorf("mock story does not parse: %v", err)
	}

	resp, err = mock.Generate(ctx, KidContentSystemPrompt(), BuildPlanetPrompt("Mars"))
	if err != nil {
		t.Fatalf("mock planet: %v", err)
	}
	if _, err := ParsePlanetDetails(resp.Content); err != nil {
		t.Errorf("mock planet details do not parse: %v", err)
	}
}

func TestRandomTopic(t *testing.T) {
	for i := 0; i < 50; i++ {
		topic := RandomTopic()
		found := false
		for _, candidate := range QuizTopics {
			if candidate == topic {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("RandomTopic returned %q, not in QuizTopics", topic)
		}
	}
}
