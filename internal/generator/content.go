package generator

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/kids-planet/backend/internal/models"
)

// DailyQuestion returns a question for the given difficulty. It never
// fails: on any generation or validation error a canned question is
// substituted.
func (g *Generator) DailyQuestion(ctx context.Context, difficulty models.Difficulty) models.DailyQuestion {
	topic := RandomTopic()

	resp, err := g.llm.Generate(ctx, KidContentSystemPrompt(), BuildQuestionPrompt(topic, difficulty))
	if err != nil {
		log.Printf("[generator] question generation failed, using fallback: %v", err)
		return fallbackQuestion()
	}

	q, err := ParseQuestion(resp.Content)
	if err != nil {
		log.Printf("[generator] question parse failed, using fallback: %v", err)
		return fallbackQuestion()
	}
	return *q
}

// KidStory returns a moral story about the topic, falling back to a
// pre-written story (with the topic appended to its title) on failure.
func (g *Generator) KidStory(ctx context.Context, topic string) models.Story {
	resp, err := g.llm.Generate(ctx, KidContentSystemPrompt(), BuildStoryPrompt(topic))
	if err != nil {
		log.Printf("[generator] story generation failed, using fallback: %v", err)
		return newFallbackStory(topic)
	}

	s, err := ParseStory(resp.Content)
	if err != nil {
		log.Printf("[generator] story parse failed, using fallback: %v", err)
		return newFallbackStory(topic)
	}

	s.ID = uuid.NewString()
	s.IsGenerated = true
	return *s
}

func newFallbackStory(topic string) models.Story {
	s := fallbackStory(topic)
	s.ID = "fallback-" + uuid.NewString()
	return s
}

// Rhyme returns a short nursery rhyme about the topic.
func (g *Generator) Rhyme(ctx context.Context, topic string) string {
	resp, err := g.llm.Generate(ctx, KidContentSystemPrompt(), BuildRhymePrompt(topic))
	if err != nil || resp.Content == "" {
		return FallbackRhyme
	}
	return resp.Content
}

// ExplainTopic answers a child's question in Professor Spark's voice.
func (g *Generator) ExplainTopic(ctx context.Context, query string) string {
	resp, err := g.llm.Generate(ctx, KidContentSystemPrompt(), BuildExplainPrompt(query))
	if err != nil {
		log.Printf("[generator] explanation failed, using fallback: %v", err)
		return FallbackExplanation
	}
	if resp.Content == "" {
		return EmptyExplanationAnswer
	}
	return resp.Content
}

// PlanetDetails returns a fun fact and short description of a planet.
func (g *Generator) PlanetDetails(ctx context.Context, planet string) models.PlanetDetails {
	resp, err := g.llm.Generate(ctx, KidContentSystemPrompt(), BuildPlanetPrompt(planet))
	if err != nil {
		log.Printf("[generator] planet details failed, using fallback: %v", err)
		return fallbackPlanetDetails(planet)
	}

	d, err := ParsePlanetDetails(resp.Content)
	if err != nil {
		log.Printf("[generator] planet details parse failed, using fallback: %v", err)
		return fallbackPlanetDetails(planet)
	}
	return *d
}
