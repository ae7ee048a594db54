package generator

import (
	"fmt"
	"math/rand"

	"github.com/kids-planet/backend/internal/models"
)

// QuizTopics keeps daily questions fresh; one is picked at random per
// request.
var QuizTopics = []string{
	"Animals", "Space", "Dinosaurs", "The Ocean", "Weather",
	"Plants", "Insects", "The Human Body", "Colors", "Shapes",
	"Vehicles", "Sports", "Music", "Geography", "Food",
	"Friendship", "Seasons", "Superheroes", "Jobs", "Fairy Tales",
}

func RandomTopic() string {
	return QuizTopics[rand.Intn(len(QuizTopics))]
}

func KidContentSystemPrompt() string {
	return `You are a friendly teacher creating content for children aged 4-7.
Keep everything simple, positive, and safe. Never include violence, fear,
or adult topics. When asked for JSON, return only the JSON object with no
surrounding prose.`
}

func BuildQuestionPrompt(topic string, difficulty models.Difficulty) string {
	return fmt.Sprintf(`Generate a unique, fun multiple-choice question for a 6-year-old about "%s". Difficulty: %s.
Return JSON:
{
  "question": "The question string",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "answer": "The correct option string (must be one of the options)",
  "explanation": "Simple explanation of why it is correct (max 1 sentence)"
}`, topic, difficulty)
}

func BuildStoryPrompt(topic string) string {
	return fmt.Sprintf(`Write a short, engaging moral story for a 5-year-old child about "%s".
Structure:
{
  "title": "Story Title",
  "content": "The full story text...",
  "moral": "The moral of the story"
}
Keep it under 150 words.`, topic)
}

func BuildRhymePrompt(topic string) string {
	return fmt.Sprintf("Write a short, fun, 4-line nursery rhyme about %s for kids. No title.", topic)
}

func BuildPlanetPrompt(planet string) string {
	return fmt.Sprintf(`Tell me about %s (in our solar system) for a 5-year-old.
Return JSON format with keys 'fact' and 'description'.
{ "fact": "One short fun fact (max 10 words)", "description": "A simple 2 sentence description." }`, planet)
}

func BuildExplainPrompt(query string) string {
	return fmt.Sprintf(`You are Professor Spark, a friendly and wise teacher for kids.
Explain this topic simply to a 6-year-old: "%s".

Guidelines:
- Use 2-3 very short sentences.
- Use fun words and emojis.
- If the topic is dangerous or for adults, politely say "That's a big secret for later! Let's talk about space or dinosaurs instead! 🦖".
- Focus on science, nature, history, and life skills.`, query)
}
