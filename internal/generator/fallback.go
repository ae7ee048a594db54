package generator

import (
	"fmt"
	"math/rand"

	"github.com/kids-planet/backend/internal/models"
)

// Canned content used whenever generation fails. Several of each so the
// fallback path doesn't repeat the same item every time.

var FallbackQuestions = []models.DailyQuestion{
	{
		Question:    "Which animal says 'Moo'?",
		Options:     []string{"Cow", "Cat", "Dog", "Bird"},
		Answer:      "Cow",
		Explanation: "Cows live on farms and say Moo!",
	},
	{
		Question:    "What color is the sun?",
		Options:     []string{"Blue", "Yellow", "Green", "Purple"},
		Answer:      "Yellow",
		Explanation: "The sun looks yellow and bright in the sky!",
	},
	{
		Question:    "How many legs does a spider have?",
		Options:     []string{"2", "4", "6", "8"},
		Answer:      "8",
		Explanation: "Spiders are arachnids and have 8 legs!",
	},
	{
		Question:    "Which planet do we live on?",
		Options:     []string{"Mars", "Earth", "Venus", "Jupiter"},
		Answer:      "Earth",
		Explanation: "We live on planet Earth!",
	},
}

var FallbackStories = []models.Story{
	{
		ID:      "offline-1",
		Title:   "The Brave Little Kite",
		Content: "Once there was a little red kite named Zoom. He was afraid to fly high because the wind was so strong. One day, a little bird asked for help reaching her nest. Zoom took a deep breath and flew higher than ever to help her! He realized being brave is about helping others.",
		Moral:   "Courage comes when we help friends.",
	},
	{
		ID:      "offline-2",
		Title:   "The Sharing Squirrel",
		Content: "Sammy the Squirrel found a giant nut! It was the biggest nut in the forest. He wanted to keep it all to himself. But he saw his friend Bella looked hungry. Sammy split the nut in two. Bella smiled, and the nut tasted twice as good because he shared it.",
		Moral:   "Sharing makes everything better.",
	},
	{
		ID:      "offline-3",
		Title:   "The Star That Overslept",
		Content: "Twinkle was a little star who loved to sleep. One night, he woke up late and the sky was already dark! He rushed to his spot, but he bumped into the Moon. 'Sorry!' said Twinkle. The Moon laughed, 'It's okay, you shine brightest when you are rested.' Twinkle shined all night long.",
		Moral:   "It's okay to make mistakes.",
	},
}

const (
	FallbackRhyme          = "Learning is fun for everyone!"
	FallbackExplanation    = "The Professor is currently reading a very long book. Try asking again in a minute! 📚✨"
	EmptyExplanationAnswer = "That's a super interesting question! Let's explore it together! 🌟"
)

func fallbackQuestion() models.DailyQuestion {
	return FallbackQuestions[rand.Intn(len(FallbackQuestions))]
}

func fallbackStory(topic string) models.Story {
	s := FallbackStories[rand.Intn(len(FallbackStories))]
	if topic != "" {
		s.Title = s.Title + " & " + topic
	}
	return s
}

func fallbackPlanetDetails(planet string) models.PlanetDetails {
	return models.PlanetDetails{
		Fact:        fmt.Sprintf("%s is a fascinating world!", planet),
		Description: "It is one of the amazing objects in our solar system floating in space.",
	}
}
