package content

import (
	"time"

	"github.com/healncure/healncure-backend/internal/models"
)

var quotes = []models.Quote{
	{ID: 1, Text: "The sun is a daily reminder that we too can rise again from the darkness, that we too can shine our own light.", Author: "S. Ajna"},
	{ID: 2, Text: "You are not a drop in the ocean. You are the entire ocean in a drop.", Author: "Rumi"},
	{ID: 3, Text: "The best way out is always through.", Author: "Robert Frost"},
	{ID: 4, Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle"},
	{ID: 5, Text: "Your present circumstances don't determine where you can go; they merely determine where you start.", Author: "Nido Qubein"},
	{ID: 6, Text: "Just when the caterpillar thought the world was over, it became a butterfly.", Author: "Proverb"},
	{ID: 7, Text: "Happiness can be found, even in the darkest of times, if one only remembers to turn on the light.", Author: "Albus Dumbledore"},
	{ID: 8, Text: "You have to be at your strongest when you’re feeling at your weakest.", Author: "Unknown"},
	{ID: 9, Text: "This is a wonderful day. I've never seen this one before.", Author: "Maya Angelou"},
	{ID: 10, Text: "What lies behind us and what lies before us are tiny matters compared to what lies within us.", Author: "Ralph Waldo Emerson"},
	{ID: 11, Text: "Breathe. You're going to be okay. You've gotten through all of your worst days.", Author: "Unknown"},
	{ID: 12, Text: "The oak fought the wind and was broken, the willow bent when it must and survived.", Author: "Robert Jordan"},
	{ID: 13, Text: "Even the darkest night will end and the sun will rise.", Author: "Victor Hugo"},
	{ID: 14, Text: "Sometimes the most important thing in a whole day is the rest we take between two deep breaths.", Author: "Etty Hillesum"},
	{ID: 15, Text: "What you think, you become. What you feel, you attract. What you imagine, you create.", Author: "Buddha"},
	{ID: 16, Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
	{ID: 17, Text: "You are stronger than you know. More capable than you ever dreamed. And you are loved more than you could possibly imagine.", Author: "Unknown"},
	{ID: 18, Text: "Feel the feeling but don't become the emotion. Witness it. Allow it. Release it.", Author: "Crystal Andrus"},
	{ID: 19, Text: "The pain you feel today is the strength you feel tomorrow.", Author: "Unknown"},
	{ID: 20, Text: "Every day may not be good, but there is something good in every day.", Author: "Alice Morse Earle"},
}

// Quotes returns the full quote pool.
func Quotes() []models.Quote {
	out := make([]models.Quote, len(quotes))
	copy(out, quotes)
	return out
}

// QuoteOfTheDay rotates through the pool deterministically, one quote per
// calendar day: every client sees the same quote on the same day.
func QuoteOfTheDay(t time.Time) models.Quote {
	days := int(t.Unix() / 86400)
	if days < 0 {
		days = -days
	}
	return quotes[days%len(quotes)]
}
