package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSlugsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Categories() {
		assert.False(t, seen[c.Slug], "duplicate slug %q", c.Slug)
		seen[c.Slug] = true
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	all := Categories()
	require.Len(t, all, 10)

	for _, c := range all {
		assert.NotEmpty(t, c.Slug)
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Details.Causes, "%s has no causes", c.Slug)
		assert.NotEmpty(t, c.Details.Symptoms, "%s has no symptoms", c.Slug)
		assert.NotEmpty(t, c.Details.Effects, "%s has no effects", c.Slug)
	}
}

func TestCategoryBySlug(t *testing.T) {
	c, ok := CategoryBySlug("anxiety")
	require.True(t, ok)
	assert.Equal(t, "Anxiety", c.Title)

	_, ok = CategoryBySlug("does-not-exist")
	assert.False(t, ok)
}

func TestCategoriesReturnsACopy(t *testing.T) {
	a := Categories()
	a[0].Title = "mutated"
	b := Categories()
	assert.NotEqual(t, "mutated", b[0].Title)
}

func TestQuotePoolIsComplete(t *testing.T) {
	all := Quotes()
	require.Len(t, all, 20)
	for _, q := range all {
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Author)
	}
}

func TestQuoteOfTheDayIsDeterministicPerDay(t *testing.T) {
	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, QuoteOfTheDay(morning), QuoteOfTheDay(evening))
}

func TestQuoteOfTheDayRotatesDaily(t *testing.T) {
	day := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	assert.NotEqual(t, QuoteOfTheDay(day).ID, QuoteOfTheDay(next).ID)
}

func TestQuoteOfTheDayCyclesThroughWholePool(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	seen := make(map[int]bool)
	for i := 0; i < len(Quotes()); i++ {
		seen[QuoteOfTheDay(start.AddDate(0, 0, i)).ID] = true
	}
	assert.Len(t, seen, len(Quotes()))
}
