package services

import (
	"testing"

	"github.com/healncure/healncure-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlanMoodLogCreatesWhenNoEntryForToday(t *testing.T) {
	existing := []models.MoodLog{
		{ID: primitive.NewObjectID(), Date: "2025-01-15", Stress: 4, Mood: models.MoodCalm},
		{ID: primitive.NewObjectID(), Date: "2025-01-17", Stress: 5, Mood: models.MoodNeutral},
	}

	action, err := PlanMoodLog(7, models.MoodSad, "2025-01-16", existing)
	require.NoError(t, err)

	assert.Equal(t, ActionCreate, action.Kind)
	assert.Equal(t, "2025-01-16", action.Date)
	assert.Equal(t, 7, action.Stress)
	assert.Equal(t, models.MoodSad, action.Mood)
	assert.True(t, action.ID.IsZero(), "create must not carry an id; the store assigns it")
}

func TestPlanMoodLogCreatesOnEmptySnapshot(t *testing.T) {
	action, err := PlanMoodLog(5, models.MoodNeutral, "2025-03-01", nil)
	require.NoError(t, err)
	assert.Equal(t, ActionCreate, action.Kind)
}

func TestPlanMoodLogMergesIntoTodaysEntry(t *testing.T) {
	existingID := primitive.NewObjectID()
	existing := []models.MoodLog{
		{ID: existingID, Date: "2025-01-15", Stress: 4, Mood: models.MoodCalm},
		{ID: primitive.NewObjectID(), Date: "2025-01-17", Stress: 5, Mood: models.MoodNeutral},
	}

	action, err := PlanMoodLog(9, models.MoodAnxious, "2025-01-15", existing)
	require.NoError(t, err)

	assert.Equal(t, ActionMerge, action.Kind)
	assert.Equal(t, existingID, action.ID, "merge must preserve the existing document's id")
	assert.Equal(t, "2025-01-15", action.Date, "merge must preserve the existing date")
	assert.Equal(t, 9, action.Stress)
	assert.Equal(t, models.MoodAnxious, action.Mood)
}

func TestPlanMoodLogRejectsOutOfRangeStress(t *testing.T) {
	_, err := PlanMoodLog(-1, models.MoodHappy, "2025-01-15", nil)
	assert.Error(t, err)

	_, err = PlanMoodLog(11, models.MoodHappy, "2025-01-15", nil)
	assert.Error(t, err)

	// Both boundaries are valid.
	_, err = PlanMoodLog(0, models.MoodHappy, "2025-01-15", nil)
	assert.NoError(t, err)
	_, err = PlanMoodLog(10, models.MoodHappy, "2025-01-15", nil)
	assert.NoError(t, err)
}

func TestPlanMoodLogRejectsUnknownMood(t *testing.T) {
	_, err := PlanMoodLog(5, models.Mood("ecstatic"), "2025-01-15", nil)
	assert.Error(t, err)
}

func TestPlanMoodLogRejectsMalformedDate(t *testing.T) {
	for _, date := range []string{"", "2025-1-5", "01-15-2025", "2025-01-15T00:00:00Z"} {
		_, err := PlanMoodLog(5, models.MoodCalm, date, nil)
		assert.Error(t, err, "date %q should be rejected", date)
	}
}

func TestClampStress(t *testing.T) {
	assert.Equal(t, 0, ClampStress(-1))
	assert.Equal(t, 0, ClampStress(0))
	assert.Equal(t, 5, ClampStress(5))
	assert.Equal(t, 10, ClampStress(10))
	assert.Equal(t, 10, ClampStress(11))
}

func TestSortForDisplayOrdersByDate(t *testing.T) {
	entries := []models.MoodLog{
		{Date: "2025-01-17", Stress: 5, Mood: models.MoodNeutral},
		{Date: "2025-01-15", Stress: 4, Mood: models.MoodCalm},
		{Date: "2025-01-16", Stress: 7, Mood: models.MoodSad},
	}

	sorted := SortForDisplay(entries)

	require.Len(t, sorted, 3)
	assert.Equal(t, "2025-01-15", sorted[0].Date)
	assert.Equal(t, "2025-01-16", sorted[1].Date)
	assert.Equal(t, "2025-01-17", sorted[2].Date)

	// Input is untouched.
	assert.Equal(t, "2025-01-17", entries[0].Date)
}

func TestSortForDisplayIsIdempotent(t *testing.T) {
	entries := []models.MoodLog{
		{Date: "2025-01-15", Stress: 4, Mood: models.MoodCalm},
		{Date: "2025-01-16", Stress: 7, Mood: models.MoodSad},
		{Date: "2025-01-17", Stress: 5, Mood: models.MoodNeutral},
	}

	once := SortForDisplay(entries)
	twice := SortForDisplay(once)
	assert.Equal(t, once, twice)
}

func TestSortForDisplayIsStableOnEqualDates(t *testing.T) {
	// Duplicate dates shouldn't occur given the one-per-day policy, but a
	// cross-client race can produce them; stable order keeps input order.
	first := models.MoodLog{ID: primitive.NewObjectID(), Date: "2025-01-15", Stress: 2, Mood: models.MoodHappy}
	second := models.MoodLog{ID: primitive.NewObjectID(), Date: "2025-01-15", Stress: 8, Mood: models.MoodSad}

	sorted := SortForDisplay([]models.MoodLog{first, second})

	require.Len(t, sorted, 2)
	assert.Equal(t, first.ID, sorted[0].ID)
	assert.Equal(t, second.ID, sorted[1].ID)
}

func TestSelectSeriesSignedOutAlwaysGetsSeed(t *testing.T) {
	remote := []models.MoodLog{{Date: "2025-01-15", Stress: 4, Mood: models.MoodCalm}}

	assert.Equal(t, SeedSeries(), SelectSeries(false, remote))
	assert.Equal(t, SeedSeries(), SelectSeries(false, nil))
}

func TestSelectSeriesSignedInEmptyIsNotSeed(t *testing.T) {
	series := SelectSeries(true, []models.MoodLog{})
	assert.NotNil(t, series)
	assert.Empty(t, series, "authenticated empty series means 'no data yet', never seed data")

	series = SelectSeries(true, nil)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestSelectSeriesSignedInReturnsRemote(t *testing.T) {
	remote := []models.MoodLog{{Date: "2025-01-15", Stress: 4, Mood: models.MoodCalm}}
	assert.Equal(t, remote, SelectSeries(true, remote))
}

func TestSeedSeriesIsCopied(t *testing.T) {
	a := SeedSeries()
	a[0].Stress = 99
	b := SeedSeries()
	assert.NotEqual(t, 99, b[0].Stress, "callers must not be able to mutate the seed data")
}

// Full submit-day scenario: logging a new middle day lands between its
// neighbors after sorting.
func TestSubmitOnMissingDayInsertsBetween(t *testing.T) {
	existing := []models.MoodLog{
		{ID: primitive.NewObjectID(), Date: "2025-01-15", Stress: 4, Mood: models.MoodCalm},
		{ID: primitive.NewObjectID(), Date: "2025-01-17", Stress: 5, Mood: models.MoodNeutral},
	}

	action, err := PlanMoodLog(7, models.MoodSad, "2025-01-16", existing)
	require.NoError(t, err)
	require.Equal(t, ActionCreate, action.Kind)

	applied := append(existing, models.MoodLog{
		ID:     primitive.NewObjectID(),
		Date:   action.Date,
		Stress: action.Stress,
		Mood:   action.Mood,
	})
	sorted := SortForDisplay(applied)

	require.Len(t, sorted, 3)
	assert.Equal(t, "2025-01-15", sorted[0].Date)
	assert.Equal(t, "2025-01-16", sorted[1].Date)
	assert.Equal(t, 7, sorted[1].Stress)
	assert.Equal(t, models.MoodSad, sorted[1].Mood)
	assert.Equal(t, "2025-01-17", sorted[2].Date)
}

// Re-submitting on an existing day merges in place: same element count, same
// id, new stress/mood.
func TestSubmitOnExistingDayMergesInPlace(t *testing.T) {
	existingID := primitive.NewObjectID()
	existing := []models.MoodLog{
		{ID: existingID, Date: "2025-01-15", Stress: 4, Mood: models.MoodCalm},
		{ID: primitive.NewObjectID(), Date: "2025-01-17", Stress: 5, Mood: models.MoodNeutral},
	}

	action, err := PlanMoodLog(9, models.MoodAnxious, "2025-01-15", existing)
	require.NoError(t, err)
	require.Equal(t, ActionMerge, action.Kind)

	applied := make([]models.MoodLog, len(existing))
	copy(applied, existing)
	for i := range applied {
		if applied[i].ID == action.ID {
			applied[i].Stress = action.Stress
			applied[i].Mood = action.Mood
		}
	}
	sorted := SortForDisplay(applied)

	require.Len(t, sorted, 2)
	assert.Equal(t, existingID, sorted[0].ID)
	assert.Equal(t, 9, sorted[0].Stress)
	assert.Equal(t, models.MoodAnxious, sorted[0].Mood)
	assert.Equal(t, "2025-01-17", sorted[1].Date)
}

// Repeated submissions on the same day keep merging into the same document.
func TestRepeatedSubmissionsStayMerged(t *testing.T) {
	id := primitive.NewObjectID()
	entries := []models.MoodLog{{ID: id, Date: "2025-02-01", Stress: 3, Mood: models.MoodHappy}}

	for _, stress := range []int{5, 8, 2} {
		action, err := PlanMoodLog(stress, models.MoodNeutral, "2025-02-01", entries)
		require.NoError(t, err)
		assert.Equal(t, ActionMerge, action.Kind)
		assert.Equal(t, id, action.ID)
		entries[0].Stress = action.Stress
		entries[0].Mood = action.Mood
	}

	assert.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Stress)
}
