package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/healncure/healncure-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MinStress and MaxStress bound the stress slider value.
	MinStress = 0
	MaxStress = 10
	// MoodLogDateLayout is the fixed-width calendar-day key. Lexicographic
	// order on this layout is chronological order.
	MoodLogDateLayout = "2006-01-02"
)

// LogActionKind says whether a submission creates today's document or merges
// into the existing one.
type LogActionKind string

const (
	ActionCreate LogActionKind = "create"
	ActionMerge  LogActionKind = "merge"
)

// LogAction is the persistence decision for one submitted mood log.
// For a merge, ID and Date are taken from the existing entry and only
// Stress and Mood are overwritten.
type LogAction struct {
	Kind   LogActionKind      `json:"kind"`
	ID     primitive.ObjectID `json:"id,omitempty"`
	Date   string             `json:"date"`
	Stress int                `json:"stress"`
	Mood   models.Mood        `json:"mood"`
}

// ClampStress clamps n to [MinStress, MaxStress]. The input control owns this
// boundary; handlers call it before planning so an out-of-range value never
// reaches the engine.
func ClampStress(n int) int {
	if n < MinStress {
		return MinStress
	}
	if n > MaxStress {
		return MaxStress
	}
	return n
}

// PlanMoodLog decides create-vs-merge for a (stress, mood) submission on the
// given day, based on the most recently known snapshot of the user's entries.
//
// The decision is a client-observed upsert: two writers that both see "no
// entry for today" before either write lands can still produce two documents
// for that day. That race resolves last-write-wins at the store and is
// accepted, not fixed here.
func PlanMoodLog(stress int, mood models.Mood, today string, existing []models.MoodLog) (LogAction, error) {
	if stress < MinStress || stress > MaxStress {
		return LogAction{}, fmt.Errorf("stress %d out of range [%d, %d]", stress, MinStress, MaxStress)
	}
	if !models.ValidMood(mood) {
		return LogAction{}, fmt.Errorf("invalid mood %q", mood)
	}
	if _, err := time.Parse(MoodLogDateLayout, today); err != nil {
		return LogAction{}, fmt.Errorf("invalid date %q: %w", today, err)
	}

	for _, entry := range existing {
		if entry.Date == today {
			return LogAction{
				Kind:   ActionMerge,
				ID:     entry.ID,
				Date:   entry.Date,
				Stress: stress,
				Mood:   mood,
			}, nil
		}
	}

	return LogAction{
		Kind:   ActionCreate,
		Date:   today,
		Stress: stress,
		Mood:   mood,
	}, nil
}

// SortForDisplay returns entries ordered ascending by date. The sort is
// stable, so ties (which the one-per-day policy should prevent) keep their
// input order, and sorting an already-sorted series is a no-op.
func SortForDisplay(entries []models.MoodLog) []models.MoodLog {
	out := make([]models.MoodLog, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// SelectSeries picks what the progress chart renders. Signed-out visitors get
// the fixed seed series; signed-in users always get their own data, even when
// it's empty — an empty authenticated series means "no data yet", never a
// silent fall back to seed data.
func SelectSeries(authenticated bool, remote []models.MoodLog) []models.MoodLog {
	if !authenticated {
		return SeedSeries()
	}
	if remote == nil {
		return []models.MoodLog{}
	}
	return remote
}

// SeedSeries returns the illustrative week shown to signed-out visitors.
// It is read-only demo data and is never merged with real entries.
func SeedSeries() []models.MoodLog {
	return []models.MoodLog{
		{Date: "2024-07-15", Stress: 4, Mood: models.MoodCalm},
		{Date: "2024-07-16", Stress: 6, Mood: models.MoodAnxious},
		{Date: "2024-07-17", Stress: 5, Mood: models.MoodNeutral},
		{Date: "2024-07-18", Stress: 7, Mood: models.MoodSad},
		{Date: "2024-07-19", Stress: 3, Mood: models.MoodHappy},
		{Date: "2024-07-20", Stress: 2, Mood: models.MoodCalm},
		{Date: "2024-07-21", Stress: 5, Mood: models.MoodNeutral},
	}
}
