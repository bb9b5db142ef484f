package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood is one of the fixed moods a user can log. No free text.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
	MoodAnxious Mood = "anxious"
	MoodSad     Mood = "sad"
)

// Moods lists every valid mood, in display order.
var Moods = []Mood{MoodHappy, MoodCalm, MoodNeutral, MoodAnxious, MoodSad}

// ValidMood reports whether m is a member of the fixed mood set.
func ValidMood(m Mood) bool {
	for _, v := range Moods {
		if m == v {
			return true
		}
	}
	return false
}

// MoodLog is a single day's mood/stress record for a user.
// Date is the natural key: at most one persisted log per (user, date).
// The uniqueness policy is enforced by the upsert engine, not the store.
type MoodLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD, local time at submission
	Stress    int                `bson:"stress" json:"stress"`
	Mood      Mood               `bson:"mood" json:"mood"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
