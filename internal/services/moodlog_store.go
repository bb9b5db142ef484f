package services

import (
	"context"
	"fmt"
	"time"

	"github.com/healncure/healncure-backend/internal/database"
	"github.com/healncure/healncure-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const moodLogCollection = "mood_logs"

// EnsureMoodLogIndexes configures indexes for the mood_logs collection.
// Called on startup from main after Mongo has connected.
//
// The (user_id, date) index is deliberately non-unique: the upsert engine
// owns the one-per-day policy, and a duplicate produced by a cross-client
// race is accepted rather than rejected by the store.
func EnsureMoodLogIndexes(ctx context.Context) error {
	col := database.DB.Collection(moodLogCollection)

	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetName("idx_user_date"),
	}

	_, err := col.Indexes().CreateOne(ctx, model)
	return err
}

// FetchMoodLogs returns all of a user's mood logs sorted ascending by date.
// Returns an empty (non-nil) slice when the user has no entries.
func FetchMoodLogs(ctx context.Context, userID string) ([]models.MoodLog, error) {
	col := database.DB.Collection(moodLogCollection)

	findOptions := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := col.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []models.MoodLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ApplyMoodLogAction executes a planned action against the store: a create
// inserts a fresh document, a merge overwrites only stress and mood on the
// existing one (id and date are preserved).
func ApplyMoodLogAction(ctx context.Context, userID string, action LogAction) error {
	col := database.DB.Collection(moodLogCollection)
	now := time.Now().UTC()

	switch action.Kind {
	case ActionCreate:
		entry := models.MoodLog{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			Date:      action.Date,
			Stress:    action.Stress,
			Mood:      action.Mood,
			CreatedAt: now,
			UpdatedAt: now,
		}
		_, err := col.InsertOne(ctx, entry)
		return err
	case ActionMerge:
		update := bson.M{"$set": bson.M{
			"stress":     action.Stress,
			"mood":       action.Mood,
			"updated_at": now,
		}}
		_, err := col.UpdateByID(ctx, action.ID, update)
		return err
	default:
		return fmt.Errorf("unknown mood log action %q", action.Kind)
	}
}
