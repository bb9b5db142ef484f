package services

import (
	"context"
	"time"

	"github.com/healncure/healncure-backend/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assistantCollection = "assistant_messages"

// AssistantMessage is one side of a stored assistant exchange.
type AssistantMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Role      string             `bson:"role" json:"role"` // "user" or "assistant"
	Message   string             `bson:"message" json:"message"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// EnsureAssistantIndexes configures indexes for the assistant_messages
// collection. Called on startup from main after Mongo has connected.
func EnsureAssistantIndexes(ctx context.Context) error {
	col := database.DB.Collection(assistantCollection)

	// Compound index on (user_id, timestamp) to support efficient pagination.
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
		Options: options.Index().SetName("idx_user_timestamp"),
	}

	_, err := col.Indexes().CreateOne(ctx, model)
	return err
}

// SaveAssistantExchange persists one question/answer pair for a signed-in
// user. The user message gets a slightly earlier timestamp so history sorts
// in conversational order.
func SaveAssistantExchange(ctx context.Context, userID, userMessage, reply string) error {
	col := database.DB.Collection(assistantCollection)
	now := time.Now().UTC()

	docs := []interface{}{
		AssistantMessage{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			Role:      "user",
			Message:   userMessage,
			Timestamp: now,
		},
		AssistantMessage{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			Role:      "assistant",
			Message:   reply,
			Timestamp: now.Add(time.Millisecond),
		},
	}

	_, err := col.InsertMany(ctx, docs)
	return err
}

// LoadAssistantHistory loads a page of a user's past exchanges, newest page
// first but each page in chronological order. before, when set, paginates
// backwards from that timestamp.
func LoadAssistantHistory(ctx context.Context, userID string, before *time.Time, limit int64) ([]AssistantMessage, bool, error) {
	col := database.DB.Collection(assistantCollection)

	filter := bson.M{"user_id": userID}
	if before != nil {
		filter["timestamp"] = bson.M{"$lt": *before}
	}

	findOptions := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(limit + 1) // one extra to detect more pages

	cursor, err := col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, false, err
	}
	defer cursor.Close(ctx)

	var msgs []AssistantMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, false, err
	}

	hasMore := int64(len(msgs)) > limit
	if hasMore {
		msgs = msgs[:limit]
	}

	// Reverse into chronological order for display.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	return msgs, hasMore, nil
}
