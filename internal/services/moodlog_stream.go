package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/healncure/healncure-backend/internal/database"
)

// MoodLogEvent is the change notification broadcast over Redis whenever a
// user's mood log collection changes. Subscribers treat it as a trigger to
// re-read and re-deliver the full series, not as a delta.
type MoodLogEvent struct {
	Type      string        `json:"type"` // "updated"
	UserID    string        `json:"user_id"`
	Action    LogActionKind `json:"action,omitempty"`
	Date      string        `json:"date,omitempty"`
	Timestamp time.Time     `json:"timestamp,omitempty"`
}

const (
	// EventMoodLogUpdated is the only event type today.
	EventMoodLogUpdated = "updated"

	moodLogChannelPrefix = "moodlog:user:"
)

// progressHub fans Redis events out to the WebSocket connections of the user
// they belong to. Keyed by user ID; one user may hold several connections
// (multiple tabs), each with its own channel.
type progressHub struct {
	mu   sync.RWMutex
	subs map[string]map[chan MoodLogEvent]struct{}
}

var (
	moodHub = &progressHub{subs: make(map[string]map[chan MoodLogEvent]struct{})}

	moodSubscriberStarted sync.Once
)

// SubscribeProgress registers a listener for one user's change events and
// returns the event channel plus an unsubscribe func. The channel is buffered
// and sends are non-blocking; a slow consumer misses triggers but never
// blocks the subscriber, and the next trigger re-delivers the full state.
func SubscribeProgress(userID string) (<-chan MoodLogEvent, func()) {
	ch := make(chan MoodLogEvent, 8)

	moodHub.mu.Lock()
	if moodHub.subs[userID] == nil {
		moodHub.subs[userID] = make(map[chan MoodLogEvent]struct{})
	}
	moodHub.subs[userID][ch] = struct{}{}
	moodHub.mu.Unlock()

	unsubscribe := func() {
		moodHub.mu.Lock()
		if set, ok := moodHub.subs[userID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(moodHub.subs, userID)
			}
		}
		moodHub.mu.Unlock()
		close(ch)
	}
	return ch, unsubscribe
}

// fanOutMoodLogEvent delivers an event to all local subscriptions for its user.
func fanOutMoodLogEvent(event MoodLogEvent) {
	if event.UserID == "" {
		return
	}

	moodHub.mu.RLock()
	defer moodHub.mu.RUnlock()

	for ch := range moodHub.subs[event.UserID] {
		select {
		case ch <- event:
		default:
			// Subscriber is behind; it will catch up on the next event.
		}
	}
}

// StartMoodLogSubscriber ensures a single shared Redis listener per instance.
func StartMoodLogSubscriber(ctx context.Context) {
	moodSubscriberStarted.Do(func() {
		go runMoodLogSubscriber(ctx)
	})
}

func runMoodLogSubscriber(ctx context.Context) {
	client := database.RedisClient
	if client == nil {
		log.Println("Redis client not initialized; mood log subscriber not started")
		return
	}

	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		func() {
			pubsub := client.PSubscribe(ctx, moodLogChannelPrefix+"*")
			defer pubsub.Close()

			log.Println("✅ Mood log Redis subscriber started (pattern: moodlog:user:*)")

			for {
				msg, err := pubsub.ReceiveMessage(ctx)
				if err != nil {
					log.Printf("Redis subscriber error: %v", err)
					time.Sleep(backoff)
					backoff *= 2
					if backoff > 30*time.Second {
						backoff = 30 * time.Second
					}
					return
				}

				backoff = time.Second

				var event MoodLogEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("failed to unmarshal mood log event: %v", err)
					continue
				}

				fanOutMoodLogEvent(event)
			}
		}()
	}
}

// PublishMoodLogEvent publishes a change notification for a user; called
// after a mood log write lands so every connected client re-syncs.
func PublishMoodLogEvent(ctx context.Context, event MoodLogEvent) error {
	if event.Type == "" {
		event.Type = EventMoodLogUpdated
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	channel := moodLogChannelPrefix + event.UserID
	return database.RedisClient.Publish(ctx, channel, data).Err()
}
