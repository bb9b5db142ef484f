package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/healncure/healncure-backend/internal/models"
	"github.com/healncure/healncure-backend/internal/services"
)

var progressUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

// ProgressSnapshot is what the live progress stream pushes: always the full
// sorted series, never a delta. Clients replace their state wholesale on
// every message.
type ProgressSnapshot struct {
	Type    string           `json:"type"` // "snapshot"
	Entries []models.MoodLog `json:"entries"`
	Total   int              `json:"total"`
}

// ProgressWebSocket streams a user's mood log series in real time.
// Authentication uses the session token (Authorization: Bearer <token>, or
// ?token= for browser WebSocket clients). The full snapshot is pushed on
// connect and re-pushed whenever the user's collection changes, so a second
// tab or device converges without polling.
func ProgressWebSocket(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing session token", http.StatusUnauthorized)
			return
		}
	}

	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		http.Error(w, "invalid session token", http.StatusUnauthorized)
		return
	}

	conn, err := progressUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, unsubscribe := services.SubscribeProgress(userID.String())
	defer unsubscribe()

	// Initial snapshot, then one per change event.
	if err := pushProgressSnapshot(conn, userID.String()); err != nil {
		return
	}

	done := make(chan struct{})

	go func() {
		defer close(done)
		for range events {
			if err := pushProgressSnapshot(conn, userID.String()); err != nil {
				return
			}
		}
	}()

	// Reader loop keeps the connection alive and detects disconnects; the
	// stream is one-way, so inbound payloads are discarded.
	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		select {
		case <-done:
			return
		default:
		}
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	}
}

func pushProgressSnapshot(conn *websocket.Conn, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logs, err := services.FetchMoodLogs(ctx, userID)
	if err != nil {
		// Keep the connection; the next change event retries the read.
		return nil
	}

	entries := services.SortForDisplay(logs)
	return conn.WriteJSON(ProgressSnapshot{
		Type:    "snapshot",
		Entries: entries,
		Total:   len(entries),
	})
}
