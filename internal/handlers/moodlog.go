package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/healncure/healncure-backend/internal/models"
	"github.com/healncure/healncure-backend/internal/services"
)

type LogMoodRequest struct {
	Stress int         `json:"stress"`
	Mood   models.Mood `json:"mood"`
}

type LogMoodResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Action  services.LogActionKind `json:"action,omitempty"`
	Date    string                 `json:"date,omitempty"`
}

type ProgressResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Seed    bool             `json:"seed"`
	Entries []models.MoodLog `json:"entries"`
	Total   int              `json:"total"`
}

// LogMood records today's mood and stress level for the signed-in user:
// create when no entry exists for today, merge into the existing one
// otherwise. The response is optimistic — the write itself is applied in the
// background and a failure there is only logged, never pushed back to the
// submitting client.
func LogMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		// No signed-in user: nothing is written.
		writeJSON(w, http.StatusUnauthorized, LogMoodResponse{
			Success: false,
			Message: "Authentication required",
		})
		return
	}

	var req LogMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, LogMoodResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	// The slider owns the [0,10] boundary; clamp here mirrors that control so
	// an out-of-range value never reaches the engine.
	stress := services.ClampStress(req.Stress)
	today := time.Now().Format(services.MoodLogDateLayout)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Latest snapshot decides create-vs-merge.
	existing, err := services.FetchMoodLogs(ctx, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, LogMoodResponse{
			Success: false,
			Message: "Failed to load progress",
		})
		return
	}

	action, err := services.PlanMoodLog(stress, req.Mood, today, existing)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, LogMoodResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	// Fire-and-forget: acknowledge now, persist in the background.
	go func() {
		bgCtx, bgCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer bgCancel()

		if err := services.ApplyMoodLogAction(bgCtx, userID, action); err != nil {
			log.Printf("failed to apply mood log %s for user %s: %v", action.Kind, userID, err)
			return
		}
		if err := services.PublishMoodLogEvent(bgCtx, services.MoodLogEvent{
			Type:   services.EventMoodLogUpdated,
			UserID: userID,
			Action: action.Kind,
			Date:   action.Date,
		}); err != nil {
			log.Printf("failed to publish mood log event for user %s: %v", userID, err)
		}
	}()

	writeJSON(w, http.StatusAccepted, LogMoodResponse{
		Success: true,
		Message: "Progress logged",
		Action:  action.Kind,
		Date:    action.Date,
	})
}

// GetProgress returns the series the progress chart should render: the seed
// series for signed-out visitors, the user's own sorted history (possibly
// empty — "no data yet") when signed in.
func GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, authenticated := requireAuth(r)
	if !authenticated {
		entries := services.SelectSeries(false, nil)
		writeJSON(w, http.StatusOK, ProgressResponse{
			Success: true,
			Seed:    true,
			Entries: entries,
			Total:   len(entries),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	logs, err := services.FetchMoodLogs(ctx, userID)
	if err != nil {
		// The client keeps rendering its last-known series under an error banner.
		writeJSON(w, http.StatusInternalServerError, ProgressResponse{
			Success: false,
			Message: "Failed to load progress",
			Entries: []models.MoodLog{},
		})
		return
	}

	entries := services.SortForDisplay(services.SelectSeries(true, logs))
	writeJSON(w, http.StatusOK, ProgressResponse{
		Success: true,
		Seed:    false,
		Entries: entries,
		Total:   len(entries),
	})
}
