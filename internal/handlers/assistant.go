package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/healncure/healncure-backend/internal/services"
)

const maxAssistantMessageLen = 2000

type AssistantChatRequest struct {
	Message string `json:"message"`
}

type AssistantChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Reply   string `json:"reply,omitempty"`
}

// AssistantHistoryResponse is returned when loading past exchanges from MongoDB.
type AssistantHistoryResponse struct {
	Success  bool                        `json:"success"`
	Messages []services.AssistantMessage `json:"messages"`
	HasMore  bool                        `json:"has_more"`
}

// AssistantChat forwards a single user message to the hosted model and
// returns its reply. There is no conversation state: each request stands
// alone. Works signed out; signed-in exchanges are additionally persisted.
func AssistantChat(w http.ResponseWriter, r *http.Request) {
	var req AssistantChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AssistantChatResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, AssistantChatResponse{
			Success: false,
			Message: "Message is required",
		})
		return
	}
	if len(message) > maxAssistantMessageLen {
		writeJSON(w, http.StatusBadRequest, AssistantChatResponse{
			Success: false,
			Message: "Message is too long",
		})
		return
	}

	userID, authenticated := requireAuth(r)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	reply, err := services.AssistantReply(ctx, message)
	if err != nil {
		// Degrade to the apology text rather than an HTTP failure so the chat
		// UI renders it like any other reply.
		log.Printf("assistant error: %v", err)
		writeJSON(w, http.StatusOK, AssistantChatResponse{
			Success: false,
			Reply:   services.AssistantFallbackReply,
		})
		return
	}

	if authenticated {
		go func() {
			saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer saveCancel()
			if err := services.SaveAssistantExchange(saveCtx, userID, message, reply); err != nil {
				log.Printf("failed to save assistant exchange for user %s: %v", userID, err)
			}
		}()
	}

	writeJSON(w, http.StatusOK, AssistantChatResponse{
		Success: true,
		Reply:   reply,
	})
}

// GetAssistantHistory loads paginated past exchanges for the signed-in user.
// Query params:
//
//	before (optional RFC3339 timestamp for pagination)
//	limit  (optional, default 50, max 100)
func GetAssistantHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AssistantHistoryResponse{
			Success:  false,
			Messages: []services.AssistantMessage{},
		})
		return
	}

	limit := int64(50)
	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if parsed, err := strconv.ParseInt(lStr, 10, 64); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	var before *time.Time
	if bStr := r.URL.Query().Get("before"); bStr != "" {
		if t, err := time.Parse(time.RFC3339, bStr); err == nil {
			before = &t
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msgs, hasMore, err := services.LoadAssistantHistory(ctx, userID, before, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AssistantHistoryResponse{
			Success:  false,
			Messages: []services.AssistantMessage{},
		})
		return
	}
	if msgs == nil {
		msgs = []services.AssistantMessage{}
	}

	writeJSON(w, http.StatusOK, AssistantHistoryResponse{
		Success:  true,
		Messages: msgs,
		HasMore:  hasMore,
	})
}
