package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/healncure/healncure-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth: anonymous-first, with optional account claim
	r.Post("/api/auth/anonymous", handlers.AnonymousSignin)
	r.Get("/api/auth/me", handlers.GetMe)
	r.Post("/api/auth/claim", handlers.ClaimAccount)
	r.Post("/api/auth/signin", handlers.Signin)

	// Mood/stress progress journal
	r.Post("/api/progress/log", handlers.LogMood)
	r.Get("/api/progress", handlers.GetProgress)

	// Content catalog
	r.Get("/api/categories", handlers.GetCategories)
	r.Get("/api/categories/{slug}", handlers.GetCategoryBySlug)
	r.Get("/api/quotes", handlers.GetQuotes)
	r.Get("/api/quotes/daily", handlers.GetDailyQuote)

	// AI assistant (single-turn)
	r.Post("/api/assistant/chat", handlers.AssistantChat)
	r.Get("/api/assistant/history", handlers.GetAssistantHistory)

	// WebSocket endpoint for live progress updates
	r.Get("/ws/progress", handlers.ProgressWebSocket)
}
