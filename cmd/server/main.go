package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"github.com/go-chi/chi/v5"
	"github.com/healncure/healncure-backend/internal/config"
	"github.com/healncure/healncure-backend/internal/database"
	"github.com/healncure/healncure-backend/internal/middleware"
	"github.com/healncure/healncure-backend/internal/routes"
	"github.com/healncure/healncure-backend/internal/services"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Connect to PostgreSQL (identity)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis (sessions, cache, pub/sub)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Log connection attempt (without showing password)
	log.Printf("Connecting to MongoDB...")
	if cfg.MongoURI != "" {
		// Mask password in log for security
		maskedURI := cfg.MongoURI
		if strings.Contains(maskedURI, "@") {
			parts := strings.Split(maskedURI, "@")
			if len(parts) > 0 && strings.Contains(parts[0], ":") {
				userPass := strings.Split(parts[0], ":")
				if len(userPass) >= 3 {
					maskedURI = strings.Replace(maskedURI, userPass[2], "***", 1)
				}
			}
		}
		log.Printf("MongoDB URI: %s", maskedURI)
	}

	// Connect to MongoDB (mood logs, assistant history)
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Ensure MongoDB indexes
	if err := services.EnsureMoodLogIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure mood log indexes: %v", err)
	} else {
		log.Println("✅ MongoDB mood log indexes ensured")
	}
	if err := services.EnsureAssistantIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure assistant indexes: %v", err)
	} else {
		log.Println("✅ MongoDB assistant indexes ensured")
	}

	// Initialize the AI assistant (warn if not configured, but don't fail)
	if cfg.AIAPIKey != "" {
		if err := services.InitAssistant(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel); err != nil {
			log.Printf("⚠️  WARNING: failed to initialize assistant: %v", err)
			log.Println("   The AI assistant will reply with its fallback message")
		} else {
			log.Printf("✅ AI assistant initialized (model: %s)", cfg.AIModel)
		}
	} else {
		log.Println("⚠️  WARNING: AI_API_KEY not set. The AI assistant will reply with its fallback message")
	}

	// Start the mood log Redis subscriber feeding live progress streams
	services.StartMoodLogSubscriber(context.Background())

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Production: SecurityHeaders → HostCheck
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, host check)")
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/anonymous")
	log.Println("  GET  /api/auth/me")
	log.Println("  POST /api/auth/claim")
	log.Println("  POST /api/auth/signin")
	log.Println("  POST /api/progress/log")
	log.Println("  GET  /api/progress")
	log.Println("  GET  /api/categories")
	log.Println("  GET  /api/categories/{slug}")
	log.Println("  GET  /api/quotes")
	log.Println("  GET  /api/quotes/daily")
	log.Println("  POST /api/assistant/chat")
	log.Println("  GET  /api/assistant/history")
	log.Println("  GET  /ws/progress")

	log.Printf("🚀 HealNCure backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
