package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/moodora/moodora-backend/internal/config"
	"github.com/moodora/moodora-backend/internal/database"
	"github.com/moodora/moodora-backend/internal/handlers"
	"github.com/moodora/moodora-backend/internal/middleware"
	"github.com/moodora/moodora-backend/internal/routes"
	"github.com/moodora/moodora-backend/internal/services"
	"github.com/moodora/moodora-backend/internal/storage"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Storage: PostgreSQL when configured, in-memory otherwise
	var store storage.Store
	if cfg.PostgresURI != "" {
		log.Printf("Connecting to PostgreSQL...")
		if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
			log.Fatal("Failed to connect to PostgreSQL:", err)
		}
		defer database.DisconnectPostgres()

		pg, err := storage.NewPostgresStore(database.PostgresDB)
		if err != nil {
			log.Fatal("Failed to initialize PostgreSQL store:", err)
		}
		store = pg
	} else {
		log.Println("⚠️  POSTGRES_URI not set, using in-memory store (data is lost on restart)")
		store = storage.NewMemoryStore()
	}

	// Sessions: Redis when configured, in-memory otherwise
	var sessions services.SessionStore
	redisConnected := false
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer database.DisconnectRedis()
		sessions = services.NewRedisSessions()
		redisConnected = true
	} else {
		log.Println("⚠️  REDIS_URI not set, using in-memory sessions")
		sessions = services.NewMemorySessions()
	}

	h := handlers.New(store, sessions)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Rate limiting needs Redis to track request counts
	if redisConnected {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, h)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/register")
	log.Println("  POST /api/login")
	log.Println("  POST /api/logout")
	log.Println("  GET  /api/user")
	log.Println("  GET  /api/questionnaire")
	log.Println("  GET  /api/mood-entries")
	log.Println("  GET  /api/mood-entries/range")
	log.Println("  POST /api/mood-entries")
	log.Println("  POST /api/mood-entries/questionnaire")
	log.Println("  GET  /api/recommendations/{moodType}")
	log.Println("  GET  /api/menstrual-cycles")
	log.Println("  POST /api/menstrual-cycles")
	log.Println("  GET  /api/menstrual-cycles/phase")

	log.Printf("🚀 Moodora backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
