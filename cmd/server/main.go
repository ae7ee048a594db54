package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kids-planet/backend/internal/auth"
	"github.com/kids-planet/backend/internal/challenge"
	"github.com/kids-planet/backend/internal/config"
	"github.com/kids-planet/backend/internal/content"
	"github.com/kids-planet/backend/internal/database"
	"github.com/kids-planet/backend/internal/generator"
	"github.com/kids-planet/backend/internal/middleware"
	"github.com/kids-planet/backend/internal/progress"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	gen := generator.NewGenerator()
	progressStore := progress.NewStore(db)
	progressService := progress.NewService(progressStore, progress.LogNotifier)
	challengeService := challenge.NewService(progressStore, gen, challenge.SystemClock{}, progress.LogNotifier)

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	progressHandler := progress.NewHandler(progressService)
	challengeHandler := challenge.NewHandler(challengeService)
	contentHandler := content.NewHandler(gen)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	// Progress
	protected.HandleFunc("/progress", progressHandler.Get).Methods("GET")
	protected.HandleFunc("/progress/reset", progressHandler.Reset).Methods("POST")
	protected.HandleFunc("/progress/tasks", progressHandler.CompleteTask).Methods("POST")
	protected.HandleFunc("/progress/badges", progressHandler.UnlockBadge).Methods("POST")
	protected.HandleFunc("/progress/avatar", progressHandler.SelectAvatar).Methods("PUT")
	protected.HandleFunc("/progress/theme", progressHandler.SelectTheme).Methods("PUT")
	protected.HandleFunc("/progress/favorites", progressHandler.ToggleFavorite).Methods("POST")

	// Catalogs
	protected.HandleFunc("/catalog/badges", progressHandler.Badges).Methods("GET")
	protected.HandleFunc("/catalog/avatars", progressHandler.Avatars).Methods("GET")
	protected.HandleFunc("/catalog/themes", progressHandler.Themes).Methods("GET")

	// Daily challenge
	protected.HandleFunc("/challenge", challengeHandler.Question).Methods("GET")
	protected.HandleFunc("/challenge/complete", challengeHandler.Complete).Methods("POST")
	protected.HandleFunc("/challenge/status", challengeHandler.Status).Methods("GET")

	// Generated content
	protected.HandleFunc("/content/story", contentHandler.Story).Methods("POST")
	protected.HandleFunc("/content/rhyme", contentHandler.Rhyme).Methods("POST")
	protected.HandleFunc("/content/explain", contentHandler.Explain).Methods("POST")
	protected.HandleFunc("/content/planets/{name}", contentHandler.Planet).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
