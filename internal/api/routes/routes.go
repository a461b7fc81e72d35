package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	_ "github.com/GH-57/First-Project/docs"
	"github.com/GH-57/First-Project/internal/api/auth"
	"github.com/GH-57/First-Project/internal/api/chat"
	"github.com/GH-57/First-Project/internal/api/health"
	"github.com/GH-57/First-Project/internal/classifier"
	"github.com/GH-57/First-Project/internal/config"
	"github.com/GH-57/First-Project/internal/store"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(cfg *config.Config, st store.Store, cls classifier.Classifier) http.Handler {
	r := chi.NewRouter()

	// the PE frontend is served from these origins
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://127.0.0.1:8000", "http://localhost:8000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	// init services & handlers
	authHandler := auth.NewAuthHandler(cfg.Auth, st)
	chatHandler := chat.NewChatHandler(cls, st)

	r.Get("/health", health.HealthHandler)

	// public routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/recommend-proverb", chatHandler.Recommend)

	// protected routes
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Post("/chat", chatHandler.Chat)
		r.Get("/history", chatHandler.History)
	})

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
