package router

import (
	"log"
	"net/http"

	"github.com/cinos-pos/api/internal/config"
	"github.com/cinos-pos/api/internal/handler"
	mw "github.com/cinos-pos/api/internal/middleware"
	"github.com/cinos-pos/api/internal/service"
	"github.com/cinos-pos/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a Chi router with all application routes wired up.
// Menu reads are public; order mutation requires a staff token.
func New(cfg *config.Config, sessions *service.Sessions, hub *ws.Hub, pinHash []byte) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Menu (public, read-only reference data)
	menuHandler := handler.NewMenuHandler()
	r.Route("/menu", menuHandler.RegisterRoutes)

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret, pinHash)
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		orderHandler := handler.NewOrderHandler(sessions, hub)
		r.Route("/orders", orderHandler.RegisterRoutes)
	})

	log.Println("Router initialized with all handlers")
	return r
}
