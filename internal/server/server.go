package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/nelld28/chorebender/internal/handler"
	"github.com/nelld28/chorebender/internal/lifecycle"
	"github.com/nelld28/chorebender/internal/middleware"
	"github.com/nelld28/chorebender/internal/motivation"
	"github.com/nelld28/chorebender/internal/store"
	ws "github.com/nelld28/chorebender/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	profileH    *handler.ProfileHandler
	choreH      *handler.ChoreHandler
	motivationH *handler.MotivationHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

// New wires stores, the chore lifecycle service, handlers, and the websocket
// hub over the given database. generator may be nil; the motivation endpoint
// then reports itself unconfigured.
func New(db *sql.DB, generator motivation.Generator, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	profileStore := store.NewProfileStore(db)
	choreStore := store.NewChoreStore(db)
	svc := lifecycle.NewService(choreStore, profileStore, logger.With("component", "lifecycle"))

	return &Server{
		db:          db,
		hub:         hub,
		profileH:    handler.NewProfileHandler(profileStore, hub, logger.With("component", "profile")),
		choreH:      handler.NewChoreHandler(svc, choreStore, hub, logger.With("component", "chore")),
		motivationH: handler.NewMotivationHandler(generator, logger.With("component", "motivation")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Profile API routes
	mux.HandleFunc("GET /api/profiles", s.profileH.List)
	mux.HandleFunc("POST /api/profiles", s.profileH.Create)
	mux.HandleFunc("GET /api/profiles/{id}", s.profileH.Get)
	mux.HandleFunc("PUT /api/profiles/{id}", s.profileH.Update)

	// Chore API routes
	mux.HandleFunc("GET /api/chores", s.choreH.List)
	mux.HandleFunc("POST /api/chores", s.choreH.Create)
	mux.HandleFunc("GET /api/chores/{id}", s.choreH.Get)
	mux.HandleFunc("PUT /api/chores/{id}", s.choreH.Update)
	mux.HandleFunc("DELETE /api/chores/{id}", s.choreH.Delete)
	mux.HandleFunc("POST /api/chores/{id}/complete", s.choreH.Complete)

	// Motivation route, rate limited per client IP since each call hits the
	// generative backend.
	mux.HandleFunc("POST /api/motivate", s.rateLimitedHandler(s.motivationH.Generate))

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
