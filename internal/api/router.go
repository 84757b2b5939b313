package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/handler"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/middleware"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/auth"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/match"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	MatchController *match.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AuthService)
	matchHandler := handler.NewMatchHandler(cfg.MatchController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for registering/logging in)
	api.HandleFunc("/accounts/register", accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/accounts/login", accountHandler.Login).Methods(http.MethodPost)

	// Session routes
	session := api.PathPrefix("/session").Subrouter()
	session.Use(authMiddleware)
	session.HandleFunc("", accountHandler.GetSession).Methods(http.MethodGet)
	session.HandleFunc("/logout", accountHandler.Logout).Methods(http.MethodPost)

	// Match routes (all require auth)
	matches := api.PathPrefix("/match").Subrouter()
	matches.Use(authMiddleware)
	matches.HandleFunc("", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/lock", matchHandler.Lock).Methods(http.MethodPost)
	matches.HandleFunc("/play", matchHandler.Play).Methods(http.MethodPost)
	matches.HandleFunc("/reset", matchHandler.Reset).Methods(http.MethodPost)
	matches.HandleFunc("/rematch", matchHandler.Rematch).Methods(http.MethodPost)
	matches.HandleFunc("/history", matchHandler.History).Methods(http.MethodGet)
	matches.HandleFunc("/chart", matchHandler.Chart).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
