// Package api exposes a node's commands and queries over HTTP
package api

//go:generate mockgen -package=mocks -destination=mocks/mock_executor.go github.com/KirkDiggler/roshambo/internal/handlers/api Executor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/random"
	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/node"
	"github.com/KirkDiggler/roshambo/internal/services/query"
)

// Executor runs a command on the node loop
type Executor interface {
	Execute(ctx context.Context, cmd node.Command) (*node.Result, error)
}

// Config holds the handler dependencies
type Config struct {
	Executor Executor
	Query    query.Service

	// Picker resolves the "random" choice, a clock-seeded picker when nil
	Picker random.Picker

	Logger *zap.Logger
}

// Handler serves the node API
type Handler struct {
	executor Executor
	query    query.Service
	picker   random.Picker
	logger   *zap.Logger
}

// Response is the envelope of every API reply
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// New creates a handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Executor == nil {
		return nil, errors.New("executor cannot be nil")
	}
	if cfg.Query == nil {
		return nil, errors.New("query service cannot be nil")
	}

	picker := cfg.Picker
	if picker == nil {
		picker = random.New(&random.Config{})
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		executor: cfg.Executor,
		query:    cfg.Query,
		picker:   picker,
		logger:   logger,
	}, nil
}

// Router builds the chi routes
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/commands", func(r chi.Router) {
		r.Post("/setup", h.SetupLeaderboard)
		r.Post("/name", h.SetPlayerName)
		r.Post("/reset", h.ResetLeaderboard)

		r.Route("/rooms", func(r chi.Router) {
			r.Post("/", h.CreateRoom)
			r.Post("/{roomID}/join", h.JoinRoom)
			r.Post("/{roomID}/choice", h.SubmitChoice)
		})
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", h.ListRooms)
		r.Get("/available", h.AvailableRooms)
		r.Get("/{roomID}", h.GetRoom)
	})

	r.Get("/leaderboard", h.GetLeaderboard)
	r.Get("/stats", h.ListStats)
	r.Get("/stats/{nodeID}", h.GetStats)
	r.Get("/players", h.ListPlayers)
	r.Get("/players/{nodeID}", h.GetPlayerName)
	r.Get("/history/{nodeID}", h.History)
	r.Get("/summary", h.Summary)
	r.Get("/me", h.GetMe)
	r.Get("/config", h.GetConfig)

	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// Health reports that the process is serving
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeSuccess(w, map[string]string{"status": "healthy"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *Handler) writeSuccess(w http.ResponseWriter, data any) {
	h.writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// writeError maps the domain error taxonomy onto status codes; anything
// outside it is logged and hidden behind a 500
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		msg = http.StatusText(status)
	}

	h.writeJSON(w, status, Response{Error: msg})
}

// StatusFor returns the HTTP status for err
func StatusFor(err error) int {
	switch {
	case models.IsConfiguration(err):
		return http.StatusConflict
	case models.IsAuthorization(err):
		return http.StatusForbidden
	case models.IsNotFound(err):
		return http.StatusNotFound
	case models.IsConflict(err):
		return http.StatusConflict
	case models.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, node.ErrStopped):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
