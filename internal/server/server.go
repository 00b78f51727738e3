// Package server is the HTTP surface around the dataset store and query
// engine: routing, parameter validation and defaulting, error-to-status
// mapping, access logging and metrics.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"mockshop/internal/apperr"
	"mockshop/internal/config"
	"mockshop/internal/dataset"
	"mockshop/internal/metrics"
)

type Server struct {
	cfg     config.Config
	store   *dataset.Store
	metrics *metrics.Registry
	log     *slog.Logger
}

// New wires the server around an explicitly owned store. The store is
// constructed by the caller and shared with nothing else.
func New(cfg config.Config, store *dataset.Store, reg *metrics.Registry, log *slog.Logger) *Server {
	return &Server{cfg: cfg, store: store, metrics: reg, log: log}
}

// Handler builds the route table wrapped in the request middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/seed", s.handleSeed)
	mux.HandleFunc("GET /api/users", s.handleListUsers)
	mux.HandleFunc("GET /api/users/{id}/orders", s.handleListUserOrders)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", s.metrics.Handler())
	return s.withRequestLog(mux)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "err", err)
	}
}

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	msg := err.Error()
	switch kind {
	case apperr.KindInvalidParameter, apperr.KindResourceExhausted:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	default:
		s.log.Error("internal error", "err", err)
		msg = "internal error"
	}
	s.writeJSON(w, status, errorBody{Error: msg, Code: kind.Code()})
}
