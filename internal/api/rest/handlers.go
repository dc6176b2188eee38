package rest

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/pipeline"
	"github.com/fortuna/courtside/internal/store"
)

// Handler serves the operational endpoints.
type Handler struct {
	db            *store.Database
	svc           *pipeline.Service
	defaultWindow store.Window
	log           *zap.Logger
}

// NewHandler creates a handler.
func NewHandler(db *store.Database, svc *pipeline.Service, defaultWindow store.Window, log *zap.Logger) *Handler {
	return &Handler{db: db, svc: svc, defaultWindow: defaultWindow, log: log}
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unreachable", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TriggerRun handles POST /api/v1/pipeline/run?window=yesterday.
func (h *Handler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	window := h.defaultWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := store.ParseWindow(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid window", err)
			return
		}
		window = parsed
	}

	if err := h.svc.TriggerAsync(window); err != nil {
		if errors.Is(err, pipeline.ErrRunInProgress) {
			respondError(w, http.StatusConflict, "run already in progress", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "could not start run", err)
		return
	}

	h.log.Info("run triggered via api", zap.String("window", string(window)))
	respondJSON(w, http.StatusAccepted, map[string]string{
		"status": "started",
		"window": string(window),
	})
}

type runStatusResponse struct {
	Running bool             `json:"running"`
	Last    *pipeline.Result `json:"last,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// RunStatus handles GET /api/v1/pipeline/status.
func (h *Handler) RunStatus(w http.ResponseWriter, r *http.Request) {
	running, last, lastErr := h.svc.Status()
	resp := runStatusResponse{Running: running, Last: last}
	if lastErr != nil {
		resp.Error = lastErr.Error()
	}
	respondJSON(w, http.StatusOK, resp)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	respondJSON(w, status, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}
