package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adhelm/internal/core/domain"
	"adhelm/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the usecase to execute
// business logic and a logger for structured logging; routes are
// registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Post("/campaigns/{id}/approve", h.handleTransition(h.svcApprove))
		r.Post("/campaigns/{id}/sync", h.handleSyncCampaign)
		r.Post("/campaigns/{id}/pause", h.handleTransition(h.svcPause))
		r.Post("/campaigns/{id}/resume", h.handleTransition(h.svcResume))
		r.Post("/campaigns/{id}/complete", h.handleTransition(h.svcComplete))
		r.Post("/campaigns/{id}/audit", h.handleAuditCampaign)
		r.Post("/campaigns/{id}/metrics", h.handleReportMetrics)
		r.Post("/deployments/{id}/confirm", h.handleConfirmDeployment)

		r.Get("/occalizer/{mode}", h.handleOccalizer)
		r.Post("/audits", h.handleRunAudit)
		r.Post("/scenario/evaluate", h.handleEvaluateScenario)
		r.Get("/signals", h.handleListSignals)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v as the response body.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the core's error taxonomy onto HTTP status codes.
// Validation, not-found and transition conflicts are caller mistakes and
// are not logged as failures; dependency unavailability is.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case domain.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case domain.IsInvalidTransition(err):
		http.Error(w, err.Error(), http.StatusConflict)
	case domain.IsDependency(err):
		h.logger.Error("dependency unavailable", slog.Any("error", err))
		http.Error(w, "dependency unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error("unexpected error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
