package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adhelm/internal/core/domain"
)

// handleOccalizer evaluates a risk mode from the path. Unknown modes
// surface as HTTP 400 via the validation error class.
func (h *Handler) handleOccalizer(w http.ResponseWriter, r *http.Request) {
	mode := domain.OccalizerMode(chi.URLParam(r, "mode"))
	res, err := h.svc.EvaluateOccalizer(mode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleRunAudit audits a landing page without attaching the result to
// any campaign.
func (h *Handler) handleRunAudit(w http.ResponseWriter, r *http.Request) {
	var page domain.LandingPage
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.RunRefiner(page))
}

// handleAuditCampaign audits a landing page and stores the result on a
// draft campaign.
func (h *Handler) handleAuditCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var page domain.LandingPage
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.AuditCampaignPage(r.Context(), id, page)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

type evaluateScenarioBody struct {
	Metrics    domain.Metrics            `json:"metrics"`
	Thresholds domain.ScenarioThresholds `json:"thresholds"`
}

// handleEvaluateScenario classifies metrics against explicit thresholds
// without touching any stored campaign. Useful for what-if calls.
func (h *Handler) handleEvaluateScenario(w http.ResponseWriter, r *http.Request) {
	var body evaluateScenarioBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.EvaluateScenario(body.Metrics, body.Thresholds))
}
