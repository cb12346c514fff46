package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adhelm/internal/core/domain"
	"adhelm/internal/core/port"
)

type createCampaignBody struct {
	TenantID    string               `json:"tenant_id"`
	BlueprintID string               `json:"blueprint_id"`
	SiteIntent  string               `json:"site_intent"`
	Mode        domain.OccalizerMode `json:"mode"`
	BudgetCaps  domain.BudgetCaps    `json:"budget_caps"`
}

type campaignResponse struct {
	ID            string                `json:"id"`
	TenantID      string                `json:"tenant_id"`
	BlueprintID   string                `json:"blueprint_id"`
	Status        domain.CampaignStatus `json:"status"`
	OccalizerMode domain.OccalizerMode  `json:"occalizer_mode"`
	BudgetCaps    domain.BudgetCaps     `json:"budget_caps"`
	Plan          *domain.CampaignPlan  `json:"plan,omitempty"`
	Refiner       *domain.RefinerResult `json:"refiner,omitempty"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		TenantID:      c.TenantID,
		BlueprintID:   c.BlueprintID,
		Status:        c.Status,
		OccalizerMode: c.OccalizerMode,
		BudgetCaps:    c.BudgetCaps,
		Plan:          c.Plan,
		Refiner:       c.Refiner,
	}
}

// handleCreateCampaign builds a plan from the referenced blueprint and
// persists a new draft campaign. Parsing errors produce HTTP 400; the
// core's error taxonomy decides the rest.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		TenantID:    body.TenantID,
		BlueprintID: body.BlueprintID,
		SiteIntent:  body.SiteIntent,
		Mode:        body.Mode,
		BudgetCaps:  body.BudgetCaps,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

type transitionFunc func(ctx context.Context, id string) (*domain.Campaign, error)

func (h *Handler) svcApprove(ctx context.Context, id string) (*domain.Campaign, error) {
	return h.svc.ApproveCampaign(ctx, id)
}

func (h *Handler) svcPause(ctx context.Context, id string) (*domain.Campaign, error) {
	return h.svc.PauseCampaign(ctx, id)
}

func (h *Handler) svcResume(ctx context.Context, id string) (*domain.Campaign, error) {
	return h.svc.ResumeCampaign(ctx, id)
}

func (h *Handler) svcComplete(ctx context.Context, id string) (*domain.Campaign, error) {
	return h.svc.CompleteCampaign(ctx, id)
}

// handleTransition serves the plain lifecycle endpoints that take no
// body and return the updated campaign.
func (h *Handler) handleTransition(fn transitionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		c, err := fn(r.Context(), id)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

// handleSyncCampaign records a deployment attempt and moves the
// campaign to deploying.
func (h *Handler) handleSyncCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, err := h.svc.SyncCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]any{
		"deployment_id": d.ID,
		"campaign_id":   d.CampaignID,
		"status":        d.Status,
	})
}

type confirmDeploymentBody struct {
	OK bool `json:"ok"`
}

// handleConfirmDeployment records the external platform's verdict for a
// deployment and returns the campaign as it stands afterwards.
func (h *Handler) handleConfirmDeployment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body confirmDeploymentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.ConfirmDeployment(r.Context(), id, body.OK)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

type metricsBody struct {
	Metrics   domain.Metrics `json:"metrics"`
	Simulated bool           `json:"simulated"`
}

// handleReportMetrics classifies a live metrics report for a campaign.
func (h *Handler) handleReportMetrics(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body metricsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	eval, err := h.svc.ReportMetrics(r.Context(), port.MetricsReport{
		CampaignID: id,
		Metrics:    body.Metrics,
		Simulated:  body.Simulated,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eval)
}
