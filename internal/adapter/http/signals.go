package httpadapter

import (
	"net/http"
	"time"

	"adhelm/internal/core/port"
)

// handleListSignals returns recorded learning signals for a tenant over
// a period. It accepts a required `tenant_id` and optional `from`, `to`
// (RFC3339) query parameters; the period defaults to the last 30 days.
// Invalid parameters result in HTTP 400.
func (h *Handler) handleListSignals(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.SignalsReq
		err     error
	)

	req.TenantID = q.Get("tenant_id")
	if req.TenantID == "" {
		http.Error(w, "missing tenant_id", http.StatusBadRequest)
		return
	}

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().AddDate(0, 0, -30)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	signals, err := h.svc.ListLearningSignals(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, signals)
}
