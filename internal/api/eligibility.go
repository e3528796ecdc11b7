package api

import (
	"encoding/json"
	"net/http"

	"github.com/Invisble-man/path-ai-sub000/internal/eligibility"
	"github.com/Invisble-man/path-ai-sub000/internal/events"
)

type EligibilityHandler struct {
	events events.Client
}

func NewEligibilityHandler(ev events.Client) *EligibilityHandler {
	return &EligibilityHandler{events: ev}
}

type EligibilityRequest struct {
	Requirements map[string]interface{} `json:"requirements"`
	Company      map[string]interface{} `json:"company"`
}

// Check evaluates the structured GO/NO-GO matrix. This is a separate policy
// from the free-text gate and shares no state with it.
func (h *EligibilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req EligibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(req.Requirements) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requirements map required"})
		return
	}

	summary := eligibility.Summarize(req.Requirements, req.Company)
	eligibilityChecksTotal.WithLabelValues(summary.Verdict).Inc()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectEligibilityChecked, events.EligibilityCheckedEvent{
			Verdict:      summary.Verdict,
			Score:        summary.Score,
			HardFailures: len(summary.HardFailures),
		})
	}

	writeJSON(w, http.StatusOK, summary)
}
