package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Invisble-man/path-ai-sub000/internal/assist"
	"github.com/Invisble-man/path-ai-sub000/internal/audit"
	"github.com/Invisble-man/path-ai-sub000/internal/classify"
	"github.com/Invisble-man/path-ai-sub000/internal/events"
	"github.com/Invisble-man/path-ai-sub000/internal/export"
	"github.com/Invisble-man/path-ai-sub000/internal/extract"
	"github.com/Invisble-man/path-ai-sub000/internal/gate"
	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

type ExtractRequest struct {
	Text string `json:"text,omitempty"`
}

// Extract runs the full text pipeline: candidate lines, classification,
// metadata detection, and the critical-field audit. The item list is
// replaced wholesale; prior item edits are forfeited by design.
func (h *RunsHandler) Extract(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	text := req.Text
	if strings.TrimSpace(text) == "" {
		text = run.Intake.RawText
	}
	if strings.TrimSpace(text) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "solicitation text required"})
		return
	}

	items, source := h.produceItems(r, text)

	run.Intake.RawText = text
	md := extract.DetectMetadata(text)
	if run.Intake.DueDate == "" {
		run.Intake.DueDate = md.DueDate
	}
	if run.Intake.SubmissionTo == "" {
		run.Intake.SubmissionTo = md.SubmissionEmail
	}
	run.Intake.Certifications = md.Certifications

	run.Items = items
	added := audit.Apply(run)

	if err := h.store.UpdateRun(r.Context(), run); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	extractionsTotal.Inc()
	for _, it := range run.Items {
		classificationsTotal.WithLabelValues(string(it.GatingLabel)).Inc()
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectRunExtracted(run.ID.String()), events.RunExtractedEvent{
			RunID:      run.ID.String(),
			ItemCount:  len(run.Items),
			Source:     source,
			AuditAdded: added,
		})
	}

	writeJSON(w, http.StatusOK, run)
}

// produceItems consults the optional assist producer first; any failure or
// empty result falls back to the pattern extractor. The fallback is the
// normal path, never an error.
func (h *RunsHandler) produceItems(r *http.Request, text string) ([]*store.Item, string) {
	if h.assist != nil && h.assist.Enabled() {
		reqs, err := h.assist.ExtractRequirements(r.Context(), text)
		if err != nil {
			h.logger.Warn("assist producer failed, using pattern extraction", "error", err)
		} else if len(reqs) > 0 {
			return itemsFromAssist(reqs), "assist"
		}
	}
	lines := extract.LinesWithCap(text, h.cfg.Extract.MaxLines)
	return classify.BuildItems(lines), "patterns"
}

// itemsFromAssist re-classifies producer output so gating labels, buckets
// and confidences stay consistent with the pattern pipeline.
func itemsFromAssist(reqs []assist.Requirement) []*store.Item {
	items := make([]*store.Item, 0, len(reqs))
	for i, req := range reqs {
		res := classify.Classify(req.Requirement)
		id := req.RequirementID
		if id == "" {
			id = fmt.Sprintf("R%03d", i+1)
		}
		status := store.StatusUnknown
		switch req.Status {
		case string(store.StatusPass):
			status = store.StatusPass
		case string(store.StatusFail):
			status = store.StatusFail
		}
		notes := req.Notes
		if req.Evidence != "" {
			if notes != "" {
				notes += "\n"
			}
			notes += "Evidence: " + req.Evidence
		}
		items = append(items, &store.Item{
			ID:          id,
			Text:        strings.TrimSpace(req.Requirement),
			Bucket:      classify.BucketFor(req.Requirement),
			GatingLabel: res.Label,
			Confidence:  res.Confidence,
			Status:      status,
			Done:        res.Label == store.LabelAutoResolved,
			Notes:       notes,
		})
	}
	return items
}

// Audit re-runs the critical-field auditor alone, without touching existing
// extracted items.
func (h *RunsHandler) Audit(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	added := audit.Apply(run)
	if err := h.store.UpdateRun(r.Context(), run); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil && added > 0 {
		_ = h.events.Publish(events.SubjectRunAudited(run.ID.String()), map[string]interface{}{
			"run_id": run.ID.String(),
			"added":  added,
		})
	}
	writeJSON(w, http.StatusOK, run)
}

type UpdateItemRequest struct {
	Status *store.ItemStatus `json:"status,omitempty"`
	Done   *bool             `json:"done,omitempty"`
	Notes  *string           `json:"notes,omitempty"`
}

// UpdateItem edits the mutable fields of one item. The gating label and
// confidence are immutable after classification.
func (h *RunsHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	item := run.FindItem(chi.URLParam(r, "item_id"))
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case store.StatusUnknown, store.StatusPass, store.StatusFail:
			item.Status = *req.Status
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
			return
		}
	}
	if req.Done != nil {
		item.Done = *req.Done
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if err := h.store.UpdateRun(r.Context(), run); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// RunGate performs the explicit gate evaluation and caches the verdict with
// a timestamp. Nothing else refreshes the cached gate.
func (h *RunsHandler) RunGate(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	verdict := h.engine.Evaluate(run.Items)
	now := time.Now().UTC()
	run.Gate = store.Gate{
		Status:    verdict.Status,
		Reasons:   verdict.Reasons,
		LastRunAt: &now,
	}

	if err := h.store.UpdateRun(r.Context(), run); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	completion := gate.CompletionPct(run.Items)
	gateRunsTotal.WithLabelValues(string(verdict.Status)).Inc()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectRunGate(run.ID.String()), events.GateEvaluatedEvent{
			RunID:         run.ID.String(),
			Status:        string(verdict.Status),
			Reasons:       verdict.Reasons,
			CompletionPct: completion,
		})
	}

	writeJSON(w, http.StatusOK, run.Gate)
}

type ProgressResponse struct {
	Counts               gate.Counts `json:"counts"`
	CompletionPct        float64     `json:"completion_pct"`
	CompanyCompletionPct int         `json:"company_completion_pct"`
	Gate                 store.Gate  `json:"gate"`
	CompanyComplete      bool        `json:"company_profile_complete"`
	ComplianceReady      bool        `json:"compliance_ready"`
	DraftReady           bool        `json:"draft_ready"`
	ExportReady          bool        `json:"export_ready"`
	Warnings             []string    `json:"warnings,omitempty"`
}

// Progress reports live counts and completion alongside the cached gate.
// The gate verdict may be stale relative to the live numbers until re-run.
func (h *RunsHandler) Progress(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ProgressResponse{
		Counts:               gate.Tally(run.Items),
		CompletionPct:        gate.CompletionPct(run.Items),
		CompanyCompletionPct: gate.CompanyCompletionPct(run.Company),
		Gate:                 run.Gate,
		CompanyComplete:      gate.CompanyProfileComplete(run.Company),
		ComplianceReady:      gate.ComplianceReady(run.Items),
		DraftReady:           h.engine.DraftReady(run.Items),
		ExportReady:          h.engine.ExportReady(run.Items, run.Gate),
		Warnings:             gate.EligibilityWarnings(run.Intake.Certifications, run.Company.Certifications),
	})
}

// Export serves the flat tabular rows; ?view=checklist filters to
// ACTIONABLE items only.
func (h *RunsHandler) Export(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	var rows []export.Row
	if r.URL.Query().Get("view") == "checklist" {
		rows = export.ChecklistRows(run.Items)
	} else {
		rows = export.Rows(run.Items)
	}
	if rows == nil {
		rows = []export.Row{}
	}
	writeJSON(w, http.StatusOK, rows)
}
