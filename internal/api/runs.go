package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Invisble-man/path-ai-sub000/internal/assist"
	"github.com/Invisble-man/path-ai-sub000/internal/config"
	"github.com/Invisble-man/path-ai-sub000/internal/events"
	"github.com/Invisble-man/path-ai-sub000/internal/gate"
	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

type RunsHandler struct {
	store  store.Store
	events events.Client
	assist assist.Client
	engine *gate.Engine
	cfg    *config.Config
	logger *slog.Logger
}

func NewRunsHandler(s store.Store, ev events.Client, ac assist.Client, eng *gate.Engine, cfg *config.Config, logger *slog.Logger) *RunsHandler {
	return &RunsHandler{store: s, events: ev, assist: ac, engine: eng, cfg: cfg, logger: logger}
}

type CreateRunRequest struct {
	Title   string         `json:"title,omitempty"`
	Intake  *store.Intake  `json:"intake,omitempty"`
	Company *store.Company `json:"company,omitempty"`
}

func (h *RunsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	run := &store.Run{
		Title: req.Title,
		Items: []*store.Item{},
		Gate:  store.Gate{Status: store.GateNotRun},
	}
	if req.Intake != nil {
		run.Intake = *req.Intake
	}
	if req.Company != nil {
		run.Company = *req.Company
	}

	if err := h.store.CreateRun(r.Context(), run); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectRunCreated(run.ID.String()), events.RunCreatedEvent{
			RunID: run.ID.String(),
			Title: run.Title,
		})
	}

	writeJSON(w, http.StatusCreated, run)
}

func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.RunFilter{}
	if s := r.URL.Query().Get("gate_status"); s != "" {
		status := store.GateStatus(s)
		filter.GateStatus = &status
	}

	runs, err := h.store.ListRuns(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (h *RunsHandler) Get(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, run)
}

type UpdateRunRequest struct {
	Title   *string        `json:"title,omitempty"`
	Intake  *store.Intake  `json:"intake,omitempty"`
	Company *store.Company `json:"company,omitempty"`
}

// Update patches intake/company metadata. Items are edited through the item
// endpoint; the gate verdict only changes on an explicit gate run.
func (h *RunsHandler) Update(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	var req UpdateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Title != nil {
		run.Title = *req.Title
	}
	if req.Intake != nil {
		run.Intake = *req.Intake
	}
	if req.Company != nil {
		run.Company = *req.Company
	}

	if err := h.store.UpdateRun(r.Context(), run); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (h *RunsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid run id"})
		return
	}
	if err := h.store.DeleteRun(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *RunsHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}
	data, err := store.EncodeSnapshot(run)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// LoadSnapshot replaces the run's state wholesale with a previously saved
// snapshot. A malformed document is rejected and the stored state is left
// untouched; there is no partial merge.
func (h *RunsHandler) LoadSnapshot(w http.ResponseWriter, r *http.Request) {
	run, ok := h.loadRun(w, r)
	if !ok {
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "read snapshot: " + err.Error()})
		return
	}
	loaded, err := store.DecodeSnapshot(data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// The snapshot keeps the stored identity and timestamps.
	loaded.ID = run.ID
	loaded.CreatedAt = run.CreatedAt

	if err := h.store.UpdateRun(r.Context(), loaded); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectRunSnapshot(loaded.ID.String()), map[string]string{"run_id": loaded.ID.String()})
	}
	writeJSON(w, http.StatusOK, loaded)
}

func (h *RunsHandler) loadRun(w http.ResponseWriter, r *http.Request) (*store.Run, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid run id"})
		return nil, false
	}
	run, err := h.store.GetRun(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	if run == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "run not found"})
		return nil, false
	}
	return run, true
}
