package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

func TestAdminStatsRequiresToken(t *testing.T) {
	ms := newMockStore()
	srv := newTestServer(t, ms, "admin-secret")

	resp, _ := doJSON(t, "GET", srv.URL+"/api/v1/stats", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestAdminStats(t *testing.T) {
	ms := newMockStore()
	srv := newTestServer(t, ms, "")
	run := createRun(t, srv, nil)
	ms.runs[run.ID].Gate.Status = store.GatePass
	ms.runs[run.ID].Items = []*store.Item{{ID: "R001", Text: "x"}}
	createRun(t, srv, nil)

	resp, data := doJSON(t, "GET", srv.URL+"/api/v1/stats", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats: %d %s", resp.StatusCode, data)
	}
	var stats store.RunStats
	if err := json.Unmarshal(data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalRuns != 2 || stats.TotalItems != 1 || stats.GatePassed != 1 || stats.GateNotRun != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
