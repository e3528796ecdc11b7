package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Invisble-man/path-ai-sub000/internal/eligibility"
)

func TestEligibilityCheck(t *testing.T) {
	srv := newTestServer(t, newMockStore(), "")

	resp, data := doJSON(t, "POST", srv.URL+"/api/v1/eligibility", map[string]interface{}{
		"requirements": map[string]interface{}{
			"sam_registered": true,
			"naics":          []string{"541511", "541512"},
			"cmmc_level":     2,
		},
		"company": map[string]interface{}{
			"sam_registered": true,
			"naics":          "541512",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var summary eligibility.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, "GO", summary.Verdict)
	assert.Equal(t, 66.67, summary.Score)
	require.Len(t, summary.Rows, 3)
	assert.Equal(t, eligibility.StatusMissing, summary.Rows[0].Status) // cmmc_level
	assert.Empty(t, summary.HardFailures)
}

func TestEligibilityCheckNoGo(t *testing.T) {
	srv := newTestServer(t, newMockStore(), "")

	resp, data := doJSON(t, "POST", srv.URL+"/api/v1/eligibility", map[string]interface{}{
		"requirements": map[string]interface{}{"sdvosb": true},
		"company":      map[string]interface{}{"sdvosb": false},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var summary eligibility.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, "NO-GO", summary.Verdict)
	require.Len(t, summary.HardFailures, 1)
	assert.Equal(t, "sdvosb", summary.HardFailures[0].Key)
}

func TestEligibilityCheckValidation(t *testing.T) {
	srv := newTestServer(t, newMockStore(), "")

	resp, _ := doJSON(t, "POST", srv.URL+"/api/v1/eligibility", map[string]interface{}{
		"requirements": map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
