// Package assist talks to an optional external extraction/drafting service.
// The core never depends on it being available: a missing or failing
// producer yields zero requirements, and the pattern pipeline takes over.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Requirement is the record shape the external producer emits. It is
// compatible with the internal item shape and gets re-classified on ingest.
type Requirement struct {
	RequirementID string `json:"requirement_id"`
	Requirement   string `json:"requirement"`
	Status        string `json:"status,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Owner         string `json:"owner,omitempty"`
	Evidence      string `json:"evidence,omitempty"`
}

type Client interface {
	ExtractRequirements(ctx context.Context, text string) ([]Requirement, error)
	Enabled() bool
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) Enabled() bool {
	return c.baseURL != ""
}

// ExtractRequirements posts the solicitation text and returns the producer's
// requirement list. An unconfigured client returns zero requirements.
func (c *HTTPClient) ExtractRequirements(ctx context.Context, text string) ([]Requirement, error) {
	if !c.Enabled() {
		return nil, nil
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/extract", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("assist: %d %s", resp.StatusCode, string(body))
	}

	var out struct {
		Requirements []Requirement `json:"requirements"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("assist: decode response: %w", err)
	}

	var reqs []Requirement
	for _, r := range out.Requirements {
		if strings.TrimSpace(r.Requirement) == "" {
			continue
		}
		reqs = append(reqs, r)
	}
	return reqs, nil
}
