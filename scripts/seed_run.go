// seed_run.go — standalone script to push a solicitation text file through
// the API and print the resulting checklist and gate verdict.
//
// Usage:
//
//	go run scripts/seed_run.go -text /path/to/solicitation.txt -api http://localhost:8700 -title "RFP 70B03C23R00000012"
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

type runResponse struct {
	RunID string `json:"run_id"`
	Items []struct {
		ID          string  `json:"id"`
		Bucket      string  `json:"bucket"`
		GatingLabel string  `json:"gating_label"`
		Confidence  float64 `json:"confidence"`
		Text        string  `json:"text"`
	} `json:"items"`
	Gate struct {
		Status  string   `json:"status"`
		Reasons []string `json:"reasons"`
	} `json:"gate"`
}

func main() {
	textPath := flag.String("text", "", "path to solicitation text file")
	apiURL := flag.String("api", "http://localhost:8700", "API base URL")
	title := flag.String("title", "", "run title")
	runGate := flag.Bool("gate", true, "run the gate check after extraction")
	flag.Parse()

	if *textPath == "" {
		log.Fatal("-text is required")
	}
	raw, err := os.ReadFile(*textPath)
	if err != nil {
		log.Fatalf("read text file: %v", err)
	}

	var run runResponse
	post(*apiURL+"/api/v1/runs", map[string]string{"title": *title}, &run)
	fmt.Printf("created run %s\n", run.RunID)

	post(*apiURL+"/api/v1/runs/"+run.RunID+"/extract", map[string]string{"text": string(raw)}, &run)
	fmt.Printf("extracted %d items:\n", len(run.Items))
	for _, it := range run.Items {
		fmt.Printf("  %s  %-13s  %.2f  [%s]  %s\n", it.ID, it.GatingLabel, it.Confidence, it.Bucket, truncate(it.Text, 80))
	}

	if *runGate {
		var gate struct {
			Status  string   `json:"status"`
			Reasons []string `json:"reasons"`
		}
		post(*apiURL+"/api/v1/runs/"+run.RunID+"/gate", nil, &gate)
		fmt.Printf("gate: %s\n", gate.Status)
		for _, reason := range gate.Reasons {
			fmt.Printf("  - %s\n", reason)
		}
	}
}

func post(url string, body interface{}, out interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		log.Fatalf("POST %s: %d %s", url, resp.StatusCode, string(data))
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			log.Fatalf("decode response from %s: %v", url, err)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
