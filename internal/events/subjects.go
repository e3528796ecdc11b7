package events

const (
	SubjectEligibilityChecked = "proposal.eligibility.checked"

	StreamName   = "PROPOSAL_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectRunCreated(runID string) string   { return "proposal.run." + runID + ".created" }
func SubjectRunExtracted(runID string) string { return "proposal.run." + runID + ".extracted" }
func SubjectRunAudited(runID string) string   { return "proposal.run." + runID + ".audited" }
func SubjectRunGate(runID string) string      { return "proposal.run." + runID + ".gate" }
func SubjectRunSnapshot(runID string) string  { return "proposal.run." + runID + ".snapshot" }

// RunCreatedEvent announces a new proposal run.
type RunCreatedEvent struct {
	RunID string `json:"run_id"`
	Title string `json:"title,omitempty"`
}

// RunExtractedEvent reports a completed extraction pass.
type RunExtractedEvent struct {
	RunID      string `json:"run_id"`
	ItemCount  int    `json:"item_count"`
	Source     string `json:"source"` // "patterns" or "assist"
	AuditAdded int    `json:"audit_added"`
}

// GateEvaluatedEvent reports an explicit gate run.
type GateEvaluatedEvent struct {
	RunID         string   `json:"run_id"`
	Status        string   `json:"status"`
	Reasons       []string `json:"reasons,omitempty"`
	CompletionPct float64  `json:"completion_pct"`
}

// EligibilityCheckedEvent reports a matrix evaluation.
type EligibilityCheckedEvent struct {
	Verdict      string  `json:"verdict"`
	Score        float64 `json:"score"`
	HardFailures int     `json:"hard_failures"`
}
