// Package gate derives counts, a completion percentage, and a tri-state
// submission-readiness verdict from a run's item list. Counts and completion
// are always computed live; only the verdict is cached, and only on an
// explicit gate run.
package gate

import (
	"fmt"
	"math"

	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

// Thresholds hold the gate's strict conjunctive PASS conditions. Any single
// violated threshold blocks PASS.
type Thresholds struct {
	MaxUnknown       int
	MinCompletionPct float64
	DraftReadyPct    float64
}

// DefaultThresholds returns the shipped gate policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxUnknown:       2,
		MinCompletionPct: 90.0,
		DraftReadyPct:    70.0,
	}
}

// Validate rejects threshold sets that could never pass or never block.
func (t Thresholds) Validate() error {
	if t.MaxUnknown < 0 {
		return fmt.Errorf("max_unknown must be >= 0, got %d", t.MaxUnknown)
	}
	if t.MinCompletionPct < 0 || t.MinCompletionPct > 100 {
		return fmt.Errorf("min_completion_pct must be in [0,100], got %.1f", t.MinCompletionPct)
	}
	if t.DraftReadyPct < 0 || t.DraftReadyPct > 100 {
		return fmt.Errorf("draft_ready_pct must be in [0,100], got %.1f", t.DraftReadyPct)
	}
	return nil
}

// Counts are tallied over actionable items only.
type Counts struct {
	Pass    int `json:"pass"`
	Fail    int `json:"fail"`
	Unknown int `json:"unknown"`
	Done    int `json:"done"`
	Total   int `json:"total"`
}

// Verdict is one gate evaluation. Reasons carry the specific violated
// conditions so an AT RISK outcome is diagnosable.
type Verdict struct {
	Status  store.GateStatus `json:"status"`
	Reasons []string         `json:"reasons,omitempty"`
}

// Engine evaluates gate verdicts against a fixed threshold set.
type Engine struct {
	thresholds Thresholds
}

func NewEngine(t Thresholds) *Engine {
	return &Engine{thresholds: t}
}

// Actionable filters to the items the gate consults.
func Actionable(items []*store.Item) []*store.Item {
	var out []*store.Item
	for _, it := range items {
		if it.GatingLabel == store.LabelActionable {
			out = append(out, it)
		}
	}
	return out
}

// Tally counts status and done fields over actionable items.
func Tally(items []*store.Item) Counts {
	var c Counts
	for _, it := range Actionable(items) {
		c.Total++
		switch it.Status {
		case store.StatusPass:
			c.Pass++
		case store.StatusFail:
			c.Fail++
		default:
			c.Unknown++
		}
		if it.Done {
			c.Done++
		}
	}
	return c
}

// CompletionPct is the live completion percentage, one decimal. An item
// counts as completed when it has a formal status or a manual done mark.
func CompletionPct(items []*store.Item) float64 {
	actionable := Actionable(items)
	if len(actionable) == 0 {
		return 0.0
	}
	completed := 0
	for _, it := range actionable {
		if it.Status != store.StatusUnknown || it.Done {
			completed++
		}
	}
	return round1(100 * float64(completed) / float64(len(actionable)))
}

// Evaluate computes the tri-state verdict. PASS requires zero failures, at
// most MaxUnknown undecided items, and completion at or above the floor;
// everything else collapses to AT RISK, with the violated conditions listed.
func (e *Engine) Evaluate(items []*store.Item) Verdict {
	counts := Tally(items)
	if counts.Total == 0 {
		return Verdict{Status: store.GateNotRun}
	}

	completion := CompletionPct(items)
	var reasons []string
	if counts.Fail > 0 {
		reasons = append(reasons, fmt.Sprintf("%d item(s) marked Fail", counts.Fail))
	}
	if counts.Unknown > e.thresholds.MaxUnknown {
		reasons = append(reasons, fmt.Sprintf("%d unknown item(s) exceed limit of %d", counts.Unknown, e.thresholds.MaxUnknown))
	}
	if completion < e.thresholds.MinCompletionPct {
		reasons = append(reasons, fmt.Sprintf("completion %.1f%% below %.1f%%", completion, e.thresholds.MinCompletionPct))
	}

	if len(reasons) > 0 {
		return Verdict{Status: store.GateAtRisk, Reasons: reasons}
	}
	return Verdict{Status: store.GatePass}
}

// --- Readiness thresholds consumed by callers ---

// CompanyProfileComplete requires a name and a POC email.
func CompanyProfileComplete(c store.Company) bool {
	return c.Name != "" && c.POCEmail != ""
}

// ComplianceReady requires a non-empty item list.
func ComplianceReady(items []*store.Item) bool {
	return len(items) > 0
}

// DraftReady requires completion at or above the draft floor.
func (e *Engine) DraftReady(items []*store.Item) bool {
	return CompletionPct(items) >= e.thresholds.DraftReadyPct
}

// ExportReady additionally requires that the gate has been run at least once.
func (e *Engine) ExportReady(items []*store.Item, g store.Gate) bool {
	return e.DraftReady(items) && (g.Status == store.GatePass || g.Status == store.GateAtRisk)
}

// CompanyCompletionPct is the share of filled profile fields, whole percent.
func CompanyCompletionPct(c store.Company) int {
	fields := []string{
		c.Name, c.UEI, c.CAGE, c.NAICS,
		c.POCName, c.POCEmail, c.Capabilities, c.PastPerformance,
	}
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	if len(c.Certifications) > 0 {
		filled++
	}
	return int(math.Round(100 * float64(filled) / float64(len(fields)+1)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
