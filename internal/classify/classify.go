// Package classify assigns each candidate requirement line a gating label
// with a confidence score, and a topical bucket. Both classifiers are pure,
// deterministic, and total: every string hits exactly one outcome.
package classify

import (
	"math"
	"strings"

	"github.com/Invisble-man/path-ai-sub000/internal/extract"
	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

// Result is one gating decision.
type Result struct {
	Label      store.GatingLabel `json:"gating_label"`
	Confidence float64           `json:"confidence"`
}

// minMeaningfulLength is the normalized length below which a line is treated
// as extraction noise.
const minMeaningfulLength = 12

var obligationWords = []string{"shall", "must", "required"}

var liabilityPhrases = []string{"government shall not be liable", "not liable"}

// actionableSignals are the corroborating phrases that push an obligation
// line from informational to actionable. Confidence scales with match count.
var actionableSignals = []string{
	"shall submit",
	"shall provide",
	"shall deliver",
	"offer due",
	"due date",
	"deadline",
	"submission",
	"submit via",
	"attachment",
	"exhibit",
	"sf1449",
	"sf 1449",
	"pricing",
	"price sheet",
	"cost proposal",
	"page limit",
	"font",
	"margin",
	"electronic format",
}

// lineContext carries the derived features a gating rule consults.
type lineContext struct {
	norm          string
	hasObligation bool
	signalScore   int
}

// gatingRule pairs a predicate with its outcome. Rules are evaluated
// top-to-bottom with early exit; the order is load-bearing.
type gatingRule struct {
	name    string
	match   func(c *lineContext) bool
	outcome func(c *lineContext) Result
}

var gatingRules = []gatingRule{
	{
		// Liability boilerplate needs no user action.
		name: "liability_disclaimer",
		match: func(c *lineContext) bool {
			for _, p := range liabilityPhrases {
				if strings.Contains(c.norm, p) {
					return true
				}
			}
			return false
		},
		outcome: func(c *lineContext) Result {
			return Result{Label: store.LabelAutoResolved, Confidence: 0.85}
		},
	},
	{
		name:  "too_short",
		match: func(c *lineContext) bool { return len(c.norm) < minMeaningfulLength },
		outcome: func(c *lineContext) Result {
			return Result{Label: store.LabelIrrelevant, Confidence: 0.75}
		},
	},
	{
		name:  "obligation_with_signal",
		match: func(c *lineContext) bool { return c.hasObligation && c.signalScore >= 1 },
		outcome: func(c *lineContext) Result {
			conf := math.Min(0.55+0.08*float64(c.signalScore), 0.95)
			return Result{Label: store.LabelActionable, Confidence: round2(conf)}
		},
	},
	{
		name:  "obligation_only",
		match: func(c *lineContext) bool { return c.hasObligation },
		outcome: func(c *lineContext) Result {
			return Result{Label: store.LabelInformational, Confidence: 0.55}
		},
	},
	{
		name:  "default",
		match: func(c *lineContext) bool { return true },
		outcome: func(c *lineContext) Result {
			return Result{Label: store.LabelInformational, Confidence: 0.45}
		},
	},
}

// Classify returns the gating label and confidence for one line.
func Classify(text string) Result {
	c := newLineContext(text)
	for _, r := range gatingRules {
		if r.match(c) {
			return r.outcome(c)
		}
	}
	// unreachable: the default rule always matches
	return Result{Label: store.LabelInformational, Confidence: 0.45}
}

func newLineContext(text string) *lineContext {
	norm := extract.NormalizeKey(text)
	c := &lineContext{norm: norm}
	for _, w := range obligationWords {
		if strings.Contains(norm, w) {
			c.hasObligation = true
			break
		}
	}
	for _, s := range actionableSignals {
		if strings.Contains(norm, s) {
			c.signalScore++
		}
	}
	return c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
