// Package audit synthesizes high-priority requirement records from missing
// intake and company metadata, independent of the text extractor.
package audit

import (
	"fmt"
	"strings"

	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

// reservedBase is the start of the id namespace for synthesized records.
// Ids are keyed by check index, not a counter, so re-running the auditor is
// naturally idempotent.
const reservedBase = 900

// Check pairs a human label with a predicate over run state.
type Check struct {
	Label string
	Met   func(run *store.Run) bool
}

// Checks is the fixed, ordered critical-field list. Index order determines
// the reserved id of each synthesized record.
var Checks = []Check{
	{"Due date present", func(r *store.Run) bool { return filled(r.Intake.DueDate) }},
	{"Submission method present", func(r *store.Run) bool { return filled(r.Intake.SubmissionMethod) }},
	{"Submission destination present", func(r *store.Run) bool { return filled(r.Intake.SubmissionTo) }},
	{"Company name present", func(r *store.Run) bool { return filled(r.Company.Name) }},
	{"POC email present", func(r *store.Run) bool { return filled(r.Company.POCEmail) }},
}

// Apply inserts one ACTIONABLE record per failing check, at the front of the
// item list so critical gaps surface first. Insertion is idempotent on the
// reserved id. A record whose check now passes is reconciled in place
// (marked Pass and done) instead of being removed, preserving user notes.
// Returns the number of records added.
func Apply(run *store.Run) int {
	added := 0
	var fresh []*store.Item

	for i, check := range Checks {
		id := fmt.Sprintf("R%d", reservedBase+i)
		existing := run.FindItem(id)
		met := check.Met(run)

		if met {
			if existing != nil && existing.Status == store.StatusUnknown && !existing.Done {
				existing.Status = store.StatusPass
				existing.Done = true
				if existing.Notes == "" {
					existing.Notes = "Resolved: field now populated."
				}
			}
			continue
		}
		if existing != nil {
			continue
		}

		fresh = append(fresh, &store.Item{
			ID:          id,
			Text:        "Resolve missing critical field: " + strings.TrimSuffix(check.Label, " present"),
			Bucket:      bucketForLabel(check.Label),
			GatingLabel: store.LabelActionable,
			Confidence:  0.95,
			Status:      store.StatusUnknown,
		})
		added++
	}

	if len(fresh) > 0 {
		run.Items = append(fresh, run.Items...)
	}
	return added
}

func bucketForLabel(label string) store.Bucket {
	if strings.Contains(label, "Submission") || strings.Contains(label, "Due") {
		return store.BucketSubmission
	}
	return store.BucketForms
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
