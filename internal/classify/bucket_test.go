package classify

import (
	"testing"

	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want store.Bucket
	}{
		{"sf1449 form", "Complete blocks 12 through 17 of SF 1449.", store.BucketForms},
		{"pricing", "Volume III contains the cost proposal spreadsheet.", store.BucketPrice},
		{"technical volume", "Volume I describes the technical approach.", store.BucketTechnical},
		{"attachment", "See Exhibit B for the wage determination.", store.BucketAttachments},
		{"submission", "Proposals are due by 2:00 PM local time.", store.BucketSubmission},
		{"other", "The agency thanks all interested parties.", store.BucketOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketFor(tt.text); got != tt.want {
				t.Errorf("BucketFor(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestBucketPriorityPriceBeforeSubmission(t *testing.T) {
	// Contains both price and format words; price is checked first.
	got := BucketFor("The offeror shall submit a price sheet in electronic format.")
	if got != store.BucketPrice {
		t.Errorf("expected %s, got %s", store.BucketPrice, got)
	}
}

func TestBucketPriorityFormsBeforePrice(t *testing.T) {
	got := BucketFor("Pricing must be entered in block 23 of the form.")
	if got != store.BucketForms {
		t.Errorf("expected %s, got %s", store.BucketForms, got)
	}
}

func TestBucketFormDoesNotMatchFormat(t *testing.T) {
	got := BucketFor("Submissions must follow the required format.")
	if got != store.BucketSubmission {
		t.Errorf("expected %s, got %s", store.BucketSubmission, got)
	}
}
