package classify

import (
	"regexp"

	"github.com/Invisble-man/path-ai-sub000/internal/extract"
	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

// bucketRule maps keyword hits to a topical bucket. Like the gating chain,
// first match wins: price words are checked before submission words, so a
// "price sheet in electronic format" lands in Price/Cost. Word boundaries
// keep "form" from matching "format".
type bucketRule struct {
	bucket  store.Bucket
	pattern *regexp.Regexp
}

var bucketRules = []bucketRule{
	{store.BucketForms, regexp.MustCompile(`sf\s?1449|\bforms?\b|\bblocks?\b`)},
	{store.BucketPrice, regexp.MustCompile(`\bprices?\b|\bpricing\b|\bcosts?\b|\bspreadsheets?\b|\bclins?\b`)},
	{store.BucketTechnical, regexp.MustCompile(`\bvolume i\b|\btechnical\b|\bapproach\b`)},
	{store.BucketAttachments, regexp.MustCompile(`\battachments?\b|\bexhibits?\b`)},
	{store.BucketSubmission, regexp.MustCompile(`\bdue\b|\bdeadline\b|\bsubmit\b|\bsubmission\b|\bformat\b|\bfonts?\b|\bmargins?\b|page limit|\bemail\b`)},
}

// BucketFor assigns the topical bucket for a line, independent of its gating
// label.
func BucketFor(text string) store.Bucket {
	norm := extract.NormalizeKey(text)
	for _, r := range bucketRules {
		if r.pattern.MatchString(norm) {
			return r.bucket
		}
	}
	return store.BucketOther
}
