package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Metadata holds submission details detected from raw solicitation text.
// Detection is best-effort: empty fields simply mean nothing matched, and the
// critical-field auditor turns those gaps into actionable items.
type Metadata struct {
	DueDate         string   `json:"due_date,omitempty"`
	SubmissionEmail string   `json:"submission_email,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
}

var (
	emailRe = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)

	dueDateRe = regexp.MustCompile(
		`(?i)offer due date\s*/?\s*local\s*time\s*[:\-]?\s*(\d{1,2}/\d{1,2}/\d{2,4})\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?)?\s*([A-Z]{2,4})?`)

	certKeywords = []string{
		"SDVOSB", "8(a)", "HUBZone", "WOSB", "EDWOSB",
		"CMMC", "ISO", "SAM", "UEI", "CAGE",
	}
)

// DetectMetadata scans text for a due date, a submission email and
// certification mentions.
func DetectMetadata(text string) Metadata {
	return Metadata{
		DueDate:         findDueDate(text),
		SubmissionEmail: firstEmail(text),
		Certifications:  detectCertifications(text),
	}
}

func findDueDate(text string) string {
	m := dueDateRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	var parts []string
	for _, p := range m[1:] {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func firstEmail(text string) string {
	return emailRe.FindString(text)
}

func detectCertifications(text string) []string {
	upper := strings.ToUpper(text)
	var found []string
	for _, k := range certKeywords {
		if strings.Contains(upper, strings.ToUpper(k)) {
			found = append(found, k)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return strings.ToLower(found[i]) < strings.ToLower(found[j])
	})
	return found
}
