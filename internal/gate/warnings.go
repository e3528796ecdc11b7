package gate

import "strings"

// EligibilityWarnings flags certification mismatches between what the
// solicitation mentions and what the company profile carries. Warnings are
// advisory only and never block the gate.
func EligibilityWarnings(rfpCerts, companyCerts []string) []string {
	var warnings []string
	if len(rfpCerts) == 0 {
		return nil
	}
	if len(companyCerts) == 0 {
		return append(warnings, "Solicitation mentions certifications, but none are selected in the company profile.")
	}

	have := make(map[string]bool, len(companyCerts))
	for _, c := range companyCerts {
		have[strings.ToLower(c)] = true
	}
	for _, c := range rfpCerts {
		if have[strings.ToLower(c)] {
			return nil
		}
	}
	return append(warnings, "Solicitation certifications do not overlap the company's selected certifications.")
}
