// Package extract turns raw solicitation text into a deduplicated, ordered
// list of candidate requirement lines. It is a pure function of the text:
// no side effects, deterministic, and total over arbitrary input.
package extract

import (
	"regexp"
	"strings"
)

// MaxLines bounds extractor output against pathological input. Lines beyond
// the cap are silently dropped.
const MaxLines = 250

// signalPatterns mark a line as a candidate requirement. A line is retained
// if it matches at least one pattern, case-insensitively.
var signalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bshall\b`),
	regexp.MustCompile(`(?i)\bmust\b`),
	regexp.MustCompile(`(?i)\brequired\b`),
	regexp.MustCompile(`(?i)will be rejected`),
	regexp.MustCompile(`(?i)offer due`),
	regexp.MustCompile(`(?i)proposal shall`),
	regexp.MustCompile(`(?i)sf\s?1449`),
	regexp.MustCompile(`(?i)\battachment\b`),
	regexp.MustCompile(`(?i)\bexhibit\b`),
	regexp.MustCompile(`(?i)\bvolume\b`),
	regexp.MustCompile(`(?i)\bsection\b`),
}

// Lines splits text into trimmed non-empty lines and keeps those carrying a
// requirement signal. Duplicates collapse on a whitespace-collapsed,
// lower-cased key while preserving first-seen order.
func Lines(text string) []string {
	return LinesWithCap(text, MaxLines)
}

// LinesWithCap is Lines with a configurable output bound.
func LinesWithCap(text string, maxLines int) []string {
	if maxLines <= 0 {
		maxLines = MaxLines
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || !hasSignal(line) {
			continue
		}
		key := NormalizeKey(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, line)
		if len(out) >= maxLines {
			break
		}
	}
	return out
}

func hasSignal(line string) bool {
	for _, p := range signalPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// NormalizeKey collapses whitespace and lower-cases a line for dedupe and
// length checks.
func NormalizeKey(line string) string {
	return strings.ToLower(strings.Join(strings.Fields(line), " "))
}
