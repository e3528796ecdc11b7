package extract

import (
	"fmt"
	"strings"
	"testing"
)

func TestLinesEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n\t\n"} {
		if got := Lines(text); len(got) != 0 {
			t.Errorf("expected no lines for %q, got %d", text, len(got))
		}
	}
}

func TestLinesKeepsSignalLines(t *testing.T) {
	text := "The offeror shall submit a technical volume.\n" +
		"This page intentionally left blank number nine.\n" +
		"Attachment 3 contains the pricing template.\n" +
		"Nothing to see here at all today friends."
	got := Lines(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(got), got)
	}
	if got[0] != "The offeror shall submit a technical volume." {
		t.Errorf("unexpected first line: %q", got[0])
	}
	if got[1] != "Attachment 3 contains the pricing template." {
		t.Errorf("unexpected second line: %q", got[1])
	}
}

func TestLinesDedupeIsCaseAndWhitespaceInsensitive(t *testing.T) {
	text := "Shall  submit\nshall submit\nSHALL SUBMIT   "
	got := Lines(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 line after dedupe, got %d: %v", len(got), got)
	}
	// first-seen form wins
	if got[0] != "Shall  submit" {
		t.Errorf("expected first-seen form, got %q", got[0])
	}
}

func TestLinesDeterministic(t *testing.T) {
	text := "The contractor shall deliver monthly reports.\nSection L applies.\nExhibit A is attached."
	first := Lines(text)
	second := Lines(text)
	if len(first) != len(second) {
		t.Fatalf("non-deterministic length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestLinesCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxLines+50; i++ {
		fmt.Fprintf(&b, "The contractor shall deliver item number %d on schedule.\n", i)
	}
	got := Lines(b.String())
	if len(got) != MaxLines {
		t.Errorf("expected output capped at %d, got %d", MaxLines, len(got))
	}
}

func TestLinesWithCapOverride(t *testing.T) {
	text := "The offeror shall do one thing.\nThe offeror must do another thing.\nThe offeror shall do a third thing."
	got := LinesWithCap(text, 2)
	if len(got) != 2 {
		t.Errorf("expected 2 lines with cap 2, got %d", len(got))
	}
}

func TestNormalizeKey(t *testing.T) {
	if NormalizeKey("  Shall \t Submit  ") != "shall submit" {
		t.Errorf("unexpected key: %q", NormalizeKey("  Shall \t Submit  "))
	}
}
