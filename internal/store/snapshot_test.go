package store

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func sampleRun() *Run {
	now := time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC)
	gateRun := now.Add(10 * time.Minute)
	return &Run{
		ID:    uuid.MustParse("6f1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8"),
		Title: "Janitorial Services RFQ",
		Intake: Intake{
			RawText:          "The offeror shall submit a price sheet.",
			DueDate:          "09/15/2026 2:00 PM EST",
			SubmissionMethod: "email",
			SubmissionTo:     "co@agency.gov",
			Certifications:   []string{"SDVOSB"},
		},
		Company: Company{
			Name:     "Acme Federal LLC",
			UEI:      "ABC123DEF456",
			POCEmail: "bd@acme.example",
		},
		Items: []*Item{
			{ID: "R001", Text: "The offeror shall submit a price sheet.", Bucket: BucketPrice,
				GatingLabel: LabelActionable, Confidence: 0.71, Status: StatusPass, Done: true, Notes: "uploaded"},
			{ID: "R002", Text: "Proposals are due by the deadline.", Bucket: BucketSubmission,
				GatingLabel: LabelActionable, Confidence: 0.63, Status: StatusUnknown},
		},
		Gate:      Gate{Status: GatePass, LastRunAt: &gateRun},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	orig := sampleRun()
	data, err := EncodeSnapshot(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(orig, got) {
		t.Errorf("round trip not field-for-field identical:\n orig: %+v\n got:  %+v", orig, got)
	}
}

func TestDecodeSnapshotMalformedJSON(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestDecodeSnapshotMissingRunID(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"title": "no id"}`))
	if err == nil || !strings.Contains(err.Error(), "run_id") {
		t.Errorf("expected run_id error, got %v", err)
	}
}

func TestDecodeSnapshotItemMissingText(t *testing.T) {
	doc := `{
		"run_id": "6f1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8",
		"items": [{"id": "R001", "text": ""}]
	}`
	if _, err := DecodeSnapshot([]byte(doc)); err == nil {
		t.Error("expected error for item without text")
	}
}

func TestDecodeSnapshotDefaults(t *testing.T) {
	doc := `{"run_id": "6f1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8"}`
	run, err := DecodeSnapshot([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if run.Gate.Status != GateNotRun {
		t.Errorf("expected gate default %s, got %s", GateNotRun, run.Gate.Status)
	}
	if run.Items == nil {
		t.Error("expected items defaulted to empty slice")
	}
}

func TestFindItem(t *testing.T) {
	run := sampleRun()
	if it := run.FindItem("R002"); it == nil || it.ID != "R002" {
		t.Errorf("expected R002, got %v", it)
	}
	if it := run.FindItem("R999"); it != nil {
		t.Errorf("expected nil for unknown id, got %v", it)
	}
}
