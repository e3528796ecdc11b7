package audit

import (
	"strings"
	"testing"

	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

func emptyRun() *store.Run {
	return &store.Run{}
}

func TestApplySynthesizesAllMissing(t *testing.T) {
	run := emptyRun()
	added := Apply(run)
	if added != len(Checks) {
		t.Fatalf("expected %d records added, got %d", len(Checks), added)
	}
	if len(run.Items) != len(Checks) {
		t.Fatalf("expected %d items, got %d", len(Checks), len(run.Items))
	}
	for i, it := range run.Items {
		wantID := "R90" + string(rune('0'+i))
		if it.ID != wantID {
			t.Errorf("item %d: expected id %s, got %s", i, wantID, it.ID)
		}
		if it.GatingLabel != store.LabelActionable {
			t.Errorf("item %s: expected ACTIONABLE, got %s", it.ID, it.GatingLabel)
		}
		if it.Confidence != 0.95 {
			t.Errorf("item %s: expected confidence 0.95, got %.2f", it.ID, it.Confidence)
		}
		if !strings.HasPrefix(it.Text, "Resolve missing critical field: ") {
			t.Errorf("item %s: unexpected text %q", it.ID, it.Text)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	run := emptyRun()
	Apply(run)
	n := len(run.Items)
	added := Apply(run)
	if added != 0 {
		t.Errorf("expected 0 records on second run, got %d", added)
	}
	if len(run.Items) != n {
		t.Errorf("expected %d items after second run, got %d", n, len(run.Items))
	}
}

func TestApplyPrependsBeforeExtractedItems(t *testing.T) {
	run := emptyRun()
	run.Items = []*store.Item{{ID: "R001", Text: "The offeror shall submit a price sheet."}}
	Apply(run)
	if run.Items[len(run.Items)-1].ID != "R001" {
		t.Errorf("extracted item should stay last, got %s", run.Items[len(run.Items)-1].ID)
	}
	if run.Items[0].ID != "R900" {
		t.Errorf("synthesized records should lead, got %s", run.Items[0].ID)
	}
}

func TestApplySkipsFilledFields(t *testing.T) {
	run := emptyRun()
	run.Intake.DueDate = "09/15/2026 2:00 PM EST"
	run.Company.Name = "Acme Federal LLC"
	added := Apply(run)
	if added != len(Checks)-2 {
		t.Errorf("expected %d records, got %d", len(Checks)-2, added)
	}
	if run.FindItem("R900") != nil {
		t.Error("due date record synthesized despite field being set")
	}
	if run.FindItem("R903") != nil {
		t.Error("company name record synthesized despite field being set")
	}
}

func TestApplyReconcilesFilledField(t *testing.T) {
	run := emptyRun()
	Apply(run)

	run.Intake.DueDate = "09/15/2026 2:00 PM EST"
	Apply(run)

	rec := run.FindItem("R900")
	if rec == nil {
		t.Fatal("due date record missing")
	}
	if rec.Status != store.StatusPass || !rec.Done {
		t.Errorf("expected record reconciled to Pass/done, got %s done=%v", rec.Status, rec.Done)
	}
	if rec.Notes == "" {
		t.Error("expected a reconciliation note")
	}
}

func TestApplyReconcileKeepsUserNotes(t *testing.T) {
	run := emptyRun()
	Apply(run)
	run.FindItem("R900").Notes = "confirmed with the CO"

	run.Intake.DueDate = "09/15/2026"
	Apply(run)
	if got := run.FindItem("R900").Notes; got != "confirmed with the CO" {
		t.Errorf("user notes overwritten: %q", got)
	}
}

func TestApplyBucketMapping(t *testing.T) {
	run := emptyRun()
	Apply(run)
	wantBuckets := map[string]store.Bucket{
		"R900": store.BucketSubmission, // due date
		"R901": store.BucketSubmission, // submission method
		"R902": store.BucketSubmission, // submission destination
		"R903": store.BucketForms,      // company name
		"R904": store.BucketForms,      // poc email
	}
	for id, want := range wantBuckets {
		it := run.FindItem(id)
		if it == nil {
			t.Fatalf("record %s missing", id)
		}
		if it.Bucket != want {
			t.Errorf("record %s: expected bucket %s, got %s", id, want, it.Bucket)
		}
	}
}
