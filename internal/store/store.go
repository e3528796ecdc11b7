package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GatingLabel categorizes a requirement item at classification time.
// The label is assigned once and never changes afterwards.
type GatingLabel string

const (
	LabelActionable    GatingLabel = "ACTIONABLE"
	LabelInformational GatingLabel = "INFORMATIONAL"
	LabelIrrelevant    GatingLabel = "IRRELEVANT"
	LabelAutoResolved  GatingLabel = "AUTO_RESOLVED"
)

// ItemStatus is the user-set disposition of an actionable item. It is only
// semantically consulted when the gating label is ACTIONABLE.
type ItemStatus string

const (
	StatusUnknown ItemStatus = "Unknown"
	StatusPass    ItemStatus = "Pass"
	StatusFail    ItemStatus = "Fail"
)

// Bucket is the topical section of the solicitation an item belongs to.
type Bucket string

const (
	BucketSubmission  Bucket = "Submission & Format"
	BucketForms       Bucket = "Required Forms"
	BucketTechnical   Bucket = "Volume I – Technical"
	BucketPrice       Bucket = "Volume III – Price/Cost"
	BucketAttachments Bucket = "Attachments/Exhibits"
	BucketOther       Bucket = "Other"
)

// GateStatus is the cached submission-readiness verdict of a run.
type GateStatus string

const (
	GateNotRun GateStatus = "GATE NOT RUN"
	GatePass   GateStatus = "PASS"
	GateAtRisk GateStatus = "AT RISK"
)

// Item is one tracked compliance requirement. Extracted items carry ordinal
// ids (R001, R002, ...); ids R900 and above are reserved for records
// synthesized by the critical-field auditor.
type Item struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Bucket      Bucket      `json:"bucket"`
	GatingLabel GatingLabel `json:"gating_label"`
	Confidence  float64     `json:"confidence"`
	Status      ItemStatus  `json:"status"`
	Done        bool        `json:"done"`
	Notes       string      `json:"notes"`
}

// Intake holds the raw solicitation text plus submission metadata.
type Intake struct {
	RawText          string `json:"raw_text"`
	Solicitation     string `json:"solicitation,omitempty"`
	Agency           string `json:"agency,omitempty"`
	DueDate          string `json:"due_date"`
	SubmissionMethod string `json:"submission_method"`
	SubmissionTo     string `json:"submission_to"`

	// Certifications mentioned in the solicitation text, detected at
	// extraction time.
	Certifications []string `json:"certifications,omitempty"`
}

// Company is the offeror profile consulted by the auditor and readiness checks.
type Company struct {
	Name            string   `json:"name"`
	UEI             string   `json:"uei,omitempty"`
	CAGE            string   `json:"cage,omitempty"`
	NAICS           string   `json:"naics,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
	POCName         string   `json:"poc_name,omitempty"`
	POCEmail        string   `json:"poc_email"`
	Capabilities    string   `json:"capabilities,omitempty"`
	PastPerformance string   `json:"past_performance,omitempty"`
}

// Gate is the cached verdict. It is refreshed only by an explicit gate run,
// so it can be stale relative to live counts.
type Gate struct {
	Status    GateStatus `json:"status"`
	Reasons   []string   `json:"reasons,omitempty"`
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
}

// Run is the aggregate state of one proposal effort. It is also the snapshot
// shape served and accepted by the snapshot endpoints.
type Run struct {
	ID        uuid.UUID `json:"run_id"`
	Title     string    `json:"title,omitempty"`
	Intake    Intake    `json:"intake"`
	Company   Company   `json:"company"`
	Items     []*Item   `json:"items"`
	Gate      Gate      `json:"gate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindItem returns the item with the given id, or nil.
func (r *Run) FindItem(id string) *Item {
	for _, it := range r.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

type RunFilter struct {
	GateStatus *GateStatus
	Limit      int
	Offset     int
}

type RunStats struct {
	TotalRuns  int `json:"total_runs"`
	TotalItems int `json:"total_items"`
	GateNotRun int `json:"gate_not_run"`
	GatePassed int `json:"gate_passed"`
	GateAtRisk int `json:"gate_at_risk"`
}

type Store interface {
	CreateRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id uuid.UUID) (*Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
	UpdateRun(ctx context.Context, run *Run) error
	DeleteRun(ctx context.Context, id uuid.UUID) error

	GetStats(ctx context.Context) (*RunStats, error)

	Close() error
}
