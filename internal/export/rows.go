// Package export builds the flat tabular row shape consumed by the
// checklist and matrix renderers. The renderers themselves (PDF/DOCX/XLSX
// byte writers) live outside this service and take these rows as input.
package export

import "github.com/Invisble-man/path-ai-sub000/internal/store"

// Row is the serialization contract for one requirement record.
type Row struct {
	ID          string  `json:"id"`
	Bucket      string  `json:"bucket"`
	GatingLabel string  `json:"gating_label"`
	Confidence  float64 `json:"confidence"`
	Status      string  `json:"status"`
	Done        bool    `json:"done"`
	Text        string  `json:"text"`
	Notes       string  `json:"notes"`
}

// Rows flattens every item, preserving order. Tabular/matrix exports include
// all items.
func Rows(items []*store.Item) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Row{
			ID:          it.ID,
			Bucket:      string(it.Bucket),
			GatingLabel: string(it.GatingLabel),
			Confidence:  it.Confidence,
			Status:      string(it.Status),
			Done:        it.Done,
			Text:        it.Text,
			Notes:       it.Notes,
		})
	}
	return rows
}

// ChecklistRows filters to ACTIONABLE items, the contract for PDF line items.
func ChecklistRows(items []*store.Item) []Row {
	var actionable []*store.Item
	for _, it := range items {
		if it.GatingLabel == store.LabelActionable {
			actionable = append(actionable, it)
		}
	}
	return Rows(actionable)
}
