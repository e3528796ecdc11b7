package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// EncodeSnapshot serializes a run to the persisted snapshot document.
// Decoding the result reproduces a field-for-field identical run.
func EncodeSnapshot(run *Run) ([]byte, error) {
	return json.MarshalIndent(run, "", "  ")
}

// DecodeSnapshot parses and validates a snapshot document. A malformed
// snapshot returns an error and no partial state.
func DecodeSnapshot(data []byte) (*Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if run.ID == uuid.Nil {
		return nil, fmt.Errorf("snapshot missing run_id")
	}
	if run.Gate.Status == "" {
		run.Gate.Status = GateNotRun
	}
	if run.Items == nil {
		run.Items = []*Item{}
	}
	for _, it := range run.Items {
		if it.ID == "" || it.Text == "" {
			return nil, fmt.Errorf("snapshot item missing id or text")
		}
		if it.Status == "" {
			it.Status = StatusUnknown
		}
	}
	return &run, nil
}
