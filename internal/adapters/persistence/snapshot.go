// Package persistence contains file-based adapters for secondary ports.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/hb/internal/ports/secondary"
)

// SnapshotStore implements secondary.SnapshotStore with JSON files.
// The on-disk layout is a mapping from code to record plus an order list,
// so a snapshot round-trips both field values and display order exactly.
type SnapshotStore struct{}

// NewSnapshotStore creates a new JSON snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

type snapshotFile struct {
	Version    string                    `json:"version"`
	Order      []string                  `json:"order"`
	Heartbeats map[string]snapshotRecord `json:"heartbeats"`
}

type snapshotRecord struct {
	LastLine        string `json:"last_line"`
	NeverLine       string `json:"never_line"`
	LeniencySeconds int64  `json:"leniency_seconds"`
	LastPing        *int64 `json:"last_ping,omitempty"`
}

// Write serializes the records to the given path.
func (s *SnapshotStore) Write(path string, records []*secondary.HeartbeatRecord) error {
	file := snapshotFile{
		Version:    "1",
		Order:      make([]string, 0, len(records)),
		Heartbeats: make(map[string]snapshotRecord, len(records)),
	}

	for _, r := range records {
		file.Order = append(file.Order, r.Code)
		rec := snapshotRecord{
			LastLine:        r.LastLine,
			NeverLine:       r.NeverLine,
			LeniencySeconds: r.LeniencySeconds,
		}
		if r.LastPing != 0 {
			ping := r.LastPing
			rec.LastPing = &ping
		}
		file.Heartbeats[r.Code] = rec
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// Read deserializes records from the given path, in stored order.
func (s *SnapshotStore) Read(path string) ([]*secondary.HeartbeatRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	records := make([]*secondary.HeartbeatRecord, 0, len(file.Order))
	for _, code := range file.Order {
		rec, ok := file.Heartbeats[code]
		if !ok {
			return nil, fmt.Errorf("snapshot order references unknown code %q", code)
		}
		record := &secondary.HeartbeatRecord{
			Code:            code,
			LastLine:        rec.LastLine,
			NeverLine:       rec.NeverLine,
			LeniencySeconds: rec.LeniencySeconds,
		}
		if rec.LastPing != nil {
			record.LastPing = *rec.LastPing
		}
		records = append(records, record)
	}

	return records, nil
}

// Ensure SnapshotStore implements the interface
var _ secondary.SnapshotStore = (*SnapshotStore)(nil)
