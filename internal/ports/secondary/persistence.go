// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// HeartbeatRepository defines the secondary port for heartbeat persistence.
type HeartbeatRepository interface {
	// Create persists a new heartbeat. Returns heartbeat.ErrDuplicateCode
	// if the code is already tracked.
	Create(ctx context.Context, record *HeartbeatRecord) error

	// GetByCode retrieves a heartbeat by its code. Returns
	// heartbeat.ErrNotFound if the code is unknown.
	GetByCode(ctx context.Context, code string) (*HeartbeatRecord, error)

	// List retrieves all heartbeats in insertion order.
	List(ctx context.Context) ([]*HeartbeatRecord, error)

	// Delete removes a heartbeat. Returns heartbeat.ErrNotFound if the
	// code is unknown; remaining records are untouched either way.
	Delete(ctx context.Context, code string) error

	// SetLastPing records the most recent ping time (epoch seconds) for a
	// heartbeat. Returns heartbeat.ErrNotFound if the code is unknown.
	SetLastPing(ctx context.Context, code string, epochSeconds int64) error

	// DeleteAll removes every heartbeat (used by snapshot import --replace).
	DeleteAll(ctx context.Context) error
}

// HeartbeatRecord represents a heartbeat as stored in persistence.
// LastPing is epoch seconds; zero means never pinged.
type HeartbeatRecord struct {
	Code            string
	LastLine        string
	NeverLine       string
	LeniencySeconds int64
	LastPing        int64
	CreatedAt       string
}

// SnapshotStore defines the secondary port for JSON snapshot files used by
// export/import.
type SnapshotStore interface {
	// Write serializes the records to the given path.
	Write(path string, records []*HeartbeatRecord) error

	// Read deserializes records from the given path, in stored order.
	Read(path string) ([]*HeartbeatRecord, error)
}
