// Package primary defines the primary ports (driving interfaces) for the
// application.
package primary

import (
	"context"
	"time"
)

// HeartbeatService defines the primary port for heartbeat operations.
type HeartbeatService interface {
	// Add creates a new tracked heartbeat with no ping recorded yet.
	Add(ctx context.Context, req AddHeartbeatRequest) (*Heartbeat, error)

	// Remove deletes a heartbeat by code.
	Remove(ctx context.Context, code string) error

	// Ping records now as the last time the heartbeat's action was done.
	Ping(ctx context.Context, code string, now time.Time) error

	// Get retrieves a single heartbeat by code.
	Get(ctx context.Context, code string) (*Heartbeat, error)

	// List retrieves all heartbeats in insertion order.
	List(ctx context.Context) ([]*Heartbeat, error)

	// Render produces the display line for one heartbeat: the never line
	// verbatim if never pinged, otherwise the last line template filled
	// with the humanized elapsed time.
	Render(ctx context.Context, code string, now time.Time) (string, error)

	// Status produces the generic status line for one heartbeat
	// ("CODE was last done ... ago" / "CODE has never been done").
	Status(ctx context.Context, code string, now time.Time) (string, error)

	// Report renders every heartbeat for the MOTD, flagging overdue and
	// never-pinged entries.
	Report(ctx context.Context, now time.Time) ([]*HeartbeatStatus, error)

	// Export writes all heartbeats to a JSON snapshot file.
	Export(ctx context.Context, path string) (int, error)

	// Import loads heartbeats from a JSON snapshot file. With replace set,
	// existing heartbeats are dropped first; otherwise duplicates fail.
	Import(ctx context.Context, path string, replace bool) (int, error)
}

// AddHeartbeatRequest contains the validated-at-the-boundary fields for a
// new heartbeat. Validation failures surface as heartbeat.ErrMalformedRecord.
type AddHeartbeatRequest struct {
	Code            string
	LastLine        string // template with exactly one %s
	NeverLine       string
	LeniencySeconds int64
}

// Heartbeat represents a heartbeat entity at the port boundary.
// LastPing is zero while the heartbeat has never been pinged.
type Heartbeat struct {
	Code            string
	LastLine        string
	NeverLine       string
	LeniencySeconds int64
	LastPing        time.Time
	CreatedAt       string
}

// Pinged reports whether the heartbeat has ever been pinged.
func (h *Heartbeat) Pinged() bool {
	return !h.LastPing.IsZero()
}

// HeartbeatStatus is one rendered MOTD entry.
type HeartbeatStatus struct {
	Code        string
	Line        string
	Overdue     bool
	NeverPinged bool
}
