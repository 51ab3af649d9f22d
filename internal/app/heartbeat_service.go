// Package app contains the service implementations behind the primary ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/hb/internal/core/heartbeat"
	"github.com/example/hb/internal/ports/primary"
	"github.com/example/hb/internal/ports/secondary"
)

// HeartbeatServiceImpl implements the HeartbeatService interface.
type HeartbeatServiceImpl struct {
	repo      secondary.HeartbeatRepository
	snapshots secondary.SnapshotStore
}

// NewHeartbeatService creates a new HeartbeatService with injected dependencies.
func NewHeartbeatService(repo secondary.HeartbeatRepository, snapshots secondary.SnapshotStore) *HeartbeatServiceImpl {
	return &HeartbeatServiceImpl{
		repo:      repo,
		snapshots: snapshots,
	}
}

// Add creates a new tracked heartbeat with no ping recorded yet.
func (s *HeartbeatServiceImpl) Add(ctx context.Context, req primary.AddHeartbeatRequest) (*primary.Heartbeat, error) {
	if err := heartbeat.Validate(req.Code, req.LastLine, req.NeverLine, req.LeniencySeconds); err != nil {
		return nil, err
	}

	record := &secondary.HeartbeatRecord{
		Code:            req.Code,
		LastLine:        req.LastLine,
		NeverLine:       req.NeverLine,
		LeniencySeconds: req.LeniencySeconds,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created heartbeat: %w", err)
	}

	return recordToHeartbeat(created), nil
}

// Remove deletes a heartbeat by code.
func (s *HeartbeatServiceImpl) Remove(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

// Ping records now as the last time the heartbeat's action was done.
func (s *HeartbeatServiceImpl) Ping(ctx context.Context, code string, now time.Time) error {
	return s.repo.SetLastPing(ctx, code, now.Unix())
}

// Get retrieves a single heartbeat by code.
func (s *HeartbeatServiceImpl) Get(ctx context.Context, code string) (*primary.Heartbeat, error) {
	record, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return recordToHeartbeat(record), nil
}

// List retrieves all heartbeats in insertion order.
func (s *HeartbeatServiceImpl) List(ctx context.Context) ([]*primary.Heartbeat, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heartbeats: %w", err)
	}

	beats := make([]*primary.Heartbeat, len(records))
	for i, r := range records {
		beats[i] = recordToHeartbeat(r)
	}
	return beats, nil
}

// Render produces the display line for one heartbeat.
func (s *HeartbeatServiceImpl) Render(ctx context.Context, code string, now time.Time) (string, error) {
	record, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return heartbeat.Render(recordToCore(record), now.Unix()), nil
}

// Status produces the generic status line for one heartbeat.
func (s *HeartbeatServiceImpl) Status(ctx context.Context, code string, now time.Time) (string, error) {
	record, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return heartbeat.StatusLine(recordToCore(record), now.Unix()), nil
}

// Report renders every heartbeat for the MOTD.
func (s *HeartbeatServiceImpl) Report(ctx context.Context, now time.Time) ([]*primary.HeartbeatStatus, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heartbeats: %w", err)
	}

	statuses := make([]*primary.HeartbeatStatus, len(records))
	for i, r := range records {
		core := recordToCore(r)
		statuses[i] = &primary.HeartbeatStatus{
			Code:        r.Code,
			Line:        heartbeat.Render(core, now.Unix()),
			Overdue:     heartbeat.IsOverdue(core, now.Unix()),
			NeverPinged: r.LastPing == 0,
		}
	}
	return statuses, nil
}

// Export writes all heartbeats to a JSON snapshot file and returns the
// number of records written.
func (s *HeartbeatServiceImpl) Export(ctx context.Context, path string) (int, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list heartbeats: %w", err)
	}

	if err := s.snapshots.Write(path, records); err != nil {
		return 0, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return len(records), nil
}

// Import loads heartbeats from a JSON snapshot file and returns the number
// of records imported. Every record is validated and, unless replace is set,
// checked against the codes already in the store before any insert happens,
// so a malformed or conflicting snapshot never partially imports.
func (s *HeartbeatServiceImpl) Import(ctx context.Context, path string, replace bool) (int, error) {
	records, err := s.snapshots.Read(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot: %w", err)
	}

	for _, r := range records {
		if err := heartbeat.Validate(r.Code, r.LastLine, r.NeverLine, r.LeniencySeconds); err != nil {
			return 0, err
		}
	}

	if replace {
		if err := s.repo.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("failed to clear heartbeats: %w", err)
		}
	} else {
		for _, r := range records {
			_, err := s.repo.GetByCode(ctx, r.Code)
			if err == nil {
				return 0, fmt.Errorf("%w: %s", heartbeat.ErrDuplicateCode, r.Code)
			}
			if !errors.Is(err, heartbeat.ErrNotFound) {
				return 0, fmt.Errorf("failed to check existing heartbeat %s: %w", r.Code, err)
			}
		}
	}

	for i, r := range records {
		if err := s.repo.Create(ctx, r); err != nil {
			return i, err
		}
		if r.LastPing != 0 {
			if err := s.repo.SetLastPing(ctx, r.Code, r.LastPing); err != nil {
				return i, err
			}
		}
	}
	return len(records), nil
}

// Helper conversions

func recordToHeartbeat(r *secondary.HeartbeatRecord) *primary.Heartbeat {
	h := &primary.Heartbeat{
		Code:            r.Code,
		LastLine:        r.LastLine,
		NeverLine:       r.NeverLine,
		LeniencySeconds: r.LeniencySeconds,
		CreatedAt:       r.CreatedAt,
	}
	if r.LastPing != 0 {
		h.LastPing = time.Unix(r.LastPing, 0)
	}
	return h
}

func recordToCore(r *secondary.HeartbeatRecord) heartbeat.Record {
	return heartbeat.Record{
		Code:            r.Code,
		LastLine:        r.LastLine,
		NeverLine:       r.NeverLine,
		LeniencySeconds: r.LeniencySeconds,
		LastPing:        r.LastPing,
	}
}

// Ensure HeartbeatServiceImpl implements the interface
var _ primary.HeartbeatService = (*HeartbeatServiceImpl)(nil)
