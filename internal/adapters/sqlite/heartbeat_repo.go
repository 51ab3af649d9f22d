// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/hb/internal/core/heartbeat"
	"github.com/example/hb/internal/ports/secondary"
)

// HeartbeatRepository implements secondary.HeartbeatRepository with SQLite.
type HeartbeatRepository struct {
	db *sql.DB
}

// NewHeartbeatRepository creates a new SQLite heartbeat repository.
func NewHeartbeatRepository(db *sql.DB) *HeartbeatRepository {
	return &HeartbeatRepository{db: db}
}

// Create persists a new heartbeat.
func (r *HeartbeatRepository) Create(ctx context.Context, record *secondary.HeartbeatRecord) error {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM heartbeats WHERE code = ?", record.Code).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check heartbeat existence: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", heartbeat.ErrDuplicateCode, record.Code)
	}

	var lastPing sql.NullInt64
	if record.LastPing != 0 {
		lastPing = sql.NullInt64{Int64: record.LastPing, Valid: true}
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO heartbeats (code, last_line, never_line, leniency_seconds, last_ping) VALUES (?, ?, ?, ?, ?)",
		record.Code, record.LastLine, record.NeverLine, record.LeniencySeconds, lastPing,
	)
	if err != nil {
		return fmt.Errorf("failed to create heartbeat: %w", err)
	}

	return nil
}

// GetByCode retrieves a heartbeat by its code.
func (r *HeartbeatRepository) GetByCode(ctx context.Context, code string) (*secondary.HeartbeatRecord, error) {
	var (
		lastPing  sql.NullInt64
		createdAt time.Time
	)

	record := &secondary.HeartbeatRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT code, last_line, never_line, leniency_seconds, last_ping, created_at FROM heartbeats WHERE code = ?",
		code,
	).Scan(&record.Code, &record.LastLine, &record.NeverLine, &record.LeniencySeconds, &lastPing, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", heartbeat.ErrNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get heartbeat: %w", err)
	}

	if lastPing.Valid {
		record.LastPing = lastPing.Int64
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all heartbeats in insertion order.
func (r *HeartbeatRepository) List(ctx context.Context) ([]*secondary.HeartbeatRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT code, last_line, never_line, leniency_seconds, last_ping, created_at FROM heartbeats ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list heartbeats: %w", err)
	}
	defer rows.Close()

	var records []*secondary.HeartbeatRecord
	for rows.Next() {
		var (
			lastPing  sql.NullInt64
			createdAt time.Time
		)

		record := &secondary.HeartbeatRecord{}
		err := rows.Scan(&record.Code, &record.LastLine, &record.NeverLine, &record.LeniencySeconds, &lastPing, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan heartbeat: %w", err)
		}

		if lastPing.Valid {
			record.LastPing = lastPing.Int64
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)

		records = append(records, record)
	}

	return records, rows.Err()
}

// Delete removes a heartbeat from persistence.
func (r *HeartbeatRepository) Delete(ctx context.Context, code string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM heartbeats WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete heartbeat: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", heartbeat.ErrNotFound, code)
	}

	return nil
}

// SetLastPing records the most recent ping time for a heartbeat.
func (r *HeartbeatRepository) SetLastPing(ctx context.Context, code string, epochSeconds int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE heartbeats SET last_ping = ? WHERE code = ?",
		epochSeconds, code,
	)
	if err != nil {
		return fmt.Errorf("failed to record ping: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", heartbeat.ErrNotFound, code)
	}

	return nil
}

// DeleteAll removes every heartbeat.
func (r *HeartbeatRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM heartbeats"); err != nil {
		return fmt.Errorf("failed to clear heartbeats: %w", err)
	}
	return nil
}

// Ensure HeartbeatRepository implements the interface
var _ secondary.HeartbeatRepository = (*HeartbeatRepository)(nil)
