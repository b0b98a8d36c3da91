// Package repositories contains database access code
package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uniroute/backend/internal/models"
)

type slotRepository struct {
	db *sql.DB
}

// NewSlotRepository creates a new slot repository
func NewSlotRepository(db *sql.DB) *slotRepository {
	return &slotRepository{
		db: db,
	}
}

// ListAvailable retrieves a counsellor's future unbooked slots ordered by time
func (r *slotRepository) ListAvailable(ctx context.Context, counsellorID int, from time.Time) ([]models.TimeSlot, error) {
	query := `
		SELECT id, counsellor_id, scheduled_at, status
		FROM counsellor_slots
		WHERE counsellor_id = ? AND status = ? AND scheduled_at >= ?
		ORDER BY scheduled_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, counsellorID, models.SlotStatusAvailable, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list available slots: %w", err)
	}
	defer rows.Close()

	var slots []models.TimeSlot
	for rows.Next() {
		var slot models.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.CounsellorID, &slot.ScheduledAt, &slot.Status); err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate slots: %w", err)
	}

	return slots, nil
}

// CounsellorExists checks whether a counsellor with the given ID exists
func (r *slotRepository) CounsellorExists(ctx context.Context, counsellorID int) (bool, error) {
	query := `SELECT 1 FROM counsellors WHERE id = ? LIMIT 1`

	var one int
	err := r.db.QueryRowContext(ctx, query, counsellorID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check counsellor existence: %w", err)
	}

	return true, nil
}
