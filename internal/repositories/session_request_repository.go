package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uniroute/backend/internal/models"
)

// ErrSlotUnavailable is returned when the requested slot is gone or already booked
var ErrSlotUnavailable = errors.New("slot is no longer available")

type sessionRequestRepository struct {
	db *sql.DB
}

// NewSessionRequestRepository creates a new session request repository
func NewSessionRequestRepository(db *sql.DB) *sessionRequestRepository {
	return &sessionRequestRepository{
		db: db,
	}
}

// CreateWithSlotClaim books the slot and records the session request in one
// transaction. The slot row is locked so two concurrent bookings for the same
// slot cannot both succeed; the loser gets ErrSlotUnavailable.
func (r *sessionRequestRepository) CreateWithSlotClaim(ctx context.Context, req *models.SessionRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var slotID int
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM counsellor_slots
		WHERE counsellor_id = ? AND scheduled_at = ? AND status = ?
		FOR UPDATE
	`, req.CounsellorID, req.ScheduledAt, models.SlotStatusAvailable).Scan(&slotID)
	if err == sql.ErrNoRows {
		return ErrSlotUnavailable
	}
	if err != nil {
		return fmt.Errorf("failed to lock slot: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE counsellor_slots SET status = ? WHERE id = ?
	`, models.SlotStatusBooked, slotID)
	if err != nil {
		return fmt.Errorf("failed to mark slot booked: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO session_requests (student_id, counsellor_id, topic, description, scheduled_at, session_type, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.StudentID, req.CounsellorID, req.Topic, req.Description, req.ScheduledAt, req.SessionType, models.SessionRequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to insert session request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get session request id: %w", err)
	}
	req.ID = int(id)
	req.Status = models.SessionRequestStatusPending

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListPendingBetween retrieves pending session requests scheduled in the given
// window together with the requesting student's contact details
func (r *sessionRequestRepository) ListPendingBetween(ctx context.Context, from, to time.Time) ([]models.SessionReminderItem, error) {
	query := `
		SELECT sr.id, s.email, s.name, sr.topic, sr.scheduled_at
		FROM session_requests sr
		JOIN students s ON s.id = sr.student_id
		WHERE sr.status = ? AND sr.scheduled_at >= ? AND sr.scheduled_at < ?
		ORDER BY sr.scheduled_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, models.SessionRequestStatusPending, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending session requests: %w", err)
	}
	defer rows.Close()

	var items []models.SessionReminderItem
	for rows.Next() {
		var item models.SessionReminderItem
		if err := rows.Scan(&item.RequestID, &item.StudentEmail, &item.StudentName, &item.Topic, &item.ScheduledAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminder items: %w", err)
	}

	return items, nil
}
