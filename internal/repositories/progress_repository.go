package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uniroute/backend/internal/models"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new video progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// Upsert inserts or updates a student's progress for a video.
// A completed row is never flipped back to incomplete by a later partial event.
func (r *progressRepository) Upsert(ctx context.Context, progress *models.VideoProgress) error {
	query := `
		INSERT INTO video_progress (student_id, video_id, watched_seconds, completed)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			watched_seconds = GREATEST(watched_seconds, VALUES(watched_seconds)),
			completed = completed OR VALUES(completed)
	`

	_, err := r.db.ExecContext(ctx, query, progress.StudentID, progress.VideoID, progress.WatchedSeconds, progress.Completed)
	if err != nil {
		return fmt.Errorf("failed to upsert video progress: %w", err)
	}

	return nil
}

// HasCompleted checks whether the student has a completed progress row for the video
func (r *progressRepository) HasCompleted(ctx context.Context, studentID, videoID int) (bool, error) {
	query := `
		SELECT completed FROM video_progress
		WHERE student_id = ? AND video_id = ?
		LIMIT 1
	`

	var completed bool
	err := r.db.QueryRowContext(ctx, query, studentID, videoID).Scan(&completed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check video progress: %w", err)
	}

	return completed, nil
}
