package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uniroute/backend/internal/models"
)

type videoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *sql.DB) *videoRepository {
	return &videoRepository{
		db: db,
	}
}

// GetByIDInCourse retrieves a video by ID, checking it belongs to the course
func (r *videoRepository) GetByIDInCourse(ctx context.Context, courseID, videoID int) (*models.Video, error) {
	query := `
		SELECT id, course_id, title, provider_ref, duration_seconds, average_rating, rating_count
		FROM videos
		WHERE id = ? AND course_id = ?
		LIMIT 1
	`

	var video models.Video
	err := r.db.QueryRowContext(ctx, query, videoID, courseID).Scan(
		&video.ID,
		&video.CourseID,
		&video.Title,
		&video.ProviderRef,
		&video.DurationSeconds,
		&video.AverageRating,
		&video.RatingCount,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("video not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return &video, nil
}

// ListByCourse retrieves all videos in a course ordered by position
func (r *videoRepository) ListByCourse(ctx context.Context, courseID int) ([]models.Video, error) {
	query := `
		SELECT id, course_id, title, provider_ref, duration_seconds, average_rating, rating_count
		FROM videos
		WHERE course_id = ?
		ORDER BY position ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		var video models.Video
		if err := rows.Scan(
			&video.ID,
			&video.CourseID,
			&video.Title,
			&video.ProviderRef,
			&video.DurationSeconds,
			&video.AverageRating,
			&video.RatingCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate videos: %w", err)
	}

	return videos, nil
}

// UpdateAggregates stores the denormalized rating aggregate on the video row
func (r *videoRepository) UpdateAggregates(ctx context.Context, videoID int, agg models.RatingAggregate) error {
	query := `UPDATE videos SET average_rating = ?, rating_count = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, agg.AverageRating, agg.RatingCount, videoID)
	if err != nil {
		return fmt.Errorf("failed to update video aggregates: %w", err)
	}

	return nil
}
