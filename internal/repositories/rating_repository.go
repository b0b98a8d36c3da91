package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uniroute/backend/internal/models"
)

type ratingRepository struct {
	db *sql.DB
}

// NewRatingRepository creates a new video rating repository
func NewRatingRepository(db *sql.DB) *ratingRepository {
	return &ratingRepository{
		db: db,
	}
}

// Upsert inserts or replaces a student's rating for a video
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.VideoRating) error {
	query := `
		INSERT INTO video_ratings (student_id, video_id, rating, review)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			rating = VALUES(rating),
			review = VALUES(review)
	`

	_, err := r.db.ExecContext(ctx, query, rating.StudentID, rating.VideoID, rating.Rating, rating.Review)
	if err != nil {
		return fmt.Errorf("failed to upsert video rating: %w", err)
	}

	return nil
}

// AggregateForVideo computes the average rating and count for a video
func (r *ratingRepository) AggregateForVideo(ctx context.Context, videoID int) (models.RatingAggregate, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM video_ratings
		WHERE video_id = ?
	`

	var agg models.RatingAggregate
	err := r.db.QueryRowContext(ctx, query, videoID).Scan(&agg.AverageRating, &agg.RatingCount)
	if err != nil {
		return models.RatingAggregate{}, fmt.Errorf("failed to aggregate video ratings: %w", err)
	}

	return agg, nil
}

// AggregateForCourse computes the average rating and count across all of a course's videos
func (r *ratingRepository) AggregateForCourse(ctx context.Context, courseID int) (models.RatingAggregate, error) {
	query := `
		SELECT COALESCE(AVG(vr.rating), 0), COUNT(*)
		FROM video_ratings vr
		JOIN videos v ON v.id = vr.video_id
		WHERE v.course_id = ?
	`

	var agg models.RatingAggregate
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(&agg.AverageRating, &agg.RatingCount)
	if err != nil {
		return models.RatingAggregate{}, fmt.Errorf("failed to aggregate course ratings: %w", err)
	}

	return agg, nil
}
