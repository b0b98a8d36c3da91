package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uniroute/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetByID retrieves a course by ID
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	query := `
		SELECT id, title, description, average_rating, rating_count
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	var course models.Course
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.AverageRating,
		&course.RatingCount,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return &course, nil
}

// UpdateAggregates stores the denormalized rating aggregate on the course row
func (r *courseRepository) UpdateAggregates(ctx context.Context, courseID int, agg models.RatingAggregate) error {
	query := `UPDATE courses SET average_rating = ?, rating_count = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, agg.AverageRating, agg.RatingCount, courseID)
	if err != nil {
		return fmt.Errorf("failed to update course aggregates: %w", err)
	}

	return nil
}
