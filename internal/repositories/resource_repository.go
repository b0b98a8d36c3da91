package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uniroute/backend/internal/models"
)

type resourceRepository struct {
	db *sql.DB
}

// NewResourceRepository creates a new course resource repository
func NewResourceRepository(db *sql.DB) *resourceRepository {
	return &resourceRepository{
		db: db,
	}
}

// ListByCourse retrieves all resources attached to a course
func (r *resourceRepository) ListByCourse(ctx context.Context, courseID int) ([]models.CourseResource, error) {
	query := `
		SELECT id, course_id, title, kind, url, file_id, content_type
		FROM course_resources
		WHERE course_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list course resources: %w", err)
	}
	defer rows.Close()

	var resources []models.CourseResource
	for rows.Next() {
		var res models.CourseResource
		if err := rows.Scan(&res.ID, &res.CourseID, &res.Title, &res.Kind, &res.URL, &res.FileID, &res.ContentType); err != nil {
			return nil, fmt.Errorf("failed to scan course resource: %w", err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate course resources: %w", err)
	}

	return resources, nil
}

// GetByID retrieves a single resource by ID
func (r *resourceRepository) GetByID(ctx context.Context, id int) (*models.CourseResource, error) {
	query := `
		SELECT id, course_id, title, kind, url, file_id, content_type
		FROM course_resources
		WHERE id = ?
		LIMIT 1
	`

	var res models.CourseResource
	err := r.db.QueryRowContext(ctx, query, id).Scan(&res.ID, &res.CourseID, &res.Title, &res.Kind, &res.URL, &res.FileID, &res.ContentType)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("resource not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resource by id: %w", err)
	}

	return &res, nil
}
