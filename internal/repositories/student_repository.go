package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uniroute/backend/internal/models"
)

type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *sql.DB) *studentRepository {
	return &studentRepository{
		db: db,
	}
}

// GetByEmail retrieves a student by email
func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT id, user_id, email, name, password_hash, created_at
		FROM students
		WHERE email = ?
		LIMIT 1
	`

	var student models.Student
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&student.ID,
		&student.UserID,
		&student.Email,
		&student.Name,
		&student.PasswordHash,
		&student.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student by email: %w", err)
	}

	return &student, nil
}

// GetByID retrieves a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id int) (*models.Student, error) {
	query := `
		SELECT id, user_id, email, name, password_hash, created_at
		FROM students
		WHERE id = ?
		LIMIT 1
	`

	var student models.Student
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&student.ID,
		&student.UserID,
		&student.Email,
		&student.Name,
		&student.PasswordHash,
		&student.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student by id: %w", err)
	}

	return &student, nil
}
