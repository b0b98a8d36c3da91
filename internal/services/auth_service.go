package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uniroute/backend/internal/auth/service"
	"github.com/uniroute/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown email or wrong password
var ErrInvalidCredentials = errors.New("invalid email or password")

// StudentRepository defines methods for student data access
type StudentRepository interface {
	// GetByEmail retrieves a student by email
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	// GetByID retrieves a student by ID
	GetByID(ctx context.Context, id int) (*models.Student, error)
}

type authService struct {
	studentRepo    StudentRepository
	tokenGenerator *service.TokenGenerator
}

// NewAuthService creates a new auth service
func NewAuthService(studentRepo StudentRepository, tokenGenerator *service.TokenGenerator) *authService {
	return &authService{
		studentRepo:    studentRepo,
		tokenGenerator: tokenGenerator,
	}
}

// Login verifies credentials and issues access and refresh tokens.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if err.Error() == "student not found" {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenGenerator.GenerateTokens(student.UserID, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       student.UserID,
		StudentID:    student.ID,
		Name:         student.Name,
	}, nil
}
