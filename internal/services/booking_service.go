package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uniroute/backend/internal/models"
	"github.com/uniroute/backend/internal/tasks"
	"go.uber.org/zap"
)

// Validation and business errors surfaced to the client verbatim
var (
	ErrTopicRequired       = errors.New("topic is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidScheduledAt  = errors.New("invalid scheduled_at")
	ErrBookingInFlight     = errors.New("a booking for this slot is already being processed")
)

// SessionRequestRepository defines methods for session request data access
type SessionRequestRepository interface {
	// CreateWithSlotClaim books the slot and records the session request in one
	// transaction
	//
	// "ctx" is the context for the request.
	// "req" is the session request to create; its ID is set on success.
	//
	// Returns repositories.ErrSlotUnavailable when the slot is gone, or another
	// error if any.
	CreateWithSlotClaim(ctx context.Context, req *models.SessionRequest) error
}

// StudentReader defines the student lookup needed for confirmation emails
type StudentReader interface {
	// GetByID retrieves a student by ID
	GetByID(ctx context.Context, id int) (*models.Student, error)
}

// IdempotencyStore defines methods for single-flight booking claims
type IdempotencyStore interface {
	// Claim atomically claims a key for the given TTL.
	// Returns false when the key is already held.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release frees a previously claimed key
	Release(ctx context.Context, key string) error
}

// TaskEnqueuer defines the background tasks the booking service emits
type TaskEnqueuer interface {
	// EnqueueBookingConfirmation enqueues a booking confirmation email task
	EnqueueBookingConfirmation(ctx context.Context, p tasks.BookingConfirmationPayload) error
}

type bookingService struct {
	requestRepo SessionRequestRepository
	studentRepo StudentReader
	idempotency IdempotencyStore
	enqueuer    TaskEnqueuer
	logger      *zap.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(
	requestRepo SessionRequestRepository,
	studentRepo StudentReader,
	idempotency IdempotencyStore,
	enqueuer TaskEnqueuer,
	logger *zap.Logger,
) *bookingService {
	return &bookingService{
		requestRepo: requestRepo,
		studentRepo: studentRepo,
		idempotency: idempotency,
		enqueuer:    enqueuer,
		logger:      logger,
	}
}

// CreateSessionRequest validates the payload and books the slot for the student.
// A per-(student, slot) idempotency claim makes a rapid double submission a
// business error instead of a second booking.
func (s *bookingService) CreateSessionRequest(ctx context.Context, studentID, counsellorID int, payload *models.CreateSessionRequestPayload) error {
	topic := strings.TrimSpace(payload.Topic)
	if topic == "" {
		return ErrTopicRequired
	}

	description := strings.TrimSpace(payload.Description)
	if description == "" {
		return ErrDescriptionRequired
	}

	scheduledAt, err := time.Parse(time.RFC3339, payload.ScheduledAt)
	if err != nil {
		return ErrInvalidScheduledAt
	}

	sessionType := payload.SessionType
	if sessionType == "" {
		sessionType = "online"
	}

	// Single-flight claim per student and slot
	key := fmt.Sprintf("booking:%d:%d:%s", studentID, counsellorID, payload.ScheduledAt)
	claimed, err := s.idempotency.Claim(ctx, key, 30*time.Second)
	if err != nil {
		return fmt.Errorf("failed to claim booking: %w", err)
	}
	if !claimed {
		return ErrBookingInFlight
	}
	defer func() {
		if err := s.idempotency.Release(ctx, key); err != nil {
			s.logger.Warn("failed to release booking claim", zap.String("key", key), zap.Error(err))
		}
	}()

	req := &models.SessionRequest{
		StudentID:    studentID,
		CounsellorID: counsellorID,
		Topic:        topic,
		Description:  description,
		ScheduledAt:  scheduledAt,
		SessionType:  sessionType,
	}

	if err := s.requestRepo.CreateWithSlotClaim(ctx, req); err != nil {
		return err
	}

	// Confirmation email failures must not undo a committed booking
	if err := s.enqueueConfirmation(ctx, req); err != nil {
		s.logger.Error("failed to enqueue booking confirmation",
			zap.Int("request_id", req.ID),
			zap.Error(err),
		)
	}

	return nil
}

func (s *bookingService) enqueueConfirmation(ctx context.Context, req *models.SessionRequest) error {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return fmt.Errorf("failed to get student: %w", err)
	}

	return s.enqueuer.EnqueueBookingConfirmation(ctx, tasks.BookingConfirmationPayload{
		RequestID:    req.ID,
		StudentEmail: student.Email,
		StudentName:  student.Name,
		Topic:        req.Topic,
		ScheduledAt:  req.ScheduledAt,
	})
}
