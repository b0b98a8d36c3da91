package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniroute/backend/internal/models"
	"github.com/uniroute/backend/internal/repositories"
	"github.com/uniroute/backend/internal/tasks"
	"go.uber.org/zap"
)

// mockSessionRequestRepository is a mock implementation of SessionRequestRepository
type mockSessionRequestRepository struct {
	createErr error
	created   *models.SessionRequest
}

func (m *mockSessionRequestRepository) CreateWithSlotClaim(ctx context.Context, req *models.SessionRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	req.ID = 11
	m.created = req
	return nil
}

// mockStudentReader is a mock implementation of StudentReader
type mockStudentReader struct {
	student *models.Student
	err     error
}

func (m *mockStudentReader) GetByID(ctx context.Context, id int) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.student, nil
}

// mockIdempotencyStore is a mock implementation of IdempotencyStore
type mockIdempotencyStore struct {
	claimResult    bool
	claimErr       error
	claimedKey     string
	releasedKey    string
	releaseErr     error
	claimCalled    bool
	releasedCalled bool
}

func (m *mockIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	m.claimCalled = true
	m.claimedKey = key
	if m.claimErr != nil {
		return false, m.claimErr
	}
	return m.claimResult, nil
}

func (m *mockIdempotencyStore) Release(ctx context.Context, key string) error {
	m.releasedCalled = true
	m.releasedKey = key
	return m.releaseErr
}

// mockTaskEnqueuer is a mock implementation of TaskEnqueuer
type mockTaskEnqueuer struct {
	payload tasks.BookingConfirmationPayload
	err     error
	called  bool
}

func (m *mockTaskEnqueuer) EnqueueBookingConfirmation(ctx context.Context, p tasks.BookingConfirmationPayload) error {
	m.called = true
	m.payload = p
	return m.err
}

func validPayload() *models.CreateSessionRequestPayload {
	return &models.CreateSessionRequestPayload{
		StudentID:   42,
		Topic:       "course selection",
		ScheduledAt: "2024-03-15T09:00:00Z",
		SessionType: "online",
		Description: "need help choosing electives",
	}
}

func newTestBookingService(
	requestRepo *mockSessionRequestRepository,
	studentRepo *mockStudentReader,
	idempotency *mockIdempotencyStore,
	enqueuer *mockTaskEnqueuer,
) *bookingService {
	return NewBookingService(requestRepo, studentRepo, idempotency, enqueuer, zap.NewNop())
}

func TestBookingService_CreateSessionRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.CreateSessionRequestPayload)
		wantErr error
	}{
		{
			name:    "empty topic",
			mutate:  func(p *models.CreateSessionRequestPayload) { p.Topic = "" },
			wantErr: ErrTopicRequired,
		},
		{
			name:    "whitespace topic",
			mutate:  func(p *models.CreateSessionRequestPayload) { p.Topic = "   " },
			wantErr: ErrTopicRequired,
		},
		{
			name:    "empty description",
			mutate:  func(p *models.CreateSessionRequestPayload) { p.Description = "" },
			wantErr: ErrDescriptionRequired,
		},
		{
			name:    "bad scheduled_at",
			mutate:  func(p *models.CreateSessionRequestPayload) { p.ScheduledAt = "next friday" },
			wantErr: ErrInvalidScheduledAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := &mockSessionRequestRepository{}
			idempotency := &mockIdempotencyStore{claimResult: true}
			svc := newTestBookingService(requestRepo, &mockStudentReader{}, idempotency, &mockTaskEnqueuer{})

			payload := validPayload()
			tt.mutate(payload)

			err := svc.CreateSessionRequest(context.Background(), 42, 7, payload)
			assert.ErrorIs(t, err, tt.wantErr)

			// Validation failures stop before the claim and the repository
			assert.False(t, idempotency.claimCalled)
			assert.Nil(t, requestRepo.created)
		})
	}
}

func TestBookingService_CreateSessionRequestInFlight(t *testing.T) {
	requestRepo := &mockSessionRequestRepository{}
	idempotency := &mockIdempotencyStore{claimResult: false}
	svc := newTestBookingService(requestRepo, &mockStudentReader{}, idempotency, &mockTaskEnqueuer{})

	err := svc.CreateSessionRequest(context.Background(), 42, 7, validPayload())
	assert.ErrorIs(t, err, ErrBookingInFlight)
	assert.Nil(t, requestRepo.created)

	// A denied claim must not be released by the loser
	assert.False(t, idempotency.releasedCalled)
}

func TestBookingService_CreateSessionRequestSlotUnavailable(t *testing.T) {
	requestRepo := &mockSessionRequestRepository{createErr: repositories.ErrSlotUnavailable}
	idempotency := &mockIdempotencyStore{claimResult: true}
	enqueuer := &mockTaskEnqueuer{}
	svc := newTestBookingService(requestRepo, &mockStudentReader{}, idempotency, enqueuer)

	err := svc.CreateSessionRequest(context.Background(), 42, 7, validPayload())
	assert.ErrorIs(t, err, repositories.ErrSlotUnavailable)
	assert.False(t, enqueuer.called)
	assert.True(t, idempotency.releasedCalled)
}

func TestBookingService_CreateSessionRequestSuccess(t *testing.T) {
	requestRepo := &mockSessionRequestRepository{}
	studentRepo := &mockStudentReader{student: &models.Student{
		ID:    42,
		Email: "hana@example.com",
		Name:  "Hana",
	}}
	idempotency := &mockIdempotencyStore{claimResult: true}
	enqueuer := &mockTaskEnqueuer{}
	svc := newTestBookingService(requestRepo, studentRepo, idempotency, enqueuer)

	payload := validPayload()
	payload.Topic = "  course selection  "
	payload.SessionType = ""

	err := svc.CreateSessionRequest(context.Background(), 42, 7, payload)
	require.NoError(t, err)

	require.NotNil(t, requestRepo.created)
	assert.Equal(t, 42, requestRepo.created.StudentID)
	assert.Equal(t, 7, requestRepo.created.CounsellorID)
	assert.Equal(t, "course selection", requestRepo.created.Topic)
	assert.Equal(t, "online", requestRepo.created.SessionType)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), requestRepo.created.ScheduledAt)

	assert.Equal(t, "booking:42:7:2024-03-15T09:00:00Z", idempotency.claimedKey)
	assert.True(t, idempotency.releasedCalled)

	assert.True(t, enqueuer.called)
	assert.Equal(t, 11, enqueuer.payload.RequestID)
	assert.Equal(t, "hana@example.com", enqueuer.payload.StudentEmail)
}

func TestBookingService_ConfirmationFailureDoesNotFailBooking(t *testing.T) {
	requestRepo := &mockSessionRequestRepository{}
	studentRepo := &mockStudentReader{err: errors.New("student not found")}
	idempotency := &mockIdempotencyStore{claimResult: true}
	svc := newTestBookingService(requestRepo, studentRepo, idempotency, &mockTaskEnqueuer{})

	err := svc.CreateSessionRequest(context.Background(), 42, 7, validPayload())
	assert.NoError(t, err)
	assert.NotNil(t, requestRepo.created)
}
