package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniroute/backend/internal/models"
)

// mockSlotRepository is a mock implementation of SlotRepository
type mockSlotRepository struct {
	slots    []models.TimeSlot
	listErr  error
	exists   bool
	existErr error
	listFrom time.Time
}

func (m *mockSlotRepository) ListAvailable(ctx context.Context, counsellorID int, from time.Time) ([]models.TimeSlot, error) {
	m.listFrom = from
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.slots, nil
}

func (m *mockSlotRepository) CounsellorExists(ctx context.Context, counsellorID int) (bool, error) {
	if m.existErr != nil {
		return false, m.existErr
	}
	return m.exists, nil
}

func TestSlotService_GetAvailableSlotsCounsellorNotFound(t *testing.T) {
	slotRepo := &mockSlotRepository{exists: false}
	svc := NewSlotService(slotRepo)

	slots, err := svc.GetAvailableSlots(context.Background(), 7)
	assert.Error(t, err)
	assert.Equal(t, "counsellor not found", err.Error())
	assert.Nil(t, slots)
}

func TestSlotService_GetAvailableSlots(t *testing.T) {
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	slotRepo := &mockSlotRepository{
		exists: true,
		slots: []models.TimeSlot{
			{ID: 1, CounsellorID: 7, ScheduledAt: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), Status: models.SlotStatusAvailable},
			{ID: 2, CounsellorID: 7, ScheduledAt: time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC), Status: models.SlotStatusAvailable},
		},
	}
	svc := NewSlotService(slotRepo)
	svc.now = func() time.Time { return now }

	slots, err := svc.GetAvailableSlots(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, now, slotRepo.listFrom)

	assert.Equal(t, models.TimeSlotResponse{
		Date:          "2024-03-15",
		StartTime:     "09:00",
		FormattedTime: "9:00 AM",
		Datetime:      "2024-03-15T09:00:00Z",
	}, slots[0])
	assert.Equal(t, models.TimeSlotResponse{
		Date:          "2024-03-15",
		StartTime:     "14:30",
		FormattedTime: "2:30 PM",
		Datetime:      "2024-03-15T14:30:00Z",
	}, slots[1])
}

func TestSlotService_GetAvailableSlotsEmpty(t *testing.T) {
	slotRepo := &mockSlotRepository{exists: true}
	svc := NewSlotService(slotRepo)

	slots, err := svc.GetAvailableSlots(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestSlotService_GetAvailableSlotsRepositoryError(t *testing.T) {
	slotRepo := &mockSlotRepository{exists: true, listErr: errors.New("connection reset")}
	svc := NewSlotService(slotRepo)

	slots, err := svc.GetAvailableSlots(context.Background(), 7)
	assert.Error(t, err)
	assert.Equal(t, "failed to get available slots: connection reset", err.Error())
	assert.Nil(t, slots)
}
