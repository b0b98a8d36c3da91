// Package services contains the business logic of the application
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/uniroute/backend/internal/models"
)

// SlotRepository defines methods for counsellor slot data access
type SlotRepository interface {
	// ListAvailable retrieves a counsellor's future unbooked slots ordered by time
	//
	// "ctx" is the context for the request.
	// "counsellorID" is the ID of the counsellor.
	// "from" is the earliest scheduled time to include.
	//
	// Returns the slots and an error if any.
	ListAvailable(ctx context.Context, counsellorID int, from time.Time) ([]models.TimeSlot, error)
	// CounsellorExists checks whether a counsellor with the given ID exists
	//
	// "ctx" is the context for the request.
	// "counsellorID" is the ID of the counsellor.
	//
	// Returns a boolean and an error if any.
	CounsellorExists(ctx context.Context, counsellorID int) (bool, error)
}

type slotService struct {
	slotRepo SlotRepository
	now      func() time.Time
}

// NewSlotService creates a new slot service
func NewSlotService(slotRepo SlotRepository) *slotService {
	return &slotService{
		slotRepo: slotRepo,
		now:      time.Now,
	}
}

// GetAvailableSlots retrieves a counsellor's bookable slots in wire form.
// The list is flat and ordered; date grouping and week windowing are client
// concerns.
func (s *slotService) GetAvailableSlots(ctx context.Context, counsellorID int) ([]models.TimeSlotResponse, error) {
	exists, err := s.slotRepo.CounsellorExists(ctx, counsellorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check counsellor: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("counsellor not found")
	}

	slots, err := s.slotRepo.ListAvailable(ctx, counsellorID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get available slots: %w", err)
	}

	responses := make([]models.TimeSlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, slot.Response())
	}

	return responses, nil
}
