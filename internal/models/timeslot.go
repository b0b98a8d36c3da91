// Package models contains data structures shared between layers
package models

import "time"

// SlotStatus represents the status of a counsellor time slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCancelled SlotStatus = "cancelled"
)

// TimeSlot represents one bookable unit of a counsellor's calendar
type TimeSlot struct {
	ID           int        `json:"id"`
	CounsellorID int        `json:"counsellor_id"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Status       SlotStatus `json:"status"`
}

// TimeSlotResponse is the wire representation of an available slot
type TimeSlotResponse struct {
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	FormattedTime string `json:"formatted_time"`
	Datetime      string `json:"datetime"`
}

// Response converts a TimeSlot to its wire representation
func (s TimeSlot) Response() TimeSlotResponse {
	return TimeSlotResponse{
		Date:          s.ScheduledAt.Format("2006-01-02"),
		StartTime:     s.ScheduledAt.Format("15:04"),
		FormattedTime: s.ScheduledAt.Format("3:04 PM"),
		Datetime:      s.ScheduledAt.Format(time.RFC3339),
	}
}

// AvailableSlotsResponse is the envelope for the available slots endpoint
type AvailableSlotsResponse struct {
	Status         string             `json:"status"`
	AvailableSlots []TimeSlotResponse `json:"available_slots"`
	Message        string             `json:"message,omitempty"`
}
