package models

import "time"

// SessionRequestStatus represents the status of a session request
type SessionRequestStatus string

const (
	SessionRequestStatusPending  SessionRequestStatus = "pending"
	SessionRequestStatusAccepted SessionRequestStatus = "accepted"
	SessionRequestStatusDeclined SessionRequestStatus = "declined"
)

// SessionRequest represents a student's request for a counselling session
type SessionRequest struct {
	ID           int                  `json:"id"`
	StudentID    int                  `json:"student_id"`
	CounsellorID int                  `json:"counsellor_id"`
	Topic        string               `json:"topic"`
	Description  string               `json:"description"`
	ScheduledAt  time.Time            `json:"scheduled_at"`
	SessionType  string               `json:"session_type"`
	Status       SessionRequestStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

// CreateSessionRequestPayload is the request body for booking a session
type CreateSessionRequestPayload struct {
	StudentID   int    `json:"student_id"`
	Topic       string `json:"topic"`
	ScheduledAt string `json:"scheduled_at"`
	SessionType string `json:"session_type"`
	Description string `json:"description"`
}

// SessionReminderItem carries what the worker needs to send one reminder email
type SessionReminderItem struct {
	RequestID    int
	StudentEmail string
	StudentName  string
	Topic        string
	ScheduledAt  time.Time
}
