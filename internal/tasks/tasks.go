// Package tasks defines the background task types exchanged between the API
// and the worker, and the enqueue side wrapper around asynq.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TypeBookingConfirmation is sent right after a session request is created
	TypeBookingConfirmation = "email:booking_confirmation"
	// TypeSessionReminder is enqueued by the reminder sweep for upcoming sessions
	TypeSessionReminder = "email:session_reminder"

	// QueueEmail is the queue both email task types are routed to
	QueueEmail = "email"
)

// BookingConfirmationPayload carries what the worker needs to confirm a booking
type BookingConfirmationPayload struct {
	RequestID    int       `json:"request_id"`
	StudentEmail string    `json:"student_email"`
	StudentName  string    `json:"student_name"`
	Topic        string    `json:"topic"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

// SessionReminderPayload carries what the worker needs to send one reminder
type SessionReminderPayload struct {
	RequestID    int       `json:"request_id"`
	StudentEmail string    `json:"student_email"`
	StudentName  string    `json:"student_name"`
	Topic        string    `json:"topic"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

// NewBookingConfirmationTask builds an asynq task for a booking confirmation
func NewBookingConfirmationTask(p BookingConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking confirmation payload: %w", err)
	}

	return asynq.NewTask(TypeBookingConfirmation, payload), nil
}

// NewSessionReminderTask builds an asynq task for a session reminder
func NewSessionReminderTask(p SessionReminderPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session reminder payload: %w", err)
	}

	return asynq.NewTask(TypeSessionReminder, payload), nil
}

// Enqueuer wraps an asynq client for the task types the API enqueues
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer creates a new enqueuer
func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{
		client: client,
	}
}

// EnqueueBookingConfirmation enqueues a booking confirmation email task
func (e *Enqueuer) EnqueueBookingConfirmation(ctx context.Context, p BookingConfirmationPayload) error {
	task, err := NewBookingConfirmationTask(p)
	if err != nil {
		return err
	}

	if _, err := e.client.EnqueueContext(ctx, task, asynq.Queue(QueueEmail)); err != nil {
		return fmt.Errorf("failed to enqueue booking confirmation: %w", err)
	}

	return nil
}

// EnqueueSessionReminder enqueues a session reminder email task
func (e *Enqueuer) EnqueueSessionReminder(ctx context.Context, p SessionReminderPayload) error {
	task, err := NewSessionReminderTask(p)
	if err != nil {
		return err
	}

	if _, err := e.client.EnqueueContext(ctx, task, asynq.Queue(QueueEmail)); err != nil {
		return fmt.Errorf("failed to enqueue session reminder: %w", err)
	}

	return nil
}
