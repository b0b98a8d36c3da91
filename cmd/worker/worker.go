package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/uniroute/backend/internal/models"
	"github.com/uniroute/backend/internal/tasks"
	"go.uber.org/zap"
	"gopkg.in/mail.v2"
)

// SessionRequestRepository defines the interface for session request lookups
type SessionRequestRepository interface {
	// ListPendingBetween retrieves pending session requests scheduled inside
	// the [from, to) window, joined with the booking student's contact details
	//
	// "ctx" is the context for the query.
	// "from" and "to" bound the scheduled_at window.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	ListPendingBetween(ctx context.Context, from, to time.Time) ([]models.SessionReminderItem, error)
}

// ReminderEnqueuer defines the enqueue side used by the reminder sweep
type ReminderEnqueuer interface {
	// EnqueueSessionReminder enqueues one session reminder email task
	EnqueueSessionReminder(ctx context.Context, p tasks.SessionReminderPayload) error
}

// Worker handles email task processing
type Worker struct {
	logger       *zap.Logger
	requestRepo  SessionRequestRepository
	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string
	smtpFrom     string
}

// NewWorker creates a new worker instance
func NewWorker(
	logger *zap.Logger,
	requestRepo SessionRequestRepository,
	smtpHost string,
	smtpPort int,
	smtpUsername, smtpPassword, smtpFrom string,
) *Worker {
	return &Worker{
		logger:       logger,
		requestRepo:  requestRepo,
		smtpHost:     smtpHost,
		smtpPort:     smtpPort,
		smtpUsername: smtpUsername,
		smtpPassword: smtpPassword,
		smtpFrom:     smtpFrom,
	}
}

// HandleBookingConfirmation sends the confirmation email for a new session request
func (w *Worker) HandleBookingConfirmation(ctx context.Context, t *asynq.Task) error {
	var p tasks.BookingConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal booking confirmation payload: %w", err)
	}

	w.logger.Info("Processing booking confirmation",
		zap.Int("request_id", p.RequestID),
		zap.String("student_email", p.StudentEmail),
	)

	subject := "Your counselling session request was received"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your session request about <b>%s</b> for %s has been received and is awaiting counsellor confirmation.</p>",
		p.StudentName,
		p.Topic,
		p.ScheduledAt.Format("Monday, January 2 at 3:04 PM"),
	)

	if err := w.sendEmail(p.StudentEmail, subject, body); err != nil {
		w.logger.Error("Failed to send booking confirmation",
			zap.Int("request_id", p.RequestID),
			zap.Error(err),
		)
		return err
	}

	w.logger.Info("Booking confirmation sent", zap.Int("request_id", p.RequestID))
	return nil
}

// HandleSessionReminder sends a reminder email for an upcoming session
func (w *Worker) HandleSessionReminder(ctx context.Context, t *asynq.Task) error {
	var p tasks.SessionReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal session reminder payload: %w", err)
	}

	w.logger.Info("Processing session reminder",
		zap.Int("request_id", p.RequestID),
		zap.String("student_email", p.StudentEmail),
	)

	subject := "Reminder: upcoming counselling session"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>This is a reminder that your session about <b>%s</b> is scheduled for %s.</p>",
		p.StudentName,
		p.Topic,
		p.ScheduledAt.Format("Monday, January 2 at 3:04 PM"),
	)

	if err := w.sendEmail(p.StudentEmail, subject, body); err != nil {
		w.logger.Error("Failed to send session reminder",
			zap.Int("request_id", p.RequestID),
			zap.Error(err),
		)
		return err
	}

	w.logger.Info("Session reminder sent", zap.Int("request_id", p.RequestID))
	return nil
}

// EnqueueUpcomingReminders finds pending requests scheduled within the next
// 24 hours and enqueues one reminder task per request. Run by the cron sweep.
func (w *Worker) EnqueueUpcomingReminders(ctx context.Context, enqueuer ReminderEnqueuer) {
	now := time.Now()
	items, err := w.requestRepo.ListPendingBetween(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		w.logger.Error("Failed to list upcoming sessions", zap.Error(err))
		return
	}

	for _, item := range items {
		err := enqueuer.EnqueueSessionReminder(ctx, tasks.SessionReminderPayload{
			RequestID:    item.RequestID,
			StudentEmail: item.StudentEmail,
			StudentName:  item.StudentName,
			Topic:        item.Topic,
			ScheduledAt:  item.ScheduledAt,
		})
		if err != nil {
			w.logger.Error("Failed to enqueue session reminder",
				zap.Int("request_id", item.RequestID),
				zap.Error(err),
			)
		}
	}

	w.logger.Info("Reminder sweep completed", zap.Int("count", len(items)))
}

// sendEmail sends an email using gopkg.in/mail.v2
func (w *Worker) sendEmail(to, subject, body string) error {
	m := mail.NewMessage()
	m.SetHeader("From", w.smtpFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := mail.NewDialer(w.smtpHost, w.smtpPort, w.smtpUsername, w.smtpPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
