package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingConfirmationTask(t *testing.T) {
	payload := BookingConfirmationPayload{
		RequestID:    11,
		StudentEmail: "hana@example.com",
		StudentName:  "Hana",
		Topic:        "course selection",
		ScheduledAt:  time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
	}

	task, err := NewBookingConfirmationTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingConfirmation, task.Type())

	var decoded BookingConfirmationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewSessionReminderTask(t *testing.T) {
	payload := SessionReminderPayload{
		RequestID:    11,
		StudentEmail: "hana@example.com",
		StudentName:  "Hana",
		Topic:        "course selection",
		ScheduledAt:  time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
	}

	task, err := NewSessionReminderTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeSessionReminder, task.Type())

	var decoded SessionReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}
