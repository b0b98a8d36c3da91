package uniclient

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNoSlotSelected is returned when submit is attempted without a slot
	ErrNoSlotSelected = errors.New("no slot selected")
	// ErrTopicRequired is returned when the draft topic is empty
	ErrTopicRequired = errors.New("topic is required")
	// ErrDescriptionRequired is returned when the draft description is empty
	ErrDescriptionRequired = errors.New("description is required")
)

// BookingAPI is the slice of the API client the booking flow needs
type BookingAPI interface {
	// AvailableSlots fetches a counsellor's future unbooked slots
	AvailableSlots(ctx context.Context, counsellorID int) ([]TimeSlot, error)
	// CreateSessionRequest books a slot with a counsellor
	CreateSessionRequest(ctx context.Context, counsellorID int, payload SessionRequestPayload) error
}

// BookingDraft is the transient, not-yet-submitted session request form
type BookingDraft struct {
	Topic       string
	Description string
}

// SlotGroup is one day's slots within the visible week window
type SlotGroup struct {
	Date  string
	Label string
	Slots []TimeSlot
}

// BookingFlow drives the slot booking workflow for one counsellor: it holds
// the fetched slot list, the two-week sliding window, the selected slot and
// the draft, and submits session requests.
//
// All methods are safe for concurrent use. User-facing outcomes are emitted
// on the injected Notifier; methods also return errors for callers that want
// to branch on them.
type BookingFlow struct {
	client       BookingAPI
	identity     IdentityProvider
	notifier     Notifier
	logger       *zap.Logger
	counsellorID int
	now          func() time.Time

	mu          sync.Mutex
	slots       []TimeSlot
	currentWeek int
	selected    *TimeSlot
	draft       BookingDraft
	inFlight    map[string]struct{}
}

// BookingOption configures a BookingFlow
type BookingOption func(*BookingFlow)

// WithBookingClock overrides the flow's clock
func WithBookingClock(now func() time.Time) BookingOption {
	return func(f *BookingFlow) {
		f.now = now
	}
}

// NewBookingFlow creates a booking flow for one counsellor
func NewBookingFlow(
	client BookingAPI,
	identity IdentityProvider,
	notifier Notifier,
	logger *zap.Logger,
	counsellorID int,
	opts ...BookingOption,
) *BookingFlow {
	f := &BookingFlow{
		client:       client,
		identity:     identity,
		notifier:     notifier,
		logger:       logger,
		counsellorID: counsellorID,
		now:          time.Now,
		inFlight:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// LoadAvailableSlots fetches the counsellor's slot list. On success the full
// in-memory list is replaced; on failure an error notification is emitted and
// the previous list is left untouched.
func (f *BookingFlow) LoadAvailableSlots(ctx context.Context) error {
	slots, err := f.client.AvailableSlots(ctx, f.counsellorID)
	if err != nil {
		f.logger.Error("failed to load available slots",
			zap.Int("counsellor_id", f.counsellorID),
			zap.Error(err),
		)
		f.notifier.Notify(Notification{Level: LevelError, Message: loadSlotsMessage(err)})
		return err
	}

	f.mu.Lock()
	f.slots = slots
	f.mu.Unlock()

	return nil
}

// SelectSlot marks a slot as selected and opens a fresh draft. The slot is
// not reserved server-side; another student may still claim it first.
func (f *BookingFlow) SelectSlot(slot TimeSlot) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.selected = &slot
	f.draft = BookingDraft{}
}

// Cancel clears the selection and the draft
func (f *BookingFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.selected = nil
	f.draft = BookingDraft{}
}

// SelectedSlot returns the currently selected slot, if any
func (f *BookingFlow) SelectedSlot() (TimeSlot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selected == nil {
		return TimeSlot{}, false
	}
	return *f.selected, true
}

// SetTopic updates the draft topic
func (f *BookingFlow) SetTopic(topic string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft.Topic = topic
}

// SetDescription updates the draft description
func (f *BookingFlow) SetDescription(description string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft.Description = description
}

// Draft returns a copy of the current draft
func (f *BookingFlow) Draft() BookingDraft {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.draft
}

// AdvanceWeek moves the visible window by direction weeks. The window is
// clamped to this week and next week; out-of-range requests are silently
// clamped, not errors.
func (f *BookingFlow) AdvanceWeek(direction int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.currentWeek += direction
	if f.currentWeek < 0 {
		f.currentWeek = 0
	}
	if f.currentWeek > 1 {
		f.currentWeek = 1
	}
}

// CurrentWeek returns the visible window index: 0 for this week, 1 for next
func (f *BookingFlow) CurrentWeek() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.currentWeek
}

// VisibleSlots groups the slot list by date and filters the groups to the
// visible week window [weekStart, weekStart+6], where weekStart is today
// plus 7*currentWeek days. Group order and in-group slot order follow the
// order slots arrived from the server.
func (f *BookingFlow) VisibleSlots() []SlotGroup {
	f.mu.Lock()
	defer f.mu.Unlock()

	today := truncateToDay(f.now())
	weekStart := today.AddDate(0, 0, 7*f.currentWeek)
	weekEnd := weekStart.AddDate(0, 0, 6)

	var groups []SlotGroup
	index := make(map[string]int)

	for _, slot := range f.slots {
		day, err := time.Parse("2006-01-02", slot.Date)
		if err != nil {
			f.logger.Warn("skipping slot with unparseable date", zap.String("date", slot.Date))
			continue
		}
		if day.Before(weekStart) || day.After(weekEnd) {
			continue
		}

		i, ok := index[slot.Date]
		if !ok {
			i = len(groups)
			index[slot.Date] = i
			groups = append(groups, SlotGroup{
				Date:  slot.Date,
				Label: dateLabel(day, today),
			})
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}

	return groups
}

// DateLabel returns the display label for a date string: "Today", "Tomorrow",
// or a long-form weekday label like "Friday, March 15"
func (f *BookingFlow) DateLabel(date string) string {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return dateLabel(day, truncateToDay(f.now()))
}

// SubmitBooking validates the draft and posts the session request. Validation
// failures and a missing identity emit an error notification before any
// network call. A second submit for the same slot while one is in flight is a
// no-op. On success the flow emits a success notification, resets the draft
// and selection, and refetches the slot list.
func (f *BookingFlow) SubmitBooking(ctx context.Context) error {
	f.mu.Lock()

	if f.selected == nil {
		f.mu.Unlock()
		f.notifier.Notify(Notification{Level: LevelError, Message: "Please select a time slot"})
		return ErrNoSlotSelected
	}
	if strings.TrimSpace(f.draft.Topic) == "" {
		f.mu.Unlock()
		f.notifier.Notify(Notification{Level: LevelError, Message: "Topic is required"})
		return ErrTopicRequired
	}
	if strings.TrimSpace(f.draft.Description) == "" {
		f.mu.Unlock()
		f.notifier.Notify(Notification{Level: LevelError, Message: "Description is required"})
		return ErrDescriptionRequired
	}

	identity, ok := f.identity.Current()
	if !ok {
		f.mu.Unlock()
		f.notifier.Notify(Notification{Level: LevelError, Message: "Please log in to book a session"})
		return ErrLoginRequired
	}

	slot := *f.selected
	if _, busy := f.inFlight[slot.Datetime]; busy {
		f.mu.Unlock()
		return nil
	}
	f.inFlight[slot.Datetime] = struct{}{}

	payload := SessionRequestPayload{
		StudentID:   identity.StudentID,
		Topic:       strings.TrimSpace(f.draft.Topic),
		ScheduledAt: slot.Datetime,
		SessionType: "online",
		Description: strings.TrimSpace(f.draft.Description),
	}
	f.mu.Unlock()

	err := f.client.CreateSessionRequest(ctx, f.counsellorID, payload)

	f.mu.Lock()
	delete(f.inFlight, slot.Datetime)
	if err != nil {
		f.mu.Unlock()
		f.logger.Error("failed to submit booking",
			zap.Int("counsellor_id", f.counsellorID),
			zap.String("scheduled_at", slot.Datetime),
			zap.Error(err),
		)
		f.notifier.Notify(Notification{Level: LevelError, Message: submitMessage(err)})
		return err
	}

	f.selected = nil
	f.draft = BookingDraft{}
	f.mu.Unlock()

	f.notifier.Notify(Notification{Level: LevelSuccess, Message: "Session request sent"})

	// Refetch so consumed slots disappear from the list
	return f.LoadAvailableSlots(ctx)
}

// truncateToDay strips the time-of-day, keeping the date in UTC for
// comparison with slot date strings
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dateLabel renders a relative label for day compared to today
func dateLabel(day, today time.Time) string {
	switch int(day.Sub(today).Hours() / 24) {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return day.Format("Monday, January 2")
	}
}

// loadSlotsMessage maps a slot fetch failure to its user-facing message
func loadSlotsMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Failed to load available slots"
}

// submitMessage maps a booking submit failure to its user-facing message
func submitMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnauthenticated) {
		return "Please log in to book a session"
	}
	return "Something went wrong. Please try again."
}
