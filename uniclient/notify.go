package uniclient

import "sync"

// Level classifies a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one user-facing message emitted by a workflow
type Notification struct {
	Level   Level
	Message string
}

// Notifier receives workflow notifications. Implementations must never block
// the calling workflow.
type Notifier interface {
	Notify(n Notification)
}

// ChannelNotifier buffers notifications on a channel for a presentation layer
// to drain. When the buffer is full the oldest notification is dropped so a
// slow or absent consumer can never block a workflow.
type ChannelNotifier struct {
	mu sync.Mutex
	ch chan Notification
}

// NewChannelNotifier creates a notifier with the given buffer size
func NewChannelNotifier(size int) *ChannelNotifier {
	if size < 1 {
		size = 1
	}
	return &ChannelNotifier{
		ch: make(chan Notification, size),
	}
}

// Notify enqueues a notification, dropping the oldest one if the buffer is full
func (c *ChannelNotifier) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		select {
		case c.ch <- n:
			return
		default:
			// Buffer full: drop the oldest and retry
			select {
			case <-c.ch:
			default:
			}
		}
	}
}

// Events returns the channel to consume notifications from
func (c *ChannelNotifier) Events() <-chan Notification {
	return c.ch
}
