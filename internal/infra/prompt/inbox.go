// Package prompt implements the user prompts of the screen for a remote client:
// alerts that block until acknowledged and a confirmation gate carried by the request.
package prompt

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "authscreen/internal/delivery/context"
	domainerrors "authscreen/internal/domain/errors"

	"github.com/google/uuid"
)

// Alert is a message the client must acknowledge before doing anything else.
type Alert struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RequestID string    `json:"requestId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Inbox queues alerts in the order they were raised.
type Inbox struct {
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	pending []Alert
}

// NewInbox creates an empty inbox.
func NewInbox(logger *slog.Logger) *Inbox {
	return &Inbox{
		logger: logger,
		now:    time.Now,
	}
}

// Alert queues a new alert. A message identical to the last queued one is
// collapsed into it, since one failure can be reported by several layers.
func (i *Inbox) Alert(ctx context.Context, title, message string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if n := len(i.pending); n > 0 && i.pending[n-1].Message == message {
		return
	}

	alert := Alert{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		RequestID: deliverycontext.RequestIDFromContext(ctx),
		CreatedAt: i.now(),
	}
	i.pending = append(i.pending, alert)

	deliverycontext.GetLoggerOrDefault(ctx, i.logger).Info("Alert raised",
		slog.String("alert_id", alert.ID),
		slog.String("title", title),
		slog.String("message", message))
}

// Pending returns the oldest unacknowledged alert.
func (i *Inbox) Pending() (Alert, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if len(i.pending) == 0 {
		return Alert{}, false
	}

	return i.pending[0], true
}

// Blocked reports whether an alert is waiting for acknowledgement.
func (i *Inbox) Blocked() bool {
	_, ok := i.Pending()

	return ok
}

// Acknowledge dismisses the alert with the given id.
func (i *Inbox) Acknowledge(id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	for idx, alert := range i.pending {
		if alert.ID == id {
			i.pending = append(i.pending[:idx], i.pending[idx+1:]...)

			return nil
		}
	}

	return domainerrors.ErrAlertNotFound
}
