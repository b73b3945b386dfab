package service

import "context"

// AccountChangedEvent is published after an account is created or its
// profile is updated.
type AccountChangedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	ID        string `json:"id"`
	Email     string `json:"email"`
}

// AccountDeletedEvent is published after an account is removed.
type AccountDeletedEvent struct {
	RequestID string `json:"request_id,omitempty"`
	ID        string `json:"id"`
}

// EventPublisher delivers account change events to the platform's message
// queue. Delivery is best-effort: the usecase logs and swallows publish
// failures, so implementations must never be relied on for correctness.
type EventPublisher interface {
	// PublishAccountChanged publishes a created/updated event.
	PublishAccountChanged(ctx context.Context, event *AccountChangedEvent) error

	// PublishAccountDeleted publishes a deletion event.
	PublishAccountDeleted(ctx context.Context, event *AccountDeletedEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
