package notification

import (
	"context"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// Create inserts a new notification
	Create(ctx context.Context, n *Notification) error

	// FindByID finds a notification by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)

	// FindByUser finds the newest notifications for a user, up to limit
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error)

	// CountUnread counts unread notifications for a user
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// Save persists read-state changes
	Save(ctx context.Context, n *Notification) error

	// MarkAllRead marks every unread notification of a user as read
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
