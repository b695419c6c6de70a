package notification

import (
	"strings"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// Notification is an in-app message addressed to a single user. Read state is
// the only mutable field; everything else is fixed at creation.
type Notification struct {
	shared.BaseEntity
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user"`
	Title   string    `gorm:"type:varchar(100);not null"`
	Message string    `gorm:"type:varchar(500);not null"`
	IsRead  bool      `gorm:"not null;default:false;index:idx_notifications_user"`
}

// TableName returns the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// NewNotification creates a notification for a user
func NewNotification(userID uuid.UUID, title, message string) (*Notification, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot be empty")
	}

	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Title:      title,
		Message:    message,
	}, nil
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	n.IsRead = true
}
