package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/notification"
)

// NotificationResponse represents a notification in responses
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationService serves a user's in-app notification feed
type NotificationService struct {
	repo notification.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo notification.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// ListForUser retrieves the newest notifications for a user
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]NotificationResponse, error) {
	if limit < 1 {
		limit = 20
	}
	notifications, err := s.repo.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		responses = append(responses, NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return responses, nil
}

// CountUnread counts a user's unread notifications
func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n.IsRead {
		return nil
	}
	n.MarkRead()
	return s.repo.Save(ctx, n)
}

// MarkAllRead marks every unread notification of a user as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}
