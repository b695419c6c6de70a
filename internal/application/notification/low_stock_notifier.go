package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/minierp/backend/internal/domain/catalog"
	"github.com/minierp/backend/internal/domain/identity"
	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/notification"
	"github.com/minierp/backend/internal/domain/shared"
)

// ThresholdProvider supplies the global low-stock threshold
type ThresholdProvider interface {
	// GetLowStockLimit returns the global notification threshold
	GetLowStockLimit(ctx context.Context) (int64, error)
}

// LowStockNotifier subscribes to StockDecreased events and fans out an
// in-app notification to every elevated-role user when a product's balance
// lands at or below the global threshold.
//
// Notification delivery is best effort: a failure is logged and never fails
// the stock movement that triggered it. Every qualifying decrease notifies
// again; there is no dedup window.
type LowStockNotifier struct {
	notificationRepo notification.NotificationRepository
	userRepo         identity.UserRepository
	productRepo      catalog.ProductRepository
	thresholds       ThresholdProvider
	logger           *zap.Logger
}

// NewLowStockNotifier creates a new LowStockNotifier
func NewLowStockNotifier(
	notificationRepo notification.NotificationRepository,
	userRepo identity.UserRepository,
	productRepo catalog.ProductRepository,
	thresholds ThresholdProvider,
	logger *zap.Logger,
) *LowStockNotifier {
	return &LowStockNotifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		thresholds:       thresholds,
		logger:           logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *LowStockNotifier) EventTypes() []string {
	return []string{inventory.EventTypeStockDecreased}
}

// Handle processes a StockDecreasedEvent
func (h *LowStockNotifier) Handle(ctx context.Context, event shared.DomainEvent) error {
	decreased, ok := event.(*inventory.StockDecreasedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", inventory.EventTypeStockDecreased),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			inventory.EventTypeStockDecreased, event.EventType())
	}

	threshold, err := h.thresholds.GetLowStockLimit(ctx)
	if err != nil {
		h.logger.Error("failed to load low stock threshold", zap.Error(err))
		return nil
	}
	if decreased.NewQuantity > threshold {
		return nil
	}

	productName := decreased.ProductID.String()
	if product, err := h.productRepo.FindByID(ctx, decreased.ProductID); err == nil {
		productName = product.Name
	}

	h.logger.Warn("stock at or below threshold",
		zap.String("product_id", decreased.ProductID.String()),
		zap.String("product", productName),
		zap.Int64("quantity", decreased.NewQuantity),
		zap.Int64("threshold", threshold),
	)

	users, err := h.userRepo.FindByRoles(ctx, identity.ElevatedRoles())
	if err != nil {
		h.logger.Error("failed to resolve alert recipients", zap.Error(err))
		return nil
	}

	title := "Low stock alert"
	message := fmt.Sprintf("%s is down to %d units (threshold %d)",
		productName, decreased.NewQuantity, threshold)

	for i := range users {
		n, err := notification.NewNotification(users[i].ID, title, message)
		if err != nil {
			h.logger.Error("failed to build notification",
				zap.String("user_id", users[i].ID.String()),
				zap.Error(err),
			)
			continue
		}
		if err := h.notificationRepo.Create(ctx, n); err != nil {
			h.logger.Error("failed to store notification",
				zap.String("user_id", users[i].ID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}
