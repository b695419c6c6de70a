package inventory

import (
	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeInventoryRecord = "InventoryRecord"

// Event type constants
const (
	EventTypeStockIncreased = "StockIncreased"
	EventTypeStockDecreased = "StockDecreased"
)

// StockIncreasedEvent is raised when a positive delta is applied to a record
type StockIncreasedEvent struct {
	shared.BaseDomainEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int64     `json:"quantity"`
	NewQuantity int64     `json:"new_quantity"`
}

// NewStockIncreasedEvent creates a new StockIncreasedEvent
func NewStockIncreasedEvent(record *InventoryRecord, quantity int64) *StockIncreasedEvent {
	return &StockIncreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockIncreased, AggregateTypeInventoryRecord, record.ID),
		InventoryID:     record.ID,
		ProductID:       record.ProductID,
		Quantity:        quantity,
		NewQuantity:     record.Quantity,
	}
}

// EventType returns the event type name
func (e *StockIncreasedEvent) EventType() string {
	return EventTypeStockIncreased
}

// StockDecreasedEvent is raised when a negative delta is applied to a record.
// The low-stock notifier subscribes to this event.
type StockDecreasedEvent struct {
	shared.BaseDomainEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int64     `json:"quantity"`
	NewQuantity int64     `json:"new_quantity"`
}

// NewStockDecreasedEvent creates a new StockDecreasedEvent
func NewStockDecreasedEvent(record *InventoryRecord, quantity int64) *StockDecreasedEvent {
	return &StockDecreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDecreased, AggregateTypeInventoryRecord, record.ID),
		InventoryID:     record.ID,
		ProductID:       record.ProductID,
		Quantity:        quantity,
		NewQuantity:     record.Quantity,
	}
}

// EventType returns the event type name
func (e *StockDecreasedEvent) EventType() string {
	return EventTypeStockDecreased
}
