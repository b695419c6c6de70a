package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// InventoryRecord is the aggregate root for a product's on-hand stock.
// There is exactly one record per product; Quantity is the live balance and
// TotalIn/TotalOut form the lifetime audit trail, so at any point
// Quantity equals TotalIn - TotalOut over this record's own history.
type InventoryRecord struct {
	shared.BaseAggregateRoot
	ProductID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity     int64      `gorm:"not null;default:0"`
	TotalIn      int64      `gorm:"not null;default:0"`
	TotalOut     int64      `gorm:"not null;default:0"`
	LastMovement *time.Time `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (InventoryRecord) TableName() string {
	return "inventory_records"
}

// NewInventoryRecord creates a zero-quantity inventory record for a product.
// This is done once, when the product itself is created.
func NewInventoryRecord(productID uuid.UUID) (*InventoryRecord, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	return &InventoryRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
	}, nil
}

// NewInventoryRecordWithStock creates an inventory record seeded with an
// initial inbound quantity. Used when an inbound movement arrives for a
// product that was created before inventory tracking existed.
func NewInventoryRecordWithStock(productID uuid.UUID, quantity int64) (*InventoryRecord, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Initial quantity must be positive")
	}
	record, err := NewInventoryRecord(productID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	record.Quantity = quantity
	record.TotalIn = quantity
	record.LastMovement = &now
	record.AddDomainEvent(NewStockIncreasedEvent(record, quantity))
	return record, nil
}

// Apply applies a signed delta to the record. Positive deltas accumulate into
// TotalIn, negative deltas into TotalOut. A delta that would drive Quantity
// below zero is rejected with ErrInsufficientStock and leaves the record
// untouched.
func (r *InventoryRecord) Apply(delta int64) error {
	if delta == 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Movement delta cannot be zero")
	}
	if r.Quantity+delta < 0 {
		return shared.ErrInsufficientStock
	}

	r.Quantity += delta
	if delta > 0 {
		r.TotalIn += delta
	} else {
		r.TotalOut += -delta
	}
	now := time.Now()
	r.LastMovement = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	if delta > 0 {
		r.AddDomainEvent(NewStockIncreasedEvent(r, delta))
	} else {
		r.AddDomainEvent(NewStockDecreasedEvent(r, -delta))
	}
	return nil
}

// DeltaToReach returns the signed delta required to move the current quantity
// to target. Target must not be negative; that is a validation failure, not a
// stock failure.
func (r *InventoryRecord) DeltaToReach(target int64) (int64, error) {
	if target < 0 {
		return 0, shared.NewDomainError("INVALID_QUANTITY", "Target quantity cannot be negative")
	}
	return target - r.Quantity, nil
}

// CanFulfill returns true if an outbound movement of the given quantity would
// leave the balance non-negative.
func (r *InventoryRecord) CanFulfill(quantity int64) bool {
	return quantity > 0 && r.Quantity >= quantity
}

// IsBelow returns true if the current quantity is at or below the given
// threshold.
func (r *InventoryRecord) IsBelow(threshold int64) bool {
	return r.Quantity <= threshold
}
