package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// MovementKind identifies the business source of a stock movement.
type MovementKind string

const (
	// MovementImport is an inbound delivery from a supplier
	MovementImport MovementKind = "IMPORT"
	// MovementExport is an outbound shipment to a client
	MovementExport MovementKind = "EXPORT"
	// MovementOrder is stock consumed by a sales order line item
	MovementOrder MovementKind = "ORDER"
	// MovementAdjustAdd is a manual stock increase
	MovementAdjustAdd MovementKind = "ADJUST_ADD"
	// MovementAdjustRemove is a manual stock decrease
	MovementAdjustRemove MovementKind = "ADJUST_REMOVE"
	// MovementAdjustSet is a manual correction to an absolute quantity
	MovementAdjustSet MovementKind = "ADJUST_SET"
)

// String returns the string representation of MovementKind
func (k MovementKind) String() string {
	return string(k)
}

// IsValid returns true if the movement kind is valid
func (k MovementKind) IsValid() bool {
	switch k {
	case MovementImport, MovementExport, MovementOrder,
		MovementAdjustAdd, MovementAdjustRemove, MovementAdjustSet:
		return true
	}
	return false
}

// IsInbound returns true for kinds whose delta may only be positive.
// ADJUST_SET is excluded: its direction depends on the computed delta.
func (k MovementKind) IsInbound() bool {
	switch k {
	case MovementImport, MovementAdjustAdd:
		return true
	}
	return false
}

// IsOutbound returns true for kinds whose delta may only be negative.
func (k MovementKind) IsOutbound() bool {
	switch k {
	case MovementExport, MovementOrder, MovementAdjustRemove:
		return true
	}
	return false
}

// StockMovement is an immutable record of one applied delta: who or what
// caused it, its magnitude and direction, and the balance around it.
// Movements are append-only; corrections are made with new movements.
type StockMovement struct {
	shared.BaseEntity
	InventoryID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_stock_movements_inventory"`
	ProductID     uuid.UUID    `gorm:"type:uuid;not null;index:idx_stock_movements_product"`
	Kind          MovementKind `gorm:"type:varchar(20);not null;index:idx_stock_movements_kind"`
	Quantity      int64        `gorm:"not null"` // always positive, direction via Delta sign
	Delta         int64        `gorm:"not null"` // signed applied delta
	BalanceBefore int64        `gorm:"not null"`
	BalanceAfter  int64        `gorm:"not null"`
	Reference     string       `gorm:"type:varchar(100)"` // source document id or code
	Reason        string       `gorm:"type:varchar(255)"`
	OperatorID    *uuid.UUID   `gorm:"type:uuid"`
	OccurredAt    time.Time    `gorm:"type:timestamptz;not null;index:idx_stock_movements_time"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a movement record for an applied delta.
func NewStockMovement(
	inventoryID, productID uuid.UUID,
	kind MovementKind,
	delta int64,
	balanceBefore, balanceAfter int64,
) (*StockMovement, error) {
	if inventoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVENTORY", "Inventory ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_KIND", "Invalid movement kind")
	}
	if delta == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement delta cannot be zero")
	}
	if kind.IsInbound() && delta < 0 {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Inbound movement cannot have a negative delta")
	}
	if kind.IsOutbound() && delta > 0 {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Outbound movement cannot have a positive delta")
	}
	if balanceAfter != balanceBefore+delta {
		return nil, shared.NewDomainError("BALANCE_MISMATCH", "Balance after does not match balance before plus delta")
	}

	quantity := delta
	if quantity < 0 {
		quantity = -quantity
	}

	return &StockMovement{
		BaseEntity:    shared.NewBaseEntity(),
		InventoryID:   inventoryID,
		ProductID:     productID,
		Kind:          kind,
		Quantity:      quantity,
		Delta:         delta,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		OccurredAt:    time.Now(),
	}, nil
}

// WithReference sets the source document reference
func (m *StockMovement) WithReference(reference string) *StockMovement {
	m.Reference = reference
	return m
}

// WithReason sets the reason for the movement
func (m *StockMovement) WithReason(reason string) *StockMovement {
	m.Reason = reason
	return m
}

// WithOperatorID sets the user who performed the operation
func (m *StockMovement) WithOperatorID(operatorID uuid.UUID) *StockMovement {
	m.OperatorID = &operatorID
	return m
}

// IsInbound returns true if the movement added stock
func (m *StockMovement) IsInbound() bool {
	return m.Delta > 0
}

// IsOutbound returns true if the movement removed stock
func (m *StockMovement) IsOutbound() bool {
	return m.Delta < 0
}
