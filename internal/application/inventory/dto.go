package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/inventory"
)

// MovementRequest asks for a signed quantity change against a product's
// inventory. Quantity is always positive; the kind determines direction.
type MovementRequest struct {
	ProductID  uuid.UUID  `json:"product_id" validate:"required"`
	Kind       string     `json:"kind" validate:"required,oneof=IMPORT EXPORT ORDER ADJUST_ADD ADJUST_REMOVE"`
	Quantity   int64      `json:"quantity" validate:"required,min=1"`
	Reference  string     `json:"reference" validate:"omitempty,max=100"`
	Reason     string     `json:"reason" validate:"omitempty,max=255"`
	OperatorID *uuid.UUID `json:"operator_id"`
}

// SetQuantityRequest asks for the inventory to be corrected to an absolute
// target, typically after a physical count.
type SetQuantityRequest struct {
	ProductID  uuid.UUID  `json:"product_id" validate:"required"`
	Target     int64      `json:"target" validate:"min=0"`
	Reason     string     `json:"reason" validate:"omitempty,max=255"`
	OperatorID *uuid.UUID `json:"operator_id"`
}

// ListFilter represents filter options for inventory lists
type ListFilter struct {
	Search       string `json:"search"`
	BelowMinimum bool   `json:"below_minimum"`
	Page         int    `json:"page" validate:"omitempty,min=1"`
	PageSize     int    `json:"page_size" validate:"omitempty,min=1,max=100"`
	OrderBy      string `json:"order_by"`
	OrderDir     string `json:"order_dir" validate:"omitempty,oneof=asc desc"`
}

// MovementListFilter represents filter options for movement history
type MovementListFilter struct {
	Kind     string `json:"kind" validate:"omitempty,oneof=IMPORT EXPORT ORDER ADJUST_ADD ADJUST_REMOVE ADJUST_SET"`
	Page     int    `json:"page" validate:"omitempty,min=1"`
	PageSize int    `json:"page_size" validate:"omitempty,min=1,max=100"`
}

// InventoryResponse represents an inventory record in responses
type InventoryResponse struct {
	ID           uuid.UUID  `json:"id"`
	ProductID    uuid.UUID  `json:"product_id"`
	Quantity     int64      `json:"quantity"`
	TotalIn      int64      `json:"total_in"`
	TotalOut     int64      `json:"total_out"`
	LastMovement *time.Time `json:"last_movement,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Version      int        `json:"version"`
}

// MovementResponse represents a stock movement in responses
type MovementResponse struct {
	ID            uuid.UUID  `json:"id"`
	InventoryID   uuid.UUID  `json:"inventory_id"`
	ProductID     uuid.UUID  `json:"product_id"`
	Kind          string     `json:"kind"`
	Quantity      int64      `json:"quantity"`
	Delta         int64      `json:"delta"`
	BalanceBefore int64      `json:"balance_before"`
	BalanceAfter  int64      `json:"balance_after"`
	Reference     string     `json:"reference,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	OperatorID    *uuid.UUID `json:"operator_id,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// ToInventoryResponse converts a domain record to a response DTO
func ToInventoryResponse(record *inventory.InventoryRecord) InventoryResponse {
	return InventoryResponse{
		ID:           record.ID,
		ProductID:    record.ProductID,
		Quantity:     record.Quantity,
		TotalIn:      record.TotalIn,
		TotalOut:     record.TotalOut,
		LastMovement: record.LastMovement,
		UpdatedAt:    record.UpdatedAt,
		Version:      record.Version,
	}
}

// ToMovementResponse converts a domain movement to a response DTO
func ToMovementResponse(movement *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            movement.ID,
		InventoryID:   movement.InventoryID,
		ProductID:     movement.ProductID,
		Kind:          movement.Kind.String(),
		Quantity:      movement.Quantity,
		Delta:         movement.Delta,
		BalanceBefore: movement.BalanceBefore,
		BalanceAfter:  movement.BalanceAfter,
		Reference:     movement.Reference,
		Reason:        movement.Reason,
		OperatorID:    movement.OperatorID,
		OccurredAt:    movement.OccurredAt,
	}
}
