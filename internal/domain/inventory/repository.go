package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// InventoryRepository defines the interface for inventory record persistence
type InventoryRepository interface {
	// FindByID finds an inventory record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryRecord, error)

	// FindByProduct finds the inventory record for a product
	FindByProduct(ctx context.Context, productID uuid.UUID) (*InventoryRecord, error)

	// FindByProductForUpdate finds the inventory record for a product and
	// takes a row-level lock for the duration of the surrounding transaction.
	// Used by read-check-write sequences (ADJUST_SET) that cannot be
	// expressed as a single guarded update.
	FindByProductForUpdate(ctx context.Context, productID uuid.UUID) (*InventoryRecord, error)

	// FindAll finds all inventory records matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryRecord, error)

	// Count counts inventory records matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindAtOrBelow finds records whose quantity is at or below the given threshold
	FindAtOrBelow(ctx context.Context, threshold int64) ([]InventoryRecord, error)

	// FindBelowProductMinimum finds records whose quantity is at or below the
	// owning product's min_stock. Serves list/report flagging only; the
	// notifier uses the global settings threshold instead.
	FindBelowProductMinimum(ctx context.Context) ([]InventoryRecord, error)

	// Create inserts a new inventory record
	Create(ctx context.Context, record *InventoryRecord) error

	// ApplyDelta applies a signed delta to the product's counters as a single
	// server-side guarded update: the row is only touched when the resulting
	// quantity stays non-negative. Returns the post-update record,
	// shared.ErrInsufficientStock when the guard rejects the delta, or
	// shared.ErrNotFound when no record exists for the product.
	ApplyDelta(ctx context.Context, productID uuid.UUID, delta int64, at time.Time) (*InventoryRecord, error)

	// Save persists the full state of a record previously loaded under a row
	// lock. Only valid inside the transaction that holds the lock.
	Save(ctx context.Context, record *InventoryRecord) error

	// Delete deletes an inventory record
	Delete(ctx context.Context, id uuid.UUID) error
}

// StockMovementRepository defines the interface for movement record persistence.
// Movements are append-only facts; there are no update or delete operations.
type StockMovementRepository interface {
	// Create appends a movement record
	Create(ctx context.Context, movement *StockMovement) error

	// FindByProduct finds movements for a product, newest first
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]StockMovement, error)

	// FindByKind finds movements of a given kind, newest first
	FindByKind(ctx context.Context, kind MovementKind, filter shared.Filter) ([]StockMovement, error)

	// CountByProduct counts movements for a product
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
