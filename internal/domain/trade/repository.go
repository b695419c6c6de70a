package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by ID, including its line items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its unique number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll finds orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Create inserts an order with its line items
	Create(ctx context.Context, order *Order) error

	// Save persists status changes
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order and its line items
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByOrder finds the invoice for an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Invoice, error)

	// FindAll finds invoices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// Create inserts a new invoice
	Create(ctx context.Context, invoice *Invoice) error

	// Save persists status changes
	Save(ctx context.Context, invoice *Invoice) error
}

// ShipmentRepository defines the interface for shipment persistence
type ShipmentRepository interface {
	// FindByOrder finds the shipment for an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Shipment, error)

	// FindAll finds shipments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Shipment, error)

	// Save creates or updates a shipment (upsert on order)
	Save(ctx context.Context, shipment *Shipment) error
}

// ImportRecordRepository defines the interface for import record persistence.
// Records are append-only.
type ImportRecordRepository interface {
	// Create inserts an import record
	Create(ctx context.Context, record *ImportRecord) error

	// FindAll finds import records matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ImportRecord, error)

	// Count counts import records matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ExportRecordRepository defines the interface for export record persistence.
// Records are append-only.
type ExportRecordRepository interface {
	// Create inserts an export record
	Create(ctx context.Context, record *ExportRecord) error

	// FindAll finds export records matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ExportRecord, error)

	// Count counts export records matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// BatchRepository defines the interface for production batch persistence
type BatchRepository interface {
	// FindByID finds a batch by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindByCode finds a batch by its unique code
	FindByCode(ctx context.Context, batchCode string) (*Batch, error)

	// FindByProduct finds batches for a product
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Batch, error)

	// FindAll finds batches matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Batch, error)

	// Save creates or updates a batch
	Save(ctx context.Context, batch *Batch) error

	// Delete deletes a batch
	Delete(ctx context.Context, id uuid.UUID) error
}
