package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// BatchStatus represents the production state of a batch
type BatchStatus string

const (
	BatchStatusPlanned      BatchStatus = "PLANNED"
	BatchStatusInProduction BatchStatus = "IN_PRODUCTION"
	BatchStatusCompleted    BatchStatus = "COMPLETED"
)

// IsValid returns true if the batch status is valid
func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusPlanned, BatchStatusInProduction, BatchStatusCompleted:
		return true
	}
	return false
}

// Batch is a production batch of a product. Batches track production output
// separately from the inventory ledger; completing a batch does not itself
// move stock.
type Batch struct {
	shared.BaseEntity
	BatchCode       string      `gorm:"type:varchar(50);not null;uniqueIndex"`
	ProductID       uuid.UUID   `gorm:"type:uuid;not null;index:idx_batches_product"`
	InitialQty      int64       `gorm:"not null"`
	AvailableQty    int64       `gorm:"not null"`
	Status          BatchStatus `gorm:"type:varchar(20);not null;default:'PLANNED'"`
	ManufactureDate *time.Time  `gorm:"type:timestamptz"`
	ExpiryDate      *time.Time  `gorm:"type:timestamptz"`
	Notes           string      `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Batch) TableName() string {
	return "batches"
}

// NewBatch creates a production batch
func NewBatch(batchCode string, productID uuid.UUID, quantity int64, status BatchStatus) (*Batch, error) {
	batchCode = strings.TrimSpace(batchCode)
	if batchCode == "" {
		return nil, shared.NewDomainError("INVALID_BATCH_CODE", "Batch code is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if status == "" {
		status = BatchStatusPlanned
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown batch status")
	}

	return &Batch{
		BaseEntity:   shared.NewBaseEntity(),
		BatchCode:    batchCode,
		ProductID:    productID,
		InitialQty:   quantity,
		AvailableQty: quantity,
		Status:       status,
	}, nil
}

// SetStatus transitions the batch status
func (b *Batch) SetStatus(status BatchStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown batch status")
	}
	b.Status = status
	return nil
}

// Consume reduces the batch's available quantity
func (b *Batch) Consume(quantity int64) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if b.AvailableQty < quantity {
		return shared.ErrInsufficientStock
	}
	b.AvailableQty -= quantity
	return nil
}
