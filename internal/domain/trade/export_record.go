package trade

import (
	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// ExportRecord is an immutable record of an outbound shipment to a client
type ExportRecord struct {
	shared.BaseEntity
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index:idx_exports_product"`
	Quantity  int64      `gorm:"not null"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index:idx_exports_client"`
	Notes     string     `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ExportRecord) TableName() string {
	return "export_records"
}

// NewExportRecord creates an export record
func NewExportRecord(productID uuid.UUID, quantity int64, clientID *uuid.UUID, notes string) (*ExportRecord, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if clientID != nil && *clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client reference cannot be empty")
	}

	return &ExportRecord{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
		ClientID:   clientID,
		Notes:      notes,
	}, nil
}
