package trade

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minierp/backend/internal/domain/shared"
)

// ImportRecord is an immutable record of an inbound delivery from a supplier.
// A linked product means the delivery also moved inventory; unlinked imports
// (raw materials without catalog entries) only document the purchase.
type ImportRecord struct {
	shared.BaseEntity
	Supplier     string          `gorm:"type:varchar(100);not null"`
	MaterialName string          `gorm:"type:varchar(100)"`
	ProductID    *uuid.UUID      `gorm:"type:uuid;index:idx_imports_product"`
	Quantity     int64           `gorm:"not null"`
	Unit         string          `gorm:"type:varchar(20);not null;default:'unit'"`
	Cost         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes        string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ImportRecord) TableName() string {
	return "import_records"
}

// NewImportRecord creates an import record
func NewImportRecord(supplier, materialName string, productID *uuid.UUID, quantity int64, unit string, cost decimal.Decimal, notes string) (*ImportRecord, error) {
	supplier = strings.TrimSpace(supplier)
	if supplier == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier is required")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}
	if productID != nil && *productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product reference cannot be empty")
	}
	if unit == "" {
		unit = "unit"
	}

	return &ImportRecord{
		BaseEntity:   shared.NewBaseEntity(),
		Supplier:     supplier,
		MaterialName: materialName,
		ProductID:    productID,
		Quantity:     quantity,
		Unit:         unit,
		Cost:         cost,
		Notes:        notes,
	}, nil
}

// MovesInventory returns true when the import is linked to a catalog product
func (r *ImportRecord) MovesInventory() bool {
	return r.ProductID != nil
}
