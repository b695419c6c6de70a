package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minierp/backend/internal/domain/shared"
)

// ProductType classifies catalog entries
type ProductType string

const (
	// ProductTypeRawMaterial is an input material tracked for production
	ProductTypeRawMaterial ProductType = "RAW_MATERIAL"
	// ProductTypeFinishedGood is a sellable finished product
	ProductTypeFinishedGood ProductType = "FINISHED_GOOD"
)

// IsValid returns true if the product type is valid
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeRawMaterial, ProductTypeFinishedGood:
		return true
	}
	return false
}

// DefaultMinStock applies when a product does not specify its own threshold
const DefaultMinStock int64 = 10

// Product is a catalog entry. MinStock is the per-product threshold used for
// low-stock flagging in lists and reports; the notification threshold is the
// separate global settings value.
type Product struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(100);not null"`
	SKU         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Category    string          `gorm:"type:varchar(50)"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Weight      decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Unit        string          `gorm:"type:varchar(20);not null;default:'g'"`
	Type        ProductType     `gorm:"type:varchar(20);not null"`
	MinStock    int64           `gorm:"not null;default:10"`
	Description string          `gorm:"type:varchar(500)"`
	Image       string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(name, sku string, productType ProductType, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU is required")
	}
	if !productType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PRODUCT_TYPE", "Unknown product type")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SKU:               sku,
		Type:              productType,
		Price:             price,
		Unit:              "g",
		MinStock:          DefaultMinStock,
	}, nil
}

// SetMinStock sets the per-product low-stock threshold
func (p *Product) SetMinStock(minStock int64) error {
	if minStock < 0 {
		return shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock cannot be negative")
	}
	p.MinStock = minStock
	p.IncrementVersion()
	return nil
}

// SetPrice updates the sale price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Price = price
	p.IncrementVersion()
	return nil
}

// SetDetails updates descriptive fields
func (p *Product) SetDetails(category, unit, description, image string, weight decimal.Decimal) {
	p.Category = category
	if unit != "" {
		p.Unit = unit
	}
	p.Description = description
	p.Image = image
	p.Weight = weight
	p.IncrementVersion()
}
