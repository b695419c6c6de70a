package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minierp/backend/internal/domain/catalog"
)

// CreateProductRequest registers a new catalog product
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	SKU         string          `json:"sku" validate:"required,max=50"`
	Type        string          `json:"type" validate:"required,oneof=RAW_MATERIAL FINISHED_GOOD"`
	Category    string          `json:"category" validate:"omitempty,max=50"`
	Price       decimal.Decimal `json:"price"`
	Weight      decimal.Decimal `json:"weight"`
	Unit        string          `json:"unit" validate:"omitempty,max=20"`
	MinStock    *int64          `json:"min_stock" validate:"omitempty,min=0"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Image       string          `json:"image" validate:"omitempty,max=255"`
}

// UpdateProductRequest updates an existing product
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"omitempty,max=100"`
	Category    string          `json:"category" validate:"omitempty,max=50"`
	Price       *decimal.Decimal `json:"price"`
	Weight      decimal.Decimal `json:"weight"`
	Unit        string          `json:"unit" validate:"omitempty,max=20"`
	MinStock    *int64          `json:"min_stock" validate:"omitempty,min=0"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Image       string          `json:"image" validate:"omitempty,max=255"`
}

// ListFilter represents filter options for product lists
type ListFilter struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Type     string `json:"type" validate:"omitempty,oneof=RAW_MATERIAL FINISHED_GOOD"`
	Page     int    `json:"page" validate:"omitempty,min=1"`
	PageSize int    `json:"page_size" validate:"omitempty,min=1,max=100"`
}

// ProductResponse represents a product in responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Weight      decimal.Decimal `json:"weight"`
	Unit        string          `json:"unit"`
	Type        string          `json:"type"`
	MinStock    int64           `json:"min_stock"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductStockResponse pairs a product with its live balance for list views
type ProductStockResponse struct {
	ProductResponse
	Quantity   int64 `json:"quantity"`
	IsLowStock bool  `json:"is_low_stock"`
}

// ToProductResponse converts a product to a response DTO
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		SKU:         product.SKU,
		Category:    product.Category,
		Price:       product.Price,
		Weight:      product.Weight,
		Unit:        product.Unit,
		Type:        string(product.Type),
		MinStock:    product.MinStock,
		Description: product.Description,
		Image:       product.Image,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
