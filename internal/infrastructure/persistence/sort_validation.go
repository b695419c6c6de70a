package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"sku":        true,
	"category":   true,
	"price":      true,
	"type":       true,
	"min_stock":  true,
}

// InventorySortFields contains allowed sort fields for inventory records
var InventorySortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"quantity":      true,
	"total_in":      true,
	"total_out":     true,
	"last_movement": true,
}

// MovementSortFields contains allowed sort fields for stock movements
var MovementSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"occurred_at": true,
	"kind":        true,
	"delta":       true,
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"order_number": true,
	"status":       true,
	"total_amount": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"email":      true,
	"role":       true,
}

// BatchSortFields contains allowed sort fields for production batches
var BatchSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"batch_code":       true,
	"status":           true,
	"manufacture_date": true,
	"expiry_date":      true,
}
