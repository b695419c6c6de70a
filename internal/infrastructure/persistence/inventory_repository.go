package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/shared"
)

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByID finds an inventory record by its ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryRecord, error) {
	var record inventory.InventoryRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByProduct finds the inventory record for a product
func (r *GormInventoryRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*inventory.InventoryRecord, error) {
	var record inventory.InventoryRecord
	if err := r.db.WithContext(ctx).First(&record, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByProductForUpdate finds the inventory record for a product and takes a
// row-level lock for the duration of the surrounding transaction
func (r *GormInventoryRepository) FindByProductForUpdate(ctx context.Context, productID uuid.UUID) (*inventory.InventoryRecord, error) {
	var record inventory.InventoryRecord
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&record, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindAll finds all inventory records matching the filter
func (r *GormInventoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryRecord, error) {
	var records []inventory.InventoryRecord
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.InventoryRecord{}), filter)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count counts inventory records matching the filter
func (r *GormInventoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.InventoryRecord{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAtOrBelow finds records whose quantity is at or below the given threshold
func (r *GormInventoryRepository) FindAtOrBelow(ctx context.Context, threshold int64) ([]inventory.InventoryRecord, error) {
	var records []inventory.InventoryRecord
	if err := r.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Order("quantity ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindBelowProductMinimum finds records whose quantity is at or below the
// owning product's min_stock
func (r *GormInventoryRepository) FindBelowProductMinimum(ctx context.Context) ([]inventory.InventoryRecord, error) {
	var records []inventory.InventoryRecord
	if err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = inventory_records.product_id").
		Where("inventory_records.quantity <= products.min_stock").
		Order("inventory_records.quantity ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a new inventory record
func (r *GormInventoryRepository) Create(ctx context.Context, record *inventory.InventoryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ApplyDelta applies a signed delta to the product's counters as a single
// guarded update. The WHERE clause keeps the row untouched when the resulting
// quantity would go negative, so concurrent movements can never oversell
// regardless of what the caller read beforehand.
func (r *GormInventoryRepository) ApplyDelta(ctx context.Context, productID uuid.UUID, delta int64, at time.Time) (*inventory.InventoryRecord, error) {
	var totalIn, totalOut int64
	if delta > 0 {
		totalIn = delta
	} else {
		totalOut = -delta
	}

	result := r.db.WithContext(ctx).
		Model(&inventory.InventoryRecord{}).
		Where("product_id = ? AND quantity + ? >= 0", productID, delta).
		Updates(map[string]interface{}{
			"quantity":      gorm.Expr("quantity + ?", delta),
			"total_in":      gorm.Expr("total_in + ?", totalIn),
			"total_out":     gorm.Expr("total_out + ?", totalOut),
			"last_movement": at,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    at,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the record does not exist or the guard rejected the delta
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&inventory.InventoryRecord{}).
			Where("product_id = ?", productID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, shared.ErrNotFound
		}
		return nil, shared.ErrInsufficientStock
	}

	return r.FindByProduct(ctx, productID)
}

// Save persists the full state of a record previously loaded under a row lock
func (r *GormInventoryRepository) Save(ctx context.Context, record *inventory.InventoryRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete deletes an inventory record
func (r *GormInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.InventoryRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormInventoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, InventorySortFields, "updated_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormInventoryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "has_stock":
			if value == true {
				query = query.Where("quantity > 0")
			}
		case "no_stock":
			if value == true {
				query = query.Where("quantity = 0")
			}
		case "max_quantity":
			query = query.Where("quantity <= ?", value)
		}
	}
	return query
}

// Ensure GormInventoryRepository implements InventoryRepository
var _ inventory.InventoryRepository = (*GormInventoryRepository)(nil)
