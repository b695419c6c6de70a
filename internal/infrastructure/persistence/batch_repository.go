package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// GormBatchRepository implements BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByID finds a production batch by ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Batch, error) {
	var batch trade.Batch
	if err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindByCode finds a production batch by its unique code
func (r *GormBatchRepository) FindByCode(ctx context.Context, batchCode string) (*trade.Batch, error) {
	var batch trade.Batch
	if err := r.db.WithContext(ctx).First(&batch, "batch_code = ?", batchCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindByProduct finds batches for a product
func (r *GormBatchRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]trade.Batch, error) {
	var batches []trade.Batch
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trade.Batch{}).Where("product_id = ?", productID),
		filter,
	)
	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindAll finds batches matching the filter
func (r *GormBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Batch, error) {
	var batches []trade.Batch
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.Batch{}), filter)
	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// Save creates or updates a batch
func (r *GormBatchRepository) Save(ctx context.Context, batch *trade.Batch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// Delete deletes a batch
func (r *GormBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.Batch{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormBatchRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("batch_code ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "available":
			if value == true {
				query = query.Where("available_qty > 0")
			}
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, BatchSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

// Ensure GormBatchRepository implements BatchRepository
var _ trade.BatchRepository = (*GormBatchRepository)(nil)
