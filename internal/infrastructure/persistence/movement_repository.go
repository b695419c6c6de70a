package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/shared"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// Movements are append-only; the repository exposes no update or delete.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Create appends a movement record
func (r *GormStockMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByProduct finds movements for a product, newest first
func (r *GormStockMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.StockMovement{}).Where("product_id = ?", productID),
		filter,
	)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByKind finds movements of a given kind, newest first
func (r *GormStockMovementRepository) FindByKind(ctx context.Context, kind inventory.MovementKind, filter shared.Filter) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.StockMovement{}).Where("kind = ?", kind),
		filter,
	)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// CountByProduct counts movements for a product
func (r *GormStockMovementRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockMovement{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies pagination and ordering to a movement query
func (r *GormStockMovementRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "kind":
			query = query.Where("kind = ?", value)
		case "reference":
			query = query.Where("reference = ?", value)
		case "operator_id":
			query = query.Where("operator_id = ?", value)
		case "since":
			query = query.Where("occurred_at >= ?", value)
		case "until":
			query = query.Where("occurred_at < ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, MovementSortFields, "occurred_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
