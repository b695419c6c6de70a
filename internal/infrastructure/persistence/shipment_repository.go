package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// GormShipmentRepository implements ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByOrder finds the shipment belonging to an order
func (r *GormShipmentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*trade.Shipment, error) {
	var shipment trade.Shipment
	if err := r.db.WithContext(ctx).First(&shipment, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

// FindAll finds shipments matching the filter
func (r *GormShipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Shipment, error) {
	var shipments []trade.Shipment
	query := r.db.WithContext(ctx).Model(&trade.Shipment{})

	for key, value := range filter.Filters {
		switch key {
		case "carrier":
			query = query.Where("carrier = ?", value)
		case "shipped":
			if value == true {
				query = query.Where("shipped_date IS NOT NULL")
			}
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, CommonSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

// Save creates or updates a shipment
func (r *GormShipmentRepository) Save(ctx context.Context, shipment *trade.Shipment) error {
	return r.db.WithContext(ctx).Save(shipment).Error
}

// Ensure GormShipmentRepository implements ShipmentRepository
var _ trade.ShipmentRepository = (*GormShipmentRepository)(nil)
