package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Invoice, error) {
	var invoice trade.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindByOrder finds the invoice belonging to an order
func (r *GormInvoiceRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*trade.Invoice, error) {
	var invoice trade.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll finds invoices matching the filter
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Invoice, error) {
	var invoices []trade.Invoice
	query := r.db.WithContext(ctx).Model(&trade.Invoice{})

	if filter.Search != "" {
		query = query.Where("invoice_number ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "due_before":
			query = query.Where("due_date < ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, CommonSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Create inserts a new invoice
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *trade.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Save persists changes to an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *trade.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ trade.InvoiceRepository = (*GormInvoiceRepository)(nil)
