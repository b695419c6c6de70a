package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// GormImportRecordRepository implements ImportRecordRepository using GORM.
// Import records are append-only source documents.
type GormImportRecordRepository struct {
	db *gorm.DB
}

// NewGormImportRecordRepository creates a new GormImportRecordRepository
func NewGormImportRecordRepository(db *gorm.DB) *GormImportRecordRepository {
	return &GormImportRecordRepository{db: db}
}

// Create appends an import record
func (r *GormImportRecordRepository) Create(ctx context.Context, record *trade.ImportRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindAll finds import records matching the filter, newest first
func (r *GormImportRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.ImportRecord, error) {
	var records []trade.ImportRecord
	query := applyRecordFilter(r.db.WithContext(ctx).Model(&trade.ImportRecord{}), filter)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("supplier ILIKE ? OR material_name ILIKE ?", pattern, pattern)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count counts import records matching the filter
func (r *GormImportRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyRecordFilterWithoutPagination(r.db.WithContext(ctx).Model(&trade.ImportRecord{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormExportRecordRepository implements ExportRecordRepository using GORM
type GormExportRecordRepository struct {
	db *gorm.DB
}

// NewGormExportRecordRepository creates a new GormExportRecordRepository
func NewGormExportRecordRepository(db *gorm.DB) *GormExportRecordRepository {
	return &GormExportRecordRepository{db: db}
}

// Create appends an export record
func (r *GormExportRecordRepository) Create(ctx context.Context, record *trade.ExportRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindAll finds export records matching the filter, newest first
func (r *GormExportRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.ExportRecord, error) {
	var records []trade.ExportRecord
	query := applyRecordFilter(r.db.WithContext(ctx).Model(&trade.ExportRecord{}), filter)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count counts export records matching the filter
func (r *GormExportRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyRecordFilterWithoutPagination(r.db.WithContext(ctx).Model(&trade.ExportRecord{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyRecordFilter applies shared filtering for import/export record queries
func applyRecordFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applyRecordFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CommonSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

// applyRecordFilterWithoutPagination applies filters common to both record kinds
func applyRecordFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "since":
			query = query.Where("created_at >= ?", value)
		case "until":
			query = query.Where("created_at < ?", value)
		}
	}
	return query
}

// Ensure the repositories implement their interfaces
var (
	_ trade.ImportRecordRepository = (*GormImportRecordRepository)(nil)
	_ trade.ExportRecordRepository = (*GormExportRecordRepository)(nil)
)
