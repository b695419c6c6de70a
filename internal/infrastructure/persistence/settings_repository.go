package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/minierp/backend/internal/domain/settings"
	"github.com/minierp/backend/internal/domain/shared"
)

// GormSettingsRepository implements SettingsRepository using GORM.
// The settings table holds at most one row; reads always take the oldest row
// so a racing duplicate insert can never change what callers observe.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the settings row, or shared.ErrNotFound if absent
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var row settings.Settings
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// CreateIfAbsent inserts the row only when none exists yet
func (r *GormSettingsRepository) CreateIfAbsent(ctx context.Context, s *settings.Settings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&settings.Settings{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(s).Error
	})
}

// Save persists changes to the settings row
func (r *GormSettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Ensure GormSettingsRepository implements SettingsRepository
var _ settings.SettingsRepository = (*GormSettingsRepository)(nil)
