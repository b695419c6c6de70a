package settings

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/minierp/backend/internal/domain/settings"
	"github.com/minierp/backend/internal/domain/shared"
)

// UpdateSettingsRequest replaces the settings row's values
type UpdateSettingsRequest struct {
	CompanyName   string          `json:"company_name" validate:"required,min=2,max=100"`
	Currency      string          `json:"currency" validate:"required,max=10"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	InvoicePrefix string          `json:"invoice_prefix" validate:"omitempty,max=10"`
	LowStockLimit int64           `json:"low_stock_limit" validate:"required,min=1"`
}

// SettingsResponse represents the settings row in responses
type SettingsResponse struct {
	CompanyName   string          `json:"company_name"`
	Currency      string          `json:"currency"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	InvoicePrefix string          `json:"invoice_prefix"`
	LowStockLimit int64           `json:"low_stock_limit"`
}

// SettingsService manages the singleton settings row
type SettingsService struct {
	repo     settings.SettingsRepository
	validate *validator.Validate
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo settings.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo:     repo,
		validate: validator.New(),
	}
}

// EnsureInitialized creates the settings row with defaults if it does not
// exist yet. Called once at startup; safe to call again.
func (s *SettingsService) EnsureInitialized(ctx context.Context) error {
	_, err := s.repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	return s.repo.CreateIfAbsent(ctx, settings.NewDefaultSettings())
}

// Get returns the current settings. Falls back to defaults when the row has
// not been created yet; reads never create the row.
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	row, err := s.repo.Get(ctx)
	if errors.Is(err, shared.ErrNotFound) {
		row = settings.NewDefaultSettings()
	} else if err != nil {
		return nil, err
	}

	return &SettingsResponse{
		CompanyName:   row.CompanyName,
		Currency:      row.Currency,
		TaxRate:       row.TaxRate,
		InvoicePrefix: row.InvoicePrefix,
		LowStockLimit: row.LowStockLimit,
	}, nil
}

// GetLowStockLimit returns the global notification threshold, defaulting
// when no settings row exists.
func (s *SettingsService) GetLowStockLimit(ctx context.Context) (int64, error) {
	row, err := s.repo.Get(ctx)
	if errors.Is(err, shared.ErrNotFound) {
		return settings.DefaultLowStockLimit, nil
	}
	if err != nil {
		return 0, err
	}
	return row.LowStockLimit, nil
}

// Update replaces the settings values, creating the row if needed
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return nil, shared.NewValidationError(fields)
		}
		return nil, err
	}

	row, err := s.repo.Get(ctx)
	if errors.Is(err, shared.ErrNotFound) {
		row = settings.NewDefaultSettings()
		if err := s.repo.CreateIfAbsent(ctx, row); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	prefix := req.InvoicePrefix
	if prefix == "" {
		prefix = row.InvoicePrefix
	}
	if err := row.Update(req.CompanyName, req.Currency, prefix, req.TaxRate, req.LowStockLimit); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, row); err != nil {
		return nil, err
	}

	return &SettingsResponse{
		CompanyName:   row.CompanyName,
		Currency:      row.Currency,
		TaxRate:       row.TaxRate,
		InvoicePrefix: row.InvoicePrefix,
		LowStockLimit: row.LowStockLimit,
	}, nil
}
