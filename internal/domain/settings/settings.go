package settings

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minierp/backend/internal/domain/shared"
)

// DefaultLowStockLimit applies when no settings row exists yet
const DefaultLowStockLimit int64 = 10

// Settings is the process-wide configuration row. There is at most one row;
// it is created explicitly through the settings service, never as a side
// effect of a read.
type Settings struct {
	shared.BaseEntity
	CompanyName   string          `gorm:"type:varchar(100);not null;default:'My Company'"`
	Currency      string          `gorm:"type:varchar(10);not null;default:'USD'"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	InvoicePrefix string          `gorm:"type:varchar(10);not null;default:'INV-'"`
	LowStockLimit int64           `gorm:"not null;default:10"`
}

// TableName returns the table name for GORM
func (Settings) TableName() string {
	return "settings"
}

// NewDefaultSettings creates the settings row with default values
func NewDefaultSettings() *Settings {
	return &Settings{
		BaseEntity:    shared.NewBaseEntity(),
		CompanyName:   "My Company",
		Currency:      "USD",
		TaxRate:       decimal.Zero,
		InvoicePrefix: "INV-",
		LowStockLimit: DefaultLowStockLimit,
	}
}

// Update applies validated changes to the settings row
func (s *Settings) Update(companyName, currency, invoicePrefix string, taxRate decimal.Decimal, lowStockLimit int64) error {
	companyName = strings.TrimSpace(companyName)
	if len(companyName) < 2 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name must be at least 2 characters")
	}
	if currency == "" {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency cannot be empty")
	}
	if taxRate.IsNegative() {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}
	if lowStockLimit < 1 {
		return shared.NewDomainError("INVALID_LOW_STOCK_LIMIT", "Low stock limit must be at least 1")
	}

	s.CompanyName = companyName
	s.Currency = currency
	s.TaxRate = taxRate
	s.InvoicePrefix = invoicePrefix
	s.LowStockLimit = lowStockLimit
	return nil
}
