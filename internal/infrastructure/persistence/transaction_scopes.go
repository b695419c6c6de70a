package persistence

import (
	"context"

	"gorm.io/gorm"

	catalogapp "github.com/minierp/backend/internal/application/catalog"
	inventoryapp "github.com/minierp/backend/internal/application/inventory"
	tradeapp "github.com/minierp/backend/internal/application/trade"
	"github.com/minierp/backend/internal/domain/catalog"
	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/trade"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions. The counter update and the movement insert travel
// in the same transaction.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos inventoryapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

type gormInventoryRepositories struct {
	tx *gorm.DB
}

// InventoryRepo returns the inventory repository scoped to the current transaction
func (r *gormInventoryRepositories) InventoryRepo() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

// MovementRepo returns the stock movement repository scoped to the current transaction
func (r *gormInventoryRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// GormTradeTransactionScope implements the trade TransactionScope using GORM
// transactions. Source documents commit together with their ledger writes.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos tradeapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTradeRepositories{tx: tx})
	})
}

type gormTradeRepositories struct {
	tx *gorm.DB
}

// OrderRepo returns the order repository scoped to the current transaction
func (r *gormTradeRepositories) OrderRepo() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// InvoiceRepo returns the invoice repository scoped to the current transaction
func (r *gormTradeRepositories) InvoiceRepo() trade.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// ShipmentRepo returns the shipment repository scoped to the current transaction
func (r *gormTradeRepositories) ShipmentRepo() trade.ShipmentRepository {
	return NewGormShipmentRepository(r.tx)
}

// ImportRepo returns the import record repository scoped to the current transaction
func (r *gormTradeRepositories) ImportRepo() trade.ImportRecordRepository {
	return NewGormImportRecordRepository(r.tx)
}

// ExportRepo returns the export record repository scoped to the current transaction
func (r *gormTradeRepositories) ExportRepo() trade.ExportRecordRepository {
	return NewGormExportRecordRepository(r.tx)
}

// InventoryRepo returns the inventory repository scoped to the current transaction
func (r *gormTradeRepositories) InventoryRepo() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

// MovementRepo returns the stock movement repository scoped to the current transaction
func (r *gormTradeRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// GormCatalogTransactionScope implements the catalog TransactionScope using
// GORM transactions. A product and its zero-quantity inventory record are
// created atomically.
type GormCatalogTransactionScope struct {
	db *gorm.DB
}

// NewGormCatalogTransactionScope creates a new GormCatalogTransactionScope
func NewGormCatalogTransactionScope(db *gorm.DB) *GormCatalogTransactionScope {
	return &GormCatalogTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormCatalogTransactionScope) Execute(ctx context.Context, fn func(repos catalogapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCatalogRepositories{tx: tx})
	})
}

type gormCatalogRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormCatalogRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// InventoryRepo returns the inventory repository scoped to the current transaction
func (r *gormCatalogRepositories) InventoryRepo() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

// Ensure the scopes implement their interfaces
var (
	_ inventoryapp.TransactionScope = (*GormInventoryTransactionScope)(nil)
	_ tradeapp.TransactionScope     = (*GormTradeTransactionScope)(nil)
	_ catalogapp.TransactionScope   = (*GormCatalogTransactionScope)(nil)
)
