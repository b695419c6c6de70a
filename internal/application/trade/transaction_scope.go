package trade

import (
	"context"

	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the trade repositories
// together with the inventory repositories. Movement sources (imports,
// exports, orders) must persist their own document and the resulting ledger
// writes in one transaction, so the scope spans both sets.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() trade.OrderRepository
	// InvoiceRepo returns the invoice repository scoped to the current transaction
	InvoiceRepo() trade.InvoiceRepository
	// ShipmentRepo returns the shipment repository scoped to the current transaction
	ShipmentRepo() trade.ShipmentRepository
	// ImportRepo returns the import record repository scoped to the current transaction
	ImportRepo() trade.ImportRecordRepository
	// ExportRepo returns the export record repository scoped to the current transaction
	ExportRepo() trade.ExportRecordRepository
	// InventoryRepo returns the inventory repository scoped to the current transaction
	InventoryRepo() inventory.InventoryRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.StockMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	orderRepo     trade.OrderRepository
	invoiceRepo   trade.InvoiceRepository
	shipmentRepo  trade.ShipmentRepository
	importRepo    trade.ImportRecordRepository
	exportRepo    trade.ExportRecordRepository
	inventoryRepo inventory.InventoryRepository
	movementRepo  inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	orderRepo trade.OrderRepository,
	invoiceRepo trade.InvoiceRepository,
	shipmentRepo trade.ShipmentRepository,
	importRepo trade.ImportRecordRepository,
	exportRepo trade.ExportRecordRepository,
	inventoryRepo inventory.InventoryRepository,
	movementRepo inventory.StockMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:     orderRepo,
		invoiceRepo:   invoiceRepo,
		shipmentRepo:  shipmentRepo,
		importRepo:    importRepo,
		exportRepo:    exportRepo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository.
func (s *NoOpTransactionScope) OrderRepo() trade.OrderRepository {
	return s.orderRepo
}

// InvoiceRepo returns the invoice repository.
func (s *NoOpTransactionScope) InvoiceRepo() trade.InvoiceRepository {
	return s.invoiceRepo
}

// ShipmentRepo returns the shipment repository.
func (s *NoOpTransactionScope) ShipmentRepo() trade.ShipmentRepository {
	return s.shipmentRepo
}

// ImportRepo returns the import record repository.
func (s *NoOpTransactionScope) ImportRepo() trade.ImportRecordRepository {
	return s.importRepo
}

// ExportRepo returns the export record repository.
func (s *NoOpTransactionScope) ExportRepo() trade.ExportRecordRepository {
	return s.exportRepo
}

// InventoryRepo returns the inventory repository.
func (s *NoOpTransactionScope) InventoryRepo() inventory.InventoryRepository {
	return s.inventoryRepo
}

// MovementRepo returns the stock movement repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository {
	return s.movementRepo
}
