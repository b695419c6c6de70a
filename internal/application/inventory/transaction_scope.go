package inventory

import (
	"context"

	"github.com/minierp/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
//
// The counter row and its movement record must always land together: a
// movement without a counter change (or the reverse) breaks the audit trail,
// so every write path goes through this scope.
type TransactionalRepositories interface {
	// InventoryRepo returns the inventory repository scoped to the current transaction
	InventoryRepo() inventory.InventoryRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.StockMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing or when transaction support is not
// required.
type NoOpTransactionScope struct {
	inventoryRepo inventory.InventoryRepository
	movementRepo  inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	inventoryRepo inventory.InventoryRepository,
	movementRepo inventory.StockMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// InventoryRepo returns the inventory repository.
func (s *NoOpTransactionScope) InventoryRepo() inventory.InventoryRepository {
	return s.inventoryRepo
}

// MovementRepo returns the stock movement repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository {
	return s.movementRepo
}
