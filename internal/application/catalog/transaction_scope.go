package catalog

import (
	"context"

	"github.com/minierp/backend/internal/domain/catalog"
	"github.com/minierp/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the catalog and
// inventory repositories. A product and its inventory record are created
// together, so the scope spans both.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// InventoryRepo returns the inventory repository scoped to the current transaction
	InventoryRepo() inventory.InventoryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	productRepo   catalog.ProductRepository
	inventoryRepo inventory.InventoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	inventoryRepo inventory.InventoryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// InventoryRepo returns the inventory repository.
func (s *NoOpTransactionScope) InventoryRepo() inventory.InventoryRepository {
	return s.inventoryRepo
}
