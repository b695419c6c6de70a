package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/shared"
)

func movementRows(productID uuid.UUID, kind inventory.MovementKind, delta int64) *sqlmock.Rows {
	quantity := delta
	if quantity < 0 {
		quantity = -quantity
	}
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "inventory_id", "product_id",
		"kind", "quantity", "delta", "balance_before", "balance_after",
		"reference", "reason", "operator_id", "occurred_at",
	}).AddRow(
		uuid.New(), time.Now(), time.Now(), uuid.New(), productID,
		kind, quantity, delta, 10, 10+delta,
		"", "", nil, time.Now(),
	)
}

func TestGormStockMovementRepository_Create(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormStockMovementRepository(db)

	movement, err := inventory.NewStockMovement(
		uuid.New(), uuid.New(), inventory.MovementExport, -4, 10, 6,
	)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "stock_movements"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), movement)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStockMovementRepository_FindByProduct(t *testing.T) {
	t.Run("orders by occurred_at desc by default", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockMovementRepository(db)

		productID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "stock_movements" WHERE product_id = \$1 ORDER BY occurred_at DESC`).
			WithArgs(productID).
			WillReturnRows(movementRows(productID, inventory.MovementImport, 40))

		movements, err := repo.FindByProduct(context.Background(), productID, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, inventory.MovementImport, movements[0].Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies kind filter and pagination", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockMovementRepository(db)

		productID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "stock_movements" WHERE product_id = \$1 AND kind = \$2 ORDER BY occurred_at DESC LIMIT \$3`).
			WithArgs(productID, "EXPORT", 10).
			WillReturnRows(movementRows(productID, inventory.MovementExport, -4))

		movements, err := repo.FindByProduct(context.Background(), productID, shared.Filter{
			Page:     1,
			PageSize: 10,
			Filters:  map[string]interface{}{"kind": "EXPORT"},
		})
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, int64(-4), movements[0].Delta)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an unknown sort column", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockMovementRepository(db)

		productID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "stock_movements" WHERE product_id = \$1 ORDER BY occurred_at DESC`).
			WithArgs(productID).
			WillReturnRows(movementRows(productID, inventory.MovementAdjustAdd, 2))

		_, err := repo.FindByProduct(context.Background(), productID, shared.Filter{
			OrderBy: "occurred_at; DROP TABLE stock_movements",
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockMovementRepository_FindByKind(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormStockMovementRepository(db)

	productID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "stock_movements" WHERE kind = \$1 ORDER BY occurred_at DESC`).
		WithArgs(inventory.MovementOrder).
		WillReturnRows(movementRows(productID, inventory.MovementOrder, -2))

	movements, err := repo.FindByKind(context.Background(), inventory.MovementOrder, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, productID, movements[0].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStockMovementRepository_CountByProduct(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormStockMovementRepository(db)

	productID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "stock_movements" WHERE product_id = \$1`).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
