package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/minierp/backend/internal/domain/shared"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func inventoryRows(productID uuid.UUID, quantity, totalIn, totalOut int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "product_id", "quantity", "total_in", "total_out", "last_movement"}).
		AddRow(uuid.New(), time.Now(), time.Now(), 1, productID, quantity, totalIn, totalOut, nil)
}

func TestGormInventoryRepository_FindByProduct(t *testing.T) {
	t.Run("finds existing record", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		productID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "inventory_records" WHERE product_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnRows(inventoryRows(productID, 25, 40, 15))

		record, err := repo.FindByProduct(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, int64(25), record.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		productID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "inventory_records"`).
			WithArgs(productID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByProduct(context.Background(), productID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormInventoryRepository_FindByProductForUpdate(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormInventoryRepository(db)

	productID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "inventory_records" WHERE product_id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
		WithArgs(productID, 1).
		WillReturnRows(inventoryRows(productID, 7, 10, 3))

	record, err := repo.FindByProductForUpdate(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInventoryRepository_ApplyDelta(t *testing.T) {
	productID := uuid.New()
	now := time.Now()

	t.Run("applies delta when the guard passes", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		mock.ExpectExec(`UPDATE "inventory_records" SET .* WHERE product_id = \$\d+ AND quantity \+ \$\d+ >= 0`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "inventory_records" WHERE product_id = \$1`).
			WithArgs(productID, 1).
			WillReturnRows(inventoryRows(productID, 18, 30, 12))

		record, err := repo.ApplyDelta(context.Background(), productID, -6, now)
		require.NoError(t, err)
		assert.Equal(t, int64(18), record.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard rejection yields ErrInsufficientStock", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		mock.ExpectExec(`UPDATE "inventory_records"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		// The record exists, so the guard must have rejected the delta
		mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory_records" WHERE product_id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		_, err := repo.ApplyDelta(context.Background(), productID, -50, now)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing record yields ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		mock.ExpectExec(`UPDATE "inventory_records"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory_records" WHERE product_id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := repo.ApplyDelta(context.Background(), productID, -3, now)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryRepository_FindAtOrBelow(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormInventoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "inventory_records" WHERE quantity <= \$1 ORDER BY quantity ASC`).
		WithArgs(int64(10)).
		WillReturnRows(inventoryRows(uuid.New(), 4, 20, 16))

	records, err := repo.FindAtOrBelow(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInventoryRepository_FindBelowProductMinimum(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormInventoryRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "inventory_records" JOIN products ON products\.id = inventory_records\.product_id WHERE inventory_records\.quantity <= products\.min_stock`).
		WillReturnRows(inventoryRows(uuid.New(), 2, 12, 10))

	records, err := repo.FindBelowProductMinimum(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
