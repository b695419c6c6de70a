package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementKind(t *testing.T) {
	t.Run("validates known kinds", func(t *testing.T) {
		kinds := []MovementKind{
			MovementImport, MovementExport, MovementOrder,
			MovementAdjustAdd, MovementAdjustRemove, MovementAdjustSet,
		}
		for _, kind := range kinds {
			assert.True(t, kind.IsValid(), kind.String())
		}
		assert.False(t, MovementKind("TRANSFER").IsValid())
	})

	t.Run("classifies direction", func(t *testing.T) {
		assert.True(t, MovementImport.IsInbound())
		assert.True(t, MovementAdjustAdd.IsInbound())
		assert.True(t, MovementExport.IsOutbound())
		assert.True(t, MovementOrder.IsOutbound())
		assert.True(t, MovementAdjustRemove.IsOutbound())

		// SET direction depends on the computed delta
		assert.False(t, MovementAdjustSet.IsInbound())
		assert.False(t, MovementAdjustSet.IsOutbound())
	})
}

func TestNewStockMovement(t *testing.T) {
	inventoryID := uuid.New()
	productID := uuid.New()

	t.Run("creates inbound movement", func(t *testing.T) {
		m, err := NewStockMovement(inventoryID, productID, MovementImport, 20, 6, 26)

		require.NoError(t, err)
		assert.Equal(t, int64(20), m.Quantity)
		assert.Equal(t, int64(20), m.Delta)
		assert.Equal(t, int64(6), m.BalanceBefore)
		assert.Equal(t, int64(26), m.BalanceAfter)
		assert.True(t, m.IsInbound())
		assert.False(t, m.IsOutbound())
	})

	t.Run("creates outbound movement with positive quantity", func(t *testing.T) {
		m, err := NewStockMovement(inventoryID, productID, MovementExport, -4, 10, 6)

		require.NoError(t, err)
		assert.Equal(t, int64(4), m.Quantity)
		assert.Equal(t, int64(-4), m.Delta)
		assert.True(t, m.IsOutbound())
	})

	t.Run("rejects direction mismatch", func(t *testing.T) {
		_, err := NewStockMovement(inventoryID, productID, MovementImport, -5, 10, 5)
		require.Error(t, err)

		_, err = NewStockMovement(inventoryID, productID, MovementOrder, 5, 10, 15)
		require.Error(t, err)
	})

	t.Run("allows either direction for adjust set", func(t *testing.T) {
		_, err := NewStockMovement(inventoryID, productID, MovementAdjustSet, -4, 7, 3)
		require.NoError(t, err)

		_, err = NewStockMovement(inventoryID, productID, MovementAdjustSet, 7, 3, 10)
		require.NoError(t, err)
	})

	t.Run("rejects inconsistent balances", func(t *testing.T) {
		_, err := NewStockMovement(inventoryID, productID, MovementImport, 20, 6, 30)
		require.Error(t, err)
	})

	t.Run("rejects zero delta and missing references", func(t *testing.T) {
		_, err := NewStockMovement(inventoryID, productID, MovementImport, 0, 6, 6)
		require.Error(t, err)

		_, err = NewStockMovement(uuid.Nil, productID, MovementImport, 5, 0, 5)
		require.Error(t, err)

		_, err = NewStockMovement(inventoryID, uuid.Nil, MovementImport, 5, 0, 5)
		require.Error(t, err)
	})

	t.Run("attaches optional metadata", func(t *testing.T) {
		operatorID := uuid.New()
		m, err := NewStockMovement(inventoryID, productID, MovementAdjustRemove, -2, 5, 3)
		require.NoError(t, err)

		m.WithReference("ADJ-001").WithReason("damaged goods").WithOperatorID(operatorID)

		assert.Equal(t, "ADJ-001", m.Reference)
		assert.Equal(t, "damaged goods", m.Reason)
		require.NotNil(t, m.OperatorID)
		assert.Equal(t, operatorID, *m.OperatorID)
	})
}
