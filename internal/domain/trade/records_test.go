package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImportRecord(t *testing.T) {
	t.Run("linked import moves inventory", func(t *testing.T) {
		productID := uuid.New()
		record, err := NewImportRecord("Acme Supply", "", &productID, 50, "kg", decimal.NewFromFloat(120.00), "")
		require.NoError(t, err)

		assert.True(t, record.MovesInventory())
		assert.Equal(t, int64(50), record.Quantity)
		assert.Equal(t, "kg", record.Unit)
	})

	t.Run("unlinked raw material import does not move inventory", func(t *testing.T) {
		record, err := NewImportRecord("Acme Supply", "sugar", nil, 25, "", decimal.Zero, "")
		require.NoError(t, err)

		assert.False(t, record.MovesInventory())
		assert.Equal(t, "unit", record.Unit)
	})

	t.Run("rejects blank supplier", func(t *testing.T) {
		_, err := NewImportRecord("   ", "", nil, 10, "", decimal.Zero, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewImportRecord("Acme Supply", "", nil, 0, "", decimal.Zero, "")
		assert.Error(t, err)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		_, err := NewImportRecord("Acme Supply", "", nil, 10, "", decimal.NewFromInt(-1), "")
		assert.Error(t, err)
	})
}

func TestNewExportRecord(t *testing.T) {
	t.Run("creates a record with optional client", func(t *testing.T) {
		clientID := uuid.New()
		record, err := NewExportRecord(uuid.New(), 8, &clientID, "pallet 3")
		require.NoError(t, err)

		assert.Equal(t, int64(8), record.Quantity)
		require.NotNil(t, record.ClientID)
		assert.Equal(t, clientID, *record.ClientID)
	})

	t.Run("rejects missing product", func(t *testing.T) {
		_, err := NewExportRecord(uuid.Nil, 8, nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewExportRecord(uuid.New(), 0, nil, "")
		assert.Error(t, err)
	})
}

func TestNewShipment(t *testing.T) {
	t.Run("starts without carrier details", func(t *testing.T) {
		shipment, err := NewShipment(uuid.New())
		require.NoError(t, err)
		assert.False(t, shipment.IsShipped())
	})

	t.Run("rejects missing order", func(t *testing.T) {
		_, err := NewShipment(uuid.Nil)
		assert.Error(t, err)
	})
}

func TestShipmentIsShipped(t *testing.T) {
	shipment, err := NewShipment(uuid.New())
	require.NoError(t, err)

	now := time.Now()
	shipment.UpdateDetails("DHL", "", "in transit", &now, nil)
	assert.False(t, shipment.IsShipped())

	shipment.UpdateDetails("DHL", "TRK-001", "in transit", &now, nil)
	assert.True(t, shipment.IsShipped())
}

func TestBatch(t *testing.T) {
	t.Run("starts with full availability", func(t *testing.T) {
		batch, err := NewBatch("B-2026-001", uuid.New(), 100, "")
		require.NoError(t, err)

		assert.Equal(t, BatchStatusPlanned, batch.Status)
		assert.Equal(t, int64(100), batch.InitialQty)
		assert.Equal(t, int64(100), batch.AvailableQty)
	})

	t.Run("consume reduces availability", func(t *testing.T) {
		batch, err := NewBatch("B-2026-002", uuid.New(), 100, BatchStatusCompleted)
		require.NoError(t, err)

		require.NoError(t, batch.Consume(30))
		assert.Equal(t, int64(70), batch.AvailableQty)

		err = batch.Consume(80)
		assert.Error(t, err)
		assert.Equal(t, int64(70), batch.AvailableQty)
	})

	t.Run("rejects blank code", func(t *testing.T) {
		_, err := NewBatch("", uuid.New(), 100, "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewBatch("B-2026-003", uuid.New(), 100, BatchStatus("SCRAPPED"))
		assert.Error(t, err)
	})
}
