package trade

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

type shipmentServiceFixture struct {
	orderRepo    *MockOrderRepository
	shipmentRepo *MockShipmentRepository
	svc          *ShipmentService
}

func newShipmentServiceFixture() *shipmentServiceFixture {
	f := &shipmentServiceFixture{
		orderRepo:    new(MockOrderRepository),
		shipmentRepo: new(MockShipmentRepository),
	}
	scope := NewNoOpTransactionScope(
		f.orderRepo, new(MockInvoiceRepository), f.shipmentRepo,
		new(MockImportRecordRepository), new(MockExportRecordRepository),
		new(MockInventoryRepository), new(MockMovementRepository),
	)
	f.svc = NewShipmentService(f.shipmentRepo, scope)
	return f
}

func pendingOrder(t *testing.T) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(uuid.New(), []trade.OrderItem{
		{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(5)},
	}, decimal.Zero, decimal.Zero, "")
	require.NoError(t, err)
	return order
}

func TestShipmentUpsert(t *testing.T) {
	t.Run("creates a shipment without promoting the order", func(t *testing.T) {
		f := newShipmentServiceFixture()
		order := pendingOrder(t)

		f.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		f.shipmentRepo.On("FindByOrder", mock.Anything, order.ID).Return(nil, shared.ErrNotFound)
		f.shipmentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.svc.Upsert(context.Background(), UpsertShipmentRequest{
			OrderID: order.ID,
			Carrier: "DHL",
			Status:  "preparing",
		})
		require.NoError(t, err)

		assert.Equal(t, "DHL", resp.Carrier)
		assert.Equal(t, trade.OrderStatusPending, order.Status)
		f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("tracking details move the order to shipped", func(t *testing.T) {
		f := newShipmentServiceFixture()
		order := pendingOrder(t)
		shipped := time.Now()

		existing, err := trade.NewShipment(order.ID)
		require.NoError(t, err)

		f.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		f.shipmentRepo.On("FindByOrder", mock.Anything, order.ID).Return(existing, nil)
		f.shipmentRepo.On("Save", mock.Anything, existing).Return(nil)
		f.orderRepo.On("Save", mock.Anything, order).Return(nil)

		resp, err := f.svc.Upsert(context.Background(), UpsertShipmentRequest{
			OrderID:        order.ID,
			Carrier:        "DHL",
			TrackingNumber: "TRK-042",
			ShippedDate:    &shipped,
		})
		require.NoError(t, err)

		assert.Equal(t, "TRK-042", resp.TrackingNumber)
		assert.Equal(t, trade.OrderStatusShipped, order.Status)
		f.orderRepo.AssertExpectations(t)
	})

	t.Run("delivered orders keep their status", func(t *testing.T) {
		f := newShipmentServiceFixture()
		order := pendingOrder(t)
		require.NoError(t, order.SetStatus(trade.OrderStatusDelivered))
		shipped := time.Now()

		existing, err := trade.NewShipment(order.ID)
		require.NoError(t, err)

		f.orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		f.shipmentRepo.On("FindByOrder", mock.Anything, order.ID).Return(existing, nil)
		f.shipmentRepo.On("Save", mock.Anything, existing).Return(nil)

		_, err = f.svc.Upsert(context.Background(), UpsertShipmentRequest{
			OrderID:        order.ID,
			TrackingNumber: "TRK-043",
			ShippedDate:    &shipped,
		})
		require.NoError(t, err)

		assert.Equal(t, trade.OrderStatusDelivered, order.Status)
		f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails for an unknown order", func(t *testing.T) {
		f := newShipmentServiceFixture()
		orderID := uuid.New()

		f.orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.Upsert(context.Background(), UpsertShipmentRequest{OrderID: orderID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.shipmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
