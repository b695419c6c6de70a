package trade

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	userID := uuid.New()

	t.Run("computes totals from line items", func(t *testing.T) {
		items := []OrderItem{
			{ProductID: uuid.New(), Quantity: 3, Price: decimal.NewFromFloat(10.50)},
			{ProductID: uuid.New(), Quantity: 2, Price: decimal.NewFromFloat(4.25)},
		}

		order, err := NewOrder(userID, items, decimal.NewFromFloat(2.00), decimal.NewFromFloat(1.50), "rush")
		require.NoError(t, err)

		// 3*10.50 + 2*4.25 = 40.00
		assert.True(t, order.Subtotal.Equal(decimal.NewFromFloat(40.00)))
		// 40.00 + 2.00 - 1.50 = 40.50
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(40.50)))
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	})

	t.Run("links line items to the order", func(t *testing.T) {
		items := []OrderItem{
			{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(5)},
		}

		order, err := NewOrder(userID, items, decimal.Zero, decimal.Zero, "")
		require.NoError(t, err)

		require.Len(t, order.Items, 1)
		assert.Equal(t, order.ID, order.Items[0].OrderID)
		assert.NotEqual(t, uuid.Nil, order.Items[0].ID)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := NewOrder(userID, nil, decimal.Zero, decimal.Zero, "")
		assert.Error(t, err)
	})

	t.Run("rejects zero quantity line", func(t *testing.T) {
		items := []OrderItem{
			{ProductID: uuid.New(), Quantity: 0, Price: decimal.NewFromInt(5)},
		}
		_, err := NewOrder(userID, items, decimal.Zero, decimal.Zero, "")
		assert.Error(t, err)
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		items := []OrderItem{
			{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(5)},
		}
		_, err := NewOrder(uuid.Nil, items, decimal.Zero, decimal.Zero, "")
		assert.Error(t, err)
	})
}

func TestOrderSetStatus(t *testing.T) {
	newOrder := func(t *testing.T) *Order {
		items := []OrderItem{
			{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(5)},
		}
		order, err := NewOrder(uuid.New(), items, decimal.Zero, decimal.Zero, "")
		require.NoError(t, err)
		return order
	}

	t.Run("transitions through the lifecycle", func(t *testing.T) {
		order := newOrder(t)

		require.NoError(t, order.SetStatus(OrderStatusConfirmed))
		require.NoError(t, order.SetStatus(OrderStatusShipped))
		require.NoError(t, order.SetStatus(OrderStatusDelivered))
		assert.Equal(t, OrderStatusDelivered, order.Status)
	})

	t.Run("locks cancelled orders", func(t *testing.T) {
		order := newOrder(t)

		require.NoError(t, order.SetStatus(OrderStatusCancelled))
		err := order.SetStatus(OrderStatusConfirmed)
		assert.Error(t, err)
		assert.Equal(t, OrderStatusCancelled, order.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order := newOrder(t)
		assert.Error(t, order.SetStatus(OrderStatus("MISPLACED")))
	})
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{Quantity: 4, Price: decimal.NewFromFloat(2.25)}
	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(9)))
}
