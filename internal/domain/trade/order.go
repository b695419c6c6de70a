package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minierp/backend/internal/domain/shared"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid returns true if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line item belonging to an order
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_order_items_order"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index:idx_order_items_product"`
	Quantity  int64           `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal returns quantity * price for this line
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// Order is a customer order. Stock for each line item is consumed through the
// inventory ledger at creation time, all lines in one transaction.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_user"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Discount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes       string          `gorm:"type:varchar(500)"`

	Items []OrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrderNumber generates a time-derived order number
func NewOrderNumber(at time.Time) string {
	return fmt.Sprintf("ORD-%06d", at.UnixMilli()%1000000)
}

// NewOrder creates an order with its line items and computed totals
func NewOrder(userID uuid.UUID, items []OrderItem, tax, discount decimal.Decimal, notes string) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Customer is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "At least one item is required")
	}
	if tax.IsNegative() || discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Tax and discount cannot be negative")
	}

	subtotal := decimal.Zero
	for i := range items {
		if items[i].ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required on every line item")
		}
		if items[i].Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
		}
		if items[i].Price.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Price must be non-negative")
		}
		subtotal = subtotal.Add(items[i].Subtotal())
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       NewOrderNumber(time.Now()),
		UserID:            userID,
		Status:            OrderStatusPending,
		Subtotal:          subtotal,
		Tax:               tax,
		Discount:          discount,
		TotalAmount:       subtotal.Add(tax).Sub(discount),
		Notes:             notes,
	}

	for i := range items {
		items[i].BaseEntity = shared.NewBaseEntity()
		items[i].OrderID = order.ID
	}
	order.Items = items

	return order, nil
}

// SetStatus transitions the order to a new status
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if o.Status == OrderStatusCancelled && status != OrderStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cancelled orders cannot change status")
	}
	o.Status = status
	o.IncrementVersion()
	return nil
}
