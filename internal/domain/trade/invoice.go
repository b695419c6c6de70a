package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minierp/backend/internal/domain/shared"
)

// PaymentStatus represents the payment state of an invoice
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
)

// IsValid returns true if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// Invoice default payment term
const invoiceDueTerm = 30 * 24 * time.Hour

// Invoice is the billing document for an order, 1:1
type Invoice struct {
	shared.BaseEntity
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	InvoiceNumber string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        PaymentStatus   `gorm:"type:varchar(20);not null;default:'UNPAID'"`
	DueDate       time.Time       `gorm:"type:timestamptz;not null"`
	PaidDate      *time.Time      `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoiceForOrder derives an invoice from an order. The invoice number
// reuses the order number's numeric part under the configured prefix.
func NewInvoiceForOrder(order *Order, prefix string) (*Invoice, error) {
	if order == nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order is required")
	}
	if prefix == "" {
		prefix = "INV-"
	}

	return &Invoice{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       order.ID,
		InvoiceNumber: prefix + strings.TrimPrefix(order.OrderNumber, "ORD-"),
		Amount:        order.TotalAmount,
		Status:        PaymentStatusUnpaid,
		DueDate:       time.Now().Add(invoiceDueTerm),
	}, nil
}

// SetStatus transitions the payment status; PaidDate tracks the PAID state
func (i *Invoice) SetStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown payment status")
	}
	i.Status = status
	if status == PaymentStatusPaid {
		now := time.Now()
		i.PaidDate = &now
	} else {
		i.PaidDate = nil
	}
	return nil
}
