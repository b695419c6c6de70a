package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minierp/backend/internal/domain/trade"
)

// CreateImportRequest records an inbound delivery from a supplier. A product
// reference makes the import move inventory; without one it only documents
// the purchase.
type CreateImportRequest struct {
	Supplier     string          `json:"supplier" validate:"required,max=100"`
	MaterialName string          `json:"material_name" validate:"omitempty,max=100"`
	ProductID    *uuid.UUID      `json:"product_id"`
	Quantity     int64           `json:"quantity" validate:"required,min=1"`
	Unit         string          `json:"unit" validate:"omitempty,max=20"`
	Cost         decimal.Decimal `json:"cost"`
	Notes        string          `json:"notes" validate:"omitempty,max=500"`
	OperatorID   *uuid.UUID      `json:"operator_id"`
}

// ImportResponse represents an import record in responses
type ImportResponse struct {
	ID           uuid.UUID       `json:"id"`
	Supplier     string          `json:"supplier"`
	MaterialName string          `json:"material_name,omitempty"`
	ProductID    *uuid.UUID      `json:"product_id,omitempty"`
	Quantity     int64           `json:"quantity"`
	Unit         string          `json:"unit"`
	Cost         decimal.Decimal `json:"cost"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateExportRequest records an outbound shipment to a client. Exports
// always move inventory.
type CreateExportRequest struct {
	ProductID  uuid.UUID  `json:"product_id" validate:"required"`
	Quantity   int64      `json:"quantity" validate:"required,min=1"`
	ClientID   *uuid.UUID `json:"client_id"`
	Notes      string     `json:"notes" validate:"omitempty,max=500"`
	OperatorID *uuid.UUID `json:"operator_id"`
}

// ExportResponse represents an export record in responses
type ExportResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	Quantity  int64      `json:"quantity"`
	ClientID  *uuid.UUID `json:"client_id,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// OrderItemRequest is one line of a new order
type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest creates an order. Stock for every line item is consumed
// when the order is created; if any line cannot be fulfilled the whole order
// is rejected.
type CreateOrderRequest struct {
	UserID     uuid.UUID          `json:"user_id" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Tax        decimal.Decimal    `json:"tax"`
	Discount   decimal.Decimal    `json:"discount"`
	Notes      string             `json:"notes" validate:"omitempty,max=500"`
	OperatorID *uuid.UUID         `json:"operator_id"`
}

// UpdateOrderStatusRequest transitions an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
}

// OrderItemResponse represents an order line in responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order in responses
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"order_number"`
	UserID      uuid.UUID           `json:"user_id"`
	Status      string              `json:"status"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Tax         decimal.Decimal     `json:"tax"`
	Discount    decimal.Decimal     `json:"discount"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Notes       string              `json:"notes,omitempty"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// InvoiceResponse represents an invoice in responses
type InvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DueDate       time.Time       `json:"due_date"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// UpdateInvoiceStatusRequest transitions an invoice's payment status
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=UNPAID PAID OVERDUE"`
}

// UpsertShipmentRequest creates or updates the shipment for an order
type UpsertShipmentRequest struct {
	OrderID        uuid.UUID  `json:"order_id" validate:"required"`
	Carrier        string     `json:"carrier" validate:"omitempty,max=50"`
	TrackingNumber string     `json:"tracking_number" validate:"omitempty,max=50"`
	Status         string     `json:"status" validate:"omitempty,max=30"`
	ShippedDate    *time.Time `json:"shipped_date"`
	DeliveryDate   *time.Time `json:"delivery_date"`
}

// ShipmentResponse represents a shipment in responses
type ShipmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrderID        uuid.UUID  `json:"order_id"`
	Carrier        string     `json:"carrier,omitempty"`
	TrackingNumber string     `json:"tracking_number,omitempty"`
	Status         string     `json:"status,omitempty"`
	ShippedDate    *time.Time `json:"shipped_date,omitempty"`
	DeliveryDate   *time.Time `json:"delivery_date,omitempty"`
}

// CreateBatchRequest registers a production batch
type CreateBatchRequest struct {
	BatchCode string `json:"batch_code" validate:"required,max=50"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
	Status    string `json:"status" validate:"omitempty,oneof=PLANNED IN_PRODUCTION COMPLETED"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
}

// BatchResponse represents a production batch in responses
type BatchResponse struct {
	ID              uuid.UUID  `json:"id"`
	BatchCode       string     `json:"batch_code"`
	ProductID       uuid.UUID  `json:"product_id"`
	InitialQty      int64      `json:"initial_qty"`
	AvailableQty    int64      `json:"available_qty"`
	Status          string     `json:"status"`
	ManufactureDate *time.Time `json:"manufacture_date,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToImportResponse converts an import record to a response DTO
func ToImportResponse(record *trade.ImportRecord) ImportResponse {
	return ImportResponse{
		ID:           record.ID,
		Supplier:     record.Supplier,
		MaterialName: record.MaterialName,
		ProductID:    record.ProductID,
		Quantity:     record.Quantity,
		Unit:         record.Unit,
		Cost:         record.Cost,
		Notes:        record.Notes,
		CreatedAt:    record.CreatedAt,
	}
}

// ToExportResponse converts an export record to a response DTO
func ToExportResponse(record *trade.ExportRecord) ExportResponse {
	return ExportResponse{
		ID:        record.ID,
		ProductID: record.ProductID,
		Quantity:  record.Quantity,
		ClientID:  record.ClientID,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
	}
}

// ToOrderResponse converts an order to a response DTO
func ToOrderResponse(order *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal(),
		})
	}
	return OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      string(order.Status),
		Subtotal:    order.Subtotal,
		Tax:         order.Tax,
		Discount:    order.Discount,
		TotalAmount: order.TotalAmount,
		Notes:       order.Notes,
		Items:       items,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// ToInvoiceResponse converts an invoice to a response DTO
func ToInvoiceResponse(invoice *trade.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            invoice.ID,
		OrderID:       invoice.OrderID,
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        invoice.Amount,
		Status:        string(invoice.Status),
		DueDate:       invoice.DueDate,
		PaidDate:      invoice.PaidDate,
		CreatedAt:     invoice.CreatedAt,
	}
}

// ToShipmentResponse converts a shipment to a response DTO
func ToShipmentResponse(shipment *trade.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:             shipment.ID,
		OrderID:        shipment.OrderID,
		Carrier:        shipment.Carrier,
		TrackingNumber: shipment.TrackingNumber,
		Status:         shipment.Status,
		ShippedDate:    shipment.ShippedDate,
		DeliveryDate:   shipment.DeliveryDate,
	}
}

// ToBatchResponse converts a batch to a response DTO
func ToBatchResponse(batch *trade.Batch) BatchResponse {
	return BatchResponse{
		ID:              batch.ID,
		BatchCode:       batch.BatchCode,
		ProductID:       batch.ProductID,
		InitialQty:      batch.InitialQty,
		AvailableQty:    batch.AvailableQty,
		Status:          string(batch.Status),
		ManufactureDate: batch.ManufactureDate,
		ExpiryDate:      batch.ExpiryDate,
		Notes:           batch.Notes,
		CreatedAt:       batch.CreatedAt,
	}
}
