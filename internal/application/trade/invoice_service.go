package trade

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// InvoiceService handles invoice queries and payment status changes.
// Invoices are raised automatically when orders are created; this service
// never creates them directly.
type InvoiceService struct {
	invoiceRepo trade.InvoiceRepository
	validate    *validator.Validate
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo trade.InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		validate:    validator.New(),
	}
}

// GetByOrder retrieves the invoice raised for an order
func (s *InvoiceService) GetByOrder(ctx context.Context, orderID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with pagination
func (s *InvoiceService) List(ctx context.Context, filter shared.Filter) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i]))
	}
	return responses, nil
}

// UpdateStatus transitions an invoice's payment status
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateInvoiceStatusRequest) (*InvoiceResponse, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := invoice.SetStatus(trade.PaymentStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// MarkOverdue sweeps unpaid invoices whose due date has passed and flips them
// to OVERDUE. Returns the number of invoices updated.
func (s *InvoiceService) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	filter := shared.DefaultFilter()
	filter.Filters["status"] = string(trade.PaymentStatusUnpaid)
	filter.PageSize = 500

	invoices, err := s.invoiceRepo.FindAll(ctx, filter)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range invoices {
		invoice := &invoices[i]
		if invoice.DueDate.After(now) {
			continue
		}
		if err := invoice.SetStatus(trade.PaymentStatusOverdue); err != nil {
			return updated, err
		}
		if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
