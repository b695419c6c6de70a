package trade

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	appinventory "github.com/minierp/backend/internal/application/inventory"
	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/settings"
	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// OrderService handles the order lifecycle. Creating an order consumes stock
// for every line item and raises the invoice, all in one transaction; if any
// line cannot be covered the whole order is rejected and no stock moves.
type OrderService struct {
	orderRepo      trade.OrderRepository
	invoiceRepo    trade.InvoiceRepository
	settingsRepo   settings.SettingsRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	invoiceRepo trade.InvoiceRepository,
	settingsRepo settings.SettingsRepository,
	txScope TransactionScope,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		txScope:      txScope,
		validate:     validator.New(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// invoicePrefix reads the configured invoice prefix, falling back to the
// default when settings have not been initialized yet.
func (s *OrderService) invoicePrefix(ctx context.Context) string {
	if s.settingsRepo == nil {
		return ""
	}
	row, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return ""
	}
	return row.InvoicePrefix
}

// CreateOrder creates the order, consumes stock per line item and raises the
// invoice. The ledger's guarded update decides fulfillability line by line at
// commit time; a single shortfall rolls everything back.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	items := make([]trade.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, trade.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := trade.NewOrder(req.UserID, items, req.Tax, req.Discount, req.Notes)
	if err != nil {
		return nil, err
	}

	prefix := s.invoicePrefix(ctx)

	var outcomes []*appinventory.MovementOutcome
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.OrderRepo().Create(ctx, order); err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			outcome, err := appinventory.ApplyMovementWith(ctx, repos.InventoryRepo(), repos.MovementRepo(), appinventory.MovementRequest{
				ProductID:  item.ProductID,
				Kind:       inventory.MovementOrder.String(),
				Quantity:   item.Quantity,
				Reference:  order.OrderNumber,
				OperatorID: req.OperatorID,
			})
			if err != nil {
				return err
			}
			outcomes = append(outcomes, outcome)
		}

		invoice, err := trade.NewInvoiceForOrder(order, prefix)
		if err != nil {
			return err
		}
		return repos.InvoiceRepo().Create(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		for _, outcome := range outcomes {
			_ = s.eventPublisher.Publish(ctx, outcome.Events()...)
		}
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order with its line items
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with pagination
func (s *OrderService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[OrderResponse], error) {
	var empty shared.Paginated[OrderResponse]
	filter = filter.WithDefaults()

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return empty, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return empty, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// UpdateStatus transitions an order's status
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.SetStatus(trade.OrderStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete removes an order. Stock consumed by the order is not returned;
// corrections go through the adjustment path.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}
