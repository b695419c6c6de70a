package trade

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// ShipmentService maintains the shipment attached to an order. There is at
// most one shipment per order; repeated upserts refine the carrier details.
// Once a tracking number and shipped date are on file the owning order is
// moved to SHIPPED in the same transaction.
type ShipmentService struct {
	shipmentRepo trade.ShipmentRepository
	txScope      TransactionScope
	validate     *validator.Validate
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(shipmentRepo trade.ShipmentRepository, txScope TransactionScope) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		txScope:      txScope,
		validate:     validator.New(),
	}
}

// Upsert creates or updates the shipment for an order
func (s *ShipmentService) Upsert(ctx context.Context, req UpsertShipmentRequest) (*ShipmentResponse, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var shipment *trade.Shipment

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}

		shipment, err = repos.ShipmentRepo().FindByOrder(ctx, req.OrderID)
		if errors.Is(err, shared.ErrNotFound) {
			shipment, err = trade.NewShipment(req.OrderID)
			if err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		shipment.UpdateDetails(req.Carrier, req.TrackingNumber, req.Status, req.ShippedDate, req.DeliveryDate)
		if err := repos.ShipmentRepo().Save(ctx, shipment); err != nil {
			return err
		}

		// Only promote forward; delivered or cancelled orders keep their status.
		promotable := order.Status == trade.OrderStatusPending || order.Status == trade.OrderStatusConfirmed
		if shipment.IsShipped() && promotable {
			if err := order.SetStatus(trade.OrderStatusShipped); err != nil {
				return err
			}
			return repos.OrderRepo().Save(ctx, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// GetByOrder retrieves the shipment for an order
func (s *ShipmentService) GetByOrder(ctx context.Context, orderID uuid.UUID) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToShipmentResponse(shipment)
	return &response, nil
}

// List retrieves shipments with pagination
func (s *ShipmentService) List(ctx context.Context, filter shared.Filter) ([]ShipmentResponse, error) {
	shipments, err := s.shipmentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ShipmentResponse, 0, len(shipments))
	for i := range shipments {
		responses = append(responses, ToShipmentResponse(&shipments[i]))
	}
	return responses, nil
}
