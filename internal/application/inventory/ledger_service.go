package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/shared"
)

// LedgerService is the single write path to inventory counters. Every stock
// change, whatever its business source, goes through ApplyMovement or
// SetQuantity so that the counter update and the movement record always
// commit together.
type LedgerService struct {
	inventoryRepo  inventory.InventoryRepository
	movementRepo   inventory.StockMovementRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	inventoryRepo inventory.InventoryRepository,
	movementRepo inventory.StockMovementRepository,
	txScope TransactionScope,
) *LedgerService {
	return &LedgerService{
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		txScope:       txScope,
		validate:      validator.New(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *LedgerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// validateRequest runs struct validation and translates failures into the
// domain's validation error shape.
func (s *LedgerService) validateRequest(req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return shared.NewValidationError(fields)
	}
	return err
}

// publishEvents publishes domain events after the transaction has committed.
// Errors are logged by the event bus, not propagated.
func (s *LedgerService) publishEvents(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// MovementOutcome carries what one applied movement produced.
type MovementOutcome struct {
	Record   *inventory.InventoryRecord
	Movement *inventory.StockMovement
	Created  bool
}

// Events returns the domain events to publish once the surrounding
// transaction has committed.
func (o *MovementOutcome) Events() []shared.DomainEvent {
	if o.Created {
		events := o.Record.GetDomainEvents()
		o.Record.ClearDomainEvents()
		return events
	}
	if o.Movement.Delta > 0 {
		return []shared.DomainEvent{inventory.NewStockIncreasedEvent(o.Record, o.Movement.Delta)}
	}
	return []shared.DomainEvent{inventory.NewStockDecreasedEvent(o.Record, -o.Movement.Delta)}
}

// ApplyMovementWith applies an already-validated movement against
// repositories scoped to the caller's transaction. Order and trade services
// call this inside their own transaction scope so that source documents and
// ledger writes commit together.
//
// The counter change is a single guarded update on the database side, so
// concurrent outbound movements cannot jointly drive the balance negative.
// An inbound movement for a product with no inventory record yet creates the
// record on the fly; an outbound movement for a missing record fails with
// shared.ErrNotFound.
func ApplyMovementWith(
	ctx context.Context,
	invRepo inventory.InventoryRepository,
	movRepo inventory.StockMovementRepository,
	req MovementRequest,
) (*MovementOutcome, error) {
	kind := inventory.MovementKind(req.Kind)
	if !kind.IsValid() || kind == inventory.MovementAdjustSet {
		return nil, shared.NewFieldError("Kind", "oneof")
	}
	if req.Quantity < 1 {
		return nil, shared.NewFieldError("Quantity", "min")
	}

	delta := req.Quantity
	if kind.IsOutbound() {
		delta = -req.Quantity
	}

	outcome := &MovementOutcome{}

	record, err := invRepo.ApplyDelta(ctx, req.ProductID, delta, time.Now())
	if errors.Is(err, shared.ErrNotFound) {
		if delta < 0 {
			return nil, err
		}
		// First inbound movement for this product; seed the record.
		record, err = inventory.NewInventoryRecordWithStock(req.ProductID, delta)
		if err != nil {
			return nil, err
		}
		if err := invRepo.Create(ctx, record); err != nil {
			return nil, err
		}
		outcome.Created = true
	} else if err != nil {
		return nil, err
	}
	outcome.Record = record

	movement, err := inventory.NewStockMovement(
		record.ID,
		req.ProductID,
		kind,
		delta,
		record.Quantity-delta,
		record.Quantity,
	)
	if err != nil {
		return nil, err
	}
	if req.Reference != "" {
		movement.WithReference(req.Reference)
	}
	if req.Reason != "" {
		movement.WithReason(req.Reason)
	}
	if req.OperatorID != nil {
		movement.WithOperatorID(*req.OperatorID)
	}
	outcome.Movement = movement

	return outcome, movRepo.Create(ctx, movement)
}

// ApplyMovement applies a relative stock change for the request's product and
// appends the matching movement record, atomically.
func (s *LedgerService) ApplyMovement(ctx context.Context, req MovementRequest) (*MovementResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	var outcome *MovementOutcome
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		outcome, err = ApplyMovementWith(ctx, repos.InventoryRepo(), repos.MovementRepo(), req)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Events go out only after the transaction has committed, so subscribers
	// always observe durable state.
	s.publishEvents(ctx, outcome.Events()...)

	response := ToMovementResponse(outcome.Movement)
	return &response, nil
}

// SetQuantity corrects a product's balance to an absolute target, typically
// after a physical count. The record is read under a row lock so the computed
// delta cannot be invalidated by a concurrent movement. Setting the balance
// to its current value is a no-op and records no movement.
func (s *LedgerService) SetQuantity(ctx context.Context, req SetQuantityRequest) (*InventoryResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	var record *inventory.InventoryRecord

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		record, err = repos.InventoryRepo().FindByProductForUpdate(ctx, req.ProductID)
		if errors.Is(err, shared.ErrNotFound) {
			record, err = inventory.NewInventoryRecord(req.ProductID)
			if err != nil {
				return err
			}
			if err := repos.InventoryRepo().Create(ctx, record); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		delta, err := record.DeltaToReach(req.Target)
		if err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}

		balanceBefore := record.Quantity
		if err := record.Apply(delta); err != nil {
			return err
		}
		if err := repos.InventoryRepo().Save(ctx, record); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(
			record.ID,
			req.ProductID,
			inventory.MovementAdjustSet,
			delta,
			balanceBefore,
			record.Quantity,
		)
		if err != nil {
			return err
		}
		if req.Reason != "" {
			movement.WithReason(req.Reason)
		}
		if req.OperatorID != nil {
			movement.WithOperatorID(*req.OperatorID)
		}

		return repos.MovementRepo().Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, record.GetDomainEvents()...)
	record.ClearDomainEvents()

	response := ToInventoryResponse(record)
	return &response, nil
}

// GetByProduct retrieves the inventory record for a product
func (s *LedgerService) GetByProduct(ctx context.Context, productID uuid.UUID) (*InventoryResponse, error) {
	record, err := s.inventoryRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToInventoryResponse(record)
	return &response, nil
}

// List retrieves inventory records with pagination
func (s *LedgerService) List(ctx context.Context, filter ListFilter) (shared.Paginated[InventoryResponse], error) {
	var empty shared.Paginated[InventoryResponse]
	if err := s.validateRequest(filter); err != nil {
		return empty, err
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search

	if filter.BelowMinimum {
		records, err := s.inventoryRepo.FindBelowProductMinimum(ctx)
		if err != nil {
			return empty, err
		}
		responses := make([]InventoryResponse, 0, len(records))
		for i := range records {
			responses = append(responses, ToInventoryResponse(&records[i]))
		}
		return shared.NewPaginated(responses, int64(len(responses)), 1, domainFilter.PageSize), nil
	}

	records, err := s.inventoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return empty, err
	}
	total, err := s.inventoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	responses := make([]InventoryResponse, 0, len(records))
	for i := range records {
		responses = append(responses, ToInventoryResponse(&records[i]))
	}
	return shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize), nil
}

// ListMovements retrieves the movement history for a product, newest first
func (s *LedgerService) ListMovements(ctx context.Context, productID uuid.UUID, filter MovementListFilter) ([]MovementResponse, int64, error) {
	if err := s.validateRequest(filter); err != nil {
		return nil, 0, err
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Kind != "" {
		domainFilter.Filters["kind"] = filter.Kind
	}

	movements, err := s.movementRepo.FindByProduct(ctx, productID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.movementRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, ToMovementResponse(&movements[i]))
	}
	return responses, total, nil
}

// CheckAvailability reports whether an outbound movement of the given
// quantity could currently succeed, and the available balance. The answer is
// advisory; the guarded update remains the source of truth at commit time.
func (s *LedgerService) CheckAvailability(ctx context.Context, productID uuid.UUID, quantity int64) (bool, int64, error) {
	record, err := s.inventoryRepo.FindByProduct(ctx, productID)
	if errors.Is(err, shared.ErrNotFound) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	return record.CanFulfill(quantity), record.Quantity, nil
}
