package trade

import (
	"context"

	"github.com/go-playground/validator/v10"

	appinventory "github.com/minierp/backend/internal/application/inventory"
	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// ImportService records inbound deliveries. An import that references a
// catalog product also moves inventory; the record and the ledger writes
// commit together.
type ImportService struct {
	importRepo     trade.ImportRecordRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewImportService creates a new ImportService
func NewImportService(importRepo trade.ImportRecordRepository, txScope TransactionScope) *ImportService {
	return &ImportService{
		importRepo: importRepo,
		txScope:    txScope,
		validate:   validator.New(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ImportService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// RecordImport persists the import and, when a product is linked, applies the
// inbound stock movement in the same transaction.
func (s *ImportService) RecordImport(ctx context.Context, req CreateImportRequest) (*ImportResponse, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if req.Cost.IsNegative() {
		return nil, shared.NewFieldError("Cost", "min")
	}

	record, err := trade.NewImportRecord(req.Supplier, req.MaterialName, req.ProductID, req.Quantity, req.Unit, req.Cost, req.Notes)
	if err != nil {
		return nil, err
	}

	var outcome *appinventory.MovementOutcome
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ImportRepo().Create(ctx, record); err != nil {
			return err
		}
		if !record.MovesInventory() {
			return nil
		}
		outcome, err = appinventory.ApplyMovementWith(ctx, repos.InventoryRepo(), repos.MovementRepo(), appinventory.MovementRequest{
			ProductID:  *record.ProductID,
			Kind:       inventory.MovementImport.String(),
			Quantity:   record.Quantity,
			Reference:  record.ID.String(),
			OperatorID: req.OperatorID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if outcome != nil && s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, outcome.Events()...)
	}

	response := ToImportResponse(record)
	return &response, nil
}

// List retrieves import records with pagination
func (s *ImportService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[ImportResponse], error) {
	var empty shared.Paginated[ImportResponse]
	filter = filter.WithDefaults()

	records, err := s.importRepo.FindAll(ctx, filter)
	if err != nil {
		return empty, err
	}
	total, err := s.importRepo.Count(ctx, filter)
	if err != nil {
		return empty, err
	}

	responses := make([]ImportResponse, 0, len(records))
	for i := range records {
		responses = append(responses, ToImportResponse(&records[i]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}
