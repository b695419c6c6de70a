package trade

import (
	"context"

	"github.com/go-playground/validator/v10"

	appinventory "github.com/minierp/backend/internal/application/inventory"
	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// ExportService records outbound shipments to clients. Exports always move
// inventory; a shipment that cannot be covered by the current balance is
// rejected and nothing is persisted.
type ExportService struct {
	exportRepo     trade.ExportRecordRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewExportService creates a new ExportService
func NewExportService(exportRepo trade.ExportRecordRepository, txScope TransactionScope) *ExportService {
	return &ExportService{
		exportRepo: exportRepo,
		txScope:    txScope,
		validate:   validator.New(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ExportService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// RecordExport persists the export and applies the outbound stock movement in
// the same transaction. Fails with shared.ErrInsufficientStock when the
// balance cannot cover the quantity.
func (s *ExportService) RecordExport(ctx context.Context, req CreateExportRequest) (*ExportResponse, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	record, err := trade.NewExportRecord(req.ProductID, req.Quantity, req.ClientID, req.Notes)
	if err != nil {
		return nil, err
	}

	var outcome *appinventory.MovementOutcome
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ExportRepo().Create(ctx, record); err != nil {
			return err
		}
		outcome, err = appinventory.ApplyMovementWith(ctx, repos.InventoryRepo(), repos.MovementRepo(), appinventory.MovementRequest{
			ProductID:  record.ProductID,
			Kind:       inventory.MovementExport.String(),
			Quantity:   record.Quantity,
			Reference:  record.ID.String(),
			OperatorID: req.OperatorID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, outcome.Events()...)
	}

	response := ToExportResponse(record)
	return &response, nil
}

// List retrieves export records with pagination
func (s *ExportService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[ExportResponse], error) {
	var empty shared.Paginated[ExportResponse]
	filter = filter.WithDefaults()

	records, err := s.exportRepo.FindAll(ctx, filter)
	if err != nil {
		return empty, err
	}
	total, err := s.exportRepo.Count(ctx, filter)
	if err != nil {
		return empty, err
	}

	responses := make([]ExportResponse, 0, len(records))
	for i := range records {
		responses = append(responses, ToExportResponse(&records[i]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}
