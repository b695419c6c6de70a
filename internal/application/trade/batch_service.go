package trade

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// BatchService manages production batches. Batches track production output
// on their own; moving finished stock into inventory is a separate import or
// adjustment through the ledger.
type BatchService struct {
	batchRepo trade.BatchRepository
	validate  *validator.Validate
}

// NewBatchService creates a new BatchService
func NewBatchService(batchRepo trade.BatchRepository) *BatchService {
	return &BatchService{
		batchRepo: batchRepo,
		validate:  validator.New(),
	}
}

// Create registers a production batch
func (s *BatchService) Create(ctx context.Context, req CreateBatchRequest) (*BatchResponse, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	if existing, err := s.batchRepo.FindByCode(ctx, req.BatchCode); err == nil && existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	batch, err := trade.NewBatch(req.BatchCode, req.ProductID, req.Quantity, trade.BatchStatus(req.Status))
	if err != nil {
		return nil, err
	}
	batch.Notes = req.Notes

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	response := ToBatchResponse(batch)
	return &response, nil
}

// UpdateStatus transitions a batch's production status
func (s *BatchService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := batch.SetStatus(trade.BatchStatus(status)); err != nil {
		return nil, err
	}
	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	response := ToBatchResponse(batch)
	return &response, nil
}

// Consume draws down a batch's available quantity
func (s *BatchService) Consume(ctx context.Context, id uuid.UUID, quantity int64) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := batch.Consume(quantity); err != nil {
		return nil, err
	}
	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	response := ToBatchResponse(batch)
	return &response, nil
}

// ListByProduct retrieves the batches for a product
func (s *BatchService) ListByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]BatchResponse, error) {
	batches, err := s.batchRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		responses = append(responses, ToBatchResponse(&batches[i]))
	}
	return responses, nil
}

// List retrieves batches with pagination
func (s *BatchService) List(ctx context.Context, filter shared.Filter) ([]BatchResponse, error) {
	batches, err := s.batchRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		responses = append(responses, ToBatchResponse(&batches[i]))
	}
	return responses, nil
}
