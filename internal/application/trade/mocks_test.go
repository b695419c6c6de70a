package trade

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/settings"
	"github.com/minierp/backend/internal/domain/shared"
	"github.com/minierp/backend/internal/domain/trade"
)

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{events: make([]shared.DomainEvent, 0)}
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) GetEventsByType(eventType string) []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, 0)
	for _, e := range m.events {
		if e.EventType() == eventType {
			result = append(result, e)
		}
	}
	return result
}

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of trade.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*trade.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *trade.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *trade.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// MockShipmentRepository is a mock implementation of trade.ShipmentRepository
type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*trade.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Shipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Save(ctx context.Context, shipment *trade.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

// MockImportRecordRepository is a mock implementation of trade.ImportRecordRepository
type MockImportRecordRepository struct {
	mock.Mock
}

func (m *MockImportRecordRepository) Create(ctx context.Context, record *trade.ImportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockImportRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.ImportRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.ImportRecord), args.Error(1)
}

func (m *MockImportRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockExportRecordRepository is a mock implementation of trade.ExportRecordRepository
type MockExportRecordRepository struct {
	mock.Mock
}

func (m *MockExportRecordRepository) Create(ctx context.Context, record *trade.ExportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockExportRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.ExportRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.ExportRecord), args.Error(1)
}

func (m *MockExportRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockBatchRepository is a mock implementation of trade.BatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindByCode(ctx context.Context, batchCode string) (*trade.Batch, error) {
	args := m.Called(ctx, batchCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]trade.Batch, error) {
	args := m.Called(ctx, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Batch, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Batch), args.Error(1)
}

func (m *MockBatchRepository) Save(ctx context.Context, batch *trade.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInventoryRepository is a mock implementation of inventory.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*inventory.InventoryRecord, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) FindByProductForUpdate(ctx context.Context, productID uuid.UUID) (*inventory.InventoryRecord, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) FindAtOrBelow(ctx context.Context, threshold int64) ([]inventory.InventoryRecord, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) FindBelowProductMinimum(ctx context.Context) ([]inventory.InventoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) Create(ctx context.Context, record *inventory.InventoryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockInventoryRepository) ApplyDelta(ctx context.Context, productID uuid.UUID, delta int64, at time.Time) (*inventory.InventoryRecord, error) {
	args := m.Called(ctx, productID, delta, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) Save(ctx context.Context, record *inventory.InventoryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMovementRepository is a mock implementation of inventory.StockMovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) FindByKind(ctx context.Context, kind inventory.MovementKind, filter shared.Filter) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettingsRepository is a mock implementation of settings.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Settings), args.Error(1)
}

func (m *MockSettingsRepository) CreateIfAbsent(ctx context.Context, s *settings.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
