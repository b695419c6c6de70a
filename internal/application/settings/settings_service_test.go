package settings

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minierp/backend/internal/domain/settings"
	"github.com/minierp/backend/internal/domain/shared"
)

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

func TestEnsureInitialized(t *testing.T) {
	t.Run("creates defaults when the row is missing", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := NewSettingsService(repo)

		repo.On("Get", mock.Anything).Return(nil, shared.ErrNotFound)
		repo.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(s *settings.Settings) bool {
			return s.LowStockLimit == settings.DefaultLowStockLimit && s.InvoicePrefix == "INV-"
		})).Return(nil)

		require.NoError(t, svc.EnsureInitialized(context.Background()))
		repo.AssertExpectations(t)
	})

	t.Run("leaves an existing row alone", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := NewSettingsService(repo)

		repo.On("Get", mock.Anything).Return(settings.NewDefaultSettings(), nil)

		require.NoError(t, svc.EnsureInitialized(context.Background()))
		repo.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})
}

func TestGetLowStockLimit(t *testing.T) {
	t.Run("returns the configured limit", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := NewSettingsService(repo)

		row := settings.NewDefaultSettings()
		require.NoError(t, row.Update("Acme", "USD", "INV-", decimal.Zero, 25))
		repo.On("Get", mock.Anything).Return(row, nil)

		limit, err := svc.GetLowStockLimit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(25), limit)
	})

	t.Run("defaults without a settings row", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := NewSettingsService(repo)

		repo.On("Get", mock.Anything).Return(nil, shared.ErrNotFound)

		limit, err := svc.GetLowStockLimit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, settings.DefaultLowStockLimit, limit)
	})
}

func TestSettingsUpdate(t *testing.T) {
	t.Run("persists valid changes", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := NewSettingsService(repo)

		row := settings.NewDefaultSettings()
		repo.On("Get", mock.Anything).Return(row, nil)
		repo.On("Save", mock.Anything, row).Return(nil)

		resp, err := svc.Update(context.Background(), UpdateSettingsRequest{
			CompanyName:   "Acme Chocolates",
			Currency:      "EUR",
			TaxRate:       decimal.NewFromFloat(8.5),
			InvoicePrefix: "FAC-",
			LowStockLimit: 15,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(15), resp.LowStockLimit)
		assert.Equal(t, "FAC-", resp.InvoicePrefix)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a zero threshold", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := NewSettingsService(repo)

		_, err := svc.Update(context.Background(), UpdateSettingsRequest{
			CompanyName:   "Acme",
			Currency:      "USD",
			LowStockLimit: 0,
		})
		require.Error(t, err)

		var verr *shared.ValidationError
		assert.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
