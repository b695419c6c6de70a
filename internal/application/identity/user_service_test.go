package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minierp/backend/internal/domain/identity"
	"github.com/minierp/backend/internal/domain/shared"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRoles(ctx context.Context, roles []identity.Role) ([]identity.User, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestUserServiceRegisterClient(t *testing.T) {
	t.Run("creates a client account", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("FindByEmail", mock.Anything, "jo@example.com").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Role == identity.RoleClient && u.Company == "Jo's Bakery"
		})).Return(nil)

		resp, err := svc.RegisterClient(context.Background(), RegisterClientRequest{
			Name:     "Jo Smith",
			Email:    "jo@example.com",
			Password: "s3cret-pass",
			Company:  "Jo's Bakery",
		})
		require.NoError(t, err)

		assert.Equal(t, "CLIENT", resp.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		existing, err := identity.NewClient("Jo", "jo@example.com", "s3cret-pass")
		require.NoError(t, err)
		repo.On("FindByEmail", mock.Anything, "jo@example.com").Return(existing, nil)

		_, err = svc.RegisterClient(context.Background(), RegisterClientRequest{
			Name:     "Jo Smith",
			Email:    "jo@example.com",
			Password: "s3cret-pass",
		})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		_, err := svc.RegisterClient(context.Background(), RegisterClientRequest{
			Name:     "Jo Smith",
			Email:    "jo@example.com",
			Password: "short",
		})
		require.Error(t, err)

		var verr *shared.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	user, err := identity.NewUser("Pat", "pat@example.com", "correct-horse", identity.RoleManager)
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "pat@example.com").Return(user, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Authenticate(context.Background(), "pat@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "MANAGER", resp.Role)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		_, errWrong := svc.Authenticate(context.Background(), "pat@example.com", "wrong")
		_, errGhost := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")

		require.Error(t, errWrong)
		require.Error(t, errGhost)
		assert.Equal(t, errWrong.Error(), errGhost.Error())
	})
}

func TestUserServiceChangePassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	user, err := identity.NewUser("Pat", "pat@example.com", "correct-horse", identity.RoleManager)
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	t.Run("requires the current password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "brand-new-pass",
		})
		assert.Error(t, err)
	})

	t.Run("replaces the password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
			CurrentPassword: "correct-horse",
			NewPassword:     "brand-new-pass",
		})
		require.NoError(t, err)
		assert.True(t, user.CheckPassword("brand-new-pass"))
	})
}

func TestUserServiceListClientsDefaultsPagination(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	client, err := identity.NewUser("Sam", "sam@example.com", "correct-horse", identity.RoleClient)
	require.NoError(t, err)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Page == 1 && filter.PageSize == 20 &&
			filter.Filters["role"] == identity.RoleClient.String()
	})).Return([]identity.User{*client}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	page, err := svc.ListClients(context.Background(), shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
	repo.AssertExpectations(t)
}
