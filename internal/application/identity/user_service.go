package identity

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/identity"
	"github.com/minierp/backend/internal/domain/shared"
)

// UserService manages staff and client accounts. Clients are plain users
// carrying the CLIENT role, so one service covers both.
type UserService struct {
	userRepo identity.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

func (s *UserService) validateRequest(req interface{}) error {
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

// Register creates an account with an explicit role
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*UserResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// RegisterClient creates a customer account
func (s *UserService) RegisterClient(ctx context.Context, req RegisterClientRequest) (*UserResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	user, err := identity.NewClient(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(req.Name, req.Phone, req.Address, req.Company); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Authenticate verifies a user's credentials and returns the account.
// The same error comes back for a missing user and a wrong password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// UpdateProfile updates a user's profile fields
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(req.Name, req.Phone, req.Address, req.Company); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// ChangePassword replaces a user's password after checking the current one
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	if err := s.validateRequest(req); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if err := user.ChangePassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// SetRole changes a user's role
func (s *UserService) SetRole(ctx context.Context, id uuid.UUID, role string) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := user.SetRole(identity.Role(role)); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// ListClients retrieves customer accounts with pagination
func (s *UserService) ListClients(ctx context.Context, filter shared.Filter) (shared.Paginated[UserResponse], error) {
	var empty shared.Paginated[UserResponse]
	filter = filter.WithDefaults()
	filter.Filters["role"] = identity.RoleClient.String()

	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return empty, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return empty, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Delete removes an account
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}
