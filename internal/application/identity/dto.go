package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/identity"
)

// RegisterUserRequest creates a staff account with an explicit role
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=CLIENT MANAGER ADMIN SUPER_ADMIN"`
}

// RegisterClientRequest creates a customer account
type RegisterClientRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty,max=255"`
	Company  string `json:"company" validate:"omitempty,max=100"`
}

// UpdateProfileRequest updates a user's profile fields
type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Company string `json:"company" validate:"omitempty,max=100"`
}

// ChangePasswordRequest replaces a user's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserResponse represents a user in responses. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Company   string    `json:"company,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a user to a response DTO
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		Phone:     user.Phone,
		Address:   user.Address,
		Company:   user.Company,
		Image:     user.Image,
		CreatedAt: user.CreatedAt,
	}
}
