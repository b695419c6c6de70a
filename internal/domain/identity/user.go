package identity

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/minierp/backend/internal/domain/shared"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents an account in the system. Clients are users with
// RoleClient; staff accounts carry one of the elevated roles.
type User struct {
	shared.BaseAggregateRoot
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'CLIENT';index"`
	Phone        string `gorm:"type:varchar(30)"`
	Address      string `gorm:"type:varchar(255)"`
	Company      string `gorm:"type:varchar(100)"`
	Image        string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(name, email, password string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name must be at least 2 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}
	if len(password) < 6 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		PasswordHash:      string(hash),
		Role:              role,
	}, nil
}

// NewClient creates a new client account
func NewClient(name, email, password string) (*User, error) {
	return NewUser(name, email, password, RoleClient)
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash after validating the new password
func (u *User) ChangePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.IncrementVersion()
	return nil
}

// SetRole changes the user's role
func (u *User) SetRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}
	u.Role = role
	u.IncrementVersion()
	return nil
}

// UpdateProfile updates name and contact fields
func (u *User) UpdateProfile(name, phone, address, company string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_NAME", "Name must be at least 2 characters")
	}
	u.Name = name
	u.Phone = phone
	u.Address = address
	u.Company = company
	u.IncrementVersion()
	return nil
}

// IsClient returns true for basic client accounts
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}
