// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"authcore/internal/domain/entity"
)

// AccountUsecase groups user lookups, the credential check and membership changes.
type AccountUsecase interface {
	// GetByID returns the user with the given id, or nil when absent.
	GetByID(ctx context.Context, id uint64) (*entity.User, error)
	// GetByLogin returns the first user with the given login, or nil when absent.
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	// GetByUsername returns the first user with the given username, or nil when absent.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetByEmail returns the first user with the given email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// CheckPassword reports whether the password matches the user selected by input.
	CheckPassword(ctx context.Context, input *CheckPasswordInput) (bool, error)

	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	SetPassword(ctx context.Context, userID uint64, plaintext string) error

	InGroup(ctx context.Context, userID uint64, groupName string) (bool, error)
	AddToGroup(ctx context.Context, userID uint64, groupName string) error
	RemoveFromGroup(ctx context.Context, userID uint64, groupName string) error
}

// --- Input DTOs ---

// CheckPasswordInput selects a user by ID or, when ID is nil, by Username.
type CheckPasswordInput struct {
	ID       *uint64 `json:"id,omitempty"`
	Username string  `json:"username,omitempty" validate:"required_without=ID"`
	Password string  `json:"password"`
}

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Login    string `json:"login" validate:"max=80"`
	Username string `json:"username" validate:"max=80"`
	Email    string `json:"email" validate:"omitempty,email,max=80"`
	Password string `json:"password" validate:"required"`
}
