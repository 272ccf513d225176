// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authcore/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Every Find method loads the user's groups and, when several rows share
// the key, returns the one with the lowest id.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByLogin retrieves the first user with the given login.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindByUsername retrieves the first user with the given username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves the first user with the given email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and sets its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the user's scalar fields, including the password hash.
	Update(ctx context.Context, user *entity.User) error

	// AddToGroup links the user to the group. Adding an existing link is a no-op.
	AddToGroup(ctx context.Context, userID, groupID uint64) error

	// RemoveFromGroup unlinks the user from the group. Removing a missing link is a no-op.
	RemoveFromGroup(ctx context.Context, userID, groupID uint64) error
}
