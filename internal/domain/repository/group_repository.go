package repository

import (
	"context"
	"errors"

	"authcore/internal/domain/entity"
)

// ErrGroupNotFound is returned when no group matches the lookup key.
var ErrGroupNotFound = errors.New("group not found")

// ErrDuplicateGroupName is returned when a group name is already taken.
var ErrDuplicateGroupName = errors.New("duplicate group name")

// GroupRepository defines persistence operations for groups.
type GroupRepository interface {
	// FindByName retrieves a group by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Group, error)

	// List returns every group ordered by id.
	List(ctx context.Context) ([]*entity.Group, error)

	// Create persists a new group and sets its ID.
	// A name collision yields ErrDuplicateGroupName.
	Create(ctx context.Context, group *entity.Group) error

	// ListMembers returns the users linked to the group, ordered by user id.
	ListMembers(ctx context.Context, groupID uint64) ([]*entity.User, error)
}
