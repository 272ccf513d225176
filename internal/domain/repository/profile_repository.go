package repository

import (
	"context"

	"authcore/internal/domain/profile"
)

// ProfileRepository stores records of the pluggable profile types.
type ProfileRepository interface {
	// GetOrCreate returns the record of factory's type owned by userID,
	// inserting a new one when none exists. Concurrent callers observe a
	// single row per user.
	GetOrCreate(ctx context.Context, factory profile.Factory, userID uint64) (profile.Record, error)
}

// SchemaMigrator brings the storage schema up to date without dropping data.
type SchemaMigrator interface {
	Migrate(ctx context.Context) error
}
