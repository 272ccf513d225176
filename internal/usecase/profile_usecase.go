package usecase

import (
	"context"

	"authcore/internal/domain/identity"
	"authcore/internal/domain/profile"
)

// ProfileUsecase resolves the configured per-user profile record.
type ProfileUsecase interface {
	// GetProfile returns the profile of the given identity, falling back to
	// the identity carried by ctx when id is nil. It returns (nil, nil) when
	// there is no authenticated identity or no profile type is configured.
	GetProfile(ctx context.Context, id *identity.Identity) (profile.Record, error)
}
