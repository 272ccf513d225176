package impl

import (
	"context"
	"log/slog"
	"strings"

	"authcore/config"
	"authcore/internal/domain/identity"
	"authcore/internal/domain/profile"
	"authcore/internal/domain/repository"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileServiceParams defines the dependencies of the profile service.
type ProfileServiceParams struct {
	fx.In

	Config    *config.Config
	Registry  *profile.Registry
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	factory   profile.Factory // nil when no profile type is configured
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
// The configured profile type is resolved here, once, so a typo fails startup
// instead of every request.
func NewProfileService(params ProfileServiceParams) (usecase.ProfileUsecase, error) {
	srv := &profileService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}

	if params.Config == nil || params.Config.Auth == nil {
		return srv, nil
	}

	typeName := strings.TrimSpace(params.Config.Auth.ProfileType)
	if typeName == "" {
		return srv, nil
	}

	factory, err := params.Registry.Resolve(typeName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve profile type")
	}
	srv.factory = factory

	return srv, nil
}

// GetProfile returns the caller's profile record, creating it on first access.
func (srv *profileService) GetProfile(ctx context.Context, id *identity.Identity) (profile.Record, error) {
	if id == nil {
		ambient, ok := identity.FromContext(ctx)
		if !ok {
			return nil, nil
		}
		id = &ambient
	}

	if srv.factory == nil {
		srv.logger.Debug("No profile type configured", slog.Uint64("userID", id.UserID))

		return nil, nil
	}

	var record profile.Record

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().GetOrCreate(ctx, srv.factory, id.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to get or create profile")
		}
		record = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return record, nil
}
