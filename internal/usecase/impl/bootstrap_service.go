package impl

import (
	"context"
	"log/slog"
	"strings"

	"authcore/config"
	"authcore/internal/domain/entity"
	"authcore/internal/domain/repository"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BootstrapServiceParams defines the dependencies of the bootstrap service.
type BootstrapServiceParams struct {
	fx.In

	Config    *config.Config
	Migrator  repository.SchemaMigrator
	TxManager repository.TransactionManager
	GroupRepo repository.GroupRepository
	Logger    *slog.Logger
}

// bootstrapService implements the BootstrapUsecase interface.
type bootstrapService struct {
	cfg       *config.Config
	migrator  repository.SchemaMigrator
	txManager repository.TransactionManager
	groupRepo repository.GroupRepository
	logger    *slog.Logger
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(params BootstrapServiceParams) usecase.BootstrapUsecase {
	return &bootstrapService{
		cfg:       params.Config,
		migrator:  params.Migrator,
		txManager: params.TxManager,
		groupRepo: params.GroupRepo,
		logger:    params.Logger,
	}
}

// Initialize migrates the schema and seeds the default groups.
// It must not run concurrently with itself.
func (srv *bootstrapService) Initialize(ctx context.Context) error {
	if err := srv.migrator.Migrate(ctx); err != nil {
		return errors.Wrap(err, "failed to initialize schema")
	}

	return srv.Seed(ctx)
}

// Seed inserts every default group in one transaction. A name conflict rolls
// the whole batch back and is reported as already seeded (or partially
// seeded) instead of failing; every other error is returned.
func (srv *bootstrapService) Seed(ctx context.Context) error {
	defaults := defaultGroups(srv.cfg)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		groupRepo := repoFactory.GroupRepo()
		for _, group := range defaults {
			if err := groupRepo.Create(ctx, group); err != nil {
				return err
			}
		}

		return nil
	})
	if err == nil {
		srv.logger.Info("Default groups seeded", slog.Int("count", len(defaults)))

		return nil
	}

	if !errors.Is(err, repository.ErrDuplicateGroupName) {
		return errors.Wrap(err, "failed to seed default groups")
	}

	missing, lookupErr := srv.missingGroups(ctx, defaults)
	if lookupErr != nil {
		return errors.Wrap(lookupErr, "failed to inspect existing groups after seed conflict")
	}

	if len(missing) == 0 {
		srv.logger.Info("Default groups already seeded", slog.Int("count", len(defaults)))
	} else {
		srv.logger.Warn("Seeding aborted by a name conflict; some default groups are missing",
			slog.Any("missing", missing),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (srv *bootstrapService) missingGroups(ctx context.Context, defaults []*entity.Group) ([]string, error) {
	var missing []string
	for _, group := range defaults {
		if _, err := srv.groupRepo.FindByName(ctx, group.Name); err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				missing = append(missing, group.Name)

				continue
			}

			return nil, err
		}
	}

	return missing, nil
}

// defaultGroups parses auth.defaultGroups. Configured names carry an empty
// description; blank entries are skipped.
func defaultGroups(cfg *config.Config) []*entity.Group {
	if cfg == nil || cfg.Auth == nil || strings.TrimSpace(cfg.Auth.DefaultGroups) == "" {
		return entity.DefaultGroups()
	}

	var groups []*entity.Group
	for _, name := range strings.Split(cfg.Auth.DefaultGroups, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		groups = append(groups, &entity.Group{Name: name})
	}

	return groups
}
