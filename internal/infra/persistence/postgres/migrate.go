package postgres

import (
	"context"
	"log/slog"

	"authcore/internal/domain/profile"
	"authcore/internal/domain/repository"
	"authcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// schemaMigrator creates missing tables, columns and indexes. AutoMigrate
// never drops anything, so running it against a populated database is safe.
type schemaMigrator struct {
	db       *gorm.DB
	registry *profile.Registry
	logger   *slog.Logger
}

// NewSchemaMigrator is the constructor for schemaMigrator.
func NewSchemaMigrator(db *gorm.DB, registry *profile.Registry, logger *slog.Logger) repository.SchemaMigrator {
	return &schemaMigrator{db: db, registry: registry, logger: logger}
}

// Migrate brings users, groups, user_groups and every registered profile table up to date.
func (m *schemaMigrator) Migrate(ctx context.Context) error {
	models := []any{
		&model.GroupModel{},
		&model.UserModel{},
	}
	for _, record := range m.registry.Prototypes() {
		models = append(models, record)
	}

	if err := m.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	m.logger.Info("Schema migrated", slog.Int("models", len(models)))

	return nil
}
