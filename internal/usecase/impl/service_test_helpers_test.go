package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"authcore/config"
	"authcore/internal/domain/profile"
	"authcore/internal/domain/repository"
	"authcore/internal/domain/service"
	"authcore/internal/infra/auth"
	"authcore/internal/infra/persistence/model"
	"authcore/internal/infra/persistence/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig(defaultGroups, profileType string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    bcrypt.MinCost,
			DefaultGroups: defaultGroups,
			ProfileType:   profileType,
		},
	}
}

// testStore bundles a file-backed SQLite database with the repositories built on it.
type testStore struct {
	db        *gorm.DB
	registry  *profile.Registry
	migrator  repository.SchemaMigrator
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
	hasher    service.PasswordHasher
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "auth.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	registry := profile.NewRegistry()
	require.NoError(t, model.RegisterBuiltinProfiles(registry))

	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	store := &testStore{
		db:        db,
		registry:  registry,
		migrator:  postgres.NewSchemaMigrator(db, registry, newDiscardLogger()),
		txManager: postgres.NewTransactionManager(db),
		userRepo:  postgres.NewUserRepository(db),
		groupRepo: postgres.NewGroupRepository(db),
		hasher:    hasher,
	}
	require.NoError(t, store.migrator.Migrate(context.Background()))

	return store
}

func (s *testStore) accountService() *accountService {
	return NewAccountService(AccountServiceParams{
		UserRepo:  s.userRepo,
		TxManager: s.txManager,
		Hasher:    s.hasher,
		Logger:    newDiscardLogger(),
	}).(*accountService)
}

func (s *testStore) bootstrapService(cfg *config.Config, logger *slog.Logger) *bootstrapService {
	return NewBootstrapService(BootstrapServiceParams{
		Config:    cfg,
		Migrator:  s.migrator,
		TxManager: s.txManager,
		GroupRepo: s.groupRepo,
		Logger:    logger,
	}).(*bootstrapService)
}
