package postgres

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"authcore/internal/domain/profile"
	"authcore/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDB opens a file-backed SQLite database in a temp dir and migrates it.
func newTestDB(t *testing.T) *gorm.DB {
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
	require.NoError(t, NewSchemaMigrator(db, registry, newDiscardLogger()).Migrate(context.Background()))

	return db
}
