package impl

import (
	"bytes"
	"context"
	"testing"

	"authcore/internal/domain/entity"
	"authcore/internal/infra/persistence/model"
	"authcore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupNames(t *testing.T, store *testStore) map[string]string {
	t.Helper()

	groups, err := store.groupRepo.List(context.Background())
	require.NoError(t, err)

	names := make(map[string]string, len(groups))
	for _, g := range groups {
		names[g.Name] = g.Description
	}

	return names
}

func TestBootstrapService_SeedsBuiltinDefaults(t *testing.T) {
	store := newTestStore(t)
	srv := store.bootstrapService(newTestConfig("", ""), newDiscardLogger())

	require.NoError(t, srv.Initialize(context.Background()))

	assert.Equal(t, map[string]string{
		"users": "User Group",
		"admin": "Admin Group",
	}, groupNames(t, store))
}

func TestBootstrapService_SeedsConfiguredNames(t *testing.T) {
	store := newTestStore(t)
	srv := store.bootstrapService(newTestConfig(" staff, editors ,,", ""), newDiscardLogger())

	require.NoError(t, srv.Seed(context.Background()))

	assert.Equal(t, map[string]string{
		"staff":   "",
		"editors": "",
	}, groupNames(t, store))
}

func TestBootstrapService_SecondRunIsQuiet(t *testing.T) {
	store := newTestStore(t)
	var logs bytes.Buffer
	srv := store.bootstrapService(newTestConfig("", ""), newBufferLogger(&logs))
	ctx := context.Background()

	require.NoError(t, srv.Initialize(ctx))
	require.NoError(t, srv.Initialize(ctx))

	assert.Len(t, groupNames(t, store), 2)
	assert.Contains(t, logs.String(), "Default groups already seeded")
}

func TestBootstrapService_PartialConflictRollsBackBatch(t *testing.T) {
	store := newTestStore(t)
	var logs bytes.Buffer
	ctx := context.Background()

	require.NoError(t, store.groupRepo.Create(ctx, &entity.Group{Name: "admin", Description: "pre-existing"}))

	srv := store.bootstrapService(newTestConfig("", ""), newBufferLogger(&logs))
	require.NoError(t, srv.Seed(ctx))

	// "users" sits before "admin" in the batch and is rolled back with it.
	assert.Equal(t, map[string]string{"admin": "pre-existing"}, groupNames(t, store))
	assert.Contains(t, logs.String(), "some default groups are missing")
}

func TestDefaultGroups(t *testing.T) {
	assert.Equal(t, entity.DefaultGroups(), defaultGroups(nil))
	assert.Equal(t, entity.DefaultGroups(), defaultGroups(newTestConfig("   ", "")))

	groups := defaultGroups(newTestConfig("a,b", ""))
	require.Len(t, groups, 2)
	assert.Equal(t, "a", groups[0].Name)
	assert.Equal(t, "", groups[0].Description)
}

// End-to-end: seed, create alice, check credentials.
func TestEndToEnd_SeedCreateCheck(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.bootstrapService(newTestConfig("", ""), newDiscardLogger()).Initialize(ctx))
	names := groupNames(t, store)
	assert.Equal(t, "User Group", names["users"])
	assert.Equal(t, "Admin Group", names["admin"])

	accounts := store.accountService()
	_, err := accounts.CreateUser(ctx, &usecase.CreateUserInput{Login: "alice", Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	ok, err := accounts.CheckPassword(ctx, &usecase.CheckPasswordInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = accounts.CheckPassword(ctx, &usecase.CheckPasswordInput{Username: "alice", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = accounts.CheckPassword(ctx, &usecase.CheckPasswordInput{Username: "nouser", Password: "x"})
	require.NoError(t, err)
	assert.False(t, ok)

	// Profile table exists after Initialize.
	assert.True(t, store.db.Migrator().HasTable(&model.BasicProfileModel{}))
}
