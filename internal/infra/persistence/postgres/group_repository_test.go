package postgres

import (
	"context"
	"testing"

	"authcore/internal/domain/entity"
	"authcore/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_CreateFindList(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	users := &entity.Group{Name: "users", Description: "User Group"}
	require.NoError(t, repo.Create(ctx, users))
	assert.NotZero(t, users.ID)

	bare := &entity.Group{Name: "bare"}
	require.NoError(t, repo.Create(ctx, bare))

	found, err := repo.FindByName(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, users.ID, found.ID)
	assert.Equal(t, "User Group", found.Description)

	found, err = repo.FindByName(ctx, "bare")
	require.NoError(t, err)
	assert.Equal(t, "", found.Description)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "users", all[0].Name)
	assert.Equal(t, "bare", all[1].Name)
}

func TestGroupRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Group{Name: "admin"}))

	err := repo.Create(ctx, &entity.Group{Name: "admin"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateGroupName))
}

func TestGroupRepository_FindByNameMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)

	_, err := repo.FindByName(context.Background(), "missing")
	assert.True(t, errors.Is(err, repository.ErrGroupNotFound))
}
