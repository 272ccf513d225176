package impl

import (
	"context"
	"testing"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/identity"
	"authcore/internal/infra/persistence/model"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T, store *testStore, profileType string) usecase.ProfileUsecase {
	t.Helper()

	srv, err := NewProfileService(ProfileServiceParams{
		Config:    newTestConfig("", profileType),
		Registry:  store.registry,
		TxManager: store.txManager,
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	return srv
}

func TestProfileService_Unauthenticated(t *testing.T) {
	store := newTestStore(t)
	srv := newProfileService(t, store, model.BasicProfileTypeName)

	record, err := srv.GetProfile(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestProfileService_NoProfileTypeConfigured(t *testing.T) {
	store := newTestStore(t)
	srv := newProfileService(t, store, "")

	record, err := srv.GetProfile(context.Background(), &identity.Identity{UserID: 1})
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestProfileService_UnknownProfileTypeFailsAtConstruction(t *testing.T) {
	store := newTestStore(t)

	_, err := NewProfileService(ProfileServiceParams{
		Config:    newTestConfig("", "myapp.models.Profile"),
		Registry:  store.registry,
		TxManager: store.txManager,
		Logger:    newDiscardLogger(),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrProfileTypeUnknown))
}

func TestProfileService_GetOrCreateOnce(t *testing.T) {
	store := newTestStore(t)
	srv := newProfileService(t, store, model.BasicProfileTypeName)
	ctx := context.Background()

	first, err := srv.GetProfile(ctx, &identity.Identity{UserID: 5})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, uint64(5), first.OwnerID())

	second, err := srv.GetProfile(ctx, &identity.Identity{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, first.OwnerID(), second.OwnerID())

	var count int64
	require.NoError(t, store.db.Model(&model.BasicProfileModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProfileService_UsesIdentityFromContext(t *testing.T) {
	store := newTestStore(t)
	srv := newProfileService(t, store, model.BasicProfileTypeName)

	ctx := identity.WithContext(context.Background(), identity.Identity{UserID: 9})
	record, err := srv.GetProfile(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, uint64(9), record.OwnerID())
}
