package impl

import (
	"context"
	"testing"

	"authcore/internal/domain/identity"
	"authcore/internal/domain/profile"
	"authcore/internal/infra/persistence/model"
	mockRepo "authcore/internal/mocks/repository"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service error tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	registry := profile.NewRegistry()
	require.NoError(t, model.RegisterBuiltinProfiles(registry))

	txManager := mockRepo.NewMockTransactionManager(t)
	service, err := NewProfileService(ProfileServiceParams{
		Config:    newTestConfig("", model.BasicProfileTypeName),
		Registry:  registry,
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestProfileService_GetProfile_GetOrCreateError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().GetOrCreate(ctx, mock.Anything, uint64(7)).Return(nil, errStorage)
	})

	record, err := fx.service.GetProfile(ctx, &identity.Identity{UserID: 7})

	assert.Nil(t, record)
	assert.True(t, errors.Is(err, errStorage))
	assert.Contains(t, err.Error(), "failed to get or create profile")
}

func TestProfileService_GetProfile_TransactionError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := identity.WithContext(context.Background(), identity.Identity{UserID: 7})

	fx.txManager.EXPECT().Execute(ctx, mock.AnythingOfType(txFuncType)).Return(errStorage)

	record, err := fx.service.GetProfile(ctx, nil)

	assert.Nil(t, record)
	assert.True(t, errors.Is(err, errStorage))
	assert.Contains(t, err.Error(), "failed to get profile")
}
