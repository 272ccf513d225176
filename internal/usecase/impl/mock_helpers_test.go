package impl

import (
	"context"
	"testing"

	"authcore/internal/domain/repository"
	mockRepo "authcore/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const txFuncType = "func(repository.RepositoryFactory) error"

// onExecute expects one transaction whose body runs against a fresh factory
// prepared by setup. Execute returns whatever the body returns.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
