// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/domain/service"
	"authcore/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountServiceParams defines the dependencies of the account service.
type AccountServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:  params.UserRepo,
		txManager: params.TxManager,
		hasher:    params.Hasher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    params.Logger,
	}
}

// GetByID returns the user with the given id, or nil when absent.
func (srv *accountService) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	return lookup(srv.userRepo.FindByID(ctx, id))
}

// GetByLogin returns the first user with the given login, or nil when absent.
func (srv *accountService) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	return lookup(srv.userRepo.FindByLogin(ctx, login))
}

// GetByUsername returns the first user with the given username, or nil when absent.
func (srv *accountService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return lookup(srv.userRepo.FindByUsername(ctx, username))
}

// GetByEmail returns the first user with the given email, or nil when absent.
func (srv *accountService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return lookup(srv.userRepo.FindByEmail(ctx, email))
}

// lookup turns a repository not-found into an absent result.
func lookup(user *entity.User, err error) (*entity.User, error) {
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	return user, nil
}

// CheckPassword resolves the user by ID (preferred) or username and verifies the password.
// An unknown user yields false without hashing anything.
func (srv *accountService) CheckPassword(ctx context.Context, input *usecase.CheckPasswordInput) (bool, error) {
	if input == nil {
		return false, errors.WithStack(domainerrors.ErrInvalidArgument)
	}
	if err := srv.validate.Struct(input); err != nil {
		return false, domainerrors.ErrInvalidArgument.WrapMessage(err.Error())
	}

	var (
		user *entity.User
		err  error
	)
	if input.ID != nil {
		user, err = srv.GetByID(ctx, *input.ID)
	} else {
		user, err = srv.GetByUsername(ctx, input.Username)
	}
	if err != nil {
		return false, err
	}
	if user == nil {
		srv.logger.Debug("Credential check for unknown user")

		return false, nil
	}

	return srv.hasher.Check(input.Password, user.PasswordHash()), nil
}

// CreateUser stores a new active user with a hashed password.
func (srv *accountService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidArgument)
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage(err.Error())
	}

	if err := checkPlaintext(input.Password); err != nil {
		return nil, err
	}

	user := entity.NewUser(input.Login, input.Username, input.Email)
	if err := user.SetPassword(srv.hasher, input.Password); err != nil {
		return nil, hashFailure(err)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User created", slog.Uint64("userID", user.ID))

	return user, nil
}

// SetPassword rehashes and stores a new password for an existing user.
func (srv *accountService) SetPassword(ctx context.Context, userID uint64, plaintext string) error {
	if err := checkPlaintext(plaintext); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := user.SetPassword(srv.hasher, plaintext); err != nil {
			return hashFailure(err)
		}

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		return errors.Wrap(err, "failed to set password")
	}

	return nil
}

// checkPlaintext rejects passwords the hasher cannot represent before any storage work.
func checkPlaintext(plaintext string) error {
	if len(plaintext) > service.MaxPasswordBytes {
		return domainerrors.ErrInvalidArgument.WrapMessage(service.ErrPasswordTooLong.Error())
	}

	return nil
}

// hashFailure maps ErrPasswordTooLong to ErrInvalidArgument and any other hasher error to ErrPasswordHashFailed.
func hashFailure(err error) error {
	if errors.Is(err, service.ErrPasswordTooLong) {
		return domainerrors.ErrInvalidArgument.WrapMessage(err.Error())
	}

	return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
}

// InGroup reports whether the user belongs to the named group. An unknown user is in no group.
func (srv *accountService) InGroup(ctx context.Context, userID uint64, groupName string) (bool, error) {
	user, err := srv.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	return user.InGroup(groupName), nil
}

// AddToGroup links the user to the named group.
func (srv *accountService) AddToGroup(ctx context.Context, userID uint64, groupName string) error {
	return srv.changeMembership(ctx, userID, groupName, repository.UserRepository.AddToGroup)
}

// RemoveFromGroup unlinks the user from the named group.
func (srv *accountService) RemoveFromGroup(ctx context.Context, userID uint64, groupName string) error {
	return srv.changeMembership(ctx, userID, groupName, repository.UserRepository.RemoveFromGroup)
}

type membershipChange func(repo repository.UserRepository, ctx context.Context, userID, groupID uint64) error

func (srv *accountService) changeMembership(ctx context.Context, userID uint64, groupName string, change membershipChange) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to find user")
		}

		group, err := repoFactory.GroupRepo().FindByName(ctx, groupName)
		if err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				return errors.WithStack(domainerrors.ErrGroupNotFound)
			}

			return errors.Wrap(err, "failed to find group")
		}

		return change(userRepo, ctx, userID, group.ID)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to change membership of user %d in %q", userID, groupName)
	}

	return nil
}
