// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their groups.
func (repo *userRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	return repo.findFirst(ctx, "id = ?", id)
}

// FindByLogin retrieves the first user with the given login.
func (repo *userRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	return repo.findFirst(ctx, "login = ?", login)
}

// FindByUsername retrieves the first user with the given username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findFirst(ctx, "username = ?", username)
}

// FindByEmail retrieves the first user with the given email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findFirst(ctx, "email = ?", email)
}

// findFirst runs a single-column lookup. First orders by primary key, so
// duplicate logins, usernames or emails resolve to the oldest row.
func (repo *userRepository) findFirst(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("groups.id")
		}).
		Where(query, arg).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrapf(err, "failed to find user where %s", query)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
// Group links are written separately through AddToGroup.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// Update modifies the scalar columns of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("login", "username", "password", "email", "active").
		Updates(userM)
	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddToGroup inserts a user_groups row, ignoring an existing one.
func (repo *userRepository) AddToGroup(ctx context.Context, userID, groupID uint64) error {
	link := &model.UserGroupModel{UserID: userID, GroupID: groupID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("user or group does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add user to group")
	}

	return nil
}

// RemoveFromGroup deletes the user_groups row if present.
func (repo *userRepository) RemoveFromGroup(ctx context.Context, userID, groupID uint64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&model.UserGroupModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove user from group")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	groups := make([]*entity.Group, 0, len(data.Groups))
	for _, g := range data.Groups {
		groups = append(groups, toGroupDomain(g))
	}

	return entity.RestoreUser(entity.User{
		ID:       data.ID,
		Login:    data.Login,
		Username: data.Username,
		Email:    data.Email,
		Active:   entity.ActiveStatus(data.Active),
		Groups:   groups,
	}, data.Password)
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	active := data.Active
	if !active.IsValid() {
		active = entity.ActiveYes
	}

	return &model.UserModel{
		ID:       data.ID,
		Login:    data.Login,
		Username: data.Username,
		Password: data.PasswordHash(),
		Email:    data.Email,
		Active:   active.String(),
	}
}
