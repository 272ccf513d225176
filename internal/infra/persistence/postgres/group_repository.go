package postgres

import (
	"context"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// groupRepository implements repository.GroupRepository using GORM.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// FindByName retrieves a group by its unique name.
func (repo *groupRepository) FindByName(ctx context.Context, name string) (*entity.Group, error) {
	var groupM model.GroupModel
	err := repo.db.WithContext(ctx).Where("name = ?", name).First(&groupM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by name")
	}

	return toGroupDomain(&groupM), nil
}

// List returns every group ordered by id.
func (repo *groupRepository) List(ctx context.Context) ([]*entity.Group, error) {
	var groupsM []*model.GroupModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&groupsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	groups := make([]*entity.Group, 0, len(groupsM))
	for _, g := range groupsM {
		groups = append(groups, toGroupDomain(g))
	}

	return groups, nil
}

// Create persists a new group.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateGroupName, "group %q", group.Name)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required group information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.ID = groupM.ID

	return nil
}

// ListMembers returns the users linked to the group through user_groups.
// Members are returned without their own group lists.
func (repo *groupRepository) ListMembers(ctx context.Context, groupID uint64) ([]*entity.User, error) {
	var usersM []*model.UserModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Where("user_groups.group_id = ?", groupID).
		Order("users.id").
		Find(&usersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list group members")
	}

	users := make([]*entity.User, 0, len(usersM))
	for _, u := range usersM {
		users = append(users, toUserDomain(u))
	}

	return users, nil
}

// toGroupDomain converts a GORM GroupModel to a domain Group entity.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	return &entity.Group{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

// fromGroupDomain converts a domain Group entity to a GORM GroupModel.
func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	return &model.GroupModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
