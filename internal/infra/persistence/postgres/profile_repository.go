package postgres

import (
	"context"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/profile"
	"authcore/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements repository.ProfileRepository using GORM.
// Every profile model is keyed by user id, which makes the insert below an
// upsert-by-key.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// GetOrCreate inserts a fresh record unless one exists, then reads back the stored row.
func (repo *profileRepository) GetOrCreate(ctx context.Context, factory profile.Factory, userID uint64) (profile.Record, error) {
	record := factory(userID)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	stored := factory(userID)
	if err := repo.db.WithContext(ctx).First(stored).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	return stored, nil
}
