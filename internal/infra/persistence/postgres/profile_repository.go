package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// GetOrCreate returns the profile row for the given user, inserting an empty
// one first when none exists. A concurrent first access loses the insert race
// on the primary key and falls back to reading the winner's row.
func (repo *profileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	err := repo.db.WithContext(ctx).
		Where(model.UserProfileModel{UserID: userID}).
		FirstOrCreate(&profileM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			readErr := repo.db.WithContext(ctx).
				Where("user_id = ?", userID).
				First(&profileM).Error
			if readErr != nil {
				return nil, errors.Wrap(readErr, "failed to re-read profile after insert race")
			}

			return toProfileDomain(&profileM), nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get or create profile")
	}

	return toProfileDomain(&profileM), nil
}

// Update modifies an existing profile row. All mutable columns are written so
// the caller controls field clearing.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Select("image", "bio", "phone", "birth_date", "address", "telegram").
		Updates(profileM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	return &entity.UserProfile{
		UserID:    data.UserID,
		Image:     data.Image,
		Bio:       data.Bio,
		Phone:     data.Phone,
		BirthDate: data.BirthDate,
		Address:   data.Address,
		Telegram:  data.Telegram,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProfileDomain(profile *entity.UserProfile) *model.UserProfileModel {
	return &model.UserProfileModel{
		UserID:    profile.UserID,
		Image:     profile.Image,
		Bio:       profile.Bio,
		Phone:     profile.Phone,
		BirthDate: profile.BirthDate,
		Address:   profile.Address,
		Telegram:  profile.Telegram,
	}
}
