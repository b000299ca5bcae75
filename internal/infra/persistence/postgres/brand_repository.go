package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// brandRepository implements the repository.BrandRepository interface using GORM.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

// FindAll retrieves all brands ordered by name.
func (repo *brandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	var brandMs []model.BrandModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&brandMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandMs))
	for i := range brandMs {
		brands = append(brands, toBrandDomain(&brandMs[i]))
	}

	return brands, nil
}

// FindByID retrieves a single brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&brandM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	return &entity.Brand{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Logo:        data.Logo,
		CreatedAt:   data.CreatedAt,
	}
}
