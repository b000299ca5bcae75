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

// productImageRepository implements the repository.ProductImageRepository interface using GORM.
// Owner-scoped lookups join through products so a mismatched owner surfaces as not found.
type productImageRepository struct {
	db *gorm.DB
}

// NewProductImageRepository is the constructor for productImageRepository.
func NewProductImageRepository(db *gorm.DB) repository.ProductImageRepository {
	return &productImageRepository{db: db}
}

// FindAll retrieves all product images.
func (repo *productImageRepository) FindAll(ctx context.Context) ([]*entity.ProductImage, error) {
	var imageMs []model.ProductImageModel
	err := repo.db.WithContext(ctx).
		Find(&imageMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product images")
	}

	images := make([]*entity.ProductImage, 0, len(imageMs))
	for i := range imageMs {
		images = append(images, toProductImageDomain(&imageMs[i]))
	}

	return images, nil
}

// FindByID retrieves a single image regardless of owner.
func (repo *productImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error) {
	var imageM model.ProductImageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image by id")
	}

	return toProductImageDomain(&imageM), nil
}

// FindByIDForOwner retrieves a single image only if its parent product is owned
// by the given user.
func (repo *productImageRepository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.ProductImage, error) {
	var imageM model.ProductImageModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN products ON products.id = product_images.product_id").
		Where("product_images.id = ? AND products.user_id = ?", id, ownerID).
		First(&imageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image for owner")
	}

	return toProductImageDomain(&imageM), nil
}

// Create persists a new image row.
func (repo *productImageRepository) Create(ctx context.Context, image *entity.ProductImage) error {
	imageM := fromProductImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product image")
	}

	image.ID = imageM.ID

	return nil
}

// Update replaces the stored image key of an existing row.
func (repo *productImageRepository) Update(ctx context.Context, image *entity.ProductImage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductImageModel{}).
		Where("id = ?", image.ID).
		Update("image", image.Image)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductImageNotFound
	}

	return nil
}

// DeleteForOwner removes an image only if its parent product is owned by the
// given user. The ownership filter runs as a subquery because DELETE has no join.
func (repo *productImageRepository) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND product_id IN (?)",
			id,
			repo.db.Model(&model.ProductModel{}).Select("id").Where("user_id = ?", ownerID),
		).
		Delete(&model.ProductImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductImageNotFound
	}

	return nil
}

func toProductImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		Image:     data.Image,
	}
}

func fromProductImageDomain(image *entity.ProductImage) *model.ProductImageModel {
	return &model.ProductImageModel{
		ID:        image.ID,
		ProductID: image.ProductID,
		Image:     image.Image,
	}
}
