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

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindAll retrieves all products, newest first, with brand and images preloaded.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Images").
		Order("created_at DESC").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productMs), nil
}

// FindByUser retrieves the products owned by the given user, newest first.
func (repo *productRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by user")
	}

	return toProductDomainSlice(productMs), nil
}

// FindByID retrieves a single product regardless of owner.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByIDForUser retrieves a single product only if it is owned by the given
// user. A non-owned row is indistinguishable from an absent one.
func (repo *productRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ? AND user_id = ?", id, userID)
}

func (repo *productRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Images").
		Where(query, args...).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product. The database generates the ID and timestamps.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBrandNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies a product, constrained to rows owned by product.UserID.
// A zero row count means absent or non-owned, both reported as not found.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND user_id = ?", product.ID, product.UserID).
		Select("brand_id", "name", "description", "ram", "color", "price", "stock", "is_available").
		Updates(productM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrBrandNotFound
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteForUser removes a product only if it is owned by the given user.
// Images, likes and orders referencing it cascade at the database level.
func (repo *productRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomainSlice(productMs []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          data.ID,
		UserID:      data.UserID,
		BrandID:     data.BrandID,
		Name:        data.Name,
		Description: data.Description,
		Ram:         data.Ram,
		Color:       data.Color,
		Price:       data.Price,
		Stock:       data.Stock,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Brand != nil {
		product.Brand = toBrandDomain(data.Brand)
	}
	for i := range data.Images {
		product.Images = append(product.Images, *toProductImageDomain(&data.Images[i]))
	}

	return product
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		UserID:      product.UserID,
		BrandID:     product.BrandID,
		Name:        product.Name,
		Description: product.Description,
		Ram:         product.Ram,
		Color:       product.Color,
		Price:       product.Price,
		Stock:       product.Stock,
		IsAvailable: product.IsAvailable,
	}
}
