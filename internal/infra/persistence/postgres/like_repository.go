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

// likeRepository implements the repository.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// FindByUser retrieves the likes of the given user, newest first, with the
// liked product preloaded.
func (repo *likeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Like, error) {
	var likeMs []model.LikeModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Brand").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list likes by user")
	}

	likes := make([]*entity.Like, 0, len(likeMs))
	for i := range likeMs {
		likes = append(likes, toLikeDomain(&likeMs[i]))
	}

	return likes, nil
}

// FindByProductAndUser retrieves the like row for a (product, user) pair.
func (repo *likeRepository) FindByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		First(&likeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like by product and user")
	}

	return toLikeDomain(&likeM), nil
}

// Create persists a new like row. The composite unique index rejects a second
// row for the same pair, which is reported as ErrDuplicateLike so the toggle
// can recover from a lost race.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Delete removes a like row by its ID. Deleting an already removed row is not
// an error; the toggle treats it as the unliked end state.
func (repo *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete like")
	}

	return nil
}

func toLikeDomain(data *model.LikeModel) *entity.Like {
	like := &entity.Like{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
	if data.Product != nil {
		like.Product = toProductDomain(data.Product)
	}

	return like
}

func fromLikeDomain(like *entity.Like) *model.LikeModel {
	return &model.LikeModel{
		ID:        like.ID,
		ProductID: like.ProductID,
		UserID:    like.UserID,
	}
}
