package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// likeService implements the LikeUsecase interface.
type likeService struct {
	txManager   repository.TransactionManager
	likeRepo    repository.LikeRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	LikeRepo    repository.LikeRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		txManager:   params.TxManager,
		likeRepo:    params.LikeRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLikes returns the user's likes, newest first, with products attached.
func (srv *likeService) ListLikes(ctx context.Context, userID uuid.UUID) ([]*entity.Like, error) {
	likes, err := srv.likeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list likes")
	}

	return likes, nil
}

// ToggleLike flips the like state for a (product, user) pair. The read and the
// write run in one transaction; a concurrent toggle that wins the insert race
// trips the unique constraint, and the loser resolves it by deleting the
// winner's row, which is exactly the second press of the toggle.
func (srv *likeService) ToggleLike(ctx context.Context, userID, productID uuid.UUID) (*entity.LikeResult, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	result := &entity.LikeResult{ProductID: productID}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.LikeRepo()

		existing, err := likeRepo.FindByProductAndUser(ctx, productID, userID)
		if err != nil && !errors.Is(err, repository.ErrLikeNotFound) {
			return errors.Wrap(err, "failed to find like")
		}

		if existing != nil {
			if err := likeRepo.Delete(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "failed to delete like")
			}
			result.Liked = false

			return nil
		}

		createErr := likeRepo.Create(ctx, &entity.Like{ProductID: productID, UserID: userID})
		if createErr == nil {
			result.Liked = true

			return nil
		}
		if !errors.Is(createErr, repository.ErrDuplicateLike) {
			return errors.Wrap(createErr, "failed to create like")
		}

		// Lost the insert race. Re-read the concurrent row and remove it.
		winner, err := likeRepo.FindByProductAndUser(ctx, productID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to re-read like after insert race")
		}
		if err := likeRepo.Delete(ctx, winner.ID); err != nil {
			return errors.Wrap(err, "failed to delete like after insert race")
		}
		result.Liked = false

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Like toggled",
		slog.Any("productID", productID),
		slog.Any("userID", userID),
		slog.Bool("liked", result.Liked),
	)

	return result, nil
}
