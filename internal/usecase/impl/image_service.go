package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// imageService implements the ImageUsecase interface.
type imageService struct {
	imageRepo   repository.ProductImageRepository
	productRepo repository.ProductRepository
	storage     service.ImageStorage
	logger      *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ImageRepo   repository.ProductImageRepository
	ProductRepo repository.ProductRepository
	Storage     service.ImageStorage
	Logger      *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	return &imageService{
		imageRepo:   params.ImageRepo,
		productRepo: params.ProductRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListImages returns every product image.
func (srv *imageService) ListImages(ctx context.Context) ([]*entity.ProductImage, error) {
	images, err := srv.imageRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product images")
	}

	return images, nil
}

// GetImage returns a single image by ID.
func (srv *imageService) GetImage(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error) {
	image, err := srv.imageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductImageNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image")
	}

	return image, nil
}

// AddImage stores the upload and attaches it to a product owned by the user.
// Attaching to someone else's product is rejected outright rather than hidden,
// because the product itself is publicly readable.
func (srv *imageService) AddImage(ctx context.Context, userID, productID uuid.UUID, input usecase.UploadImageInput) (*entity.ProductImage, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.UserID != userID {
		return nil, domainerrors.ErrProductNotOwned
	}

	key, err := srv.storage.Store(ctx, input.Data, input.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	image := &entity.ProductImage{
		ProductID: productID,
		Image:     key,
	}
	if err := srv.imageRepo.Create(ctx, image); err != nil {
		srv.cleanupBlob(ctx, key)

		return nil, errors.Wrap(err, "failed to create product image")
	}

	return image, nil
}

// ReplaceImage swaps the stored file of an image owned by the user. The old
// blob is removed only after the row points at the new one.
func (srv *imageService) ReplaceImage(ctx context.Context, userID, imageID uuid.UUID, input usecase.UploadImageInput) (*entity.ProductImage, error) {
	image, err := srv.imageRepo.FindByIDForOwner(ctx, imageID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProductImageNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image for owner")
	}

	oldKey := image.Image

	newKey, err := srv.storage.Store(ctx, input.Data, input.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	image.Image = newKey
	if err := srv.imageRepo.Update(ctx, image); err != nil {
		srv.cleanupBlob(ctx, newKey)

		return nil, errors.Wrap(err, "failed to update product image")
	}

	srv.cleanupBlob(ctx, oldKey)

	return image, nil
}

// DeleteImage removes an image owned by the user along with its stored file.
func (srv *imageService) DeleteImage(ctx context.Context, userID, imageID uuid.UUID) error {
	image, err := srv.imageRepo.FindByIDForOwner(ctx, imageID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProductImageNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to find product image for owner")
	}

	if err := srv.imageRepo.DeleteForOwner(ctx, imageID, userID); err != nil {
		if errors.Is(err, repository.ErrProductImageNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete product image")
	}

	srv.cleanupBlob(ctx, image.Image)

	return nil
}

// cleanupBlob removes an orphaned stored file. The row is the source of truth,
// so a failed blob delete only logs; it never fails the request.
func (srv *imageService) cleanupBlob(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete stored image", slog.String("key", key), slog.Any("error", err))
	}
}
