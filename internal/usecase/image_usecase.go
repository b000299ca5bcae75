package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadImageInput carries the raw bytes of an uploaded product image.
type UploadImageInput struct {
	Data        []byte
	ContentType string
}

// ImageUsecase defines the interface for product-image management. Reads are
// public; writes require ownership of the parent product.
type ImageUsecase interface {
	// ListImages returns every product image.
	ListImages(ctx context.Context) ([]*entity.ProductImage, error)

	// GetImage returns a single image by ID.
	GetImage(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error)

	// AddImage stores the upload and attaches it to a product owned by the user.
	AddImage(ctx context.Context, userID, productID uuid.UUID, input UploadImageInput) (*entity.ProductImage, error)

	// ReplaceImage swaps the stored file of an image owned by the user.
	ReplaceImage(ctx context.Context, userID, imageID uuid.UUID, input UploadImageInput) (*entity.ProductImage, error)

	// DeleteImage removes an image owned by the user along with its stored file.
	DeleteImage(ctx context.Context, userID, imageID uuid.UUID) error
}
