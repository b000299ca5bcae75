// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductImageNotFound is returned when an image is absent from the queried set.
var ErrProductImageNotFound = errors.New("product image not found")

// ProductImageRepository defines the operations for product-image persistence.
// Reads are public; mutating lookups are pre-filtered by the owning user of the
// parent product, so mismatched ownership surfaces as not-found.
type ProductImageRepository interface {
	// FindAll retrieves all product images.
	FindAll(ctx context.Context) ([]*entity.ProductImage, error)

	// FindByID retrieves a single image regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error)

	// FindByIDForOwner retrieves a single image only if its product is owned by
	// the given user.
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.ProductImage, error)

	// Create persists a new image row.
	Create(ctx context.Context, image *entity.ProductImage) error

	// Update replaces the stored image key of an existing row.
	Update(ctx context.Context, image *entity.ProductImage) error

	// DeleteForOwner removes an image only if its product is owned by the given user.
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
