// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is absent from the queried set.
// Owner-scoped queries return it for rows that exist but belong to someone else,
// which is the visibility-hiding policy of the storefront.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// FindAll retrieves all products, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByUser retrieves the products owned by the given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// FindByID retrieves a single product regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUser retrieves a single product only if it is owned by the
	// given user; a non-owned row behaves as absent.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies a product, constrained to rows owned by product.UserID.
	Update(ctx context.Context, product *entity.Product) error

	// DeleteForUser removes a product only if it is owned by the given user.
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error
}
