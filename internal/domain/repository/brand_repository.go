// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBrandNotFound is returned when a brand is not found.
var ErrBrandNotFound = errors.New("brand not found")

// BrandRepository defines read access to brands. Brands are administered out of
// band, so the API surface never mutates them.
type BrandRepository interface {
	// FindAll retrieves all brands ordered by name.
	FindAll(ctx context.Context) ([]*entity.Brand, error)

	// FindByID retrieves a single brand by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
}
