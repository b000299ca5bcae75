package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	BrandID     *uuid.UUID
	Name        string
	Description string
	Ram         string
	Color       string
	Price       decimal.Decimal
	Stock       int
	IsAvailable *bool // nil defaults to available.
}

// UpdateProductInput carries a partial product update. nil fields are left
// untouched.
type UpdateProductInput struct {
	BrandID     *uuid.UUID
	ClearBrand  bool // Detach the brand; wins over BrandID.
	Name        *string
	Description *string
	Ram         *string
	Color       *string
	Price       *decimal.Decimal
	Stock       *int
	IsAvailable *bool
}

// CatalogUsecase defines the interface for the product catalog: public reads,
// owner-scoped writes, and the read-only brand directory.
type CatalogUsecase interface {
	// ListProducts returns every product, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListMyProducts returns the products owned by the given user.
	ListMyProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct lists a new product owned by the given user.
	CreateProduct(ctx context.Context, userID uuid.UUID, input CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies a partial update to a product owned by the given user.
	UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product owned by the given user.
	DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error

	// ListBrands returns every brand ordered by name.
	ListBrands(ctx context.Context) ([]*entity.Brand, error)

	// GetBrand returns a single brand by ID.
	GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
}
