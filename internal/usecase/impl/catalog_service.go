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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	brandRepo   repository.BrandRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	BrandRepo   repository.BrandRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		brandRepo:   params.BrandRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns every product, newest first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListMyProducts returns the products owned by the given user.
func (srv *catalogService) ListMyProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by user")
	}

	return products, nil
}

// GetProduct returns a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct lists a new product owned by the given user.
func (srv *catalogService) CreateProduct(ctx context.Context, userID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	if err := validatePricing(input.Price, input.Stock); err != nil {
		return nil, err
	}

	if input.BrandID != nil {
		if err := srv.checkBrand(ctx, *input.BrandID); err != nil {
			return nil, err
		}
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	product := &entity.Product{
		UserID:      userID,
		BrandID:     input.BrandID,
		Name:        input.Name,
		Description: input.Description,
		Ram:         input.Ram,
		Color:       input.Color,
		Price:       input.Price,
		Stock:       input.Stock,
		IsAvailable: isAvailable,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("brand does not exist")
		}

		srv.log(ctx).Error("Failed to create product", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return srv.reload(ctx, product.ID)
}

// UpdateProduct applies a partial update to a product owned by the given user.
// A non-owned product is reported as not found.
func (srv *catalogService) UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByIDForUser(ctx, productID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for user")
	}

	applyProductChanges(product, input)

	if err := validatePricing(product.Price, product.Stock); err != nil {
		return nil, err
	}

	if product.BrandID != nil {
		if err := srv.checkBrand(ctx, *product.BrandID); err != nil {
			return nil, err
		}
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("brand does not exist")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.reload(ctx, productID)
}

// DeleteProduct removes a product owned by the given user.
func (srv *catalogService) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.productRepo.DeleteForUser(ctx, productID, userID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", productID), slog.Any("userID", userID))

	return nil
}

// ListBrands returns every brand ordered by name.
func (srv *catalogService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// GetBrand returns a single brand by ID.
func (srv *catalogService) GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	return brand, nil
}

func (srv *catalogService) checkBrand(ctx context.Context, brandID uuid.UUID) error {
	if _, err := srv.brandRepo.FindByID(ctx, brandID); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return domainerrors.ErrValidationFailed.WrapMessage("brand does not exist")
		}

		return errors.Wrap(err, "failed to check brand")
	}

	return nil
}

// reload re-reads a product so the response carries brand and images.
func (srv *catalogService) reload(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload product")
	}

	return product, nil
}

func validatePricing(price decimal.Decimal, stock int) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
	}
	if stock < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("stock cannot be negative")
	}

	return nil
}

func applyProductChanges(product *entity.Product, input usecase.UpdateProductInput) {
	switch {
	case input.ClearBrand:
		product.BrandID = nil
		product.Brand = nil
	case input.BrandID != nil:
		product.BrandID = input.BrandID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Ram != nil {
		product.Ram = *input.Ram
	}
	if input.Color != nil {
		product.Color = *input.Color
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
}
