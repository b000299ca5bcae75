package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	brandRepo   *mockRepo.MockBrandRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	brandRepo := mockRepo.NewMockBrandRepository(t)
	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		BrandRepo:   brandRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		brandRepo:   brandRepo,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, userID, product.UserID)
			assert.True(t, product.IsAvailable)
			product.ID = productID
		}).
		Return(nil)
	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, UserID: userID, Name: "Phone"}, nil)

	product, err := fx.service.CreateProduct(ctx, userID, usecase.CreateProductInput{
		Name:  "Phone",
		Price: decimal.RequireFromString("499.00"),
		Stock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
}

func TestCatalogService_CreateProduct_RejectsNonPositivePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	product, err := fx.service.CreateProduct(ctx, uuid.New(), usecase.CreateProductInput{
		Name:  "Freebie",
		Price: decimal.Zero,
		Stock: 1,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateProduct_RejectsNegativeStock(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	product, err := fx.service.CreateProduct(ctx, uuid.New(), usecase.CreateProductInput{
		Name:  "Phone",
		Price: decimal.RequireFromString("1.00"),
		Stock: -1,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateProduct_UnknownBrand(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	brandID := uuid.New()

	fx.brandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)

	product, err := fx.service.CreateProduct(ctx, uuid.New(), usecase.CreateProductInput{
		BrandID: &brandID,
		Name:    "Phone",
		Price:   decimal.RequireFromString("1.00"),
		Stock:   1,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateProduct_NotOwnedBehavesAsMissing(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByIDForUser(ctx, productID, userID).
		Return(nil, repository.ErrProductNotFound)

	name := "Hijacked"
	product, err := fx.service.UpdateProduct(ctx, userID, productID, usecase.UpdateProductInput{Name: &name})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_UpdateProduct_PartialUpdate(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	existing := &entity.Product{
		ID:          productID,
		UserID:      userID,
		Name:        "Phone",
		Price:       decimal.RequireFromString("499.00"),
		Stock:       10,
		IsAvailable: true,
	}

	fx.productRepo.EXPECT().FindByIDForUser(ctx, productID, userID).Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, "Phone Pro", product.Name)
			assert.True(t, product.Price.Equal(decimal.RequireFromString("599.00")))
			assert.Equal(t, 10, product.Stock)
		}).
		Return(nil)
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)

	name := "Phone Pro"
	price := decimal.RequireFromString("599.00")
	_, err := fx.service.UpdateProduct(ctx, userID, productID, usecase.UpdateProductInput{
		Name:  &name,
		Price: &price,
	})
	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		DeleteForUser(ctx, productID, userID).
		Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, userID, productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_GetBrand_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	brandID := uuid.New()

	fx.brandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)

	brand, err := fx.service.GetBrand(ctx, brandID)
	require.Error(t, err)
	assert.Nil(t, brand)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_ListBrands(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	brands := []*entity.Brand{
		{ID: uuid.New(), Name: "Acme"},
		{ID: uuid.New(), Name: "Globex"},
	}

	fx.brandRepo.EXPECT().FindAll(ctx).Return(brands, nil)

	got, err := fx.service.ListBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
