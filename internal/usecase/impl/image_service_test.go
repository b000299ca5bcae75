package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// imageServiceFixtures holds all test dependencies for image service tests.
type imageServiceFixtures struct {
	service     usecase.ImageUsecase
	imageRepo   *mockRepo.MockProductImageRepository
	productRepo *mockRepo.MockProductRepository
	storage     *mockSvc.MockImageStorage
}

func createTestImageService(t *testing.T) imageServiceFixtures {
	imageRepo := mockRepo.NewMockProductImageRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	storage := mockSvc.NewMockImageStorage(t)
	svc := NewImageService(ImageServiceParams{
		ImageRepo:   imageRepo,
		ProductRepo: productRepo,
		Storage:     storage,
		Logger:      newDiscardLogger(),
	})

	return imageServiceFixtures{
		service:     svc,
		imageRepo:   imageRepo,
		productRepo: productRepo,
		storage:     storage,
	}
}

func TestImageService_AddImage_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	data := []byte("fake-png-bytes")

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, UserID: userID}, nil)
	fx.storage.EXPECT().
		Store(ctx, data, "image/png").
		Return("products/abc.png", nil)
	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ProductImage")).
		Run(func(_ context.Context, image *entity.ProductImage) {
			assert.Equal(t, productID, image.ProductID)
			assert.Equal(t, "products/abc.png", image.Image)
			image.ID = uuid.New()
		}).
		Return(nil)

	image, err := fx.service.AddImage(ctx, userID, productID, usecase.UploadImageInput{
		Data:        data,
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "products/abc.png", image.Image)
}

func TestImageService_AddImage_NotOwned(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, UserID: uuid.New()}, nil)

	image, err := fx.service.AddImage(ctx, uuid.New(), productID, usecase.UploadImageInput{
		Data:        []byte("x"),
		ContentType: "image/png",
	})
	require.Error(t, err)
	assert.Nil(t, image)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotOwned)
}

func TestImageService_AddImage_UnknownProduct(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	image, err := fx.service.AddImage(ctx, uuid.New(), productID, usecase.UploadImageInput{
		Data:        []byte("x"),
		ContentType: "image/png",
	})
	require.Error(t, err)
	assert.Nil(t, image)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestImageService_AddImage_CleansBlobWhenRowFails(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, UserID: userID}, nil)
	fx.storage.EXPECT().
		Store(ctx, mock.Anything, "image/png").
		Return("products/orphan.png", nil)
	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ProductImage")).
		Return(assert.AnError)
	fx.storage.EXPECT().Delete(ctx, "products/orphan.png").Return(nil)

	image, err := fx.service.AddImage(ctx, userID, productID, usecase.UploadImageInput{
		Data:        []byte("x"),
		ContentType: "image/png",
	})
	require.Error(t, err)
	assert.Nil(t, image)
}

func TestImageService_ReplaceImage_SwapsBlob(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	userID := uuid.New()
	imageID := uuid.New()
	existing := &entity.ProductImage{
		ID:        imageID,
		ProductID: uuid.New(),
		Image:     "products/old.png",
	}

	fx.imageRepo.EXPECT().FindByIDForOwner(ctx, imageID, userID).Return(existing, nil)
	fx.storage.EXPECT().
		Store(ctx, mock.Anything, "image/jpeg").
		Return("products/new.jpg", nil)
	fx.imageRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ProductImage")).
		Run(func(_ context.Context, image *entity.ProductImage) {
			assert.Equal(t, "products/new.jpg", image.Image)
		}).
		Return(nil)
	fx.storage.EXPECT().Delete(ctx, "products/old.png").Return(nil)

	image, err := fx.service.ReplaceImage(ctx, userID, imageID, usecase.UploadImageInput{
		Data:        []byte("jpeg-bytes"),
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "products/new.jpg", image.Image)
}

func TestImageService_ReplaceImage_NotOwnedBehavesAsMissing(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageID := uuid.New()
	userID := uuid.New()

	fx.imageRepo.EXPECT().
		FindByIDForOwner(ctx, imageID, userID).
		Return(nil, repository.ErrProductImageNotFound)

	image, err := fx.service.ReplaceImage(ctx, userID, imageID, usecase.UploadImageInput{
		Data:        []byte("x"),
		ContentType: "image/png",
	})
	require.Error(t, err)
	assert.Nil(t, image)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestImageService_DeleteImage_RemovesBlob(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	userID := uuid.New()
	imageID := uuid.New()
	existing := &entity.ProductImage{
		ID:        imageID,
		ProductID: uuid.New(),
		Image:     "products/gone.png",
	}

	fx.imageRepo.EXPECT().FindByIDForOwner(ctx, imageID, userID).Return(existing, nil)
	fx.imageRepo.EXPECT().DeleteForOwner(ctx, imageID, userID).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "products/gone.png").Return(nil)

	err := fx.service.DeleteImage(ctx, userID, imageID)
	require.NoError(t, err)
}

func TestImageService_DeleteImage_BlobFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	userID := uuid.New()
	imageID := uuid.New()
	existing := &entity.ProductImage{
		ID:        imageID,
		ProductID: uuid.New(),
		Image:     "products/stuck.png",
	}

	fx.imageRepo.EXPECT().FindByIDForOwner(ctx, imageID, userID).Return(existing, nil)
	fx.imageRepo.EXPECT().DeleteForOwner(ctx, imageID, userID).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "products/stuck.png").Return(assert.AnError)

	err := fx.service.DeleteImage(ctx, userID, imageID)
	require.NoError(t, err)
}

func TestImageService_GetImage_NotFound(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageID := uuid.New()

	fx.imageRepo.EXPECT().FindByID(ctx, imageID).Return(nil, repository.ErrProductImageNotFound)

	image, err := fx.service.GetImage(ctx, imageID)
	require.Error(t, err)
	assert.Nil(t, image)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
