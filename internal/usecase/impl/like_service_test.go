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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// likeServiceFixtures holds all test dependencies for like service tests.
type likeServiceFixtures struct {
	service     usecase.LikeUsecase
	txManager   *mockRepo.MockTransactionManager
	likeRepo    *mockRepo.MockLikeRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestLikeService(t *testing.T) likeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewLikeService(LikeServiceParams{
		TxManager:   txManager,
		LikeRepo:    likeRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return likeServiceFixtures{
		service:     svc,
		txManager:   txManager,
		likeRepo:    likeRepo,
		productRepo: productRepo,
	}
}

func (fx likeServiceFixtures) expectToggleTx(t *testing.T, ctx context.Context, setup func(*mockRepo.MockLikeRepository)) {
	t.Helper()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txLikeRepo := mockRepo.NewMockLikeRepository(t)
			mockFactory.EXPECT().LikeRepo().Return(txLikeRepo)
			setup(txLikeRepo)

			return fn(mockFactory)
		})
}

func TestLikeService_ToggleLike_LikesWhenAbsent(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.expectToggleTx(t, ctx, func(txLikeRepo *mockRepo.MockLikeRepository) {
		txLikeRepo.EXPECT().
			FindByProductAndUser(ctx, productID, userID).
			Return(nil, repository.ErrLikeNotFound)
		txLikeRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Like")).
			Return(nil)
	})

	result, err := fx.service.ToggleLike(ctx, userID, productID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, productID, result.ProductID)
}

func TestLikeService_ToggleLike_UnlikesWhenPresent(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	likeID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.expectToggleTx(t, ctx, func(txLikeRepo *mockRepo.MockLikeRepository) {
		txLikeRepo.EXPECT().
			FindByProductAndUser(ctx, productID, userID).
			Return(&entity.Like{ID: likeID, ProductID: productID, UserID: userID}, nil)
		txLikeRepo.EXPECT().Delete(ctx, likeID).Return(nil)
	})

	result, err := fx.service.ToggleLike(ctx, userID, productID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
}

func TestLikeService_ToggleLike_TwicePressesReturnToInitialState(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	likeID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil).Times(2)

	liked := false
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txLikeRepo := mockRepo.NewMockLikeRepository(t)
			mockFactory.EXPECT().LikeRepo().Return(txLikeRepo)

			if !liked {
				txLikeRepo.EXPECT().
					FindByProductAndUser(ctx, productID, userID).
					Return(nil, repository.ErrLikeNotFound)
				txLikeRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*entity.Like")).
					Run(func(_ context.Context, like *entity.Like) { like.ID = likeID }).
					Return(nil)
				liked = true
			} else {
				txLikeRepo.EXPECT().
					FindByProductAndUser(ctx, productID, userID).
					Return(&entity.Like{ID: likeID, ProductID: productID, UserID: userID}, nil)
				txLikeRepo.EXPECT().Delete(ctx, likeID).Return(nil)
				liked = false
			}

			return fn(mockFactory)
		}).
		Times(2)

	first, err := fx.service.ToggleLike(ctx, userID, productID)
	require.NoError(t, err)
	assert.True(t, first.Liked)

	second, err := fx.service.ToggleLike(ctx, userID, productID)
	require.NoError(t, err)
	assert.False(t, second.Liked)
}

func TestLikeService_ToggleLike_LostInsertRaceEndsUnliked(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	winnerID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.expectToggleTx(t, ctx, func(txLikeRepo *mockRepo.MockLikeRepository) {
		txLikeRepo.EXPECT().
			FindByProductAndUser(ctx, productID, userID).
			Return(nil, repository.ErrLikeNotFound).
			Once()
		txLikeRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Like")).
			Return(repository.ErrDuplicateLike)
		txLikeRepo.EXPECT().
			FindByProductAndUser(ctx, productID, userID).
			Return(&entity.Like{ID: winnerID, ProductID: productID, UserID: userID}, nil).
			Once()
		txLikeRepo.EXPECT().Delete(ctx, winnerID).Return(nil)
	})

	result, err := fx.service.ToggleLike(ctx, userID, productID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
}

func TestLikeService_ToggleLike_UnknownProduct(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	result, err := fx.service.ToggleLike(ctx, userID, productID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLikeService_ListLikes(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	likes := []*entity.Like{
		{ID: uuid.New(), UserID: userID, Product: &entity.Product{Name: "Phone"}},
	}

	fx.likeRepo.EXPECT().FindByUser(ctx, userID).Return(likes, nil)

	got, err := fx.service.ListLikes(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Phone", got[0].Product.Name)
}
