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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     svc,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func TestOrderService_CreateOrder_SnapshotsTotalPrice(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:    productID,
		Price: decimal.RequireFromString("19.99"),
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("59.97")))
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			order.ID = uuid.New()
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		ProductID: productID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("59.97")))
	assert.Equal(t, 3, order.Quantity)
}

func TestOrderService_CreateOrder_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	order, err := fx.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{
		ProductID: uuid.New(),
		Quantity:  0,
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrder_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByIDForUser(ctx, orderID, userID).
		Return(&entity.Order{ID: orderID, UserID: userID, Quantity: 1}, nil)

	status := "teleported"
	order, err := fx.service.UpdateOrder(ctx, userID, orderID, usecase.UpdateOrderInput{Status: &status})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	order, err := fx.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{
		ProductID: productID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrder_RecomputesTotalOnQuantityChange(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	productID := uuid.New()
	existing := &entity.Order{
		ID:         orderID,
		ProductID:  productID,
		UserID:     userID,
		Quantity:   1,
		TotalPrice: decimal.RequireFromString("10.00"),
		Status:     entity.OrderStatusPending,
	}
	product := &entity.Product{ID: productID, Price: decimal.RequireFromString("12.50")}

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(existing, nil).Once()
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			assert.Equal(t, 4, order.Quantity)
			assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("50.00")))
		}).
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByIDForUser(ctx, orderID, userID).
		Return(&entity.Order{
			ID:         orderID,
			Quantity:   4,
			TotalPrice: decimal.RequireFromString("50.00"),
			Status:     entity.OrderStatusPending,
		}, nil).
		Once()

	quantity := 4
	updated, err := fx.service.UpdateOrder(ctx, userID, orderID, usecase.UpdateOrderInput{Quantity: &quantity})
	require.NoError(t, err)
	assert.True(t, updated.TotalPrice.Equal(decimal.RequireFromString("50.00")))
}

func TestOrderService_UpdateOrder_StatusOnlyRefreshesTotal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	productID := uuid.New()
	existing := &entity.Order{
		ID:         orderID,
		ProductID:  productID,
		UserID:     userID,
		Quantity:   2,
		TotalPrice: decimal.RequireFromString("40.00"),
		Status:     entity.OrderStatusPending,
	}

	// The product's price went up since the order was placed. Even a
	// status-only update re-snapshots the total at the current price.
	product := &entity.Product{ID: productID, Price: decimal.RequireFromString("30.00")}

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(existing, nil).Once()
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			assert.Equal(t, entity.OrderStatusShipped, order.Status)
			assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("60.00")))
		}).
		Return(nil)
	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(existing, nil).Once()

	status := "shipped"
	_, err := fx.service.UpdateOrder(ctx, userID, orderID, usecase.UpdateOrderInput{Status: &status})
	require.NoError(t, err)
}

func TestOrderService_GetOrder_NotOwnedBehavesAsMissing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, userID, orderID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().DeleteForUser(ctx, orderID, userID).Return(repository.ErrOrderNotFound)

	err := fx.service.DeleteOrder(ctx, userID, orderID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
