package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Create_Success(t *testing.T) {
	uc := mockUC.NewMockOrderUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewOrderHandler(uc, storage, newDiscardLogger())

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		CreateOrder(mock.Anything, userID, usecase.CreateOrderInput{
			ProductID: productID,
			Quantity:  2,
		}).
		Return(&entity.Order{
			ID:         uuid.New(),
			ProductID:  productID,
			UserID:     userID,
			Quantity:   2,
			TotalPrice: decimal.RequireFromString("39.98"),
			Status:     entity.OrderStatusPending,
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/orders",
		`{"product_id":"`+productID.String()+`","quantity":2}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "39.98")
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestOrderHandler_Create_IgnoresClientStatus(t *testing.T) {
	uc := mockUC.NewMockOrderUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewOrderHandler(uc, storage, newDiscardLogger())

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		CreateOrder(mock.Anything, userID, usecase.CreateOrderInput{
			ProductID: productID,
			Quantity:  1,
		}).
		Return(&entity.Order{
			ID:         uuid.New(),
			ProductID:  productID,
			UserID:     userID,
			Quantity:   1,
			TotalPrice: decimal.RequireFromString("19.99"),
			Status:     entity.OrderStatusPending,
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/orders",
		`{"product_id":"`+productID.String()+`","quantity":1,"status":"shipped"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
	assert.NotContains(t, rec.Body.String(), "shipped")
}

func TestOrderHandler_Create_RequiresProductID(t *testing.T) {
	uc := mockUC.NewMockOrderUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewOrderHandler(uc, storage, newDiscardLogger())

	c, rec := newTestContext(t, http.MethodPost, "/orders", `{"quantity":2}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Get_RejectsMalformedID(t *testing.T) {
	uc := mockUC.NewMockOrderUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewOrderHandler(uc, storage, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Get(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestOrderHandler_List(t *testing.T) {
	uc := mockUC.NewMockOrderUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewOrderHandler(uc, storage, newDiscardLogger())

	userID := uuid.New()
	uc.EXPECT().
		ListOrders(mock.Anything, userID).
		Return([]*entity.Order{
			{ID: uuid.New(), UserID: userID, Quantity: 1, TotalPrice: decimal.RequireFromString("5.00"), Status: entity.OrderStatusShipped},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/orders", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shipped")
}
