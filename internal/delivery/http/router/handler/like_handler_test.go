package handler

import (
	"net/http"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLikeHandler_Toggle_ReportsEndState(t *testing.T) {
	uc := mockUC.NewMockLikeUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewLikeHandler(uc, storage, newDiscardLogger())

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		ToggleLike(mock.Anything, userID, productID).
		Return(&entity.LikeResult{ProductID: productID, Liked: true}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/likes/toggle",
		`{"product_id":"`+productID.String()+`"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Toggle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"liked":true`)
}

func TestLikeHandler_Toggle_RequiresAuth(t *testing.T) {
	uc := mockUC.NewMockLikeUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewLikeHandler(uc, storage, newDiscardLogger())

	c, _ := newTestContext(t, http.MethodPost, "/likes/toggle",
		`{"product_id":"`+uuid.New().String()+`"}`)

	err := h.Toggle(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestLikeHandler_Toggle_RequiresProductID(t *testing.T) {
	uc := mockUC.NewMockLikeUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewLikeHandler(uc, storage, newDiscardLogger())

	c, rec := newTestContext(t, http.MethodPost, "/likes/toggle", `{}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	require.NoError(t, h.Toggle(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikeHandler_List(t *testing.T) {
	uc := mockUC.NewMockLikeUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewLikeHandler(uc, storage, newDiscardLogger())

	userID := uuid.New()
	uc.EXPECT().
		ListLikes(mock.Anything, userID).
		Return([]*entity.Like{
			{ID: uuid.New(), UserID: userID, Product: &entity.Product{Name: "Phone"}},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/likes", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Phone")
}
