package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewUserHandler(uc, storage, newDiscardLogger())

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret1",
		}).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:       userID,
			Username: "alice",
			Email:    "alice@example.com",
			IsActive: true,
		}}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.NotContains(t, rec.Body.String(), "secret1")
}

func TestUserHandler_Register_RejectsShortPassword(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewUserHandler(uc, storage, newDiscardLogger())

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"short"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewUserHandler(uc, storage, newDiscardLogger())

	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: "secret1"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User:         &entity.User{ID: uuid.New(), Username: "alice"},
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"secret1"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.Contains(t, rec.Body.String(), "refresh-token")
}

func TestUserHandler_Refresh_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)
	h := NewUserHandler(uc, storage, newDiscardLogger())

	uc.EXPECT().
		Refresh(mock.Anything, "old-refresh").
		Return(&usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"old-refresh"}`)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
