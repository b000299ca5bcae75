package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_SetsUserIDFromValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateAccessToken("valid-token").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)

	c, _ := newAuthContext(t, "Bearer valid-token")

	var nextCalled bool
	next := func(c echo.Context) error {
		nextCalled = true
		got, ok := UserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, got)

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext(t, "")

	next := func(c echo.Context) error {
		t.Fatal("next should not be called")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsNonBearerHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext(t, "Basic dXNlcjpwYXNz")

	next := func(c echo.Context) error {
		t.Fatal("next should not be called")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsInvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		ValidateAccessToken("expired-token").
		Return(nil, assert.AnError)

	c, rec := newAuthContext(t, "Bearer expired-token")

	next := func(c echo.Context) error {
		t.Fatal("next should not be called")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
